package respond_session_request

import (
	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	respondSessionRequest "github.com/m04kA/SMC-SportsBookingService/internal/usecase/respond_session_request"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// RespondRequest HTTP request model
type RespondRequest struct {
	Decision string `json:"decision"` // "accepted" или "rejected"
	CourtID  *int64 `json:"courtId,omitempty"`
}

// SessionRequestResponse HTTP response model
type SessionRequestResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	CoachID         int64               `json:"coachId"`
	CoachName       string              `json:"coachName"`
	Sport           string              `json:"sport"`
	Kind            string              `json:"kind"`
	Slots           []types.SessionSlot `json:"slots"`
	Status          string              `json:"status"`
	CourtID         *int64              `json:"courtId,omitempty"`
	PaymentProofURL *string             `json:"paymentProofUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RespondRequest) ToUseCaseRequest(userID, requestID int64) *respondSessionRequest.Request {
	return &respondSessionRequest.Request{
		ActorUserID: userID,
		RequestID:   requestID,
		Decision:    domain.Decision(r.Decision),
		CourtID:     r.CourtID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *respondSessionRequest.Response) *SessionRequestResponse {
	return &SessionRequestResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		CoachID:         resp.CoachID,
		CoachName:       resp.CoachName,
		Sport:           resp.Sport,
		Kind:            string(resp.Kind),
		Slots:           handlers.FromDomainSessionSlots(resp.Slots),
		Status:          string(resp.Status),
		CourtID:         resp.CourtID,
		PaymentProofURL: resp.PaymentProofURL,
	}
}
