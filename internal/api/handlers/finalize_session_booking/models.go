package finalize_session_booking

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	finalizeSessionBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/finalize_session_booking"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// SessionBookingResponse HTTP response model
type SessionBookingResponse struct {
	ID                  int64               `json:"id"`
	RequestID           int64               `json:"requestId"`
	UserID              int64               `json:"userId"`
	CoachID             int64               `json:"coachId"`
	CoachName           string              `json:"coachName"`
	Sport               string              `json:"sport"`
	Kind                string              `json:"kind"`
	Fee                 float64             `json:"fee"`
	CourtID             *int64              `json:"courtId,omitempty"`
	Slots               []types.SessionSlot `json:"slots"`
	VerificationCode    *string             `json:"verificationCode,omitempty"`
	VerificationURL     *string             `json:"verificationUrl,omitempty"`
	VerificationPending bool                `json:"verificationPending"`
	CreatedAt           string              `json:"createdAt"`
}

// PreconditionDetails причина отказа в оформлении
type PreconditionDetails struct {
	Reason string `json:"reason"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *finalizeSessionBooking.Response) *SessionBookingResponse {
	return &SessionBookingResponse{
		ID:                  resp.ID,
		RequestID:           resp.RequestID,
		UserID:              resp.UserID,
		CoachID:             resp.CoachID,
		CoachName:           resp.CoachName,
		Sport:               resp.Sport,
		Kind:                string(resp.Kind),
		Fee:                 resp.Fee,
		CourtID:             resp.CourtID,
		Slots:               handlers.FromDomainSessionSlots(resp.Slots),
		VerificationCode:    resp.VerificationCode,
		VerificationURL:     resp.VerificationURL,
		VerificationPending: resp.VerificationPending,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}
