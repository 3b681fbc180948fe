package create_session_request

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	createSessionRequest "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_session_request"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// CreateSessionRequestRequest HTTP request model
type CreateSessionRequestRequest struct {
	Sport string              `json:"sport,omitempty"`
	Kind  string              `json:"kind"` // "individual" или "group"
	Slots []types.SessionSlot `json:"slots"`
}

// SessionRequestResponse HTTP response model
type SessionRequestResponse struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"userId"`
	CoachID   int64               `json:"coachId"`
	CoachName string              `json:"coachName"`
	Sport     string              `json:"sport"`
	Kind      string              `json:"kind"`
	Slots     []types.SessionSlot `json:"slots"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequestRequest) ToUseCaseRequest(userID, coachID int64) (*createSessionRequest.Request, error) {
	slots, err := handlers.ToDomainSessionSlots(r.Slots)
	if err != nil {
		return nil, err
	}
	return &createSessionRequest.Request{
		UserID:  userID,
		CoachID: coachID,
		Sport:   r.Sport,
		Kind:    domain.SessionKind(r.Kind),
		Slots:   slots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSessionRequest.Response) *SessionRequestResponse {
	return &SessionRequestResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		CoachID:   resp.CoachID,
		CoachName: resp.CoachName,
		Sport:     resp.Sport,
		Kind:      string(resp.Kind),
		Slots:     handlers.FromDomainSessionSlots(resp.Slots),
		Status:    string(resp.Status),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
