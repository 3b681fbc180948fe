package set_coach_availability

import (
	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	setCoachAvailability "github.com/m04kA/SMC-SportsBookingService/internal/usecase/set_coach_availability"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	Slots []types.SessionSlot `json:"slots"`
	Mode  string              `json:"mode,omitempty"` // "replace" (по умолчанию) или "append"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CoachID      int64               `json:"coachId"`
	Availability []types.SessionSlot `json:"availability"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetAvailabilityRequest) ToUseCaseRequest(userID, coachID int64) (*setCoachAvailability.Request, error) {
	slots, err := handlers.ToDomainSessionSlots(r.Slots)
	if err != nil {
		return nil, err
	}
	return &setCoachAvailability.Request{
		ActorUserID: userID,
		CoachID:     coachID,
		Slots:       slots,
		Mode:        setCoachAvailability.Mode(r.Mode),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setCoachAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CoachID:      resp.CoachID,
		Availability: handlers.FromDomainSessionSlots(resp.Availability),
	}
}
