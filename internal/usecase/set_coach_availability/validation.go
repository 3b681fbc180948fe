package set_coach_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorUserID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	switch req.Mode {
	case "", ModeReplace, ModeAppend:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	for _, s := range req.Slots {
		if s.Date.IsZero() {
			return fmt.Errorf("%w: date is required for slot %q", ErrInvalidInput, s.Slot)
		}
	}

	return nil
}

// validateSlots отклоняет весь набор, если хотя бы одна пара невалидна
func validateSlots(catalog *domain.SlotCatalog, slots []domain.SessionSlot, now time.Time) error {
	unknown := make([]domain.SessionSlot, 0)
	for _, s := range slots {
		if !catalog.Contains(s.Slot) {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) > 0 {
		return &UnknownSlotsError{Slots: unknown}
	}

	if outside := domain.OutsideAvailabilityWindow(slots, now); len(outside) > 0 {
		return &OutsideWindowError{Slots: outside}
	}

	return nil
}
