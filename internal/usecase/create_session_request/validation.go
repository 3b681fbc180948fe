package create_session_request

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown session kind %q", ErrInvalidInput, req.Kind)
	}

	if len(req.Slots) == 0 {
		return ErrEmptySlots
	}

	for _, s := range req.Slots {
		if s.Date.IsZero() || s.Slot == "" {
			return fmt.Errorf("%w: date and slot are required", ErrInvalidInput)
		}
	}

	return nil
}
