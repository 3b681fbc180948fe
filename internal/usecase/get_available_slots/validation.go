package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if domain.NormalizeSport(req.Sport) == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
