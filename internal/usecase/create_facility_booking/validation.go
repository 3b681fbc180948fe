package create_facility_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if domain.NormalizeSport(req.Sport) == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return ErrEmptySlots
	}

	if strings.TrimSpace(req.PaymentProofURL) == "" {
		return ErrMissingPaymentProof
	}

	return nil
}
