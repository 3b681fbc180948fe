package retry_verification

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/bookings/models"
)

type BookingService interface {
	RetryFacilityVerification(ctx context.Context, id, userID int64, role domain.Role) (*models.FacilityBookingResponse, error)
	RetrySessionVerification(ctx context.Context, id, userID int64, role domain.Role) (*models.SessionBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
