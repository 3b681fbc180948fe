package get_coach

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches/models"
)

type CoachService interface {
	GetProfile(ctx context.Context, id int64) (*models.CoachProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
