package create_coach_profile

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches/models"
)

type CoachService interface {
	CreateProfile(ctx context.Context, userID int64, role domain.Role, req *models.CreateProfileRequest) (*models.CoachProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
