package list_coach_requests

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/sessions/models"
)

type SessionService interface {
	ListByCoach(ctx context.Context, userID int64, role domain.Role, req *models.ListRequestsRequest) (*models.SessionRequestListResponse, error)
	ListByUser(ctx context.Context, userID int64) (*models.SessionRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
