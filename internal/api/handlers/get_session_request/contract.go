package get_session_request

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetRequest(ctx context.Context, id, userID int64, role domain.Role) (*models.SessionRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
