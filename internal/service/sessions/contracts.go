package sessions

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок на тренировку
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionRequest, error)
	List(ctx context.Context, filter domain.SessionRequestFilter) ([]*domain.SessionRequest, error)
}

// CoachRepository интерфейс репозитория тренеров
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
