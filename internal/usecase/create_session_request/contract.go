package create_session_request

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// CoachRepository интерфейс репозитория профилей тренеров
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error)
}

// RequestRepository интерфейс репозитория заявок на тренировку
type RequestRepository interface {
	Create(ctx context.Context, req *domain.SessionRequest) (*domain.SessionRequest, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
