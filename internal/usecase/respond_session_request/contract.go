package respond_session_request

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок на тренировку
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.SessionRequestStatus, courtID *int64) error
}

// CoachRepository интерфейс репозитория профилей тренеров
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error)
}

// FacilityRepository интерфейс репозитория объектов и кортов
type FacilityRepository interface {
	GetCourt(ctx context.Context, courtID int64) (*domain.CourtWithFacility, error)
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
