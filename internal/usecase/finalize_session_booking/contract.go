package finalize_session_booking

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
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

// SessionBookingRepository интерфейс репозитория бронирований тренировок
type SessionBookingRepository interface {
	Create(ctx context.Context, booking *domain.SessionBooking) (*domain.SessionBooking, error)
}

// ArtifactService вторая фаза записи: выпуск и прикрепление кода подтверждения
type ArtifactService interface {
	AttachToSessionBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingCreated(kind string)
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
