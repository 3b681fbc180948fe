package artifacts

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
)

// VerificationClient интерфейс клиента сервиса кодов подтверждения
type VerificationClient interface {
	Generate(ctx context.Context, kind verification.Kind, bookingID int64) (*verification.Artifact, error)
}

// FacilityBookingRepository интерфейс репозитория бронирований кортов
type FacilityBookingRepository interface {
	AttachVerification(ctx context.Context, id int64, code, url string) error
	GetByID(ctx context.Context, id int64) (*domain.FacilityBooking, error)
}

// SessionBookingRepository интерфейс репозитория бронирований тренировок
type SessionBookingRepository interface {
	AttachVerification(ctx context.Context, id int64, code, url string) error
	GetByID(ctx context.Context, id int64) (*domain.SessionBooking, error)
}

// Metrics счетчики неудачных выпусков кода
type Metrics interface {
	IncArtifactFailure(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
