package bookings

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
)

// FacilityBookingRepository интерфейс репозитория бронирований кортов
type FacilityBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FacilityBooking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.FacilityBooking, error)
}

// SessionBookingRepository интерфейс репозитория бронирований тренировок
type SessionBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionBooking, error)
}

// CoachRepository интерфейс репозитория тренеров (для проверки доступа тренера)
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error)
}

// ArtifactService интерфейс повторного выпуска кода подтверждения
type ArtifactService interface {
	AttachToFacilityBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error)
	AttachToSessionBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
