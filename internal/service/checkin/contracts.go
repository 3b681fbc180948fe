package checkin

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// FacilityBookingRepository интерфейс поиска бронирования корта по коду
type FacilityBookingRepository interface {
	GetByVerificationCode(ctx context.Context, code string) (*domain.FacilityBooking, error)
}

// SessionBookingRepository интерфейс поиска бронирования тренировки по коду
type SessionBookingRepository interface {
	GetByVerificationCode(ctx context.Context, code string) (*domain.SessionBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
