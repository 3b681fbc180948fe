package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований кортов
type BookingRepository interface {
	// GetReservedSlots объединение слотов всех бронирований корта на дату и вид спорта
	GetReservedSlots(ctx context.Context, courtID int64, date time.Time, sport string) ([]string, error)
}

// FacilityRepository интерфейс репозитория объектов и кортов
type FacilityRepository interface {
	GetCourt(ctx context.Context, courtID int64) (*domain.CourtWithFacility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
