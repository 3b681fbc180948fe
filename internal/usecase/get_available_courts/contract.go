package get_available_courts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований кортов
type BookingRepository interface {
	// GetCourtsWithReservedSlot корты, у которых слот занят на дату для вида спорта
	GetCourtsWithReservedSlot(ctx context.Context, date time.Time, sport, slot string) ([]int64, error)
}

// FacilityRepository интерфейс репозитория объектов и кортов
type FacilityRepository interface {
	ListCourtsBySport(ctx context.Context, sport string) ([]*domain.CourtWithFacility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
