package facilities

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория объектов и кортов
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
	AddCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context, sport *string) ([]*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
