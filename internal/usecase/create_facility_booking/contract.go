package create_facility_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
)

// BookingRepository интерфейс репозитория бронирований кортов
type BookingRepository interface {
	GetReservedSlots(ctx context.Context, courtID int64, date time.Time, sport string) ([]string, error)
	Create(ctx context.Context, booking *domain.FacilityBooking) (*domain.FacilityBooking, error)
}

// FacilityRepository интерфейс репозитория объектов и кортов
type FacilityRepository interface {
	GetCourt(ctx context.Context, courtID int64) (*domain.CourtWithFacility, error)
}

// ArtifactService вторая фаза записи: выпуск и прикрепление кода подтверждения
type ArtifactService interface {
	AttachToFacilityBooking(ctx context.Context, bookingID int64) (*verification.Artifact, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingCreated(kind string)
	IncSlotConflict(sport string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
