package reviews

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByCoach(ctx context.Context, coachID int64) ([]*domain.Review, error)
	GetRatings(ctx context.Context, coachID int64) ([]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
