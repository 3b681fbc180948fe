package coaches

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// CoachRepository интерфейс репозитория тренеров
type CoachRepository interface {
	Create(ctx context.Context, profile *domain.CoachProfile) (*domain.CoachProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.CoachProfile, error)
}

// RatingRepository интерфейс чтения оценок тренера
type RatingRepository interface {
	GetRatings(ctx context.Context, coachID int64) ([]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
