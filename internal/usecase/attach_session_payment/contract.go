package attach_session_payment

import (
	"context"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок на тренировку
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionRequest, error)
	AttachPaymentProof(ctx context.Context, id int64, url string) error
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
