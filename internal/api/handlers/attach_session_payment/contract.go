package attach_session_payment

import (
	"context"

	attachSessionPayment "github.com/m04kA/SMC-SportsBookingService/internal/usecase/attach_session_payment"
)

type AttachSessionPaymentUseCase interface {
	Execute(ctx context.Context, req *attachSessionPayment.Request) (*attachSessionPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
