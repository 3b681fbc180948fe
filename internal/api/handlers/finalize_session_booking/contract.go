package finalize_session_booking

import (
	"context"

	finalizeSessionBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/finalize_session_booking"
)

type FinalizeSessionBookingUseCase interface {
	Execute(ctx context.Context, req *finalizeSessionBooking.Request) (*finalizeSessionBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
