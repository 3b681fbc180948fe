package get_available_courts

import (
	"context"

	getAvailableCourts "github.com/m04kA/SMC-SportsBookingService/internal/usecase/get_available_courts"
)

type GetAvailableCourtsUseCase interface {
	Execute(ctx context.Context, req *getAvailableCourts.Request) (*getAvailableCourts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
