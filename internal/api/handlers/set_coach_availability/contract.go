package set_coach_availability

import (
	"context"

	setCoachAvailability "github.com/m04kA/SMC-SportsBookingService/internal/usecase/set_coach_availability"
)

type SetCoachAvailabilityUseCase interface {
	Execute(ctx context.Context, req *setCoachAvailability.Request) (*setCoachAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
