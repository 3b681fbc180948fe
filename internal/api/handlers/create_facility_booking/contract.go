package create_facility_booking

import (
	"context"

	createFacilityBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_facility_booking"
)

type CreateFacilityBookingUseCase interface {
	Execute(ctx context.Context, req *createFacilityBooking.Request) (*createFacilityBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
