package respond_session_request

import (
	"context"

	respondSessionRequest "github.com/m04kA/SMC-SportsBookingService/internal/usecase/respond_session_request"
)

type RespondSessionRequestUseCase interface {
	Execute(ctx context.Context, req *respondSessionRequest.Request) (*respondSessionRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
