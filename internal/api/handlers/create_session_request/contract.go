package create_session_request

import (
	"context"

	createSessionRequest "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_session_request"
)

type CreateSessionRequestUseCase interface {
	Execute(ctx context.Context, req *createSessionRequest.Request) (*createSessionRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
