package check_slot_conflicts

import (
	"context"

	checkSlotConflicts "github.com/m04kA/SMC-SportsBookingService/internal/usecase/check_slot_conflicts"
)

type CheckSlotConflictsUseCase interface {
	Execute(ctx context.Context, req *checkSlotConflicts.Request) (*checkSlotConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
