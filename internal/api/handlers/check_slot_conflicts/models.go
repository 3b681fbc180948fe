package check_slot_conflicts

import (
	checkSlotConflicts "github.com/m04kA/SMC-SportsBookingService/internal/usecase/check_slot_conflicts"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// CheckSlotsRequest HTTP request model
type CheckSlotsRequest struct {
	Sport string           `json:"sport"`
	Date  types.DateString `json:"date"`
	Slots []string         `json:"slots"`
}

// CheckSlotsResponse HTTP response model
type CheckSlotsResponse struct {
	OK        bool     `json:"ok"`
	Conflicts []string `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckSlotsRequest) ToUseCaseRequest(courtID int64) (*checkSlotConflicts.Request, error) {
	date, err := r.Date.Time()
	if err != nil {
		return nil, err
	}
	return &checkSlotConflicts.Request{
		CourtID: courtID,
		Sport:   r.Sport,
		Date:    date,
		Slots:   r.Slots,
	}, nil
}
