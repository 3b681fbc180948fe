package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SportsBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CourtID  int64            `json:"courtId"`
	Sport    string           `json:"sport"`
	Date     types.DateString `json:"date"`
	Slots    []string         `json:"slots"`
	Reserved []string         `json:"reserved"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		CourtID:  resp.CourtID,
		Sport:    resp.Sport,
		Date:     types.NewDateString(resp.Date),
		Slots:    resp.Slots,
		Reserved: resp.Reserved,
	}
}
