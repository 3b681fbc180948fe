package get_available_courts

import (
	getAvailableCourts "github.com/m04kA/SMC-SportsBookingService/internal/usecase/get_available_courts"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// AvailableCourtsResponse HTTP response model
type AvailableCourtsResponse struct {
	Sport  string           `json:"sport"`
	Date   types.DateString `json:"date"`
	Slot   string           `json:"slot"`
	Courts []CourtResponse  `json:"courts"`
}

// CourtResponse свободный корт
type CourtResponse struct {
	CourtID      int64   `json:"courtId"`
	Number       int     `json:"number"`
	Name         string  `json:"name,omitempty"`
	FacilityID   int64   `json:"facilityId"`
	FacilityName string  `json:"facilityName"`
	PricePerSlot float64 `json:"pricePerSlot"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableCourts.Response) *AvailableCourtsResponse {
	out := &AvailableCourtsResponse{
		Sport:  resp.Sport,
		Date:   types.NewDateString(resp.Date),
		Slot:   resp.Slot,
		Courts: make([]CourtResponse, 0, len(resp.Courts)),
	}
	for _, c := range resp.Courts {
		out.Courts = append(out.Courts, CourtResponse{
			CourtID:      c.CourtID,
			Number:       c.Number,
			Name:         c.Name,
			FacilityID:   c.FacilityID,
			FacilityName: c.FacilityName,
			PricePerSlot: c.PricePerSlot,
		})
	}
	return out
}
