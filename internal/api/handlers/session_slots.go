package handlers

import (
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// SessionSlotsDetails пары (дата, слот) в деталях ошибки
type SessionSlotsDetails struct {
	Slots []types.SessionSlot `json:"slots"`
}

// ToDomainSessionSlots разбирает даты пар из запроса
func ToDomainSessionSlots(slots []types.SessionSlot) ([]domain.SessionSlot, error) {
	out := make([]domain.SessionSlot, 0, len(slots))
	for _, s := range slots {
		date, err := s.Date.Time()
		if err != nil {
			return nil, err
		}
		out = append(out, domain.NewSessionSlot(date, s.Slot))
	}
	return out, nil
}

// FromDomainSessionSlots конвертирует пары в DTO
func FromDomainSessionSlots(slots []domain.SessionSlot) []types.SessionSlot {
	out := make([]types.SessionSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, types.SessionSlot{Date: types.NewDateString(s.Date), Slot: s.Slot})
	}
	return out
}
