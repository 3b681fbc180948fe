package models

import (
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

const (
	KindFacility = "facility"
	KindSession  = "session"
)

// Response модели

// CheckinResponse бронирование, которому принадлежит код подтверждения
type CheckinResponse struct {
	Kind      string  `json:"kind"`
	BookingID int64   `json:"bookingId"`
	UserID    int64   `json:"userId"`
	Sport     string  `json:"sport"`
	CourtID   *int64  `json:"courtId,omitempty"`
	CoachID   *int64  `json:"coachId,omitempty"`
	CoachName *string `json:"coachName,omitempty"`

	Slots []types.SessionSlot `json:"slots"`
}

// Методы конвертации

// FromFacilityBooking бронирование корта: все слоты на одну дату
func FromFacilityBooking(b *domain.FacilityBooking) *CheckinResponse {
	courtID := b.CourtID
	resp := &CheckinResponse{
		Kind:      KindFacility,
		BookingID: b.ID,
		UserID:    b.UserID,
		Sport:     b.Sport,
		CourtID:   &courtID,
		Slots:     make([]types.SessionSlot, 0, len(b.Slots)),
	}
	for _, slot := range b.Slots {
		resp.Slots = append(resp.Slots, types.SessionSlot{Date: types.NewDateString(b.BookingDate), Slot: slot})
	}
	return resp
}

// FromSessionBooking бронирование тренировки
func FromSessionBooking(b *domain.SessionBooking) *CheckinResponse {
	coachID, coachName := b.CoachID, b.CoachName
	resp := &CheckinResponse{
		Kind:      KindSession,
		BookingID: b.ID,
		UserID:    b.UserID,
		Sport:     b.Sport,
		CourtID:   b.CourtID,
		CoachID:   &coachID,
		CoachName: &coachName,
		Slots:     make([]types.SessionSlot, 0, len(b.Slots)),
	}
	for _, s := range b.Slots {
		resp.Slots = append(resp.Slots, types.SessionSlot{Date: types.NewDateString(s.Date), Slot: s.Slot})
	}
	return resp
}
