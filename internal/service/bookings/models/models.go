package models

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// Response модели

// FacilityBookingResponse бронирование корта
type FacilityBookingResponse struct {
	ID                  int64            `json:"id"`
	UserID              int64            `json:"userId"`
	CourtID             int64            `json:"courtId"`
	Sport               string           `json:"sport"`
	Date                types.DateString `json:"date"`
	Slots               []string         `json:"slots"`
	UnitPrice           float64          `json:"unitPrice"`
	TotalPrice          float64          `json:"totalPrice"`
	PaymentProofURL     string           `json:"paymentProofUrl"`
	VerificationCode    *string          `json:"verificationCode,omitempty"`
	VerificationURL     *string          `json:"verificationUrl,omitempty"`
	VerificationPending bool             `json:"verificationPending"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// FacilityBookingListResponse список бронирований кортов
type FacilityBookingListResponse struct {
	Bookings []FacilityBookingResponse `json:"bookings"`
}

// SessionBookingResponse бронирование тренировки
type SessionBookingResponse struct {
	ID                  int64               `json:"id"`
	RequestID           int64               `json:"requestId"`
	UserID              int64               `json:"userId"`
	CoachID             int64               `json:"coachId"`
	CoachName           string              `json:"coachName"`
	Sport               string              `json:"sport"`
	Kind                string              `json:"kind"`
	Fee                 float64             `json:"fee"`
	CourtID             *int64              `json:"courtId,omitempty"`
	Slots               []types.SessionSlot `json:"slots"`
	VerificationCode    *string             `json:"verificationCode,omitempty"`
	VerificationURL     *string             `json:"verificationUrl,omitempty"`
	VerificationPending bool                `json:"verificationPending"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// Методы конвертации

// FromDomainFacilityBooking конвертирует domain модель в DTO
func FromDomainFacilityBooking(b *domain.FacilityBooking) *FacilityBookingResponse {
	if b == nil {
		return nil
	}

	slots := b.Slots
	if slots == nil {
		slots = []string{}
	}

	return &FacilityBookingResponse{
		ID:                  b.ID,
		UserID:              b.UserID,
		CourtID:             b.CourtID,
		Sport:               b.Sport,
		Date:                types.NewDateString(b.BookingDate),
		Slots:               slots,
		UnitPrice:           b.UnitPrice,
		TotalPrice:          b.TotalPrice,
		PaymentProofURL:     b.PaymentProofURL,
		VerificationCode:    b.VerificationCode,
		VerificationURL:     b.VerificationURL,
		VerificationPending: b.VerificationPending(),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// FromDomainFacilityBookingList конвертирует список domain моделей в DTO
func FromDomainFacilityBookingList(bookings []*domain.FacilityBooking) *FacilityBookingListResponse {
	resp := &FacilityBookingListResponse{
		Bookings: make([]FacilityBookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if item := FromDomainFacilityBooking(b); item != nil {
			resp.Bookings = append(resp.Bookings, *item)
		}
	}
	return resp
}

// FromDomainSessionBooking конвертирует domain модель в DTO
func FromDomainSessionBooking(b *domain.SessionBooking) *SessionBookingResponse {
	if b == nil {
		return nil
	}

	slots := make([]types.SessionSlot, 0, len(b.Slots))
	for _, s := range b.Slots {
		slots = append(slots, types.SessionSlot{Date: types.NewDateString(s.Date), Slot: s.Slot})
	}

	return &SessionBookingResponse{
		ID:                  b.ID,
		RequestID:           b.RequestID,
		UserID:              b.UserID,
		CoachID:             b.CoachID,
		CoachName:           b.CoachName,
		Sport:               b.Sport,
		Kind:                string(b.Kind),
		Fee:                 b.Fee,
		CourtID:             b.CourtID,
		Slots:               slots,
		VerificationCode:    b.VerificationCode,
		VerificationURL:     b.VerificationURL,
		VerificationPending: b.VerificationPending(),
		CreatedAt:           b.CreatedAt,
	}
}
