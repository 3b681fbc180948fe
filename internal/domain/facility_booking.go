package domain

import (
	"math"
	"time"
)

// FacilityBooking represents a confirmed court booking for a date and set of slots.
// After creation it changes only when the verification code is attached.
type FacilityBooking struct {
	ID              int64
	UserID          int64
	CourtID         int64
	Sport           string
	BookingDate     time.Time
	Slots           []string
	UnitPrice       float64
	TotalPrice      float64
	PaymentProofURL string

	// Filled by the second write phase
	VerificationCode *string
	VerificationURL  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VerificationPending reports whether the booking is stored without a verification code
func (b *FacilityBooking) VerificationPending() bool {
	return b.VerificationCode == nil || b.VerificationURL == nil
}

// CalculateTotal returns unit price times slot count, rounded to cents
func CalculateTotal(unitPrice float64, slots int) float64 {
	return math.Round(unitPrice*float64(slots)*100) / 100
}

// ReservationKey identifies the resource within which slots must not overlap
type ReservationKey struct {
	CourtID int64
	Date    time.Time
	Sport   string
}
