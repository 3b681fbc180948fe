package domain

import "time"

// SessionBooking represents a confirmed coaching session, created once per request.
// Coach data and fee are copied at creation and never synced with the profile.
type SessionBooking struct {
	ID        int64
	RequestID int64
	UserID    int64
	CoachID   int64
	CoachName string
	Sport     string
	Kind      SessionKind
	Fee       float64
	CourtID   *int64
	Slots     []SessionSlot

	VerificationCode *string
	VerificationURL  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VerificationPending reports whether the verification code is not attached yet
func (b *SessionBooking) VerificationPending() bool {
	return b.VerificationCode == nil || b.VerificationURL == nil
}
