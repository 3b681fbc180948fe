package domain

import "time"

// SessionKind represents the kind of a coaching session
type SessionKind string

const (
	SessionIndividual SessionKind = "individual"
	SessionGroup      SessionKind = "group"
)

// IsValid checks that the session kind is known
func (k SessionKind) IsValid() bool {
	return k == SessionIndividual || k == SessionGroup
}

// SessionSlot is a (date, slot) pair in a coach schedule
type SessionSlot struct {
	Date time.Time
	Slot string
}

// Key returns a string key used to compare pairs
func (s SessionSlot) Key() string {
	return s.Date.Format(DateFormat) + "|" + s.Slot
}

// CoachProfile represents a coach and their availability window
type CoachProfile struct {
	ID            int64
	UserID        int64
	Name          string
	Sport         string
	Bio           *string
	IndividualFee *float64
	GroupFee      *float64

	// Availability window, stored in a separate table
	Availability []SessionSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeeFor returns the fee for the given session kind
func (c *CoachProfile) FeeFor(kind SessionKind) (float64, bool) {
	switch kind {
	case SessionIndividual:
		if c.IndividualFee != nil {
			return *c.IndividualFee, true
		}
	case SessionGroup:
		if c.GroupFee != nil {
			return *c.GroupFee, true
		}
	}
	return 0, false
}

// MissingFromAvailability returns requested pairs absent from the availability window.
// Pairs match exactly on calendar date and slot string.
func (c *CoachProfile) MissingFromAvailability(requested []SessionSlot) []SessionSlot {
	open := make(map[string]struct{}, len(c.Availability))
	for _, a := range c.Availability {
		open[NewSessionSlot(a.Date, a.Slot).Key()] = struct{}{}
	}

	missing := make([]SessionSlot, 0)
	for _, r := range requested {
		if _, ok := open[NewSessionSlot(r.Date, r.Slot).Key()]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// NewSessionSlot creates a pair with the time of day stripped
func NewSessionSlot(date time.Time, slot string) SessionSlot {
	return SessionSlot{Date: DateOnly(date), Slot: slot}
}

// NormalizeSessionSlots removes duplicate pairs preserving order
func NormalizeSessionSlots(slots []SessionSlot) []SessionSlot {
	out := make([]SessionSlot, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		s = NewSessionSlot(s.Date, s.Slot)
		if _, ok := seen[s.Key()]; ok {
			continue
		}
		seen[s.Key()] = struct{}{}
		out = append(out, s)
	}
	return out
}
