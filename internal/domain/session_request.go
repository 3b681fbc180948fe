package domain

import "time"

// SessionRequestStatus represents the status of a session request
type SessionRequestStatus string

const (
	RequestPending  SessionRequestStatus = "pending"
	RequestAccepted SessionRequestStatus = "accepted"
	RequestRejected SessionRequestStatus = "rejected"
	RequestBooked   SessionRequestStatus = "booked"
)

// IsValid checks that the status is known
func (s SessionRequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected, RequestBooked:
		return true
	}
	return false
}

// Decision represents a coach's answer to a request
type Decision string

const (
	DecisionAccept Decision = "accepted"
	DecisionReject Decision = "rejected"
)

// IsValid checks that the decision is known
func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionReject
}

// Status returns the request status the decision leads to
func (d Decision) Status() SessionRequestStatus {
	if d == DecisionAccept {
		return RequestAccepted
	}
	return RequestRejected
}

// SessionRequest represents a user's request for a session with a coach.
//
// Transitions: pending -> accepted -> booked, pending -> rejected.
// rejected and booked are terminal.
type SessionRequest struct {
	ID      int64
	UserID  int64
	CoachID int64
	Sport   string
	Kind    SessionKind
	Slots   []SessionSlot
	Status  SessionRequestStatus

	// Snapshot of coach data at request creation
	CoachName string

	CourtID         *int64  // назначенный корт (ставится при принятии, не резервирует его)
	PaymentProofURL *string // ссылка на чек оплаты

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanRespond reports whether the coach can still answer the request
func (r *SessionRequest) CanRespond() bool {
	return r.Status == RequestPending
}

// CanAttachPaymentProof reports whether a payment proof can be attached (any status before booked)
func (r *SessionRequest) CanAttachPaymentProof() bool {
	return r.Status != RequestBooked
}

// HasPaymentProof checks that a payment proof is attached
func (r *SessionRequest) HasPaymentProof() bool {
	return r.PaymentProofURL != nil && *r.PaymentProofURL != ""
}

// IsTerminal reports whether the request is rejected or booked
func (r *SessionRequest) IsTerminal() bool {
	return r.Status == RequestRejected || r.Status == RequestBooked
}

// SessionRequestFilter filters session request listings
type SessionRequestFilter struct {
	CoachID *int64
	UserID  *int64
	Status  *SessionRequestStatus
}
