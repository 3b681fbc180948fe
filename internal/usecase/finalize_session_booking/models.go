package finalize_session_booking

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// Request оформление принятой заявки
type Request struct {
	ActorUserID int64 // автор заявки или тренер
	RequestID   int64
}

// Response созданное бронирование тренировки
type Response struct {
	ID        int64
	RequestID int64
	UserID    int64
	CoachID   int64
	CoachName string
	Sport     string
	Kind      domain.SessionKind
	Fee       float64
	CourtID   *int64
	Slots     []domain.SessionSlot

	VerificationCode    *string
	VerificationURL     *string
	VerificationPending bool

	CreatedAt time.Time
}

// bookingCreatedEvent событие session_booking.created
type bookingCreatedEvent struct {
	BookingID           int64   `json:"booking_id"`
	RequestID           int64   `json:"request_id"`
	UserID              int64   `json:"user_id"`
	CoachID             int64   `json:"coach_id"`
	Kind                string  `json:"kind"`
	Fee                 float64 `json:"fee"`
	VerificationPending bool    `json:"verification_pending"`
}
