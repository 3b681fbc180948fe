package respond_session_request

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// Request ответ тренера на заявку
type Request struct {
	ActorUserID int64
	RequestID   int64
	Decision    domain.Decision
	CourtID     *int64 // корт для принятой заявки, не резервируется
}

// Response заявка после ответа
type Response struct {
	ID              int64
	UserID          int64
	CoachID         int64
	CoachName       string
	Sport           string
	Kind            domain.SessionKind
	Slots           []domain.SessionSlot
	Status          domain.SessionRequestStatus
	CourtID         *int64
	PaymentProofURL *string
	CreatedAt       time.Time
}

// requestRespondedEvent событие session_request.responded
type requestRespondedEvent struct {
	RequestID int64  `json:"request_id"`
	UserID    int64  `json:"user_id"`
	CoachID   int64  `json:"coach_id"`
	Status    string `json:"status"`
	CourtID   *int64 `json:"court_id,omitempty"`
}
