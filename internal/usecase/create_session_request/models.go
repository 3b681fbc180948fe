package create_session_request

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// Request модель запроса на тренировку
type Request struct {
	UserID  int64
	CoachID int64
	Sport   string // если пусто, берется вид спорта тренера
	Kind    domain.SessionKind
	Slots   []domain.SessionSlot
}

// Response созданная заявка
type Response struct {
	ID        int64
	UserID    int64
	CoachID   int64
	CoachName string
	Sport     string
	Kind      domain.SessionKind
	Slots     []domain.SessionSlot
	Status    domain.SessionRequestStatus
	CreatedAt time.Time
}

// requestCreatedEvent событие session_request.created
type requestCreatedEvent struct {
	RequestID int64  `json:"request_id"`
	UserID    int64  `json:"user_id"`
	CoachID   int64  `json:"coach_id"`
	Sport     string `json:"sport"`
	Kind      string `json:"kind"`
	Slots     int    `json:"slots"`
}
