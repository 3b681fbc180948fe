package attach_session_payment

import "github.com/m04kA/SMC-SportsBookingService/internal/domain"

// Request прикрепление чека к заявке
type Request struct {
	ActorUserID     int64
	RequestID       int64
	PaymentProofURL string
}

// Response заявка с прикрепленным чеком
type Response struct {
	ID              int64
	Status          domain.SessionRequestStatus
	PaymentProofURL string
}
