package attach_session_payment

import (
	attachSessionPayment "github.com/m04kA/SMC-SportsBookingService/internal/usecase/attach_session_payment"
)

// AttachPaymentRequest HTTP request model
type AttachPaymentRequest struct {
	PaymentProofURL string `json:"paymentProofUrl"`
}

// AttachPaymentResponse HTTP response model
type AttachPaymentResponse struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`
	PaymentProofURL string `json:"paymentProofUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *attachSessionPayment.Response) *AttachPaymentResponse {
	return &AttachPaymentResponse{
		ID:              resp.ID,
		Status:          string(resp.Status),
		PaymentProofURL: resp.PaymentProofURL,
	}
}
