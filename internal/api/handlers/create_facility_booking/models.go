package create_facility_booking

import (
	"time"

	createFacilityBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_facility_booking"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// CreateFacilityBookingRequest HTTP request model
type CreateFacilityBookingRequest struct {
	CourtID         int64            `json:"courtId"`
	Sport           string           `json:"sport"`
	Date            types.DateString `json:"date"` // "2025-10-15"
	Slots           []string         `json:"slots"`
	PaymentProofURL string           `json:"paymentProofUrl"`
}

// FacilityBookingResponse HTTP response model
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
	CreatedAt           string           `json:"createdAt"`
}

// SlotsDetails слоты в деталях ошибки
type SlotsDetails struct {
	Slots []string `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateFacilityBookingRequest) ToUseCaseRequest(userID int64) (*createFacilityBooking.Request, error) {
	date, err := r.Date.Time()
	if err != nil {
		return nil, err
	}

	return &createFacilityBooking.Request{
		UserID:          userID,
		CourtID:         r.CourtID,
		Sport:           r.Sport,
		Date:            date,
		Slots:           r.Slots,
		PaymentProofURL: r.PaymentProofURL,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createFacilityBooking.Response) *FacilityBookingResponse {
	return &FacilityBookingResponse{
		ID:                  resp.ID,
		UserID:              resp.UserID,
		CourtID:             resp.CourtID,
		Sport:               resp.Sport,
		Date:                types.NewDateString(resp.BookingDate),
		Slots:               resp.Slots,
		UnitPrice:           resp.UnitPrice,
		TotalPrice:          resp.TotalPrice,
		PaymentProofURL:     resp.PaymentProofURL,
		VerificationCode:    resp.VerificationCode,
		VerificationURL:     resp.VerificationURL,
		VerificationPending: resp.VerificationPending,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}
