package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// Request модели

// ListRequestsRequest фильтр списка заявок тренера
type ListRequestsRequest struct {
	CoachID int64
	Status  *string
}

// Response модели

// SessionRequestResponse заявка на тренировку
type SessionRequestResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	CoachID         int64               `json:"coachId"`
	CoachName       string              `json:"coachName"`
	Sport           string              `json:"sport"`
	Kind            string              `json:"kind"`
	Slots           []types.SessionSlot `json:"slots"`
	Status          string              `json:"status"`
	CourtID         *int64              `json:"courtId,omitempty"`
	PaymentProofURL *string             `json:"paymentProofUrl,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// SessionRequestListResponse список заявок
type SessionRequestListResponse struct {
	Requests []SessionRequestResponse `json:"requests"`
}

// Методы конвертации

// ToDomainStatus конвертирует строку в статус заявки
func ToDomainStatus(status string) (domain.SessionRequestStatus, error) {
	s := domain.SessionRequestStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown session request status: %s", status)
	}
	return s, nil
}

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(r *domain.SessionRequest) *SessionRequestResponse {
	if r == nil {
		return nil
	}

	slots := make([]types.SessionSlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, types.SessionSlot{Date: types.NewDateString(s.Date), Slot: s.Slot})
	}

	return &SessionRequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		CoachID:         r.CoachID,
		CoachName:       r.CoachName,
		Sport:           r.Sport,
		Kind:            string(r.Kind),
		Slots:           slots,
		Status:          string(r.Status),
		CourtID:         r.CourtID,
		PaymentProofURL: r.PaymentProofURL,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainRequestList конвертирует список domain моделей в DTO
func FromDomainRequestList(requests []*domain.SessionRequest) *SessionRequestListResponse {
	resp := &SessionRequestListResponse{
		Requests: make([]SessionRequestResponse, 0, len(requests)),
	}
	for _, r := range requests {
		if item := FromDomainRequest(r); item != nil {
			resp.Requests = append(resp.Requests, *item)
		}
	}
	return resp
}
