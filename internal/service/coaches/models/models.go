package models

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/types"
)

// Request модели

// CreateProfileRequest запрос на создание профиля тренера
type CreateProfileRequest struct {
	Name          string   `json:"name"`
	Sport         string   `json:"sport"`
	Bio           *string  `json:"bio,omitempty"`
	IndividualFee *float64 `json:"individualFee,omitempty"`
	GroupFee      *float64 `json:"groupFee,omitempty"`
}

// Response модели

// CoachProfileResponse профиль тренера с рейтингом и окном доступности
type CoachProfileResponse struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"userId"`
	Name          string              `json:"name"`
	Sport         string              `json:"sport"`
	Bio           *string             `json:"bio,omitempty"`
	IndividualFee *float64            `json:"individualFee,omitempty"`
	GroupFee      *float64            `json:"groupFee,omitempty"`
	AverageRating *float64            `json:"averageRating"`
	Availability  []types.SessionSlot `json:"availability"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// Методы конвертации

// FromDomainProfile конвертирует domain модель в DTO
// averageRating округляется до 2 знаков, nil остается nil
func FromDomainProfile(p *domain.CoachProfile, averageRating *float64) *CoachProfileResponse {
	if p == nil {
		return nil
	}

	resp := &CoachProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Name:          p.Name,
		Sport:         p.Sport,
		Bio:           p.Bio,
		IndividualFee: p.IndividualFee,
		GroupFee:      p.GroupFee,
		Availability:  make([]types.SessionSlot, 0, len(p.Availability)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if averageRating != nil {
		rounded := domain.RoundRating(*averageRating)
		resp.AverageRating = &rounded
	}

	for _, s := range p.Availability {
		resp.Availability = append(resp.Availability, types.SessionSlot{
			Date: types.NewDateString(s.Date),
			Slot: s.Slot,
		})
	}
	return resp
}
