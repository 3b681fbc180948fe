package models

import (
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// Request модели

// CreateFacilityRequest запрос на создание объекта
type CreateFacilityRequest struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Sports       []string `json:"sports"`
	PricePerSlot float64  `json:"pricePerSlot"`
}

// AddCourtRequest запрос на добавление корта
type AddCourtRequest struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Response модели

// CourtResponse корт объекта
type CourtResponse struct {
	ID         int64     `json:"id"`
	FacilityID int64     `json:"facilityId"`
	Number     int       `json:"number"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FacilityResponse объект с кортами
type FacilityResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Sports       []string        `json:"sports"`
	PricePerSlot float64         `json:"pricePerSlot"`
	Courts       []CourtResponse `json:"courts"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// FacilityListResponse список объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// Методы конвертации

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:         c.ID,
		FacilityID: c.FacilityID,
		Number:     c.Number,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
	}
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	resp := &FacilityResponse{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		Sports:       f.Sports,
		PricePerSlot: f.PricePerSlot,
		Courts:       make([]CourtResponse, 0, len(f.Courts)),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
	if resp.Sports == nil {
		resp.Sports = []string{}
	}
	for i := range f.Courts {
		resp.Courts = append(resp.Courts, *FromDomainCourt(&f.Courts[i]))
	}
	return resp
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, 0, len(facilities)),
	}
	for _, f := range facilities {
		if item := FromDomainFacility(f); item != nil {
			resp.Facilities = append(resp.Facilities, *item)
		}
	}
	return resp
}
