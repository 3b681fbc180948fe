package domain

import (
	"strings"
	"time"
)

// Facility represents a sports venue with its courts
type Facility struct {
	ID           int64
	Name         string
	Location     string
	Sports       []string // виды спорта, доступные на объекте (нормализованные)
	PricePerSlot float64  // цена одного слота на любом корте объекта
	Courts       []Court
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OffersSport checks that the facility offers the sport
func (f *Facility) OffersSport(sport string) bool {
	sport = NormalizeSport(sport)
	for _, s := range f.Sports {
		if s == sport {
			return true
		}
	}
	return false
}

// Court represents a single court inside a facility
type Court struct {
	ID         int64
	FacilityID int64
	Number     int
	Name       string
	CreatedAt  time.Time
}

// CourtWithFacility is a court joined with its facility data
type CourtWithFacility struct {
	Court
	FacilityName string
	Sports       []string
	PricePerSlot float64
}

// OffersSport checks that the court's facility offers the sport
func (c *CourtWithFacility) OffersSport(sport string) bool {
	sport = NormalizeSport(sport)
	for _, s := range c.Sports {
		if s == sport {
			return true
		}
	}
	return false
}

// NormalizeSport returns the canonical form of a sport name
func NormalizeSport(sport string) string {
	return strings.ToLower(strings.TrimSpace(sport))
}
