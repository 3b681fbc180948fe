package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

func TestIsWithinAvailabilityWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 21, 45, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "today", date: today, want: true},
		{name: "today later in the day", date: today.Add(23 * time.Hour), want: true},
		{name: "yesterday", date: today.AddDate(0, 0, -1), want: false},
		{name: "today plus seven", date: today.AddDate(0, 0, 7), want: true},
		{name: "today plus eight", date: today.AddDate(0, 0, 8), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsWithinAvailabilityWindow(tt.date, now))
		})
	}
}

func TestOutsideAvailabilityWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	slots := []domain.SessionSlot{
		domain.NewSessionSlot(now.AddDate(0, 0, 1), "10:00 - 11:00"),
		domain.NewSessionSlot(now.AddDate(0, 0, -2), "10:00 - 11:00"),
		domain.NewSessionSlot(now.AddDate(0, 0, 9), "11:00 - 12:00"),
	}

	outside := domain.OutsideAvailabilityWindow(slots, now)
	assert.Equal(t, []domain.SessionSlot{slots[1], slots[2]}, outside)
	assert.Empty(t, domain.OutsideAvailabilityWindow(slots[:1], now))
}
