package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
)

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	store := memstore.New()
	facility := store.SeedFacility("Central", []string{"tennis", "padel"}, 20, 2)
	court := facility.Courts[0].ID

	for _, b := range []*domain.FacilityBooking{
		{UserID: 1, CourtID: court, Sport: "tennis", BookingDate: date, Slots: []string{"10:00 - 11:00", "08:00 - 09:00"}},
		{UserID: 2, CourtID: court, Sport: "tennis", BookingDate: date, Slots: []string{"17:00 - 18:00"}},
		{UserID: 3, CourtID: court, Sport: "padel", BookingDate: date, Slots: []string{"09:00 - 10:00"}},
		{UserID: 4, CourtID: facility.Courts[1].ID, Sport: "tennis", BookingDate: date, Slots: []string{"09:00 - 10:00"}},
	} {
		_, err := store.CreateFacilityBooking(ctx, b)
		require.NoError(t, err)
	}

	uc := NewUseCase(store.Bookings(), store.Facilities(), domain.DefaultSlotCatalog(), memstore.Logger{})

	tests := []struct {
		name         string
		req          *Request
		wantSlots    []string
		wantReserved []string
		wantErr      error
	}{
		{
			name: "reserved slots are excluded",
			req:  &Request{CourtID: court, Sport: "Tennis", Date: date.Add(15 * time.Hour)},
			wantSlots: []string{
				"09:00 - 10:00", "11:00 - 12:00", "12:00 - 13:00", "13:00 - 14:00",
				"14:00 - 15:00", "15:00 - 16:00", "16:00 - 17:00",
			},
			wantReserved: []string{"08:00 - 09:00", "10:00 - 11:00", "17:00 - 18:00"},
		},
		{
			name:         "other day is free",
			req:          &Request{CourtID: court, Sport: "tennis", Date: date.AddDate(0, 0, 1)},
			wantSlots:    domain.DefaultSlots,
			wantReserved: []string{},
		},
		{
			name:    "court not found",
			req:     &Request{CourtID: 404, Sport: "tennis", Date: date},
			wantErr: ErrCourtNotFound,
		},
		{
			name:    "sport not offered",
			req:     &Request{CourtID: court, Sport: "squash", Date: date},
			wantErr: ErrSportNotOffered,
		},
		{
			name:    "missing date",
			req:     &Request{CourtID: court, Sport: "tennis"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlots, resp.Slots)
			assert.Equal(t, tt.wantReserved, resp.Reserved)
			assert.Equal(t, domain.DateOnly(tt.req.Date), resp.Date)
		})
	}
}
