package set_coach_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
)

var now = time.Date(2025, 6, 10, 22, 45, 0, 0, time.UTC)

func day(offset int) time.Time {
	return domain.DateOnly(now).AddDate(0, 0, offset)
}

func newUseCase(t *testing.T) (*UseCase, *memstore.Store, *domain.CoachProfile) {
	t.Helper()

	store := memstore.New()
	coach := store.SeedCoach(&domain.CoachProfile{
		UserID:       42,
		Name:         "Anna",
		Sport:        "tennis",
		Availability: []domain.SessionSlot{{Date: day(1), Slot: "08:00 - 09:00"}},
	})

	uc := NewUseCase(store.Coaches(), domain.DefaultSlotCatalog(), store, memstore.Logger{})
	uc.timeProvider = memstore.Clock{T: now}
	return uc, store, coach
}

func TestUseCase_Execute_Window(t *testing.T) {
	tests := []struct {
		name    string
		dates   []time.Time
		wantErr error
	}{
		{name: "today", dates: []time.Time{now}},
		{name: "today plus seven", dates: []time.Time{day(7)}},
		{name: "yesterday", dates: []time.Time{day(-1)}, wantErr: ErrOutsideWindow},
		{name: "today plus eight", dates: []time.Time{day(8)}, wantErr: ErrOutsideWindow},
		{name: "one stale tuple rejects the batch", dates: []time.Time{day(1), day(2), day(9)}, wantErr: ErrOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store, coach := newUseCase(t)

			slots := make([]domain.SessionSlot, 0, len(tt.dates))
			for _, d := range tt.dates {
				slots = append(slots, domain.SessionSlot{Date: d, Slot: "10:00 - 11:00"})
			}

			resp, err := uc.Execute(context.Background(), &Request{ActorUserID: 42, CoachID: coach.ID, Slots: slots})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				// окно не изменилось
				current, err := store.GetAvailability(context.Background(), coach.ID)
				require.NoError(t, err)
				assert.Equal(t, []domain.SessionSlot{{Date: day(1), Slot: "08:00 - 09:00"}}, current)
				return
			}

			require.NoError(t, err)
			assert.Len(t, resp.Availability, len(tt.dates))
		})
	}
}

func TestUseCase_Execute_OutsideWindowPayload(t *testing.T) {
	uc, _, coach := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		ActorUserID: 42,
		CoachID:     coach.ID,
		Slots: []domain.SessionSlot{
			{Date: day(1), Slot: "10:00 - 11:00"},
			{Date: day(10), Slot: "11:00 - 12:00"},
		},
	})

	var outside *OutsideWindowError
	require.ErrorAs(t, err, &outside)
	assert.Equal(t, []domain.SessionSlot{{Date: day(10), Slot: "11:00 - 12:00"}}, outside.Slots)
}

func TestUseCase_Execute_Modes(t *testing.T) {
	ctx := context.Background()

	t.Run("replace", func(t *testing.T) {
		uc, _, coach := newUseCase(t)

		resp, err := uc.Execute(ctx, &Request{
			ActorUserID: 42,
			CoachID:     coach.ID,
			Slots:       []domain.SessionSlot{{Date: day(2), Slot: "09:00 - 10:00"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.SessionSlot{{Date: day(2), Slot: "09:00 - 10:00"}}, resp.Availability)
	})

	t.Run("append collapses duplicates", func(t *testing.T) {
		uc, _, coach := newUseCase(t)

		resp, err := uc.Execute(ctx, &Request{
			ActorUserID: 42,
			CoachID:     coach.ID,
			Mode:        ModeAppend,
			Slots: []domain.SessionSlot{
				{Date: day(1).Add(5 * time.Hour), Slot: "08:00 - 09:00"},
				{Date: day(2), Slot: "09:00 - 10:00"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.SessionSlot{
			{Date: day(1), Slot: "08:00 - 09:00"},
			{Date: day(2), Slot: "09:00 - 10:00"},
		}, resp.Availability)
	})

	t.Run("replace with empty set clears window", func(t *testing.T) {
		uc, _, coach := newUseCase(t)

		resp, err := uc.Execute(ctx, &Request{ActorUserID: 42, CoachID: coach.ID, Mode: ModeReplace})
		require.NoError(t, err)
		assert.Empty(t, resp.Availability)
	})
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc, _, coach := newUseCase(t)
	ctx := context.Background()
	slots := []domain.SessionSlot{{Date: day(1), Slot: "10:00 - 11:00"}}

	_, err := uc.Execute(ctx, &Request{ActorUserID: 7, CoachID: coach.ID, Slots: slots})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.Execute(ctx, &Request{ActorUserID: 42, CoachID: 999, Slots: slots})
	assert.ErrorIs(t, err, ErrCoachNotFound)

	_, err = uc.Execute(ctx, &Request{ActorUserID: 42, CoachID: coach.ID, Mode: "merge", Slots: slots})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{
		ActorUserID: 42,
		CoachID:     coach.ID,
		Slots:       []domain.SessionSlot{{Date: day(1), Slot: "06:00 - 07:00"}},
	})
	var unknown *UnknownSlotsError
	require.ErrorAs(t, err, &unknown)
	assert.Len(t, unknown.Slots, 1)
}
