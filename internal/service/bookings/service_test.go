package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
)

type fixture struct {
	store     *memstore.Store
	artifacts *memstore.Artifacts
	svc       *Service
	court     int64
	coach     *domain.CoachProfile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	facility := store.SeedFacility("Central", []string{"tennis"}, 10, 1)
	coach := store.SeedCoach(&domain.CoachProfile{UserID: 500, Name: "Anna", Sport: "tennis"})
	artifacts := memstore.NewArtifacts(store)

	return &fixture{
		store:     store,
		artifacts: artifacts,
		svc: NewService(
			store.Bookings(),
			store.SessionBookingsRepo(),
			store.Coaches(),
			artifacts,
			memstore.Logger{},
		),
		court: facility.Courts[0].ID,
		coach: coach,
	}
}

func (f *fixture) facilityBooking(t *testing.T, userID int64, slots ...string) *domain.FacilityBooking {
	t.Helper()

	b, err := f.store.CreateFacilityBooking(context.Background(), &domain.FacilityBooking{
		UserID:          userID,
		CourtID:         f.court,
		Sport:           "tennis",
		BookingDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Slots:           slots,
		UnitPrice:       10,
		TotalPrice:      domain.CalculateTotal(10, len(slots)),
		PaymentProofURL: "https://receipts.local/1",
	})
	require.NoError(t, err)
	return b
}

func (f *fixture) sessionBooking(t *testing.T, userID int64) *domain.SessionBooking {
	t.Helper()

	b, err := f.store.CreateSessionBooking(context.Background(), &domain.SessionBooking{
		RequestID: 900 + userID,
		UserID:    userID,
		CoachID:   f.coach.ID,
		CoachName: f.coach.Name,
		Sport:     "tennis",
		Kind:      domain.SessionIndividual,
		Fee:       40,
		Slots:     []domain.SessionSlot{domain.NewSessionSlot(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "09:00 - 10:00")},
	})
	require.NoError(t, err)
	return b
}

func TestService_GetFacilityBooking_Access(t *testing.T) {
	f := newFixture(t)
	booking := f.facilityBooking(t, 1, "08:00 - 09:00")

	tests := []struct {
		name    string
		userID  int64
		role    domain.Role
		wantErr error
	}{
		{name: "owner", userID: 1, role: domain.RoleUser},
		{name: "admin", userID: 2, role: domain.RoleAdmin},
		{name: "guard", userID: 3, role: domain.RoleGuard},
		{name: "other user", userID: 4, role: domain.RoleUser, wantErr: ErrAccessDenied},
		{name: "coach is not owner", userID: 500, role: domain.RoleCoach, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.GetFacilityBooking(context.Background(), booking.ID, tt.userID, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.ID, resp.ID)
			assert.Equal(t, "2025-06-01", resp.Date.String())
			assert.True(t, resp.VerificationPending)
		})
	}

	_, err := f.svc.GetFacilityBooking(context.Background(), 12345, 1, domain.RoleUser)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings(t *testing.T) {
	f := newFixture(t)
	first := f.facilityBooking(t, 1, "08:00 - 09:00")
	second := f.facilityBooking(t, 1, "09:00 - 10:00")
	f.facilityBooking(t, 2, "10:00 - 11:00")

	resp, err := f.svc.GetUserBookings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, second.ID, resp.Bookings[0].ID)
	assert.Equal(t, first.ID, resp.Bookings[1].ID)

	empty, err := f.svc.GetUserBookings(context.Background(), 77)
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)
}

func TestService_RetryFacilityVerification(t *testing.T) {
	f := newFixture(t)
	booking := f.facilityBooking(t, 1, "08:00 - 09:00")

	_, err := f.svc.RetryFacilityVerification(context.Background(), booking.ID, 2, domain.RoleUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	f.artifacts.Fail = true
	_, err = f.svc.RetryFacilityVerification(context.Background(), booking.ID, 1, domain.RoleUser)
	assert.ErrorIs(t, err, ErrVerificationUnavailable)

	f.artifacts.Fail = false
	resp, err := f.svc.RetryFacilityVerification(context.Background(), booking.ID, 1, domain.RoleUser)
	require.NoError(t, err)
	assert.False(t, resp.VerificationPending)
	require.NotNil(t, resp.VerificationCode)
	code := *resp.VerificationCode

	// Повторный вызов не выпускает новый код
	again, err := f.svc.RetryFacilityVerification(context.Background(), booking.ID, 1, domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, code, *again.VerificationCode)
}

func TestService_GetSessionBooking_Access(t *testing.T) {
	f := newFixture(t)
	booking := f.sessionBooking(t, 1)

	tests := []struct {
		name    string
		userID  int64
		role    domain.Role
		wantErr error
	}{
		{name: "client", userID: 1, role: domain.RoleUser},
		{name: "coach", userID: f.coach.UserID, role: domain.RoleCoach},
		{name: "guard", userID: 3, role: domain.RoleGuard},
		{name: "admin", userID: 4, role: domain.RoleAdmin},
		{name: "other coach", userID: 501, role: domain.RoleCoach, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.GetSessionBooking(context.Background(), booking.ID, tt.userID, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Anna", resp.CoachName)
			require.Len(t, resp.Slots, 1)
			assert.Equal(t, "2025-06-02", resp.Slots[0].Date.String())
		})
	}
}

func TestService_RetrySessionVerification(t *testing.T) {
	f := newFixture(t)
	booking := f.sessionBooking(t, 1)

	_, err := f.svc.RetrySessionVerification(context.Background(), booking.ID, 3, domain.RoleGuard)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := f.svc.RetrySessionVerification(context.Background(), booking.ID, f.coach.UserID, domain.RoleCoach)
	require.NoError(t, err)
	assert.False(t, resp.VerificationPending)
	assert.NotNil(t, resp.VerificationURL)

	_, err = f.svc.RetrySessionVerification(context.Background(), 4242, 1, domain.RoleUser)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
