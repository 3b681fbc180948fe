package coaches

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches/models"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
	"github.com/m04kA/SMC-SportsBookingService/pkg/ptr"
)

func TestService_CreateProfile(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewService(store.Coaches(), store.Reviews(), memstore.Logger{})

	req := &models.CreateProfileRequest{
		Name:          " Anna ",
		Sport:         "Tennis",
		IndividualFee: ptr.Ptr(40.0),
	}

	created, err := svc.CreateProfile(ctx, 7, domain.RoleCoach, req)
	require.NoError(t, err)
	assert.Equal(t, "Anna", created.Name)
	assert.Equal(t, "tennis", created.Sport)
	assert.Nil(t, created.AverageRating)
	assert.NotNil(t, created.Availability)

	_, err = svc.CreateProfile(ctx, 7, domain.RoleCoach, req)
	assert.ErrorIs(t, err, ErrProfileExists)

	mine, err := svc.GetProfileByUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, created.ID, mine.ID)
}

func TestService_CreateProfile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		req     *models.CreateProfileRequest
		wantErr error
	}{
		{name: "user role", role: domain.RoleUser, req: &models.CreateProfileRequest{Name: "A", Sport: "tennis"}, wantErr: ErrAccessDenied},
		{name: "empty name", role: domain.RoleCoach, req: &models.CreateProfileRequest{Sport: "tennis"}, wantErr: ErrInvalidInput},
		{name: "empty sport", role: domain.RoleCoach, req: &models.CreateProfileRequest{Name: "A", Sport: " "}, wantErr: ErrInvalidInput},
		{
			name:    "negative fee",
			role:    domain.RoleCoach,
			req:     &models.CreateProfileRequest{Name: "A", Sport: "tennis", GroupFee: ptr.Ptr(-5.0)},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			svc := NewService(store.Coaches(), store.Reviews(), memstore.Logger{})

			_, err := svc.CreateProfile(context.Background(), 1, tt.role, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	coach := store.SeedCoach(&domain.CoachProfile{
		UserID: 9,
		Name:   "Boris",
		Sport:  "padel",
		Availability: []domain.SessionSlot{
			domain.NewSessionSlot(day, "10:00 - 11:00"),
		},
	})
	svc := NewService(store.Coaches(), store.Reviews(), memstore.Logger{})

	for _, rating := range []int{5, 4} {
		_, err := store.CreateReview(ctx, &domain.Review{UserID: 1, CoachID: coach.ID, Rating: rating})
		require.NoError(t, err)
	}

	profile, err := svc.GetProfile(ctx, coach.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.AverageRating)
	assert.Equal(t, 4.5, *profile.AverageRating)
	require.Len(t, profile.Availability, 1)
	assert.Equal(t, "2025-06-03", profile.Availability[0].Date.String())
	assert.Equal(t, "10:00 - 11:00", profile.Availability[0].Slot)

	_, err = svc.GetProfile(ctx, 404)
	assert.ErrorIs(t, err, ErrCoachNotFound)
}
