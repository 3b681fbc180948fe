package reviews

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/reviews/models"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
)

func TestService_AverageRating(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	coach := store.SeedCoach(&domain.CoachProfile{UserID: 10, Name: "Boris", Sport: "tennis"})
	svc := NewService(store.Reviews(), memstore.Logger{})

	avg, err := svc.AverageRating(ctx, coach.ID)
	require.NoError(t, err)
	assert.Nil(t, avg, "no reviews must be distinguishable from zero")

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.Create(ctx, 1, coach.ID, &models.CreateReviewRequest{Rating: rating})
		require.NoError(t, err)
	}

	avg, err = svc.AverageRating(ctx, coach.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 13.0/3.0, *avg, 1e-9)

	list, err := svc.List(ctx, coach.ID)
	require.NoError(t, err)
	assert.Len(t, list.Reviews, 3)
	require.NotNil(t, list.AverageRating)
	assert.Equal(t, 4.33, *list.AverageRating)
}

func TestService_Create_Validation(t *testing.T) {
	store := memstore.New()
	coach := store.SeedCoach(&domain.CoachProfile{UserID: 10, Name: "Boris", Sport: "tennis"})

	tests := []struct {
		name    string
		coachID int64
		req     *models.CreateReviewRequest
		wantErr error
	}{
		{name: "rating zero", coachID: coach.ID, req: &models.CreateReviewRequest{Rating: 0}, wantErr: ErrInvalidRating},
		{name: "rating six", coachID: coach.ID, req: &models.CreateReviewRequest{Rating: 6}, wantErr: ErrInvalidRating},
		{
			name:    "comment too long",
			coachID: coach.ID,
			req:     &models.CreateReviewRequest{Rating: 3, Comment: strings.Repeat("a", domain.MaxCommentLength+1)},
			wantErr: ErrInvalidInput,
		},
		{name: "unknown coach", coachID: 999, req: &models.CreateReviewRequest{Rating: 3}, wantErr: ErrCoachNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(store.Reviews(), memstore.Logger{})

			_, err := svc.Create(context.Background(), 1, tt.coachID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_List_Empty(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Reviews(), memstore.Logger{})

	list, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, list.AverageRating)
	assert.NotNil(t, list.Reviews)
	assert.Empty(t, list.Reviews)
}
