package finalize_session_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
	"github.com/m04kA/SMC-SportsBookingService/pkg/mq"
	"github.com/m04kA/SMC-SportsBookingService/pkg/ptr"
)

const (
	requesterID = 7
	coachUserID = 42
)

type fixture struct {
	store     *memstore.Store
	artifacts *memstore.Artifacts
	publisher *memstore.Publisher
	metrics   *memstore.Metrics
	coach     *domain.CoachProfile
	uc        *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	f := &fixture{
		store:     store,
		artifacts: memstore.NewArtifacts(store),
		publisher: &memstore.Publisher{},
		metrics:   memstore.NewMetrics(),
		coach: store.SeedCoach(&domain.CoachProfile{
			UserID:        coachUserID,
			Name:          "Anna",
			Sport:         "tennis",
			IndividualFee: ptr.Ptr(50.0),
		}),
	}
	f.uc = NewUseCase(
		store.Requests(),
		store.Coaches(),
		store.SessionBookingsRepo(),
		f.artifacts,
		f.publisher,
		f.metrics,
		store,
		memstore.Logger{},
	)
	return f
}

func (f *fixture) seedRequest(t *testing.T, status domain.SessionRequestStatus, kind domain.SessionKind, proof *string) *domain.SessionRequest {
	t.Helper()

	req, err := f.store.CreateRequest(context.Background(), &domain.SessionRequest{
		UserID:          requesterID,
		CoachID:         f.coach.ID,
		Sport:           "tennis",
		Kind:            kind,
		Slots:           []domain.SessionSlot{{Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), Slot: "10:00 - 11:00"}},
		Status:          status,
		CoachName:       f.coach.Name,
		PaymentProofURL: proof,
	})
	require.NoError(t, err)
	return req
}

func TestUseCase_Execute_MissingReceiptThenBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.seedRequest(t, domain.RequestAccepted, domain.SessionIndividual, nil)

	// без чека
	_, err := f.uc.Execute(ctx, &Request{ActorUserID: requesterID, RequestID: req.ID})
	require.ErrorIs(t, err, ErrPreconditionFailed)
	assert.ErrorIs(t, err, ErrMissingReceipt)
	assert.Equal(t, "missing_receipt", PreconditionReason(err))
	assert.Empty(t, f.store.SessionBookings())

	// чек прикреплен
	require.NoError(t, f.store.AttachPaymentProof(ctx, req.ID, "https://receipts/1.png"))

	resp, err := f.uc.Execute(ctx, &Request{ActorUserID: requesterID, RequestID: req.ID})
	require.NoError(t, err)
	assert.Equal(t, 50.0, resp.Fee)
	assert.Equal(t, "Anna", resp.CoachName)
	assert.False(t, resp.VerificationPending)

	stored, err := f.store.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestBooked, stored.Status)
	assert.Len(t, f.store.SessionBookings(), 1)

	// повторное оформление
	_, err = f.uc.Execute(ctx, &Request{ActorUserID: requesterID, RequestID: req.ID})
	require.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Equal(t, "not_accepted", PreconditionReason(err))
	assert.Len(t, f.store.SessionBookings(), 1)

	assert.Equal(t, []string{mq.EventSessionBookingCreated}, f.publisher.Keys())
	assert.Equal(t, 1, f.metrics.BookingsCreated["session"])
}

func TestUseCase_Execute_Preconditions(t *testing.T) {
	proof := ptr.Ptr("https://receipts/1.png")

	tests := []struct {
		name       string
		status     domain.SessionRequestStatus
		kind       domain.SessionKind
		proof      *string
		actor      int64
		wantErr    error
		wantReason string
	}{
		{name: "pending", status: domain.RequestPending, kind: domain.SessionIndividual, proof: proof, actor: requesterID, wantErr: ErrPreconditionFailed, wantReason: "not_accepted"},
		{name: "rejected", status: domain.RequestRejected, kind: domain.SessionIndividual, proof: proof, actor: requesterID, wantErr: ErrPreconditionFailed, wantReason: "not_accepted"},
		{name: "no group fee", status: domain.RequestAccepted, kind: domain.SessionGroup, proof: proof, actor: requesterID, wantErr: ErrPreconditionFailed, wantReason: "missing_price"},
		{name: "status is checked before receipt", status: domain.RequestPending, kind: domain.SessionIndividual, actor: requesterID, wantErr: ErrPreconditionFailed, wantReason: "not_accepted"},
		{name: "stranger", status: domain.RequestAccepted, kind: domain.SessionIndividual, proof: proof, actor: 100, wantErr: ErrForbidden},
		{name: "coach can finalize", status: domain.RequestAccepted, kind: domain.SessionIndividual, proof: proof, actor: coachUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := f.seedRequest(t, tt.status, tt.kind, tt.proof)

			_, err := f.uc.Execute(context.Background(), &Request{ActorUserID: tt.actor, RequestID: req.ID})
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, f.store.SessionBookings(), 1)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantReason, PreconditionReason(err))
			assert.Empty(t, f.store.SessionBookings())

			stored, err := f.store.GetRequest(context.Background(), req.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.status, stored.Status)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{ActorUserID: requesterID, RequestID: 404})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUseCase_Execute_ArtifactFailure(t *testing.T) {
	f := newFixture(t)
	f.artifacts.Fail = true
	ctx := context.Background()
	req := f.seedRequest(t, domain.RequestAccepted, domain.SessionIndividual, ptr.Ptr("https://receipts/1.png"))

	resp, err := f.uc.Execute(ctx, &Request{ActorUserID: requesterID, RequestID: req.ID})
	require.NoError(t, err)
	assert.True(t, resp.VerificationPending)

	stored, err := f.store.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestBooked, stored.Status)

	f.artifacts.Fail = false
	_, err = f.artifacts.AttachToSessionBooking(ctx, resp.ID)
	require.NoError(t, err)

	booking, err := f.store.GetSessionBooking(ctx, resp.ID)
	require.NoError(t, err)
	assert.False(t, booking.VerificationPending())
}

func actorFor(i int) int64 {
	if i%2 == 0 {
		return requesterID
	}
	return coachUserID
}

func TestUseCase_Execute_ConcurrentFinalize(t *testing.T) {
	f := newFixture(t)
	req := f.seedRequest(t, domain.RequestAccepted, domain.SessionIndividual, ptr.Ptr("https://receipts/1.png"))

	const workers = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		success  int
		rejected int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(actor int64) {
			defer wg.Done()

			_, err := f.uc.Execute(context.Background(), &Request{ActorUserID: actor, RequestID: req.ID})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, ErrNotAccepted):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(actorFor(i))
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, rejected)
	assert.Len(t, f.store.SessionBookings(), 1)
}
