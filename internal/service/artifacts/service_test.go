package artifacts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
	"github.com/m04kA/SMC-SportsBookingService/internal/testutil/memstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type clientMock struct {
	calls int
	err   error
}

func (c *clientMock) Generate(_ context.Context, kind verification.Kind, id int64) (*verification.Artifact, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	code := fmt.Sprintf("%s-%d-%d", kind, id, c.calls)
	return &verification.Artifact{Code: code, URL: "https://qr/" + code}, nil
}

type repoMock struct {
	errs     []error
	attached map[int64]string
}

func (r *repoMock) AttachVerification(_ context.Context, id int64, code, _ string) error {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		if err != nil {
			return err
		}
	}
	if r.attached == nil {
		r.attached = map[int64]string{}
	}
	r.attached[id] = code
	return nil
}

func (r *repoMock) stored(id int64) (*string, *string, bool) {
	code, ok := r.attached[id]
	if !ok {
		return nil, nil, false
	}
	url := "https://qr/" + code
	return &code, &url, true
}

type facilityRepoMock struct {
	repoMock
}

func (r *facilityRepoMock) GetByID(_ context.Context, id int64) (*domain.FacilityBooking, error) {
	code, url, ok := r.stored(id)
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &domain.FacilityBooking{ID: id, VerificationCode: code, VerificationURL: url}, nil
}

type sessionRepoMock struct {
	repoMock
}

func (r *sessionRepoMock) GetByID(_ context.Context, id int64) (*domain.SessionBooking, error) {
	code, url, ok := r.stored(id)
	if !ok {
		return nil, sessionBookingRepo.ErrBookingNotFound
	}
	return &domain.SessionBooking{ID: id, VerificationCode: code, VerificationURL: url}, nil
}

type metricsMock struct {
	failures []string
}

func (m *metricsMock) IncArtifactFailure(kind string) {
	m.failures = append(m.failures, kind)
}

func TestService_AttachToFacilityBooking(t *testing.T) {
	t.Run("attaches generated code", func(t *testing.T) {
		client := &clientMock{}
		repo := &facilityRepoMock{}
		m := &metricsMock{}
		s := NewService(client, repo, &sessionRepoMock{}, m, nopLogger{})

		artifact, err := s.AttachToFacilityBooking(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, "facility-7-1", artifact.Code)
		assert.Equal(t, "facility-7-1", repo.attached[7])
		assert.Empty(t, m.failures)
	})

	t.Run("regenerates on code collision", func(t *testing.T) {
		client := &clientMock{}
		repo := &facilityRepoMock{repoMock{errs: []error{bookingRepo.ErrVerificationCodeTaken}}}
		s := NewService(client, repo, &sessionRepoMock{}, &metricsMock{}, nopLogger{})

		artifact, err := s.AttachToFacilityBooking(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, 2, client.calls)
		assert.Equal(t, "facility-7-2", artifact.Code)
	})

	t.Run("already attached returns stored code", func(t *testing.T) {
		client := &clientMock{}
		repo := &facilityRepoMock{repoMock{
			errs:     []error{bookingRepo.ErrVerificationAlreadyAttached},
			attached: map[int64]string{7: "facility-7-0"},
		}}
		m := &metricsMock{}
		s := NewService(client, repo, &sessionRepoMock{}, m, nopLogger{})

		artifact, err := s.AttachToFacilityBooking(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "facility-7-0", artifact.Code)
		assert.Equal(t, "https://qr/facility-7-0", artifact.URL)
		assert.Equal(t, "facility-7-0", repo.attached[7])
		assert.Empty(t, m.failures)
	})

	t.Run("service unavailable is not retried", func(t *testing.T) {
		client := &clientMock{err: fmt.Errorf("%w: connection refused", verification.ErrUnavailable)}
		repo := &facilityRepoMock{}
		m := &metricsMock{}
		s := NewService(client, repo, &sessionRepoMock{}, m, nopLogger{})

		_, err := s.AttachToFacilityBooking(context.Background(), 7)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.ErrorIs(t, err, verification.ErrUnavailable)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, []string{"facility"}, m.failures)
		assert.Empty(t, repo.attached)
	})

	t.Run("booking disappeared", func(t *testing.T) {
		repo := &facilityRepoMock{repoMock{errs: []error{bookingRepo.ErrBookingNotFound}}}
		s := NewService(&clientMock{}, repo, &sessionRepoMock{}, &metricsMock{}, nopLogger{})

		_, err := s.AttachToFacilityBooking(context.Background(), 7)
		assert.True(t, errors.Is(err, ErrBookingNotFound))
	})
}

func TestService_AttachToSessionBooking(t *testing.T) {
	t.Run("attaches generated code", func(t *testing.T) {
		sessions := &sessionRepoMock{}
		s := NewService(&clientMock{}, &facilityRepoMock{}, sessions, &metricsMock{}, nopLogger{})

		artifact, err := s.AttachToSessionBooking(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "session-3-1", artifact.Code)
		assert.Equal(t, "session-3-1", sessions.attached[3])
	})

	t.Run("already attached returns stored code", func(t *testing.T) {
		sessions := &sessionRepoMock{repoMock{
			errs:     []error{sessionBookingRepo.ErrVerificationAlreadyAttached},
			attached: map[int64]string{3: "session-3-0"},
		}}
		s := NewService(&clientMock{}, &facilityRepoMock{}, sessions, &metricsMock{}, nopLogger{})

		artifact, err := s.AttachToSessionBooking(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "session-3-0", artifact.Code)
	})
}

// Повторный выпуск кода не должен перезаписывать уже выданный пользователю код
func TestService_AttachTwiceKeepsFirstCode(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	facility := store.SeedFacility("Arena", []string{"tennis"}, 100, 1)
	booking, err := store.CreateFacilityBooking(ctx, &domain.FacilityBooking{
		UserID:      1,
		CourtID:     facility.Courts[0].ID,
		Sport:       "tennis",
		BookingDate: time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Slots:       []string{"10:00-11:00"},
		UnitPrice:   100,
		TotalPrice:  100,
	})
	require.NoError(t, err)

	s := NewService(&clientMock{}, store.Bookings(), store.SessionBookingsRepo(), &metricsMock{}, nopLogger{})

	first, err := s.AttachToFacilityBooking(ctx, booking.ID)
	require.NoError(t, err)

	second, err := s.AttachToFacilityBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.URL, second.URL)

	found, err := store.Bookings().GetByVerificationCode(ctx, first.Code)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.ID)
}
