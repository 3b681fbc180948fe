package coach

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

func TestRepository_Create_ProfileExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`^INSERT INTO coach_profiles `).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = NewRepository(db).Create(context.Background(), &domain.CoachProfile{UserID: 1, Name: "Anna", Sport: "tennis"})
	assert.ErrorIs(t, err, ErrProfileExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`^DELETE FROM coach_availability WHERE coach_id = \$1$`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`^INSERT INTO coach_availability \(coach_id,available_date,slot\) VALUES \(\$1,\$2,\$3\),\(\$4,\$5,\$6\) ON CONFLICT \(coach_id, available_date, slot\) DO NOTHING$`).
		WithArgs(int64(2), "2026-11-02", "10:00-11:00", int64(2), "2026-11-02", "11:00-12:00").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = NewRepository(db).ReplaceAvailability(context.Background(), 2, []domain.SessionSlot{
		{Date: date, Slot: "10:00-11:00"},
		{Date: date, Slot: "11:00-12:00"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`^SELECT .+ FROM coach_profiles WHERE id = \$1 FOR UPDATE$`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(int64(2), int64(1), "Anna", "tennis", nil, 1500.0, nil, now, now))
	mock.ExpectQuery(`^SELECT available_date, slot FROM coach_availability WHERE coach_id = \$1 ORDER BY available_date ASC, slot ASC$`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"available_date", "slot"}).AddRow(date, "10:00-11:00"))
	mock.ExpectCommit()

	repo := NewRepository(db)
	var profile *domain.CoachProfile
	err = txmanager.NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		var err error
		profile, err = repo.GetByID(ctx, 2)
		return err
	})
	require.NoError(t, err)

	assert.Nil(t, profile.Bio)
	require.NotNil(t, profile.IndividualFee)
	assert.Equal(t, 1500.0, *profile.IndividualFee)
	assert.Nil(t, profile.GroupFee)
	require.Len(t, profile.Availability, 1)
	assert.Equal(t, "10:00-11:00", profile.Availability[0].Slot)
	assert.NoError(t, mock.ExpectationsWereMet())
}
