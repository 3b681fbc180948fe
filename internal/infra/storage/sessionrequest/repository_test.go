package sessionrequest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

func TestRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		courtID  *int64
		sql      string
		args     []driver.Value
		affected int64
		wantErr  error
	}{
		{
			name:     "moves pending to rejected",
			sql:      `^UPDATE session_requests SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3$`,
			args:     []driver.Value{"rejected", int64(4), "pending"},
			affected: 1,
		},
		{
			name:     "accept records court",
			courtID:  func() *int64 { v := int64(10); return &v }(),
			sql:      `^UPDATE session_requests SET status = \$1, updated_at = NOW\(\), court_id = \$2 WHERE id = \$3 AND status = \$4$`,
			args:     []driver.Value{"accepted", int64(10), int64(4), "pending"},
			affected: 1,
		},
		{
			name:     "request already left the expected status",
			sql:      `^UPDATE session_requests SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3$`,
			args:     []driver.Value{"rejected", int64(4), "pending"},
			affected: 0,
			wantErr:  ErrStatusChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewRepository(db)

			to := domain.RequestRejected
			if tt.courtID != nil {
				to = domain.RequestAccepted
			}

			mock.ExpectExec(tt.sql).
				WithArgs(tt.args...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdateStatus(context.Background(), 4, domain.RequestPending, to, tt.courtID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AttachPaymentProof(t *testing.T) {
	const updateSQL = `^UPDATE session_requests SET payment_proof_url = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status <> \$3$`

	t.Run("attaches to request that is not booked", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectExec(updateSQL).
			WithArgs("https://pay/4", int64(4), "booked").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewRepository(db).AttachPaymentProof(context.Background(), 4, "https://pay/4"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booked request is left untouched", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectExec(updateSQL).
			WithArgs("https://pay/4", int64(4), "booked").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewRepository(db).AttachPaymentProof(context.Background(), 4, "https://pay/4")
		assert.ErrorIs(t, err, ErrStatusChanged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(requestColumns).AddRow(
			int64(4), int64(1), int64(2), "Anna", "tennis", "individual",
			[]byte(`[{"date":"2026-11-02","slot":"10:00-11:00"}]`), "pending", nil, nil, now, now,
		)
	}

	t.Run("plain read", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(`^SELECT .+ FROM session_requests WHERE id = \$1$`).
			WithArgs(int64(4)).
			WillReturnRows(row())

		request, err := NewRepository(db).GetByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestPending, request.Status)
		assert.Nil(t, request.CourtID)
		require.Len(t, request.Slots, 1)
		assert.Equal(t, "10:00-11:00", request.Slots[0].Slot)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("locks row inside transaction", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`^SELECT .+ FROM session_requests WHERE id = \$1 FOR UPDATE$`).
			WithArgs(int64(4)).
			WillReturnRows(row())
		mock.ExpectCommit()

		err := txmanager.NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
			_, err := repo.GetByID(ctx, 4)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(`^SELECT .+ FROM session_requests WHERE id = \$1$`).
			WillReturnRows(sqlmock.NewRows(requestColumns))

		_, err := NewRepository(db).GetByID(context.Background(), 4)
		assert.ErrorIs(t, err, ErrRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
