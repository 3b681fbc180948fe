package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func bookingRow(id int64, code string) *sqlmock.Rows {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	var verificationCode, verificationURL interface{}
	if code != "" {
		verificationCode = code
		verificationURL = "https://qr.local/" + code
	}

	return sqlmock.NewRows(bookingColumns).
		AddRow(id, int64(1), int64(10), "tennis", date, "{10:00-11:00}", 100.0, 100.0, "https://pay/1",
			verificationCode, verificationURL, now, now)
}

func TestRepository_GetReservedSlots(t *testing.T) {
	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	t.Run("outside transaction reads without lock", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`^SELECT slot FROM facility_booking_slots WHERE .+ = \$3$`).
			WithArgs("2026-11-02", int64(10), "tennis").
			WillReturnRows(sqlmock.NewRows([]string{"slot"}).AddRow("10:00-11:00").AddRow("11:00-12:00"))

		slots, err := repo.GetReservedSlots(context.Background(), 10, date, "tennis")
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, slots)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inside transaction locks rows", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)
		txMgr := txmanager.NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`^SELECT slot FROM facility_booking_slots WHERE .+ FOR UPDATE$`).
			WithArgs("2026-11-02", int64(10), "tennis").
			WillReturnRows(sqlmock.NewRows([]string{"slot"}))
		mock.ExpectCommit()

		err := txMgr.DoSerializable(context.Background(), func(ctx context.Context) error {
			slots, err := repo.GetReservedSlots(ctx, 10, date, "tennis")
			if err != nil {
				return err
			}
			assert.Empty(t, slots)
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Create(t *testing.T) {
	newBooking := func() *domain.FacilityBooking {
		return &domain.FacilityBooking{
			UserID:          1,
			CourtID:         10,
			Sport:           "tennis",
			BookingDate:     time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
			Slots:           []string{"10:00-11:00", "11:00-12:00"},
			UnitPrice:       100,
			TotalPrice:      200,
			PaymentProofURL: "https://pay/1",
		}
	}
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("inserts booking and one row per slot", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`^INSERT INTO facility_bookings .+ RETURNING id, created_at, updated_at$`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
		mock.ExpectExec(`^INSERT INTO facility_booking_slots \(booking_id,court_id,booking_date,sport,slot\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\)$`).
			WithArgs(int64(5), int64(10), "2026-11-02", "tennis", "10:00-11:00",
				int64(5), int64(10), "2026-11-02", "tennis", "11:00-12:00").
			WillReturnResult(sqlmock.NewResult(0, 2))

		created, err := repo.Create(context.Background(), newBooking())
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation on slots means slot already reserved", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`^INSERT INTO facility_bookings `).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
		mock.ExpectExec(`^INSERT INTO facility_booking_slots `).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "facility_booking_slots_unique"})

		_, err := repo.Create(context.Background(), newBooking())
		assert.ErrorIs(t, err, ErrSlotAlreadyReserved)
		assert.NotErrorIs(t, err, ErrExecQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other insert errors are exec errors", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`^INSERT INTO facility_bookings `).
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Create(context.Background(), newBooking())
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NotErrorIs(t, err, ErrSlotAlreadyReserved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AttachVerification(t *testing.T) {
	const updateSQL = `^UPDATE facility_bookings SET verification_code = \$1, verification_url = \$2, updated_at = NOW\(\) WHERE id = \$3 AND verification_code IS NULL$`

	t.Run("attaches to booking without code", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectExec(updateSQL).
			WithArgs("F-1", "https://qr.local/F-1", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.AttachVerification(context.Background(), 5, "F-1", "https://qr.local/F-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing code is not overwritten", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectExec(updateSQL).
			WithArgs("F-2", "https://qr.local/F-2", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`^SELECT .+ FROM facility_bookings WHERE id = \$1$`).
			WithArgs(int64(5)).
			WillReturnRows(bookingRow(5, "F-1"))

		err := repo.AttachVerification(context.Background(), 5, "F-2", "https://qr.local/F-2")
		assert.ErrorIs(t, err, ErrVerificationAlreadyAttached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectExec(updateSQL).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`^SELECT .+ FROM facility_bookings WHERE id = \$1$`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		err := repo.AttachVerification(context.Background(), 5, "F-2", "https://qr.local/F-2")
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("code collision", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectExec(updateSQL).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.AttachVerification(context.Background(), 5, "F-1", "https://qr.local/F-1")
		assert.ErrorIs(t, err, ErrVerificationCodeTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByVerificationCode(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`^SELECT .+ FROM facility_bookings WHERE verification_code = \$1$`).
		WithArgs("F-1").
		WillReturnRows(bookingRow(5, "F-1"))

	booking, err := repo.GetByVerificationCode(context.Background(), "F-1")
	require.NoError(t, err)

	assert.Equal(t, int64(5), booking.ID)
	assert.Equal(t, []string{"10:00-11:00"}, booking.Slots)
	require.NotNil(t, booking.VerificationCode)
	assert.Equal(t, "F-1", *booking.VerificationCode)
	assert.False(t, booking.VerificationPending())
	assert.NoError(t, mock.ExpectationsWereMet())
}
