package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/reperrors"
	"github.com/m04kA/SMC-SportsBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

const (
	bookingsTable = "facility_bookings"
	slotsTable    = "facility_booking_slots"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"court_id",
	"sport",
	"booking_date",
	"slots",
	"unit_price",
	"total_price",
	"payment_proof_url",
	"verification_code",
	"verification_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetReservedSlots возвращает занятые слоты корта на дату для вида спорта
// Внутри транзакции строки блокируются (FOR UPDATE) до конца транзакции
func (r *Repository) GetReservedSlots(ctx context.Context, courtID int64, date time.Time, sport string) ([]string, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("slot").
		From(slotsTable).
		Where(squirrel.Eq{
			"court_id":     courtID,
			"booking_date": date.Format(domain.DateFormat),
			"sport":        sport,
		})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedSlots - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetReservedSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetCourtsWithReservedSlot возвращает ID кортов, у которых слот занят на дату для вида спорта
func (r *Repository) GetCourtsWithReservedSlot(ctx context.Context, date time.Time, sport, slot string) ([]int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT court_id").
		From(slotsTable).
		Where(squirrel.Eq{
			"booking_date": date.Format(domain.DateFormat),
			"sport":        sport,
			"slot":         slot,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtsWithReservedSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtsWithReservedSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courtIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetCourtsWithReservedSlot - scan court_id: %v", ErrScanRow, err)
		}
		courtIDs = append(courtIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCourtsWithReservedSlot - rows error: %v", ErrScanRow, err)
	}

	return courtIDs, nil
}

// Create сохраняет бронирование и по строке на каждый слот
// Должен вызываться внутри транзакции: уникальный индекс facility_booking_slots
// отвергает слот, занятый параллельно, и вся вставка откатывается
func (r *Repository) Create(ctx context.Context, booking *domain.FacilityBooking) (*domain.FacilityBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)
	date := booking.BookingDate.Format(domain.DateFormat)

	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns(
			"user_id",
			"court_id",
			"sport",
			"booking_date",
			"slots",
			"unit_price",
			"total_price",
			"payment_proof_url",
		).
		Values(
			booking.UserID,
			booking.CourtID,
			booking.Sport,
			date,
			pq.Array(booking.Slots),
			booking.UnitPrice,
			booking.TotalPrice,
			booking.PaymentProofURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slotsInsert := psqlbuilder.Insert(slotsTable).
		Columns("booking_id", "court_id", "booking_date", "sport", "slot")
	for _, slot := range booking.Slots {
		slotsInsert = slotsInsert.Values(booking.ID, booking.CourtID, date, booking.Sport, slot)
	}

	query, args, err = slotsInsert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build slots insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if reperrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: court=%d date=%s: %w", ErrSlotAlreadyReserved, booking.CourtID, date, err)
		}
		return nil, fmt.Errorf("%w: Create - insert slots: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// AttachVerification прикрепляет код и ссылку подтверждения (вторая фаза записи)
// Уже прикрепленный код не перезаписывается
func (r *Repository) AttachVerification(ctx context.Context, id int64, code, url string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("verification_code", code).
		Set("verification_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("verification_code IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachVerification - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if reperrors.IsUniqueViolation(err) {
			return ErrVerificationCodeTaken
		}
		return fmt.Errorf("%w: AttachVerification - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachVerification - get rows affected: %v", ErrExecQuery, err)
	}

	// 0 строк: бронирования нет либо код уже прикреплен
	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrVerificationAlreadyAttached
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FacilityBooking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByVerificationCode получает бронирование по коду подтверждения
func (r *Repository) GetByVerificationCode(ctx context.Context, code string) (*domain.FacilityBooking, error) {
	return r.getOne(ctx, "GetByVerificationCode", squirrel.Eq{"verification_code": code})
}

// GetByUserID получает бронирования пользователя, новые даты первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.FacilityBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.FacilityBooking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.FacilityBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.FacilityBooking, error) {
	var (
		booking          domain.FacilityBooking
		verificationCode sql.NullString
		verificationURL  sql.NullString
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourtID,
		&booking.Sport,
		&booking.BookingDate,
		pq.Array(&booking.Slots),
		&booking.UnitPrice,
		&booking.TotalPrice,
		&booking.PaymentProofURL,
		&verificationCode,
		&verificationURL,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if verificationCode.Valid {
		booking.VerificationCode = &verificationCode.String
	}
	if verificationURL.Valid {
		booking.VerificationURL = &verificationURL.String
	}

	return &booking, nil
}
