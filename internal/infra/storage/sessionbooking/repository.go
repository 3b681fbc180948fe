package sessionbooking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/codec"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/reperrors"
	"github.com/m04kA/SMC-SportsBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"request_id",
	"user_id",
	"coach_id",
	"coach_name",
	"sport",
	"kind",
	"fee",
	"court_id",
	"slots",
	"verification_code",
	"verification_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований тренировок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет снимок заявки как бронирование
// Для одной заявки может существовать только одно бронирование (unique request_id)
func (r *Repository) Create(ctx context.Context, booking *domain.SessionBooking) (*domain.SessionBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	slots, err := codec.MarshalSessionSlots(booking.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Insert("session_bookings").
		Columns("request_id", "user_id", "coach_id", "coach_name", "sport", "kind", "fee", "court_id", "slots").
		Values(
			booking.RequestID,
			booking.UserID,
			booking.CoachID,
			booking.CoachName,
			booking.Sport,
			booking.Kind,
			booking.Fee,
			booking.CourtID,
			string(slots),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if reperrors.IsUniqueViolation(err) {
			return nil, ErrAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// AttachVerification прикрепляет код и ссылку подтверждения
// Уже прикрепленный код не перезаписывается
func (r *Repository) AttachVerification(ctx context.Context, id int64, code, url string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_bookings").
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

// GetByID получает бронирование тренировки по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SessionBooking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByRequestID получает бронирование по ID заявки
func (r *Repository) GetByRequestID(ctx context.Context, requestID int64) (*domain.SessionBooking, error) {
	return r.getOne(ctx, "GetByRequestID", squirrel.Eq{"request_id": requestID})
}

// GetByVerificationCode получает бронирование по коду подтверждения
func (r *Repository) GetByVerificationCode(ctx context.Context, code string) (*domain.SessionBooking, error) {
	return r.getOne(ctx, "GetByVerificationCode", squirrel.Eq{"verification_code": code})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.SessionBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("session_bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		booking          domain.SessionBooking
		courtID          sql.NullInt64
		slots            []byte
		verificationCode sql.NullString
		verificationURL  sql.NullString
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.RequestID,
		&booking.UserID,
		&booking.CoachID,
		&booking.CoachName,
		&booking.Sport,
		&booking.Kind,
		&booking.Fee,
		&courtID,
		&slots,
		&verificationCode,
		&verificationURL,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.Slots, err = codec.UnmarshalSessionSlots(slots)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - decode slots: %v", ErrScanRow, op, err)
	}
	if courtID.Valid {
		booking.CourtID = &courtID.Int64
	}
	if verificationCode.Valid {
		booking.VerificationCode = &verificationCode.String
	}
	if verificationURL.Valid {
		booking.VerificationURL = &verificationURL.String
	}

	return &booking, nil
}
