package sessionrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/codec"
	"github.com/m04kA/SMC-SportsBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

var requestColumns = []string{
	"id",
	"user_id",
	"coach_id",
	"coach_name",
	"sport",
	"kind",
	"requested_slots",
	"status",
	"court_id",
	"payment_proof_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на тренировки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку в статусе pending
func (r *Repository) Create(ctx context.Context, request *domain.SessionRequest) (*domain.SessionRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	slots, err := codec.MarshalSessionSlots(request.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Insert("session_requests").
		Columns("user_id", "coach_id", "coach_name", "sport", "kind", "requested_slots", "status").
		Values(request.UserID, request.CoachID, request.CoachName, request.Sport, request.Kind, string(slots), request.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return request, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SessionRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("session_requests").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %w", ErrScanRow, err)
	}

	return request, nil
}

// List возвращает заявки по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.SessionRequestFilter) ([]*domain.SessionRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("session_requests").
		OrderBy("created_at DESC", "id DESC")

	if filter.CoachID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"coach_id": *filter.CoachID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.SessionRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// UpdateStatus переводит заявку из статуса from в статус to
// courtID записывается, только если не nil
// Если заявка уже не в статусе from - ErrStatusChanged
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to domain.SessionRequestStatus,
	courtID *int64,
) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("session_requests").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	if courtID != nil {
		updateBuilder = updateBuilder.Set("court_id", *courtID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// AttachPaymentProof прикрепляет ссылку на чек оплаты к заявке, которая еще не оформлена (не booked)
func (r *Repository) AttachPaymentProof(ctx context.Context, id int64, url string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_requests").
		Set("payment_proof_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.RequestBooked}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachPaymentProof - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachPaymentProof - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachPaymentProof - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.SessionRequest, error) {
	var (
		request      domain.SessionRequest
		slots        []byte
		courtID      sql.NullInt64
		paymentProof sql.NullString
	)

	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.CoachID,
		&request.CoachName,
		&request.Sport,
		&request.Kind,
		&slots,
		&request.Status,
		&courtID,
		&paymentProof,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	request.Slots, err = codec.UnmarshalSessionSlots(slots)
	if err != nil {
		return nil, err
	}
	if courtID.Valid {
		request.CourtID = &courtID.Int64
	}
	if paymentProof.Valid {
		request.PaymentProofURL = &paymentProof.String
	}

	return &request, nil
}
