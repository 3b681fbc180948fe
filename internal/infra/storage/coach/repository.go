package coach

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/reperrors"
	"github.com/m04kA/SMC-SportsBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

var profileColumns = []string{
	"id",
	"user_id",
	"name",
	"sport",
	"bio",
	"individual_fee",
	"group_fee",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей тренеров и их окна доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль тренера
func (r *Repository) Create(ctx context.Context, profile *domain.CoachProfile) (*domain.CoachProfile, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coach_profiles").
		Columns("user_id", "name", "sport", "bio", "individual_fee", "group_fee").
		Values(profile.UserID, profile.Name, profile.Sport, profile.Bio, profile.IndividualFee, profile.GroupFee).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if reperrors.IsUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	profile.Availability = []domain.SessionSlot{}
	return profile, nil
}

// GetByID получает профиль тренера вместе с окном доступности
// Внутри транзакции строка профиля блокируется (FOR UPDATE):
// изменение окна и создание заявки сериализуются по тренеру
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CoachProfile, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUserID получает профиль тренера по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.CoachProfile, error) {
	return r.getOne(ctx, "GetByUserID", squirrel.Eq{"user_id": userID})
}

// ReplaceAvailability заменяет окно доступности тренера целиком
// Вызывать внутри транзакции
func (r *Repository) ReplaceAvailability(ctx context.Context, coachID int64, slots []domain.SessionSlot) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coach_availability").
		Where(squirrel.Eq{"coach_id": coachID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - execute delete: %w", ErrExecQuery, err)
	}

	return r.AddAvailability(ctx, coachID, slots)
}

// AddAvailability добавляет пары в окно доступности, существующие пары пропускаются
func (r *Repository) AddAvailability(ctx context.Context, coachID int64, slots []domain.SessionSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("coach_availability").
		Columns("coach_id", "available_date", "slot")
	for _, s := range slots {
		insert = insert.Values(coachID, s.Date.Format(domain.DateFormat), s.Slot)
	}

	query, args, err := insert.Suffix("ON CONFLICT (coach_id, available_date, slot) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddAvailability - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if reperrors.IsForeignKeyViolation(err) {
			return ErrCoachNotFound
		}
		return fmt.Errorf("%w: AddAvailability - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetAvailability возвращает окно доступности тренера, отсортированное по дате и слоту
func (r *Repository) GetAvailability(ctx context.Context, coachID int64) ([]domain.SessionSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("available_date", "slot").
		From("coach_availability").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("available_date ASC", "slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.SessionSlot, 0)
	for rows.Next() {
		var s domain.SessionSlot
		if err := rows.Scan(&s.Date, &s.Slot); err != nil {
			return nil, fmt.Errorf("%w: GetAvailability - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, domain.NewSessionSlot(s.Date, s.Slot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.CoachProfile, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(profileColumns...).
		From("coach_profiles").
		Where(where)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		profile       domain.CoachProfile
		bio           sql.NullString
		individualFee sql.NullFloat64
		groupFee      sql.NullFloat64
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Sport,
		&bio,
		&individualFee,
		&groupFee,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoachNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan profile: %w", ErrScanRow, op, err)
	}

	if bio.Valid {
		profile.Bio = &bio.String
	}
	if individualFee.Valid {
		profile.IndividualFee = &individualFee.Float64
	}
	if groupFee.Valid {
		profile.GroupFee = &groupFee.Float64
	}

	availability, err := r.GetAvailability(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Availability = availability

	return &profile, nil
}
