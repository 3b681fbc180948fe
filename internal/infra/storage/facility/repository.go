package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/reperrors"
	"github.com/m04kA/SMC-SportsBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

// Repository репозиторий спортивных объектов и кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает объект (без кортов)
func (r *Repository) Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns("name", "location", "sports", "price_per_slot").
		Values(facility.Name, facility.Location, pq.Array(facility.Sports), facility.PricePerSlot).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&facility.ID, &facility.CreatedAt, &facility.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return facility, nil
}

// AddCourt добавляет корт в объект
func (r *Repository) AddCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("facility_id", "number", "name").
		Values(court.FacilityID, court.Number, court.Name).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddCourt - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&court.ID, &court.CreatedAt)
	if err != nil {
		switch {
		case reperrors.IsUniqueViolation(err):
			return nil, ErrCourtNumberTaken
		case reperrors.IsForeignKeyViolation(err):
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("%w: AddCourt - execute insert: %v", ErrExecQuery, err)
	}

	return court, nil
}

// GetByID получает объект вместе с кортами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "location", "sports", "price_per_slot", "created_at", "updated_at").
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	courts, err := r.getCourts(ctx, []int64{facility.ID})
	if err != nil {
		return nil, err
	}
	if cs, ok := courts[facility.ID]; ok {
		facility.Courts = cs
	}

	return facility, nil
}

// List возвращает объекты с кортами; если sport задан - только объекты с этим видом спорта
func (r *Repository) List(ctx context.Context, sport *string) ([]*domain.Facility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "location", "sports", "price_per_slot", "created_at", "updated_at").
		From("facilities").
		OrderBy("id ASC")

	if sport != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("? = ANY(sports)", *sport))
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

	facilities := make([]*domain.Facility, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
		ids = append(ids, facility.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return facilities, nil
	}

	courts, err := r.getCourts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, f := range facilities {
		if cs, ok := courts[f.ID]; ok {
			f.Courts = cs
		}
	}

	return facilities, nil
}

// GetCourt получает корт вместе с данными объекта (виды спорта и цена)
func (r *Repository) GetCourt(ctx context.Context, courtID int64) (*domain.CourtWithFacility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := courtWithFacilitySelect().
		Where(squirrel.Eq{"c.id": courtID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourtWithFacility(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// ListCourtsBySport возвращает все корты объектов, где доступен вид спорта
func (r *Repository) ListCourtsBySport(ctx context.Context, sport string) ([]*domain.CourtWithFacility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := courtWithFacilitySelect().
		Where(squirrel.Expr("? = ANY(f.sports)", sport)).
		OrderBy("f.id ASC", "c.number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsBySport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsBySport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.CourtWithFacility, 0)
	for rows.Next() {
		court, err := scanCourtWithFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCourtsBySport - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourtsBySport - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// getCourts возвращает корты объектов, сгруппированные по facility_id
func (r *Repository) getCourts(ctx context.Context, facilityIDs []int64) (map[int64][]domain.Court, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "facility_id", "number", "name", "created_at").
		From("courts").
		Where(squirrel.Eq{"facility_id": facilityIDs}).
		OrderBy("facility_id ASC", "number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make(map[int64][]domain.Court, len(facilityIDs))
	for rows.Next() {
		var c domain.Court
		if err := rows.Scan(&c.ID, &c.FacilityID, &c.Number, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: getCourts - scan row: %v", ErrScanRow, err)
		}
		courts[c.FacilityID] = append(courts[c.FacilityID], c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getCourts - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

func courtWithFacilitySelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"c.id",
		"c.facility_id",
		"c.number",
		"c.name",
		"c.created_at",
		"f.name",
		"f.sports",
		"f.price_per_slot",
	).
		From("courts c").
		Join("facilities f ON f.id = c.facility_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var f domain.Facility
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Location,
		pq.Array(&f.Sports),
		&f.PricePerSlot,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Courts = []domain.Court{}
	return &f, nil
}

func scanCourtWithFacility(row rowScanner) (*domain.CourtWithFacility, error) {
	var c domain.CourtWithFacility
	err := row.Scan(
		&c.ID,
		&c.FacilityID,
		&c.Number,
		&c.Name,
		&c.CreatedAt,
		&c.FacilityName,
		pq.Array(&c.Sports),
		&c.PricePerSlot,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
