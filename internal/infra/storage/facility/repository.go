package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/RSM-FacilityService/pkg/psqlbuilder"
)

// facilityColumns полный набор колонок таблицы facilities
var facilityColumns = []string{
	"id",
	"site_id",
	"name",
	"rules",
	"opening_time",
	"closing_time",
	"capacity",
	"reservation_fee",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с общественными объектами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый объект
func (r *Repository) Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns(
			"site_id",
			"name",
			"rules",
			"opening_time",
			"closing_time",
			"capacity",
			"reservation_fee",
		).
		Values(
			f.SiteID,
			f.Name,
			f.Rules,
			f.OpeningTime,
			f.ClosingTime,
			f.Capacity,
			f.ReservationFee,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&f.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return f, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanFacilityRow(executor.QueryRowContext(ctx, query, args...))
}

// GetBySiteID получает все объекты жилого комплекса
func (r *Repository) GetBySiteID(ctx context.Context, siteID int64) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySiteID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySiteID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)

	for rows.Next() {
		var f domain.Facility
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&f.ID,
			&f.SiteID,
			&f.Name,
			&f.Rules,
			&f.OpeningTime,
			&f.ClosingTime,
			&f.Capacity,
			&f.ReservationFee,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetBySiteID - scan row: %v", ErrScanRow, err)
		}

		f.CreatedAt = createdAt.Time
		f.UpdatedAt = updatedAt.Time

		facilities = append(facilities, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySiteID - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// Update обновляет объект
func (r *Repository) Update(ctx context.Context, id int64, f *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facilities").
		Set("name", f.Name).
		Set("rules", f.Rules).
		Set("opening_time", f.OpeningTime).
		Set("closing_time", f.ClosingTime).
		Set("capacity", f.Capacity).
		Set("reservation_fee", f.ReservationFee).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING site_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.SiteID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	f.ID = id
	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return f, nil
}

// Delete удаляет объект
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

// scanFacilityRow сканирует одну строку в модель объекта
func (r *Repository) scanFacilityRow(row *sql.Row) (*domain.Facility, error) {
	var f domain.Facility
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&f.ID,
		&f.SiteID,
		&f.Name,
		&f.Rules,
		&f.OpeningTime,
		&f.ClosingTime,
		&f.Capacity,
		&f.ReservationFee,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan facility: %v", ErrScanRow, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return &f, nil
}
