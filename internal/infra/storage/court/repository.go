package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/dbmetrics"
	"github.com/rmarchan/ReservaCanchasService/pkg/psqlbuilder"
)

var courtColumns = []string{
	"id",
	"nombre",
	"hora_inicio",
	"hora_fin",
	"corte_nocturno",
	"precio_dia_30",
	"precio_dia_60",
	"precio_noche_30",
	"precio_noche_60",
	"capacidad",
	"activa",
	"created_at",
	"updated_at",
}

// Repository persists canchas.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the courts repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a cancha and returns it with generated fields filled in.
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("canchas").
		Columns(
			"nombre",
			"hora_inicio",
			"hora_fin",
			"corte_nocturno",
			"precio_dia_30",
			"precio_dia_60",
			"precio_noche_30",
			"precio_noche_60",
			"capacidad",
			"activa",
		).
		Values(
			court.Name,
			court.OpenTime,
			court.CloseTime,
			court.NightCutoff,
			court.PriceDay30,
			court.PriceDay60,
			court.PriceNight30,
			court.PriceNight60,
			court.Capacity,
			court.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return court, nil
}

// GetByID fetches a cancha by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("canchas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	court, err := r.scanCourt(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// List returns canchas ordered by name. When activeOnly is set,
// deactivated courts are excluded.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From("canchas").
		OrderBy("nombre ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"activa": true})
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

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := r.scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// Update persists every mutable field of the cancha. Courts are never
// deleted while reservations reference them; deactivation flips `activa`.
func (r *Repository) Update(ctx context.Context, court *domain.Court) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("canchas").
		Set("nombre", court.Name).
		Set("hora_inicio", court.OpenTime).
		Set("hora_fin", court.CloseTime).
		Set("corte_nocturno", court.NightCutoff).
		Set("precio_dia_30", court.PriceDay30).
		Set("precio_dia_60", court.PriceDay60).
		Set("precio_noche_30", court.PriceNight30).
		Set("precio_noche_60", court.PriceNight60).
		Set("capacidad", court.Capacity).
		Set("activa", court.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": court.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanCourt(row rowScanner) (*domain.Court, error) {
	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&court.ID,
		&court.Name,
		&court.OpenTime,
		&court.CloseTime,
		&court.NightCutoff,
		&court.PriceDay30,
		&court.PriceDay60,
		&court.PriceNight30,
		&court.PriceNight60,
		&court.Capacity,
		&court.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}
