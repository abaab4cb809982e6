package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/dbmetrics"
	"github.com/rmarchan/ReservaCanchasService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"cancha_id",
	"cliente_id",
	"fecha",
	"hora_inicio",
	"hora_fin",
	"estado",
	"costo",
	"precio_manual",
	"notas",
	"pago_id",
	"pago_estado",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists reservas.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the reservations repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation. The caller is expected to run this inside
// the serializable booking transaction after the availability re-check;
// the repository itself does not verify overlap.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"cancha_id",
			"cliente_id",
			"fecha",
			"hora_inicio",
			"hora_fin",
			"estado",
			"costo",
			"precio_manual",
			"notas",
		).
		Values(
			reservation.CourtID,
			reservation.CustomerID,
			reservation.Date,
			reservation.StartTime,
			reservation.EndTime,
			reservation.Status,
			reservation.Cost,
			reservation.ManualPrice,
			reservation.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID fetches a reservation. Inside a transaction the row is locked
// with FOR UPDATE so payment confirmation, status transitions and the
// expiration sweep serialize per reservation id (first committer wins).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByCourtAndDate returns the reservations of a cancha on one date,
// ordered by start time. Cancelled records are excluded unless
// includeInactive is set. Inside a transaction the rows are locked with
// FOR UPDATE: this is the availability re-check of the booking path and
// the lock closes the race window between check and insert.
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time, includeInactive bool) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"cancha_id": courtID}).
		Where(squirrel.Eq{"fecha": date}).
		OrderBy("hora_inicio ASC")

	if !includeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"estado": inactive})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByCustomerID returns the reservation history of a customer, newest
// first, optionally filtered by estado.
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"cliente_id": customerID}).
		OrderBy("fecha DESC, hora_inicio DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetExpiredPending returns pending reservations without a confirmed
// payment whose creation time lies strictly before the cutoff. Run inside
// a transaction the rows come back locked, so a concurrent payment
// confirmation on the same reserva waits and then sees it cancelled (or
// the sweep sees it confirmed).
func (r *Repository) GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"estado": domain.StatusPending}).
		Where(squirrel.Or{
			squirrel.Eq{"pago_estado": nil},
			squirrel.NotEq{"pago_estado": domain.PaymentConfirmed},
		}).
		Where(squirrel.Lt{"created_at": cutoff}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update persists an edit: interval, cost, manual-price flag and notes.
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("fecha", reservation.Date).
		Set("hora_inicio", reservation.StartTime).
		Set("hora_fin", reservation.EndTime).
		Set("costo", reservation.Cost).
		Set("precio_manual", reservation.ManualPrice).
		Set("notas", reservation.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// UpdateStatus moves a reservation to a new estado. State-machine
// validation happens in the service layer; this only persists.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel marks a reservation cancelled and stamps cancelled_at.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// AttachPayment links a payment to the reservation.
func (r *Repository) AttachPayment(ctx context.Context, id int64, paymentID int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("pago_id", paymentID).
		Set("pago_estado", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachPayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "AttachPayment")
}

// Purge physically deletes an already-cancelled reservation. Any other
// state is refused; history is kept through Cancel.
func (r *Repository) Purge(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservas").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Purge - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Purge - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Purge - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNotCancelled
	}

	return nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime
	var pagoEstado sql.NullString

	err := row.Scan(
		&reservation.ID,
		&reservation.CourtID,
		&reservation.CustomerID,
		&reservation.Date,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.Status,
		&reservation.Cost,
		&reservation.ManualPrice,
		&reservation.Notes,
		&reservation.PaymentID,
		&pagoEstado,
		&reservation.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pagoEstado.Valid {
		status := domain.PaymentStatus(pagoEstado.String)
		reservation.PaymentStatus = &status
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
