// Package dbmetrics wraps *sql.DB with prometheus instrumentation and
// carries the active transaction through the context so repositories can
// stay oblivious to whether they run inside one.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rmarchan/ReservaCanchasService/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on.
// Both *sql.DB, *sql.Tx and the metered wrappers satisfy it.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a transaction-scoped executor.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx returns a context carrying the active transaction.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetExecutor returns the transaction from the context if one is active,
// otherwise the fallback executor.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok
}

// DB is a *sql.DB wrapper that records query metrics.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap wraps db with metric recording.
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault wraps db and starts the connection pool stats collector.
// The collector runs until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBPoolOpenConns.WithLabelValues(d.service).Set(float64(stats.OpenConnections))
			d.metrics.DBPoolIdleConns.WithLabelValues(d.service).Set(float64(stats.Idle))
			d.metrics.DBPoolInUseConns.WithLabelValues(d.service).Set(float64(stats.InUse))
			d.metrics.DBPoolWaitCount.WithLabelValues(d.service).Set(float64(stats.WaitCount))
		}
	}
}

// ExecContext implements DBExecutor.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(queryOperation(query), start, err)
	return res, err
}

// QueryContext implements DBExecutor.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(queryOperation(query), start, err)
	return rows, err
}

// QueryRowContext implements DBExecutor.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(queryOperation(query), start, nil)
	return row
}

// BeginTx starts a metered transaction.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &meteredTx{tx: tx, parent: d}, nil
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// meteredTx records the same metrics for statements inside a transaction.
type meteredTx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *meteredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(queryOperation(query), start, err)
	return res, err
}

func (t *meteredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(queryOperation(query), start, err)
	return rows, err
}

func (t *meteredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(queryOperation(query), start, nil)
	return row
}

func (t *meteredTx) Commit() error   { return t.tx.Commit() }
func (t *meteredTx) Rollback() error { return t.tx.Rollback() }

// queryOperation extracts the SQL verb for the metric label.
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
