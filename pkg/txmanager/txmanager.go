// Package txmanager runs functions inside database transactions carried
// through the context (see pkg/dbmetrics). Serializable transactions are
// retried a bounded number of times on Postgres serialization failures.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/rmarchan/ReservaCanchasService/pkg/dbmetrics"
)

const (
	// serializationFailure / deadlockDetected per Postgres error codes
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"

	maxSerializableAttempts = 3
	retryBackoff            = 25 * time.Millisecond
)

var (
	// ErrSerialization is returned after the bounded retries on
	// storage-level contention are exhausted. Safe to retry with backoff.
	ErrSerialization = errors.New("txmanager: serialization failure")
)

// TxBeginner abstracts *dbmetrics.DB for transaction start.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs callbacks inside transactions.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a manager over a metered database handle.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a default-isolation transaction.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying on
// serialization failures and deadlocks. Domain errors returned by fn are
// never retried.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 1; attempt <= maxSerializableAttempts; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationError(err) {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return fmt.Errorf("%w: after %d attempts: %v", ErrSerialization, maxSerializableAttempts, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

// IsSerializationError reports whether err is a Postgres serialization
// failure or deadlock, i.e. transient contention worth retrying.
func IsSerializationError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure || string(pqErr.Code) == pqDeadlockDetected
	}
	return errors.Is(err, ErrSerialization)
}
