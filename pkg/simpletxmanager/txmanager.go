// Package simpletxmanager is the txmanager twin for a plain *sql.DB,
// used when metrics are disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmarchan/ReservaCanchasService/pkg/dbmetrics"
	"github.com/rmarchan/ReservaCanchasService/pkg/txmanager"
)

const (
	maxSerializableAttempts = 3
	retryBackoff            = 25 * time.Millisecond
)

// TransactionManager runs callbacks inside transactions on a bare *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a manager over a plain database handle.
func NewTransactionManager(db *sql.DB) *TransactionManager {
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

// DoSerializable runs fn inside a SERIALIZABLE transaction with bounded
// retries on serialization failures.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 1; attempt <= maxSerializableAttempts; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !txmanager.IsSerializationError(err) {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return fmt.Errorf("%w: after %d attempts: %v", txmanager.ErrSerialization, maxSerializableAttempts, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, plainTx{tx})

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit transaction: %w", err)
	}

	return nil
}

// plainTx adapts *sql.Tx to dbmetrics.TxExecutor.
type plainTx struct {
	*sql.Tx
}
