package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// QuerierFunc runs against a querier bound to a single transaction
type QuerierFunc func(qtx db.Querier) error

// TxRunner executes a QuerierFunc atomically.
type TxRunner interface {
	RunInTx(ctx context.Context, fn QuerierFunc) error
}

// WithTransaction executes a function within a database transaction.
// If the function returns an error, the transaction is rolled back,
// otherwise it is committed.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	return WithTransactionOptions(ctx, pool, TransactionOptions{}, fn)
}

// WithTransactionRetry executes a function within a database transaction with retry logic.
// It will retry the transaction up to maxRetries times if it encounters a serialization error.
func WithTransactionRetry(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn TransactionFunc) error {
	return retrySerializationFailures(ctx, maxRetries, func() error {
		return WithTransaction(ctx, pool, fn)
	})
}

// WithSerializableRetry runs fn in a SERIALIZABLE transaction, retrying on serialization failures.
func WithSerializableRetry(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn TransactionFunc) error {
	opts := TransactionOptions{IsolationLevel: pgx.Serializable}
	return retrySerializationFailures(ctx, maxRetries, func() error {
		return WithTransactionOptions(ctx, pool, opts, fn)
	})
}

func retrySerializationFailures(ctx context.Context, maxRetries int, attemptFn func() error) error {
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = attemptFn()
		if err == nil {
			return nil
		}

		if IsSerializationFailure(err) && attempt < maxRetries && ctx.Err() == nil {
			logger.Log.Warn("Transaction failed due to serialization error, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			continue
		}

		break
	}

	return err
}

// TransactionOptions provides additional options for transaction execution
type TransactionOptions struct {
	IsolationLevel pgx.TxIsoLevel
	AccessMode     pgx.TxAccessMode
	DeferrableMode pgx.TxDeferrableMode
}

// WithTransactionOptions executes a function within a database transaction with custom options
func WithTransactionOptions(ctx context.Context, pool *pgxpool.Pool, opts TransactionOptions, fn TransactionFunc) error {
	txOpts := pgx.TxOptions{
		IsoLevel:       opts.IsolationLevel,
		AccessMode:     opts.AccessMode,
		DeferrableMode: opts.DeferrableMode,
	}

	tx, err := pool.BeginTx(ctx, txOpts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback after a successful commit returns ErrTxClosed and is ignored
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// PoolTxRunner runs QuerierFuncs in serializable transactions on a pgx pool.
type PoolTxRunner struct {
	pool       *pgxpool.Pool
	maxRetries int
}

// NewPoolTxRunner creates a PoolTxRunner
func NewPoolTxRunner(pool *pgxpool.Pool, maxRetries int) *PoolTxRunner {
	return &PoolTxRunner{pool: pool, maxRetries: maxRetries}
}

// RunInTx implements TxRunner
func (r *PoolTxRunner) RunInTx(ctx context.Context, fn QuerierFunc) error {
	return WithSerializableRetry(ctx, r.pool, r.maxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}

// QuerierTxRunner hands the wrapped querier straight to fn. It is used where
// no pool is available, such as unit tests backed by a mock querier.
type QuerierTxRunner struct {
	queries db.Querier
}

// NewQuerierTxRunner creates a QuerierTxRunner
func NewQuerierTxRunner(queries db.Querier) *QuerierTxRunner {
	return &QuerierTxRunner{queries: queries}
}

// RunInTx implements TxRunner
func (r *QuerierTxRunner) RunInTx(_ context.Context, fn QuerierFunc) error {
	return fn(r.queries)
}
