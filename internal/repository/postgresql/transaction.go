package postgresql

import (
	"context"
	"fmt"

	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// WithTransaction executes fn inside a database transaction. The transaction
// is injected into the context so repositories pick it up via GetQuerier.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	txCtx := context.WithValue(ctx, txContextKey, tx)
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// WithMonthLock runs fn inside a transaction holding the advisory lock for
// one (company, year, month). Every roster mutation and lifecycle transition
// goes through here, which gives the single-writer-per-month guarantee: the
// confirmation flag cannot change between a lock check and the write.
func WithMonthLock(ctx context.Context, db *database.DB, companyID string, year, month int, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, db, func(txCtx context.Context) error {
		key := fmt.Sprintf("%s:%04d-%02d", companyID, year, month)
		q := GetQuerier(txCtx, db)
		if _, err := q.Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
			return fmt.Errorf("acquire month lock: %w", err)
		}
		return fn(txCtx)
	})
}

type contextKey string

const txContextKey contextKey = "tx"

// GetQuerier returns either transaction or pool.
// Used in repositories to support both transactional and non-transactional operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txContextKey).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
