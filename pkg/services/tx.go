package services

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dyadlab/fabula/ent"
)

// serializationRetries bounds retries of transactions aborted with
// SQLSTATE 40001 (serialization_failure).
const serializationRetries = 5

// withSerializableTx runs fn inside a serializable transaction, retrying on
// serialization failures with a small jittered backoff. fn must be
// re-runnable from scratch.
func withSerializableTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= serializationRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(rand.Int64N(int64(50*time.Millisecond))) + 10*time.Millisecond):
			}
		}

		err := runTx(ctx, client, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("serializable transaction failed after %d retries: %w", serializationRetries, lastErr)
}

func runTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.BeginTx(ctx, &entsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isSerializationFailure reports whether err is a Postgres serialization
// failure (SQLSTATE 40001) or deadlock (40P01).
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 40001") || strings.Contains(msg, "SQLSTATE 40P01")
}
