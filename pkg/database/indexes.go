package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// Custom indexes that ent's schema DSL cannot express. Production picks them
// up from the SQL migrations; tests create them explicitly after
// Schema.Create.

// CreateGINIndexes creates the JSONB GIN indexes.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Export filtering and debugging queries into event payloads
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS event_data_gin ON events USING GIN (data)`)
	if err != nil {
		return fmt.Errorf("failed to create event data GIN index: %w", err)
	}

	// Operator queries into job payloads (find the jobs of a batch or participant)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS job_payload_gin ON jobs USING GIN (payload)`)
	if err != nil {
		return fmt.Errorf("failed to create job payload GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates the partial unique indexes.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Batch materialization is idempotent per unique_id: a retried creation
	// job must not produce duplicate participant rows.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS participant_batch_unique_id
		ON participants (batch_id, unique_id)
		WHERE unique_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create participant unique_id index: %w", err)
	}

	return nil
}
