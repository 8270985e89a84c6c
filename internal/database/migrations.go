package database

import (
	"fmt"
	"log"
)

// ValidationRunsSchema creates the validation_runs table. Shared with the
// integration test harness so both run the same DDL.
const ValidationRunsSchema = `
	CREATE TABLE IF NOT EXISTS validation_runs (
		id UUID PRIMARY KEY,
		reference VARCHAR(255) UNIQUE NOT NULL,
		country_code VARCHAR(3) NOT NULL,
		currency VARCHAR(3) NOT NULL,
		destination VARCHAR(3),
		page_url VARCHAR(2048) NOT NULL,
		status VARCHAR(50) NOT NULL,
		grid_items INTEGER NOT NULL DEFAULT 0,
		error_count INTEGER NOT NULL DEFAULT 0,
		errors TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_validation_runs_reference ON validation_runs(reference);
	CREATE INDEX IF NOT EXISTS idx_validation_runs_status ON validation_runs(status);
	CREATE INDEX IF NOT EXISTS idx_validation_runs_created_at ON validation_runs(created_at);
	`

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := DB.Exec(ValidationRunsSchema); err != nil {
		return fmt.Errorf("failed to create validation_runs table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
