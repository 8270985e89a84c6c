package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/betterroaming/esim-e2e/internal/database"
	"github.com/betterroaming/esim-e2e/internal/models"
)

// errorSeparator joins per-run error descriptions into a single TEXT column
const errorSeparator = "\n"

// RunRepository handles database operations for validation run history
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a new run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun stores a settled validation run
func (r *RunRepository) CreateRun(run *models.ValidationRun) error {
	query := `
		INSERT INTO validation_runs
			(id, reference, country_code, currency, destination, page_url,
			 status, grid_items, error_count, errors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	now := time.Now()
	_, err := r.db.Exec(query,
		run.ID,
		run.Reference,
		run.CountryCode,
		run.Currency,
		run.Destination,
		run.PageURL,
		run.Status,
		run.GridItems,
		run.ErrorCount,
		strings.Join(run.Errors, errorSeparator),
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to create validation run: %w", err)
	}

	run.CreatedAt = now
	run.UpdatedAt = now

	return nil
}

// GetRunByReference retrieves a validation run by its reference
func (r *RunRepository) GetRunByReference(reference string) (*models.ValidationRun, error) {
	query := `
		SELECT id, reference, country_code, currency, COALESCE(destination, ''),
		       page_url, status, grid_items, error_count, COALESCE(errors, ''),
		       created_at, updated_at
		FROM validation_runs
		WHERE reference = $1
	`

	run := &models.ValidationRun{}
	var errorText string
	err := r.db.QueryRow(query, reference).Scan(
		&run.ID,
		&run.Reference,
		&run.CountryCode,
		&run.Currency,
		&run.Destination,
		&run.PageURL,
		&run.Status,
		&run.GridItems,
		&run.ErrorCount,
		&errorText,
		&run.CreatedAt,
		&run.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("validation run not found")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get validation run: %w", err)
	}

	if errorText != "" {
		run.Errors = strings.Split(errorText, errorSeparator)
	}

	return run, nil
}

// ListRecentRuns retrieves the most recent validation runs, newest first
func (r *RunRepository) ListRecentRuns(limit int) ([]*models.ValidationRun, error) {
	query := `
		SELECT id, reference, country_code, currency, COALESCE(destination, ''),
		       page_url, status, grid_items, error_count, COALESCE(errors, ''),
		       created_at, updated_at
		FROM validation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list validation runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ValidationRun
	for rows.Next() {
		run := &models.ValidationRun{}
		var errorText string
		if err := rows.Scan(
			&run.ID,
			&run.Reference,
			&run.CountryCode,
			&run.Currency,
			&run.Destination,
			&run.PageURL,
			&run.Status,
			&run.GridItems,
			&run.ErrorCount,
			&errorText,
			&run.CreatedAt,
			&run.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan validation run: %w", err)
		}
		if errorText != "" {
			run.Errors = strings.Split(errorText, errorSeparator)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read validation runs: %w", err)
	}

	return runs, nil
}
