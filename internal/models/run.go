package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid validation run states
type RunStatus string

// Run statuses
const (
	RunStatusPending RunStatus = "pending"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// ValidationRun records the outcome of one grid reconciliation run against
// the storefront
type ValidationRun struct {
	ID          string
	Reference   string
	CountryCode string
	Currency    string
	Destination string
	PageURL     string
	Status      RunStatus
	GridItems   int
	ErrorCount  int
	Errors      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Domain errors
var (
	ErrInvalidCountryCode = errors.New("country code cannot be empty")
	ErrInvalidCurrency    = errors.New("currency code must be 3 characters")
	ErrInvalidPageURL     = errors.New("page URL cannot be empty")
	ErrRunAlreadySettled  = errors.New("validation run already settled")
)

// NewValidationRun creates a pending run record with validation
func NewValidationRun(countryCode, currency, destination, pageURL string) (*ValidationRun, error) {
	if err := validateRunInput(countryCode, currency, pageURL); err != nil {
		return nil, err
	}

	runRef := fmt.Sprintf("RUN-%d", time.Now().Unix())
	now := time.Now()

	return &ValidationRun{
		ID:          uuid.New().String(),
		Reference:   runRef,
		CountryCode: countryCode,
		Currency:    currency,
		Destination: destination,
		PageURL:     pageURL,
		Status:      RunStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// validateRunInput validates run creation parameters
func validateRunInput(countryCode, currency, pageURL string) error {
	if countryCode == "" {
		return ErrInvalidCountryCode
	}
	if len(currency) != 3 {
		return ErrInvalidCurrency
	}
	if pageURL == "" {
		return ErrInvalidPageURL
	}
	return nil
}

// Settle records the reconciliation outcome on the run
func (r *ValidationRun) Settle(passed bool, gridItems int, errs []string) error {
	if r.Status != RunStatusPending {
		return fmt.Errorf("%w: status is %s", ErrRunAlreadySettled, r.Status)
	}

	if passed {
		r.Status = RunStatusPassed
	} else {
		r.Status = RunStatusFailed
	}
	r.GridItems = gridItems
	r.Errors = errs
	r.ErrorCount = len(errs)
	r.UpdatedAt = time.Now()
	return nil
}

// IsPassed returns true if the run completed with every grid item valid
func (r *ValidationRun) IsPassed() bool {
	return r.Status == RunStatusPassed
}

// IsSettled returns true once the run outcome has been recorded
func (r *ValidationRun) IsSettled() bool {
	return r.Status != RunStatusPending
}

// Summary returns a one-line human-readable description of the run
func (r *ValidationRun) Summary() string {
	return fmt.Sprintf("%s %s/%s -> %s: %s (%d items, %d errors)",
		r.Reference, r.CountryCode, r.Currency, r.Destination, r.Status, r.GridItems, r.ErrorCount)
}
