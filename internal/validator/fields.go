package validator

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Field names in the fixed order each grid card is checked
const (
	FieldPrice    = "Price"
	FieldDataPlan = "Data plan"
	FieldDuration = "Duration"
	FieldPlanType = "Plan Type"
)

// FieldTimeout bounds the visibility wait for a single field
const FieldTimeout = 5 * time.Second

// FieldResult is the outcome of checking one field on one grid card
type FieldResult struct {
	Field  string
	Passed bool
	Error  string // human-readable description, empty when passed
}

// ValidateProductFields checks that each expected display string is visible
// inside the grid card. The four field checks carry no ordering dependency
// and run concurrently; results come back in the fixed field order. A failed
// field yields a FieldResult with an error description rather than aborting
// its siblings.
func ValidateProductFields(card Locator, expected ExpectedValues, gridIndex int) []FieldResult {
	checks := []struct {
		field string
		value string
	}{
		{FieldPrice, expected.Price},
		{FieldDataPlan, expected.DataPlan},
		{FieldDuration, expected.Duration},
		{FieldPlanType, expected.PlanType},
	}

	results := make([]FieldResult, len(checks))

	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func(i int, field, value string) {
			defer wg.Done()
			results[i] = validateField(card, field, value, gridIndex)
		}(i, check.field, check.value)
	}
	wg.Wait()

	return results
}

// FieldErrors extracts the error descriptions from failed field results,
// preserving field order
func FieldErrors(results []FieldResult) []string {
	var errs []string
	for _, result := range results {
		if !result.Passed {
			errs = append(errs, result.Error)
		}
	}
	return errs
}

// AllFieldsPassed reports whether every field check succeeded
func AllFieldsPassed(results []FieldResult) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

func validateField(card Locator, field, value string, gridIndex int) FieldResult {
	if err := card.GetByText(value, false).WaitForVisible(FieldTimeout); err != nil {
		message := fmt.Sprintf("%s %q not found in grid item %d", field, value, gridIndex)
		log.Printf("   %s", message)
		return FieldResult{Field: field, Error: message}
	}

	log.Printf("   %s %q validation passed", field, value)
	return FieldResult{Field: field, Passed: true}
}
