package validator

import (
	"fmt"
	"log"

	"github.com/betterroaming/esim-e2e/internal/catalog"
)

// Default storefront selectors. Override with WithSelectors when the page
// structure changes. The container and the item cards are distinct: a
// missing container is a structural page defect, an empty container is a
// data failure.
const (
	DefaultGridContainerSelector = `[data-testid="plans-grid"]`
	DefaultGridItemSelector      = `[data-testid="plan-card"]`
	DefaultDataSelector          = `[data-testid="plan-card"] [data-testid="plan-data-toggle"]`
)

// Report is the outcome of one grid reconciliation run. Data mismatches
// never abort the run; they accumulate here as ordered, human-readable
// descriptions.
type Report struct {
	Passed    bool
	GridItems int
	Matched   int
	Errors    []string
}

// GridValidator reconciles the rendered plan grid against API-sourced
// product records: each card is paired with the product it represents, then
// its displayed fields are checked against that product.
type GridValidator struct {
	page              Page
	containerSelector string
	itemSelector      string
	dataSelector      string
	strategy          MatchStrategy
}

// Option configures a GridValidator
type Option func(*GridValidator)

// WithStrategy replaces the default substring match strategy
func WithStrategy(strategy MatchStrategy) Option {
	return func(v *GridValidator) {
		v.strategy = strategy
	}
}

// WithSelectors replaces the default container, item and data toggle selectors
func WithSelectors(containerSelector, itemSelector, dataSelector string) Option {
	return func(v *GridValidator) {
		v.containerSelector = containerSelector
		v.itemSelector = itemSelector
		v.dataSelector = dataSelector
	}
}

// NewGridValidator creates a validator over the given page
func NewGridValidator(page Page, opts ...Option) *GridValidator {
	v := &GridValidator{
		page:              page,
		containerSelector: DefaultGridContainerSelector,
		itemSelector:      DefaultGridItemSelector,
		dataSelector:      DefaultDataSelector,
		strategy:          SubstringMatch{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateGridItems reconciles every rendered grid card against the
// candidate products, in DOM order. Only structural page defects (missing
// grid, driver failures during preparation) return an error; everything else
// lands in the report.
func (v *GridValidator) ValidateGridItems(products []catalog.Product) (Report, error) {
	log.Printf("validating grid items against product data")

	interactor := NewDataInteractor(v.page, v.containerSelector, v.dataSelector)
	if err := interactor.ExpandDataElements(); err != nil {
		return Report{}, err
	}

	items := v.page.Locator(v.itemSelector)
	count, err := items.Count()
	if err != nil {
		return Report{}, fmt.Errorf("counting grid items: %w", err)
	}

	log.Printf("found %d grid items to validate", count)

	if count == 0 {
		report := Report{Errors: []string{"no grid items found on the page"}}
		v.logSummary(report)
		return report, nil
	}

	report := Report{Passed: true, GridItems: count}
	for i := 0; i < count; i++ {
		itemErrs, matched := v.validateGridItem(items.Nth(i), i+1, products)
		if matched {
			report.Matched++
		}
		if len(itemErrs) > 0 {
			report.Passed = false
			report.Errors = append(report.Errors, itemErrs...)
		}
	}

	v.logSummary(report)
	return report, nil
}

// validateGridItem pairs one card with a product and checks its fields,
// returning the failure descriptions for this card and whether a product
// was paired at all. gridIndex is 1-based.
func (v *GridValidator) validateGridItem(card Locator, gridIndex int, products []catalog.Product) ([]string, bool) {
	gridText, err := card.TextContent()
	if err != nil {
		return []string{fmt.Sprintf("could not read text of grid item %d: %v", gridIndex, err)}, false
	}

	product := FindMatchingProductWith(v.strategy, gridText, products)
	if product == nil {
		return []string{fmt.Sprintf("no matching product found for grid item %d", gridIndex)}, false
	}

	expected := FormatProductValues(*product)
	log.Printf("grid %d: %s", gridIndex, product.Name)
	log.Printf("   expected: %s %s | %s | %s",
		expected.Price, product.PriceCurrency, expected.DataPlan, expected.Duration)

	results := ValidateProductFields(card, expected, gridIndex)
	if AllFieldsPassed(results) {
		log.Printf("   grid %d validation passed", gridIndex)
		return nil, true
	}

	log.Printf("   grid %d validation failed", gridIndex)
	return FieldErrors(results), true
}

func (v *GridValidator) logSummary(report Report) {
	if report.Passed {
		log.Printf("all grid validations passed")
		return
	}

	log.Printf("grid validation failed: %d of %d items matched, %d errors",
		report.Matched, report.GridItems, len(report.Errors))
	for _, e := range report.Errors {
		log.Printf("   %s", e)
	}
}
