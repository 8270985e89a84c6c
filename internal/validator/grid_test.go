package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/betterroaming/esim-e2e/internal/catalog"
)

func newTestValidator(page Page) *GridValidator {
	return NewGridValidator(page,
		WithSelectors(testContainerSelector, testItemSelector, testDataSelector))
}

func TestValidateGridItemsMissingContainerIsFatal(t *testing.T) {
	page := newFakePage()

	_, err := newTestValidator(page).ValidateGridItems(nil)
	if err == nil {
		t.Fatal("expected structural error for missing grid container")
	}
	if !strings.Contains(err.Error(), "grid element not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateGridItemsEmptyGridFails(t *testing.T) {
	page := newFakePage()
	page.addList(testContainerSelector, &fakeCard{})
	page.addList(testItemSelector)

	report, err := newTestValidator(page).ValidateGridItems(nil)
	if err != nil {
		t.Fatalf("empty grid must not be a structural error, got: %v", err)
	}

	if report.Passed {
		t.Error("expected failed report for empty grid")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "no grid items found") {
		t.Errorf("expected a 'no grid items found' error, got %q", report.Errors[0])
	}
}

func TestValidateGridItemsFullPass(t *testing.T) {
	card := &fakeCard{
		text:    "Thailand eSIM 5 GB Data only 9.99 EUR 7 DAYS",
		visible: []string{"9.99", "5 GB", "7 DAYS", "Data only"},
	}

	page := newFakePage()
	page.addList(testContainerSelector, &fakeCard{})
	page.addList(testItemSelector, card)

	products := []catalog.Product{testProduct("p1", 9.99, 5)}

	report, err := newTestValidator(page).ValidateGridItems(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Passed {
		t.Errorf("expected passing report, errors: %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("expected zero errors, got %v", report.Errors)
	}
	if report.GridItems != 1 || report.Matched != 1 {
		t.Errorf("expected 1 item and 1 match, got %d/%d", report.GridItems, report.Matched)
	}
}

func TestValidateGridItemsPriceNotVisible(t *testing.T) {
	// Card text matches the product, but the price is not rendered visibly
	card := &fakeCard{
		text:    "Thailand eSIM 5 GB Data only 9.99 EUR 7 DAYS",
		visible: []string{"5 GB", "7 DAYS", "Data only"},
	}

	page := newFakePage()
	page.addList(testContainerSelector, &fakeCard{})
	page.addList(testItemSelector, card)

	products := []catalog.Product{testProduct("p1", 9.99, 5)}

	report, err := newTestValidator(page).ValidateGridItems(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Passed {
		t.Error("expected failed report")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "Price") || !strings.Contains(report.Errors[0], "1") {
		t.Errorf("expected error referencing Price and grid item 1, got %q", report.Errors[0])
	}
}

func TestValidateGridItemsUnmatchedCard(t *testing.T) {
	// Card 1 matches product 2 and renders everything; card 2 matches nothing
	matched := &fakeCard{
		text:    "Thailand eSIM 10 GB Data only 14.99 EUR 7 DAYS",
		visible: []string{"14.99", "10 GB", "7 DAYS", "Data only"},
	}
	stray := &fakeCard{
		text: "Mystery plan 42 GB for 99.99",
	}

	page := newFakePage()
	page.addList(testContainerSelector, &fakeCard{})
	page.addList(testItemSelector, matched, stray)

	products := []catalog.Product{
		testProduct("p1", 9.99, 5),
		testProduct("p2", 14.99, 10),
		testProduct("p3", 24.99, 20),
	}

	report, err := newTestValidator(page).ValidateGridItems(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Passed {
		t.Error("expected failed report")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "no matching product found for grid item 2") {
		t.Errorf("expected an unmatched error for grid item 2, got %q", report.Errors[0])
	}
	if report.Matched != 1 {
		t.Errorf("expected 1 matched item, got %d", report.Matched)
	}
}

func TestValidateGridItemsTextReadFailure(t *testing.T) {
	broken := &fakeCard{textErr: errors.New("element detached")}

	page := newFakePage()
	page.addList(testContainerSelector, &fakeCard{})
	page.addList(testItemSelector, broken)

	report, err := newTestValidator(page).ValidateGridItems(nil)
	if err != nil {
		t.Fatalf("per-item text failure must not abort the run, got: %v", err)
	}

	if report.Passed {
		t.Error("expected failed report")
	}
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], "grid item 1") {
		t.Errorf("expected one error for grid item 1, got %v", report.Errors)
	}
}

func TestValidateGridItemsCustomStrategy(t *testing.T) {
	// Rendered with a thousand separator the API's numeric form lacks
	card := &fakeCard{
		text:    "Europe eSIM 1,000 MB Data only 9.99 EUR 7 DAYS",
		visible: []string{"9.99", "1000 MB", "7 DAYS", "Data only"},
	}

	page := newFakePage()
	page.addList(testContainerSelector, &fakeCard{})
	page.addList(testItemSelector, card)

	products := []catalog.Product{
		{ID: "mb", Name: "mb", Price: 9.99, PriceCurrency: "EUR",
			Data: 1000, DataUnit: "MB", Duration: 7, DurationUnit: "DAYS"},
	}

	// Default substring strategy cannot pair the card
	report, err := newTestValidator(page).ValidateGridItems(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Passed {
		t.Error("expected default strategy to leave the card unmatched")
	}

	// The normalized strategy pairs it
	v := NewGridValidator(page,
		WithSelectors(testContainerSelector, testItemSelector, testDataSelector),
		WithStrategy(NormalizedNumericMatch{}))

	report, err = v.ValidateGridItems(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Passed {
		t.Errorf("expected normalized strategy to pass, errors: %v", report.Errors)
	}
}
