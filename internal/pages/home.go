// Package pages holds page objects for the storefront. Page objects drive
// the raw playwright API; validation logic lives in internal/validator and
// talks to the page only through the driver interfaces.
package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Home page selectors and labels
const (
	acceptAllButton        = `button:has-text("Accept All")`
	currencyMenuLabel      = "Currency"
	destinationPlaceholder = "Search your destination"
	destinationAnchorText  = "Why a BetterRoaming eSIM for"
)

// currencyLabels maps ISO currency codes to the visible labels in the
// currency picker
var currencyLabels = map[string]string{
	"EUR": "€ EUR",
	"USD": "$ USD",
	"GBP": "£ GBP",
	"THB": "฿ THB",
	"BRL": "R$ BRL",
}

// destinationNames maps destination codes to the option labels in the
// destination search dropdown
var destinationNames = map[string]string{
	"BR": "Brazil",
	"TH": "Thailand",
	"US": "United States",
	"DE": "Germany",
}

// HomePage drives the storefront landing page
type HomePage struct {
	page playwright.Page
}

// NewHomePage creates a page object for the storefront home page
func NewHomePage(page playwright.Page) *HomePage {
	return &HomePage{page: page}
}

// Goto navigates to the storefront and dismisses the cookie banner
func (h *HomePage) Goto(url string) error {
	if _, err := h.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	accept := h.page.Locator(acceptAllButton)
	if err := accept.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("cookie banner did not appear: %w", err)
	}
	if err := accept.Click(); err != nil {
		return fmt.Errorf("failed to accept cookies: %w", err)
	}

	return nil
}

// SelectCurrency switches the displayed currency via the header picker
func (h *HomePage) SelectCurrency(currency string) error {
	label, ok := currencyLabels[currency]
	if !ok {
		return fmt.Errorf("no currency picker label mapped for %q", currency)
	}

	if err := h.page.GetByText(currencyMenuLabel).Click(); err != nil {
		return fmt.Errorf("failed to open currency picker: %w", err)
	}
	if err := h.page.GetByText(label).Click(); err != nil {
		return fmt.Errorf("failed to select currency %s: %w", currency, err)
	}

	return nil
}

// SearchDestination types a destination into the search box, picks the
// matching option and scrolls the plan grid into view
func (h *HomePage) SearchDestination(destination string) error {
	name, ok := destinationNames[destination]
	if !ok {
		return fmt.Errorf("no destination option mapped for %q", destination)
	}

	if err := h.page.GetByPlaceholder(destinationPlaceholder).Fill(destination); err != nil {
		return fmt.Errorf("failed to fill destination search: %w", err)
	}

	option := h.page.GetByRole(*playwright.AriaRoleOption, playwright.PageGetByRoleOptions{
		Name: name,
	})
	if err := option.Click(); err != nil {
		return fmt.Errorf("failed to pick destination %s: %w", name, err)
	}

	// Settle the page so the plan grid is rendered before validation
	anchor := h.page.GetByText(destinationAnchorText)
	if err := anchor.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("failed to scroll to plan grid: %w", err)
	}

	return nil
}
