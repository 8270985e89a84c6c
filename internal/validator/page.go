package validator

import "time"

// Load states accepted by Page.WaitForLoadState
const (
	LoadStateLoad        = "load"
	LoadStateNetworkIdle = "networkidle"
)

// Page is the capability set the validator needs from a browser driver.
// The reconciliation logic depends only on this interface, never on a
// concrete automation product.
type Page interface {
	// Locator resolves a selector to the elements it currently matches
	Locator(selector string) Locator

	// WaitForLoadState blocks until the page reaches the given load state
	WaitForLoadState(state string) error

	// WaitForTimeout pauses the calling flow for the given duration
	WaitForTimeout(d time.Duration)
}

// Locator points at zero or more elements on the page
type Locator interface {
	// Count returns how many elements the locator currently resolves to
	Count() (int, error)

	// Nth narrows the locator to the element at the given zero-based index
	Nth(index int) Locator

	// TextContent returns the full text content of the first element
	TextContent() (string, error)

	// GetByText narrows to the first descendant containing the given text.
	// With exact false this is a substring, case-sensitive match.
	GetByText(text string, exact bool) Locator

	// Click clicks the element, waiting at most timeout for it to be actionable
	Click(timeout time.Duration) error

	// WaitForVisible blocks until the element is visible or timeout elapses
	WaitForVisible(timeout time.Duration) error
}
