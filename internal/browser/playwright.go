// Package browser adapts playwright-go to the driver interfaces the
// validator depends on, and owns the shared browser lifecycle for runs.
package browser

import (
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/betterroaming/esim-e2e/internal/validator"
)

// Fixture owns the playwright runtime and a shared browser instance.
// Set HEADLESS=false to watch the browser while debugging.
type Fixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// NewFixture starts playwright and launches a Chromium browser
func NewFixture() (*Fixture, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	headless := os.Getenv("HEADLESS") != "false"
	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Fixture{PW: pw, Browser: b}, nil
}

// NewPage opens a fresh page in the shared browser
func (f *Fixture) NewPage() (playwright.Page, error) {
	return f.Browser.NewPage()
}

// Close releases the browser and the playwright runtime
func (f *Fixture) Close() {
	if f.Browser != nil {
		f.Browser.Close()
	}
	if f.PW != nil {
		f.PW.Stop()
	}
}

// Page adapts a playwright page to validator.Page
type Page struct {
	page playwright.Page
}

// NewPage wraps a playwright page for the validator
func NewPage(page playwright.Page) *Page {
	return &Page{page: page}
}

func (p *Page) Locator(selector string) validator.Locator {
	return &locator{inner: p.page.Locator(selector)}
}

func (p *Page) WaitForLoadState(state string) error {
	return p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: loadState(state),
	})
}

func (p *Page) WaitForTimeout(d time.Duration) {
	p.page.WaitForTimeout(float64(d.Milliseconds()))
}

func loadState(state string) *playwright.LoadState {
	switch state {
	case validator.LoadStateNetworkIdle:
		return playwright.LoadStateNetworkidle
	case "domcontentloaded":
		return playwright.LoadStateDomcontentloaded
	default:
		return playwright.LoadStateLoad
	}
}

// locator adapts a playwright locator to validator.Locator
type locator struct {
	inner playwright.Locator
}

func (l *locator) Count() (int, error) {
	return l.inner.Count()
}

func (l *locator) Nth(index int) validator.Locator {
	return &locator{inner: l.inner.Nth(index)}
}

func (l *locator) TextContent() (string, error) {
	return l.inner.TextContent()
}

func (l *locator) GetByText(text string, exact bool) validator.Locator {
	match := l.inner.GetByText(text, playwright.LocatorGetByTextOptions{
		Exact: playwright.Bool(exact),
	})
	return &locator{inner: match.First()}
}

func (l *locator) Click(timeout time.Duration) error {
	return l.inner.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (l *locator) WaitForVisible(timeout time.Duration) error {
	return l.inner.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}
