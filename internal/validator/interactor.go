package validator

import (
	"fmt"
	"log"
	"time"
)

const (
	// maxDataElements caps how many toggles one run will click, so a page
	// rendering hundreds of cards cannot stall the suite
	maxDataElements = 10

	clickTimeout     = 5 * time.Second
	clickSettleDelay = 200 * time.Millisecond
)

// DataInteractor expands the collapsed "Data" toggles on plan cards so the
// grid text is fully rendered before reconciliation starts. It is a page
// preparation step, not part of the validation logic itself.
type DataInteractor struct {
	page              Page
	containerSelector string
	dataSelector      string
}

// NewDataInteractor creates an interactor for the given grid container and
// toggle selectors
func NewDataInteractor(page Page, containerSelector, dataSelector string) *DataInteractor {
	return &DataInteractor{
		page:              page,
		containerSelector: containerSelector,
		dataSelector:      dataSelector,
	}
}

// ExpandDataElements checks the grid exists, waits for the page to go quiet
// and clicks the "Data" toggles. A missing grid is a structural page defect
// and fails the run; an individual toggle that will not click is logged and
// skipped.
func (d *DataInteractor) ExpandDataElements() error {
	log.Printf(`expanding "Data" elements in grid`)

	if err := d.ensureGridExists(); err != nil {
		return err
	}

	if err := d.page.WaitForLoadState(LoadStateNetworkIdle); err != nil {
		return fmt.Errorf("waiting for page load: %w", err)
	}

	count, err := d.countDataElements()
	if err != nil {
		return err
	}

	d.clickDataElements(count)
	return nil
}

func (d *DataInteractor) ensureGridExists() error {
	count, err := d.page.Locator(d.containerSelector).Count()
	if err != nil {
		return fmt.Errorf("counting grid elements: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("grid element not found on the page")
	}
	return nil
}

func (d *DataInteractor) countDataElements() (int, error) {
	count, err := d.page.Locator(d.dataSelector).Count()
	if err != nil {
		return 0, fmt.Errorf("counting data elements: %w", err)
	}

	log.Printf(`found %d "Data" elements in the grid`, count)

	if count == 0 {
		log.Printf(`warning: no "Data" elements found in grid`)
		return 0, nil
	}
	if count > maxDataElements {
		log.Printf("warning: found %d elements, limiting to first %d to avoid timeout", count, maxDataElements)
		count = maxDataElements
	}
	return count, nil
}

func (d *DataInteractor) clickDataElements(count int) {
	elements := d.page.Locator(d.dataSelector)

	for i := 0; i < count; i++ {
		log.Printf(`clicking "Data" element %d of %d`, i+1, count)

		if err := elements.Nth(i).Click(clickTimeout); err != nil {
			// Not fatal: an unexpanded card may still validate
			log.Printf(`failed to click "Data" element %d: %v`, i+1, err)
			continue
		}
		d.page.WaitForTimeout(clickSettleDelay)
	}

	log.Printf(`processed %d "Data" elements`, count)
}
