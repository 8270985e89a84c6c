package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// FixtureProduct identifies one product a scenario expects to see on the page
type FixtureProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CurrencyFixture lists the products to validate for one currency
type CurrencyFixture struct {
	Products []FixtureProduct `json:"products"`
}

// FixtureFile is the nested countryCode -> currency -> products mapping that
// selects which product IDs each scenario validates. Loaded once per run.
type FixtureFile struct {
	Countries map[string]map[string]CurrencyFixture `json:"countries"`
}

// LoadFixtureFile reads and parses the scenario fixture file
func LoadFixtureFile(path string) (*FixtureFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixtures FixtureFile
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file %s: %w", path, err)
	}

	return &fixtures, nil
}

// ProductsFor returns the fixture products for a country/currency pair
func (f *FixtureFile) ProductsFor(countryCode, currency string) ([]FixtureProduct, error) {
	currencies, ok := f.Countries[countryCode]
	if !ok {
		return nil, fmt.Errorf("no fixture data for country %q", countryCode)
	}

	fixture, ok := currencies[currency]
	if !ok {
		return nil, fmt.Errorf("no fixture data for country %q in currency %q", countryCode, currency)
	}

	if len(fixture.Products) == 0 {
		return nil, fmt.Errorf("fixture for %s/%s lists no products", countryCode, currency)
	}

	return fixture.Products, nil
}
