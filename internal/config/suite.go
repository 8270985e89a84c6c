package config

import (
	"fmt"
)

// Default scenario parameters, matching the storefront's most common market
const (
	DefaultCurrency    = "EUR"
	DefaultDestination = "BR"
	DefaultDataFile    = "data/currency.data.json"
)

// SuiteConfig holds the scenario parameters for a validation run
type SuiteConfig struct {
	CountryCode string
	Currency    string
	Destination string
	PageURL     string
	APIURL      string
	DataFile    string
}

// LoadSuiteConfig loads scenario configuration from environment variables.
// COUNTRY_CODE, CURRENCY and PAGE_URL identify the scenario; a run with none
// of them set has no scenario at all and is a configuration error.
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	config := &SuiteConfig{
		CountryCode: getenv("COUNTRY_CODE"),
		Currency:    getenv("CURRENCY"),
		Destination: getenv("DESTINATION"),
		PageURL:     getenv("PAGE_URL"),
		APIURL:      getenv("API_URL"),
		DataFile:    getenv("CURRENCY_DATA_FILE"),
	}

	if config.CountryCode == "" && config.Currency == "" && config.PageURL == "" {
		return nil, fmt.Errorf("COUNTRY_CODE, CURRENCY, and PAGE_URL must be set")
	}
	if config.APIURL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}

	// Fill optional fields
	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	if config.Destination == "" {
		config.Destination = DefaultDestination
	}
	if config.DataFile == "" {
		config.DataFile = DefaultDataFile
	}

	return config, nil
}
