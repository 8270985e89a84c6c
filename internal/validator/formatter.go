package validator

import (
	"strconv"

	"github.com/betterroaming/esim-e2e/internal/catalog"
)

// PlanTypeDataOnly is the only plan type the storefront currently sells
const PlanTypeDataOnly = "Data only"

// singularUnits maps plural duration unit tokens to their singular form.
// Unknown units pass through unchanged.
var singularUnits = map[string]string{
	"DAYS":    "DAY",
	"HOURS":   "HOUR",
	"MINUTES": "MINUTE",
}

// ExpectedValues holds the display strings one grid card must show for a product
type ExpectedValues struct {
	Price    string
	DataPlan string
	Duration string
	PlanType string
}

// FormatAmount renders a numeric amount the way the storefront does:
// natural decimal form, no padding or trailing zeros
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// FormatDataPlan renders a data allowance, e.g. "5 GB". The unit is not
// validated; unrecognized units concatenate as-is.
func FormatDataPlan(amount float64, unit string) string {
	return FormatAmount(amount) + " " + unit
}

// FormatDuration renders a plan duration, e.g. "7 DAYS" or "1 DAY".
// The unit token is singularized when the amount is exactly 1.
func FormatDuration(amount int, unit string) string {
	formattedUnit := unit
	if amount == 1 {
		if singular, ok := singularUnits[unit]; ok {
			formattedUnit = singular
		}
	}
	return strconv.Itoa(amount) + " " + formattedUnit
}

// FormatProductValues computes the display strings expected for a product
func FormatProductValues(product catalog.Product) ExpectedValues {
	return ExpectedValues{
		Price:    FormatAmount(product.Price),
		DataPlan: FormatDataPlan(product.Data, product.DataUnit),
		Duration: FormatDuration(product.Duration, product.DurationUnit),
		PlanType: PlanTypeDataOnly,
	}
}
