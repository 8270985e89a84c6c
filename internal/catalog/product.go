package catalog

// Recognized data allowance units
const (
	DataUnitGB = "GB"
	DataUnitMB = "MB"
	DataUnitKB = "KB"
)

// Recognized plan duration units
const (
	DurationUnitDays    = "DAYS"
	DurationUnitHours   = "HOURS"
	DurationUnitMinutes = "MINUTES"
)

// Product is a single plan offer as returned by the catalog API
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	FootprintCode  string   `json:"footprint_code"`
	Duration       int      `json:"duration"`
	DurationUnit   string   `json:"duration_unit"`
	Price          float64  `json:"price"`
	PriceCurrency  string   `json:"price_currency"`
	Data           float64  `json:"data"`
	DataRaw        float64  `json:"data_raw"`
	DataUnit       string   `json:"data_unit"`
	Footprint      []string `json:"footprint"`
	SourcePrice    float64  `json:"source_price"`
	SourceCurrency string   `json:"source_currency"`
	FXRate         float64  `json:"fx_rate"`
}

// ProductsResponse is the payload of the default products endpoint
type ProductsResponse struct {
	Products           []Product `json:"products"`
	AvailableCountries []string  `json:"availableCountries"`
}
