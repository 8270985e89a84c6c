package validator

import (
	"strings"

	"github.com/betterroaming/esim-e2e/internal/catalog"
)

// MatchStrategy decides whether a grid card's rendered text corresponds to a
// product's expected price and data plan strings. The default substring
// strategy tolerates surrounding markup but can false-positive when two
// products share a price and data combination; tighter strategies are
// provided for pages where that happens.
type MatchStrategy interface {
	Matches(gridText, price, dataPlan string) bool
}

// SubstringMatch matches when both expected strings occur anywhere in the
// card text. This is the storefront's default policy.
type SubstringMatch struct{}

func (SubstringMatch) Matches(gridText, price, dataPlan string) bool {
	return strings.Contains(gridText, price) && strings.Contains(gridText, dataPlan)
}

// FieldMatch matches only when the expected strings occur as whole fields,
// i.e. not embedded in a longer number or word. Guards against "19.99"
// matching inside "119.99".
type FieldMatch struct{}

func (FieldMatch) Matches(gridText, price, dataPlan string) bool {
	return containsField(gridText, price) && containsField(gridText, dataPlan)
}

func containsField(text, field string) bool {
	for offset := 0; ; {
		i := strings.Index(text[offset:], field)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(field)
		if !adjoinsAlphanumeric(text, start, end) {
			return true
		}
		offset = start + 1
	}
}

func adjoinsAlphanumeric(text string, start, end int) bool {
	if start > 0 && isFieldChar(text[start-1]) {
		return true
	}
	if end < len(text) && isFieldChar(text[end]) {
		return true
	}
	return false
}

// isFieldChar treats the decimal point as part of a field so "999" does not
// match inside "9.999".
func isFieldChar(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '.'
}

// NormalizedNumericMatch strips thousand separators from the card text
// before the substring check, so "1,000 MB" still matches "1000 MB".
type NormalizedNumericMatch struct{}

func (NormalizedNumericMatch) Matches(gridText, price, dataPlan string) bool {
	normalized := strings.ReplaceAll(gridText, ",", "")
	return strings.Contains(normalized, price) && strings.Contains(normalized, dataPlan)
}

// FindMatchingProduct pairs a grid card's text with the first product whose
// price and data plan strings both occur in it, using the default substring
// strategy. Returns nil when the text is empty or nothing matches.
func FindMatchingProduct(gridText string, products []catalog.Product) *catalog.Product {
	return FindMatchingProductWith(SubstringMatch{}, gridText, products)
}

// FindMatchingProductWith is FindMatchingProduct with an explicit strategy.
// Products are tried in list order and the first match wins, so callers must
// order candidates to break ties when products share a price.
func FindMatchingProductWith(strategy MatchStrategy, gridText string, products []catalog.Product) *catalog.Product {
	if gridText == "" {
		return nil
	}

	for i := range products {
		product := &products[i]
		// Records without a price or data allowance never match
		if !isEligible(product) {
			continue
		}

		price := FormatAmount(product.Price)
		dataPlan := FormatDataPlan(product.Data, product.DataUnit)

		if strategy.Matches(gridText, price, dataPlan) {
			return product
		}
	}

	return nil
}

// isEligible reports whether a product carries enough data to be matched
// against rendered text. Zero-price or zero-data records are skipped.
func isEligible(product *catalog.Product) bool {
	return product.Price != 0 && product.Data != 0
}
