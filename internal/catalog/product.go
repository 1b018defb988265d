// Package catalog defines the product model and the client for the external
// recommendation backend.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when the backend omits a currency code.
const DefaultCurrency = "USD"

// Product is a recommended item. Products are immutable once fetched; ID is
// empty until the product is copied into a cart, where a fresh ID is
// assigned so duplicate likes stay distinguishable.
type Product struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Image       string          `json:"image"`
	ID          string          `json:"id,omitempty"`
}

// ResolveImageURL rewrites a relative image path against the backend base
// URL. Absolute URLs pass through unchanged. No separator is inserted: a
// stored path without a leading slash is the backend's malformed data, not
// ours to correct.
func ResolveImageURL(image, base string) string {
	if strings.HasPrefix(image, "http") {
		return image
	}
	return base + image
}
