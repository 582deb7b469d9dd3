package invoice

import (
	"github.com/shopspring/decimal"
)

// TaxConfig is the account-level tax setting applied to invoice totals.
type TaxConfig struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"` // percentage, e.g. 10 for 10%
	Label   string  `json:"label"`
}

// Totals is the derived money block persisted with every invoice write.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Subtotal sums line amounts, exact to two decimal places.
func Subtotal(items []Item) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Amount))
	}
	f, _ := sum.Round(2).Float64()
	return f
}

// Tax computes the tax amount on a subtotal. Returns 0 when tax is disabled.
func Tax(subtotal float64, cfg TaxConfig) float64 {
	if !cfg.Enabled {
		return 0
	}
	rate := decimal.NewFromFloat(cfg.Rate).Div(decimal.NewFromInt(100))
	f, _ := decimal.NewFromFloat(subtotal).Mul(rate).Round(2).Float64()
	return f
}

// Total sums subtotal and tax.
func Total(subtotal, tax float64) float64 {
	f, _ := decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(tax)).Round(2).Float64()
	return f
}

// Calculate recomputes the full totals block for a set of items under the
// given tax configuration.
func Calculate(items []Item, cfg TaxConfig) Totals {
	sub := Subtotal(items)
	tax := Tax(sub, cfg)
	return Totals{
		Subtotal: sub,
		Tax:      tax,
		Total:    Total(sub, tax),
	}
}
