// Package money normalizes user-entered currency text and keeps derived
// amounts exact to two decimal places.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse extracts a monetary value from free-form text. Currency symbols,
// separators, and any other non-numeric characters are stripped; the
// fractional part is truncated (not rounded) to two digits. Digits after
// a second decimal point are discarded, so "1.2.3" parses as 1.2.
// Unparseable input yields 0 — entry fields must never surface a parse
// error.
func Parse(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	parts := strings.SplitN(b.String(), ".", 3)
	cleaned := parts[0]
	if len(parts) > 1 {
		frac := parts[1]
		if len(frac) > 2 {
			frac = frac[:2]
		}
		if frac != "" {
			cleaned += "." + frac
		}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Format renders v with exactly two decimal places and no currency symbol.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Round2 rounds v to two decimal places using half-up rounding. Derived
// amounts are passed through this before persistence so stored values are
// exact.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
