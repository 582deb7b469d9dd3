package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain number", "12.50", 12.50},
		{"dollar sign stripped", "$12.50", 12.50},
		{"thousands separator stripped", "1,250.75", 1250.75},
		{"currency code stripped", "USD 99.95", 99.95},
		{"truncates extra decimals", "12.999", 12.99},
		{"truncates not rounds", "0.019", 0.01},
		{"integer input", "100", 100},
		{"empty string", "", 0},
		{"letters only", "abc", 0},
		{"negative sign stripped", "-5.00", 5.00},
		{"trailing dot", "12.", 12},
		{"second dot discards rest", "1.2.3", 1.2},
		{"version-like string", "1.22.45", 1.22},
		{"leading dot", ".5", 0.5},
		{"whitespace", "  7.25  ", 7.25},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"two decimals", 12.5, "12.50"},
		{"integer", 100, "100.00"},
		{"zero", 0, "0.00"},
		{"already exact", 99.99, "99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.30, Round2(1.3000000000000003))
	assert.Equal(t, 14.30, Round2(14.299999999999999))
	assert.Equal(t, 0.13, Round2(0.125)) // half-up
	assert.Equal(t, 5.00, Round2(5))
}
