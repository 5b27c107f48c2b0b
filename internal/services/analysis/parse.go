package analysis

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// parseDecimal parses a decimal string, yielding zero for empty or malformed input.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseFloat is parseDecimal as a float64.
func parseFloat(s string) float64 {
	f, _ := parseDecimal(s).Float64()
	return f
}

// percent converts a string-encoded fraction ("0.35") into a percentage (35).
func percent(s string) float64 {
	f, _ := parseDecimal(s).Mul(hundred).Float64()
	return f
}

func floatOr0(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func intOr0(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
