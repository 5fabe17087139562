package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MicroUnitDecimals is the number of decimals of the native STX unit.
const MicroUnitDecimals int32 = 6

// ParseFloatOrZero parses a decimal string such as "12.5" or "1e3".
// Empty, malformed or out of float64 range input yields 0.
func ParseFloatOrZero(s string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return FiniteOrZero(d.InexactFloat64())
}

// FiniteOrZero maps NaN and infinities to 0; JSON cannot encode them.
func FiniteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FromBaseUnits converts an integer amount expressed in base units (e.g. micro-STX)
// into whole units. Fractional input is truncated first, malformed input yields 0.
// Example: raw="1500000", decimals=6 => 1.5
func FromBaseUnits(raw string, decimals int32) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return FiniteOrZero(d.Truncate(0).Shift(-decimals).InexactFloat64())
}

// FormatFixed renders v with exactly places fractional digits.
func FormatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// FormatUSD renders v as a dollar amount, e.g. "$850.00".
func FormatUSD(v float64, places int32) string {
	return "$" + FormatFixed(v, places)
}

// FormatSignedPercent renders a percentage with an explicit plus sign for gains, e.g. "+3.2%".
func FormatSignedPercent(v float64) string {
	s := FormatFixed(v, 1) + "%"
	if v > 0 {
		return "+" + s
	}
	return s
}
