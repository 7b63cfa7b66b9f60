// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/opportunity-calculator/pkg/constants"
)

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ToPercentage converts a ratio into a percentage, e.g. 1.375 -> 137.5
func ToPercentage(ratio float64) float64 {
	return ratio * constants.PercentageMultiplier
}

// FinitePtr returns a pointer to val, or nil when val is not finite. JSON
// encoders reject NaN and infinities, so the nil pointer encodes as null.
func FinitePtr(val float64) *float64 {
	if !IsFinite(val) {
		return nil
	}
	return &val
}
