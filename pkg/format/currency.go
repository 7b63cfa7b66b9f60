// Package format renders calculator figures as display strings.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/opportunity-calculator/pkg/mathutil"
)

// NotAvailable is rendered in place of a non-finite value.
const NotAvailable = "n/a"

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return NotAvailable
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Rate returns an hourly rate such as "$50.00/hour".
func Rate(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return NotAvailable
	}
	return Currency(amount) + "/hour"
}

// Percent renders a ratio as a percentage with one decimal (1.375 -> "137.5%").
func Percent(ratio float64) string {
	if !mathutil.IsFinite(ratio) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", mathutil.ToPercentage(ratio))
}

// Hours renders an hour count without trailing zeros ("10", "7.5").
func Hours(hours float64) string {
	if !mathutil.IsFinite(hours) {
		return NotAvailable
	}
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", hours), "0"), ".")
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
