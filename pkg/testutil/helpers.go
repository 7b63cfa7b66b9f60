// Package testutil provides common utility functions for testing.
package testutil

import (
	"errors"

	"github.com/iwvelando/opportunity-calculator/internal/calculator"
)

// FindPoint finds a chart point by its label.
// Returns a pointer to the point if found, nil otherwise.
func FindPoint(points []calculator.ChartPoint, label string) *calculator.ChartPoint {
	for i := range points {
		if points[i].Label == label {
			return &points[i]
		}
	}
	return nil
}

// WarningFields lists the input fields named by the division-by-zero
// warnings, in order.
func WarningFields(warnings []error) []string {
	var fields []string
	for _, warning := range warnings {
		var divErr *calculator.DivisionByZeroError
		if errors.As(warning, &divErr) {
			fields = append(fields, divErr.Field)
		}
	}
	return fields
}
