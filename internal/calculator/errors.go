package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is matched by every DivisionByZeroError.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownField is returned when an edit names a field the form does
	// not have.
	ErrUnknownField = errors.New("unknown field")
)

// DivisionByZeroError reports an input field whose zero value is used as a
// divisor. The affected results are non-finite.
type DivisionByZeroError struct {
	Field string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s is zero: dependent results are not finite", e.Field)
}

// Is makes errors.Is(err, ErrDivisionByZero) hold.
func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// Diagnose returns one DivisionByZeroError per zero divisor in the inputs.
// The result is nil when every divisor is non-zero.
func Diagnose(b Baseline, o Opportunity) []error {
	divisors := []struct {
		field string
		value float64
	}{
		{FieldBaselineTimeframeWeeks, float64(b.TimeframeWeeks)},
		{FieldBaselineAvailableHours, b.AvailableHoursPerWeek},
		{FieldBaselineGoalAmount, b.GoalAmount},
		{FieldOpportunityTimeframeWeeks, float64(o.TimeframeWeeks)},
		{FieldOpportunityRequiredHours, o.RequiredHours},
	}

	var errs []error
	for _, d := range divisors {
		if d.value == 0 {
			errs = append(errs, &DivisionByZeroError{Field: d.field})
		}
	}
	return errs
}
