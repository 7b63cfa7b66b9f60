package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Form field names, as used by the web UI and the edit API.
const (
	FieldBaselineGoalAmount        = "baseline.goalAmount"
	FieldBaselineTimeframeWeeks    = "baseline.timeframeWeeks"
	FieldBaselineAvailableHours    = "baseline.availableHoursPerWeek"
	FieldBaselineCurrentHourlyRate = "baseline.currentHourlyRate"

	FieldOpportunityName               = "opportunity.name"
	FieldOpportunityOfferedAmount      = "opportunity.offeredAmount"
	FieldOpportunityRequiredHours      = "opportunity.requiredHours"
	FieldOpportunityTimeframeWeeks     = "opportunity.timeframeWeeks"
	FieldOpportunitySerendipityPercent = "opportunity.serendipityPercent"
	FieldOpportunityAdditionalBenefits = "opportunity.additionalBenefits"
)

// Serendipity slider bounds.
const (
	MinSerendipityPercent  = 0.0
	MaxSerendipityPercent  = 100.0
	SerendipityPercentStep = 5.0
)

// Input is the complete form state. Edits produce a new Input rather than
// modifying one in place.
type Input struct {
	Baseline    Baseline    `json:"baseline" yaml:"baseline"`
	Opportunity Opportunity `json:"opportunity" yaml:"opportunity"`
}

// DefaultInput returns the form state a new session starts with.
func DefaultInput() Input {
	return Input{
		Baseline: Baseline{
			GoalAmount:            0,
			TimeframeWeeks:        4,
			AvailableHoursPerWeek: 20,
			CurrentHourlyRate:     0,
		},
		Opportunity: Opportunity{
			Name:               "Add opportunity here",
			OfferedAmount:      0,
			RequiredHours:      0,
			TimeframeWeeks:     4,
			SerendipityPercent: 20,
			AdditionalBenefits: 0,
		},
	}
}

// ParseNumber coerces user text into a number. Like a browser's parseFloat
// it reads the longest leading decimal number and ignores the rest, so
// "12abc" is 12. Text without a leading number, and values that are not
// finite, become zero.
func ParseNumber(raw string) float64 {
	prefix := numberPrefix(strings.TrimSpace(raw))
	if prefix == "" {
		return 0
	}
	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// numberPrefix returns the leading [sign] digits [. digits] [e [sign] digits]
// part of s, or "" when s does not start with a number.
func numberPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		digits += j - fracStart
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ParseWeeks coerces user text into a whole number of weeks, truncating any
// fractional part. Values beyond the int range saturate.
func ParseWeeks(raw string) int {
	value := ParseNumber(raw)
	switch {
	case value >= math.MaxInt:
		return math.MaxInt
	case value <= math.MinInt:
		return math.MinInt
	}
	return int(value)
}

// ClampSerendipity bounds a percentage to the slider range and snaps it to the
// slider step.
func ClampSerendipity(percent float64) float64 {
	if math.IsNaN(percent) {
		return MinSerendipityPercent
	}
	clamped := math.Max(MinSerendipityPercent, math.Min(MaxSerendipityPercent, percent))
	return math.Round(clamped/SerendipityPercentStep) * SerendipityPercentStep
}

// With returns a copy of the input with one field replaced by the coerced raw
// value.
func (in Input) With(field, raw string) (Input, error) {
	out := in
	switch field {
	case FieldBaselineGoalAmount:
		out.Baseline.GoalAmount = ParseNumber(raw)
	case FieldBaselineTimeframeWeeks:
		out.Baseline.TimeframeWeeks = ParseWeeks(raw)
	case FieldBaselineAvailableHours:
		out.Baseline.AvailableHoursPerWeek = ParseNumber(raw)
	case FieldBaselineCurrentHourlyRate:
		out.Baseline.CurrentHourlyRate = ParseNumber(raw)
	case FieldOpportunityName:
		out.Opportunity.Name = raw
	case FieldOpportunityOfferedAmount:
		out.Opportunity.OfferedAmount = ParseNumber(raw)
	case FieldOpportunityRequiredHours:
		out.Opportunity.RequiredHours = ParseNumber(raw)
	case FieldOpportunityTimeframeWeeks:
		out.Opportunity.TimeframeWeeks = ParseWeeks(raw)
	case FieldOpportunitySerendipityPercent:
		out.Opportunity.SerendipityPercent = ClampSerendipity(ParseNumber(raw))
	case FieldOpportunityAdditionalBenefits:
		out.Opportunity.AdditionalBenefits = ParseNumber(raw)
	default:
		return in, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}
