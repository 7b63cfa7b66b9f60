package config

import (
	"fmt"

	"github.com/iwvelando/opportunity-calculator/internal/calculator"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. None of them prevent a calculation.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for _, err := range calculator.Diagnose(c.Baseline, c.Opportunity) {
		warnings = append(warnings, err.Error())
	}

	amounts := []struct {
		field string
		value float64
	}{
		{calculator.FieldBaselineGoalAmount, c.Baseline.GoalAmount},
		{calculator.FieldBaselineAvailableHours, c.Baseline.AvailableHoursPerWeek},
		{calculator.FieldBaselineCurrentHourlyRate, c.Baseline.CurrentHourlyRate},
		{calculator.FieldOpportunityOfferedAmount, c.Opportunity.OfferedAmount},
		{calculator.FieldOpportunityRequiredHours, c.Opportunity.RequiredHours},
		{calculator.FieldOpportunityAdditionalBenefits, c.Opportunity.AdditionalBenefits},
	}
	for _, a := range amounts {
		if a.value < 0 {
			warnings = append(warnings, fmt.Sprintf("%s is negative (%g)", a.field, a.value))
		}
	}
	if c.Baseline.TimeframeWeeks < 0 {
		warnings = append(warnings, fmt.Sprintf("%s is negative (%d): the chart will be empty",
			calculator.FieldBaselineTimeframeWeeks, c.Baseline.TimeframeWeeks))
	}
	if c.Opportunity.TimeframeWeeks < 0 {
		warnings = append(warnings, fmt.Sprintf("%s is negative (%d)",
			calculator.FieldOpportunityTimeframeWeeks, c.Opportunity.TimeframeWeeks))
	}

	percent := c.Opportunity.SerendipityPercent
	if clamped := calculator.ClampSerendipity(percent); clamped != percent {
		warnings = append(warnings, fmt.Sprintf("%s %g is outside the 0-100 range or off the 5%% step, using %g",
			calculator.FieldOpportunitySerendipityPercent, percent, clamped))
	}

	if c.Opportunity.RequiredHours > c.Baseline.AvailableHoursPerWeek {
		warnings = append(warnings, fmt.Sprintf("Opportunity '%s' needs %g hours a week but only %g are available",
			c.Opportunity.Name, c.Opportunity.RequiredHours, c.Baseline.AvailableHoursPerWeek))
	}

	if c.Opportunity.TimeframeWeeks != c.Baseline.TimeframeWeeks {
		warnings = append(warnings, fmt.Sprintf("Opportunity '%s' runs %d weeks, the chart spreads its payout over the baseline's %d weeks",
			c.Opportunity.Name, c.Opportunity.TimeframeWeeks, c.Baseline.TimeframeWeeks))
	}

	return warnings
}
