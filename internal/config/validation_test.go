package config

import (
	"strings"
	"testing"

	"github.com/iwvelando/opportunity-calculator/internal/calculator"
)

func validConfiguration() Configuration {
	return Configuration{
		Baseline: calculator.Baseline{
			GoalAmount:            4000,
			TimeframeWeeks:        4,
			AvailableHoursPerWeek: 20,
			CurrentHourlyRate:     25,
		},
		Opportunity: calculator.Opportunity{
			Name:               "Contract",
			OfferedAmount:      5000,
			RequiredHours:      10,
			TimeframeWeeks:     4,
			SerendipityPercent: 20,
		},
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*Configuration)
		expectWarnCount int
		expectContains  string
	}{
		{
			name:            "Valid configuration",
			mutate:          func(*Configuration) {},
			expectWarnCount: 0,
		},
		{
			name:            "Zero goal",
			mutate:          func(c *Configuration) { c.Baseline.GoalAmount = 0 },
			expectWarnCount: 1,
			expectContains:  calculator.FieldBaselineGoalAmount,
		},
		{
			name:            "Negative offered amount",
			mutate:          func(c *Configuration) { c.Opportunity.OfferedAmount = -5 },
			expectWarnCount: 1,
			expectContains:  "negative",
		},
		{
			name:            "Serendipity off step",
			mutate:          func(c *Configuration) { c.Opportunity.SerendipityPercent = 33 },
			expectWarnCount: 1,
			expectContains:  "using 35",
		},
		{
			name:            "Over-commitment",
			mutate:          func(c *Configuration) { c.Opportunity.RequiredHours = 30 },
			expectWarnCount: 1,
			expectContains:  "only 20 are available",
		},
		{
			name:            "Different timeframes",
			mutate:          func(c *Configuration) { c.Opportunity.TimeframeWeeks = 8 },
			expectWarnCount: 1,
			expectContains:  "baseline's 4 weeks",
		},
		{
			name: "Zero available hours",
			mutate: func(c *Configuration) {
				c.Baseline.AvailableHoursPerWeek = 0
			},
			// division by zero plus over-commitment
			expectWarnCount: 2,
			expectContains:  calculator.FieldBaselineAvailableHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := validConfiguration()
			tt.mutate(&conf)

			warnings := conf.ValidateConfiguration()
			if len(warnings) != tt.expectWarnCount {
				t.Fatalf("ValidateConfiguration() returned %d warnings, expected %d: %v",
					len(warnings), tt.expectWarnCount, warnings)
			}
			if tt.expectContains != "" && !strings.Contains(strings.Join(warnings, "\n"), tt.expectContains) {
				t.Errorf("warnings %v do not mention %q", warnings, tt.expectContains)
			}
			for i, warning := range warnings {
				t.Logf("Warning %d: %s", i+1, warning)
			}
		})
	}
}
