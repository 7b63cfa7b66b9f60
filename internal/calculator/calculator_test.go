package calculator

import (
	"math"
	"testing"

	"github.com/iwvelando/opportunity-calculator/pkg/constants"
	"github.com/iwvelando/opportunity-calculator/pkg/mathutil"
)

func workedBaseline() Baseline {
	return Baseline{
		GoalAmount:            4000,
		TimeframeWeeks:        4,
		AvailableHoursPerWeek: 20,
		CurrentHourlyRate:     25,
	}
}

func workedOpportunity() Opportunity {
	return Opportunity{
		Name:               "Contract",
		OfferedAmount:      5000,
		RequiredHours:      10,
		TimeframeWeeks:     4,
		SerendipityPercent: 20,
	}
}

func TestComputeBaselineResult(t *testing.T) {
	result := ComputeBaselineResult(workedBaseline())

	if result.WeeklyTarget != 1000 {
		t.Errorf("WeeklyTarget = %v, expected 1000", result.WeeklyTarget)
	}
	if result.RequiredHourlyRate != 50 {
		t.Errorf("RequiredHourlyRate = %v, expected 50", result.RequiredHourlyRate)
	}
	if result.CurrentProjection != 2000 {
		t.Errorf("CurrentProjection = %v, expected 2000", result.CurrentProjection)
	}
}

func TestWeeklyTargetRecoversGoal(t *testing.T) {
	tests := []struct {
		name  string
		goal  float64
		weeks int
		hours float64
	}{
		{"Round numbers", 4000, 4, 20},
		{"Thirds", 1000, 3, 7},
		{"Long horizon", 123456.78, 52, 37.5},
		{"Single week", 99.99, 1, 1},
		{"Zero goal", 0, 12, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Baseline{GoalAmount: tt.goal, TimeframeWeeks: tt.weeks, AvailableHoursPerWeek: tt.hours}
			result := ComputeBaselineResult(b)
			recovered := result.WeeklyTarget * float64(tt.weeks)
			if !mathutil.WithinTolerance(recovered, tt.goal, 1e-6) {
				t.Errorf("WeeklyTarget*weeks = %v, expected %v", recovered, tt.goal)
			}
		})
	}
}

func TestComputeBaselineResultZeroDivisors(t *testing.T) {
	b := workedBaseline()
	b.TimeframeWeeks = 0
	result := ComputeBaselineResult(b)
	if !math.IsInf(result.WeeklyTarget, 1) {
		t.Errorf("WeeklyTarget with zero weeks = %v, expected +Inf", result.WeeklyTarget)
	}
	if !math.IsInf(result.RequiredHourlyRate, 1) {
		t.Errorf("RequiredHourlyRate with zero weeks = %v, expected +Inf", result.RequiredHourlyRate)
	}
	if result.CurrentProjection != 0 {
		t.Errorf("CurrentProjection with zero weeks = %v, expected 0", result.CurrentProjection)
	}

	b = workedBaseline()
	b.AvailableHoursPerWeek = 0
	result = ComputeBaselineResult(b)
	if !math.IsInf(result.RequiredHourlyRate, 1) {
		t.Errorf("RequiredHourlyRate with zero hours = %v, expected +Inf", result.RequiredHourlyRate)
	}

	b = Baseline{GoalAmount: 0, TimeframeWeeks: 0, AvailableHoursPerWeek: 20}
	result = ComputeBaselineResult(b)
	if !math.IsNaN(result.WeeklyTarget) {
		t.Errorf("WeeklyTarget 0/0 = %v, expected NaN", result.WeeklyTarget)
	}
}

func TestComputeSerendipityValue(t *testing.T) {
	tests := []struct {
		name     string
		offered  float64
		percent  float64
		expected float64
	}{
		{"No uplift", 5000, 0, 5000},
		{"Twenty percent", 5000, 20, 6000},
		{"Doubled", 1234.5, 100, 2469},
		{"Nothing offered", 0, 55, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSerendipityValue(Opportunity{OfferedAmount: tt.offered, SerendipityPercent: tt.percent})
			if !mathutil.WithinTolerance(got, tt.expected, 1e-9) {
				t.Errorf("ComputeSerendipityValue() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComputeSerendipityValueIdentityAtZero(t *testing.T) {
	for _, offered := range []float64{0, 0.01, 1, 333.33, 5000, 1e9} {
		got := ComputeSerendipityValue(Opportunity{OfferedAmount: offered})
		if got != offered {
			t.Errorf("ComputeSerendipityValue(%v, 0%%) = %v, expected exact identity", offered, got)
		}
	}
}

func TestComputeSerendipityValueMonotonic(t *testing.T) {
	o := workedOpportunity()
	previous := math.Inf(-1)
	for percent := MinSerendipityPercent; percent <= MaxSerendipityPercent; percent += SerendipityPercentStep {
		o.SerendipityPercent = percent
		value := ComputeSerendipityValue(o)
		if value < previous {
			t.Fatalf("value decreased at %v%%: %v < %v", percent, value, previous)
		}
		previous = value
	}
}

func TestComputeOpportunityResult(t *testing.T) {
	result := ComputeOpportunityResult(workedBaseline(), workedOpportunity())

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"HourlyRate", result.HourlyRate, 125},
		{"TotalProjection", result.TotalProjection, 5000},
		{"PotentialWithSerendipity", result.PotentialWithSerendipity, 6000},
		{"TotalValue", result.TotalValue, 6000},
		{"MovementTowardGoal", result.MovementTowardGoal, 1.5},
		{"EffortRatio", result.EffortRatio, 0.125},
		{"OpportunityProfit", result.OpportunityProfit, 1.375},
		{"RemainingHours", result.RemainingHours, 10},
		{"ExceedsGoalBy", result.ExceedsGoalBy, 2000},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if !mathutil.WithinTolerance(c.got, c.expected, constants.RatioTolerance) {
				t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
			}
		})
	}

	if pct := mathutil.ToPercentage(result.OpportunityProfit); !mathutil.WithinTolerance(pct, 137.5, 1e-9) {
		t.Errorf("OpportunityProfit as percentage = %v, expected 137.5", pct)
	}
}

func TestComputeOpportunityResultAdditionalBenefits(t *testing.T) {
	o := workedOpportunity()
	o.AdditionalBenefits = 1000
	result := ComputeOpportunityResult(workedBaseline(), o)

	if result.PotentialWithSerendipity != 6000 {
		t.Errorf("PotentialWithSerendipity = %v, expected benefits to stay out of it", result.PotentialWithSerendipity)
	}
	if result.TotalValue != 7000 {
		t.Errorf("TotalValue = %v, expected 7000", result.TotalValue)
	}
	if !mathutil.WithinTolerance(result.MovementTowardGoal, 1.75, constants.RatioTolerance) {
		t.Errorf("MovementTowardGoal = %v, expected 1.75", result.MovementTowardGoal)
	}
	if !mathutil.WithinTolerance(result.OpportunityProfit, 1.625, constants.RatioTolerance) {
		t.Errorf("OpportunityProfit = %v, expected 1.625", result.OpportunityProfit)
	}
	if result.ExceedsGoalBy != 3000 {
		t.Errorf("ExceedsGoalBy = %v, expected 3000", result.ExceedsGoalBy)
	}
}

func TestComputeOpportunityResultOverCommitment(t *testing.T) {
	o := workedOpportunity()
	o.RequiredHours = 35
	result := ComputeOpportunityResult(workedBaseline(), o)

	if result.RemainingHours != -15 {
		t.Errorf("RemainingHours = %v, expected -15 (not clamped)", result.RemainingHours)
	}
}

func TestComputeOpportunityResultShortfall(t *testing.T) {
	o := workedOpportunity()
	o.OfferedAmount = 1000
	o.SerendipityPercent = 0
	result := ComputeOpportunityResult(workedBaseline(), o)

	if result.ExceedsGoalBy != -3000 {
		t.Errorf("ExceedsGoalBy = %v, expected -3000", result.ExceedsGoalBy)
	}
	if result.OpportunityProfit >= result.MovementTowardGoal {
		t.Errorf("OpportunityProfit %v should be below MovementTowardGoal %v", result.OpportunityProfit, result.MovementTowardGoal)
	}
}

func TestOpportunityProfitEffortScaleInvariant(t *testing.T) {
	base := ComputeOpportunityResult(workedBaseline(), workedOpportunity())

	for _, factor := range []float64{0.5, 2, 3.7, 10} {
		b := workedBaseline()
		o := workedOpportunity()
		b.AvailableHoursPerWeek *= factor
		o.RequiredHours *= factor

		scaled := ComputeOpportunityResult(b, o)
		if !mathutil.WithinTolerance(scaled.OpportunityProfit, base.OpportunityProfit, constants.RatioTolerance) {
			t.Errorf("factor %v: OpportunityProfit = %v, expected %v", factor, scaled.OpportunityProfit, base.OpportunityProfit)
		}
		if !mathutil.WithinTolerance(scaled.EffortRatio, base.EffortRatio, constants.RatioTolerance) {
			t.Errorf("factor %v: EffortRatio = %v, expected %v", factor, scaled.EffortRatio, base.EffortRatio)
		}
	}
}

func TestComputeOpportunityResultZeroGoal(t *testing.T) {
	b := workedBaseline()
	b.GoalAmount = 0
	result := ComputeOpportunityResult(b, workedOpportunity())

	if mathutil.IsFinite(result.MovementTowardGoal) {
		t.Fatalf("MovementTowardGoal with zero goal = %v, expected non-finite", result.MovementTowardGoal)
	}
	if !math.IsInf(result.MovementTowardGoal, 1) {
		t.Errorf("MovementTowardGoal with zero goal = %v, expected +Inf", result.MovementTowardGoal)
	}
	if mathutil.IsFinite(result.OpportunityProfit) {
		t.Errorf("OpportunityProfit with zero goal = %v, expected non-finite", result.OpportunityProfit)
	}
	if result.ExceedsGoalBy != 6000 {
		t.Errorf("ExceedsGoalBy with zero goal = %v, expected 6000", result.ExceedsGoalBy)
	}

	nothing := workedOpportunity()
	nothing.OfferedAmount = 0
	result = ComputeOpportunityResult(b, nothing)
	if !math.IsNaN(result.MovementTowardGoal) {
		t.Errorf("MovementTowardGoal 0/0 = %v, expected NaN", result.MovementTowardGoal)
	}
}

func TestComputeOpportunityResultZeroRequiredHours(t *testing.T) {
	o := workedOpportunity()
	o.RequiredHours = 0
	result := ComputeOpportunityResult(workedBaseline(), o)

	if !math.IsInf(result.HourlyRate, 1) {
		t.Errorf("HourlyRate with zero hours = %v, expected +Inf", result.HourlyRate)
	}
	if result.EffortRatio != 0 {
		t.Errorf("EffortRatio with zero hours = %v, expected 0", result.EffortRatio)
	}
	if !mathutil.WithinTolerance(result.OpportunityProfit, 1.5, constants.RatioTolerance) {
		t.Errorf("OpportunityProfit with zero hours = %v, expected 1.5", result.OpportunityProfit)
	}
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	b := workedBaseline()
	o := workedOpportunity()
	bCopy, oCopy := b, o

	_ = ComputeBaselineResult(b)
	_ = ComputeOpportunityResult(b, o)
	_ = ChartPoints(b, o)

	if b != bCopy || o != oCopy {
		t.Errorf("inputs changed: %+v %+v", b, o)
	}
}
