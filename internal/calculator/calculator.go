// Package calculator holds the opportunity calculation engine: pure functions
// that map a Baseline and an Opportunity onto the derived metrics and the
// weekly chart series rendered by the front ends.
package calculator

import (
	"github.com/iwvelando/opportunity-calculator/pkg/constants"
)

// Baseline is the user's current trajectory and the goal they are working
// toward.
type Baseline struct {
	GoalAmount            float64 `json:"goalAmount" yaml:"goalAmount" mapstructure:"goalAmount"`
	TimeframeWeeks        int     `json:"timeframeWeeks" yaml:"timeframeWeeks" mapstructure:"timeframeWeeks"`
	AvailableHoursPerWeek float64 `json:"availableHoursPerWeek" yaml:"availableHoursPerWeek" mapstructure:"availableHoursPerWeek"`
	CurrentHourlyRate     float64 `json:"currentHourlyRate" yaml:"currentHourlyRate" mapstructure:"currentHourlyRate"`
}

// Opportunity is a candidate use of time evaluated against a Baseline.
type Opportunity struct {
	Name               string  `json:"name" yaml:"name" mapstructure:"name"`
	OfferedAmount      float64 `json:"offeredAmount" yaml:"offeredAmount" mapstructure:"offeredAmount"`
	RequiredHours      float64 `json:"requiredHours" yaml:"requiredHours" mapstructure:"requiredHours"`
	TimeframeWeeks     int     `json:"timeframeWeeks" yaml:"timeframeWeeks" mapstructure:"timeframeWeeks"`
	SerendipityPercent float64 `json:"serendipityPercent" yaml:"serendipityPercent" mapstructure:"serendipityPercent"`
	AdditionalBenefits float64 `json:"additionalBenefits" yaml:"additionalBenefits" mapstructure:"additionalBenefits"`
}

// BaselineResult holds the metrics derived from a Baseline alone.
type BaselineResult struct {
	WeeklyTarget       float64
	RequiredHourlyRate float64
	CurrentProjection  float64
}

// OpportunityResult holds the metrics derived from an Opportunity measured
// against a Baseline.
type OpportunityResult struct {
	HourlyRate               float64
	TotalProjection          float64
	PotentialWithSerendipity float64
	// TotalValue is PotentialWithSerendipity plus the non-cash benefits.
	TotalValue float64
	// MovementTowardGoal is the fraction of the goal covered by TotalValue.
	MovementTowardGoal float64
	// EffortRatio is the fraction of the total available hours consumed by
	// the opportunity.
	EffortRatio       float64
	OpportunityProfit float64
	RemainingHours    float64
	ExceedsGoalBy     float64
}

// ComputeBaselineResult derives the weekly target, the hourly rate needed to
// reach it and the projection at the current rate.
func ComputeBaselineResult(b Baseline) BaselineResult {
	weeks := float64(b.TimeframeWeeks)
	weeklyTarget := b.GoalAmount / weeks

	return BaselineResult{
		WeeklyTarget:       weeklyTarget,
		RequiredHourlyRate: weeklyTarget / b.AvailableHoursPerWeek,
		CurrentProjection:  b.CurrentHourlyRate * b.AvailableHoursPerWeek * weeks,
	}
}

// ComputeSerendipityValue applies the serendipity uplift to the offered
// amount. A zero percentage returns the offered amount unchanged.
func ComputeSerendipityValue(o Opportunity) float64 {
	multiplier := 1 + o.SerendipityPercent/constants.PercentageMultiplier
	return o.OfferedAmount * multiplier
}

// ComputeOpportunityResult measures an opportunity against the baseline.
//
// Additional benefits are counted once, without the serendipity uplift, in
// TotalValue; the goal ratio and the goal surplus are taken from TotalValue.
func ComputeOpportunityResult(b Baseline, o Opportunity) OpportunityResult {
	weeklyRate := o.OfferedAmount / float64(o.TimeframeWeeks)
	potential := ComputeSerendipityValue(o)
	totalValue := potential + o.AdditionalBenefits

	movement := totalValue / b.GoalAmount
	effort := o.RequiredHours / (b.AvailableHoursPerWeek * float64(b.TimeframeWeeks))

	return OpportunityResult{
		HourlyRate:               weeklyRate / o.RequiredHours,
		TotalProjection:          o.OfferedAmount,
		PotentialWithSerendipity: potential,
		TotalValue:               totalValue,
		MovementTowardGoal:       movement,
		EffortRatio:              effort,
		OpportunityProfit:        movement - effort,
		RemainingHours:           b.AvailableHoursPerWeek - o.RequiredHours,
		ExceedsGoalBy:            totalValue - b.GoalAmount,
	}
}
