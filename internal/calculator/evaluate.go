package calculator

import (
	"go.uber.org/zap"
)

// Serendipity outlook labels shown under the slider.
const (
	OutlookConservative = "Conservative estimate - minimal network effects"
	OutlookModerate     = "Moderate potential for additional opportunities"
	OutlookHigh         = "High potential for compound benefits and opportunities"
)

// Evaluation bundles everything the front ends render for one Input.
type Evaluation struct {
	Input            Input
	Baseline         BaselineResult
	Opportunity      OpportunityResult
	SerendipityValue float64
	Outlook          string
	Chart            []ChartPoint
	// Warnings lists the inputs that made a result non-finite. They never
	// stop the evaluation.
	Warnings []error
}

// SerendipityOutlook describes a serendipity percentage in words.
func SerendipityOutlook(percent float64) string {
	switch {
	case percent < 20:
		return OutlookConservative
	case percent < 50:
		return OutlookModerate
	default:
		return OutlookHigh
	}
}

// Evaluate runs the whole engine over an input.
func Evaluate(logger *zap.Logger, in Input) Evaluation {
	if logger == nil {
		logger = zap.NewNop()
	}

	eval := Evaluation{
		Input:            in,
		Baseline:         ComputeBaselineResult(in.Baseline),
		Opportunity:      ComputeOpportunityResult(in.Baseline, in.Opportunity),
		SerendipityValue: ComputeSerendipityValue(in.Opportunity),
		Outlook:          SerendipityOutlook(in.Opportunity.SerendipityPercent),
		Chart:            ChartPoints(in.Baseline, in.Opportunity),
		Warnings:         Diagnose(in.Baseline, in.Opportunity),
	}

	logger.Debug("baseline calculation",
		zap.String("op", "calculator.Evaluate"),
		zap.Float64("weeklyTarget", eval.Baseline.WeeklyTarget),
		zap.Float64("requiredHourlyRate", eval.Baseline.RequiredHourlyRate),
		zap.Float64("currentProjection", eval.Baseline.CurrentProjection),
	)
	logger.Debug("opportunity calculation",
		zap.String("op", "calculator.Evaluate"),
		zap.String("opportunity", in.Opportunity.Name),
		zap.Float64("hourlyRate", eval.Opportunity.HourlyRate),
		zap.Float64("potentialWithSerendipity", eval.Opportunity.PotentialWithSerendipity),
		zap.Float64("opportunityProfit", eval.Opportunity.OpportunityProfit),
		zap.Float64("exceedsGoalBy", eval.Opportunity.ExceedsGoalBy),
	)
	for _, warning := range eval.Warnings {
		logger.Debug("non-finite result",
			zap.String("op", "calculator.Evaluate"),
			zap.Error(warning),
		)
	}

	return eval
}
