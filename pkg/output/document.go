package output

import (
	"errors"

	"github.com/iwvelando/opportunity-calculator/internal/calculator"
	"github.com/iwvelando/opportunity-calculator/pkg/mathutil"
)

// Document is the JSON shape of an evaluation. Non-finite numbers are nil and
// encode as null.
type Document struct {
	Input            calculator.Input     `json:"input"`
	Baseline         BaselineDocument     `json:"baseline"`
	Opportunity      OpportunityDocument  `json:"opportunity"`
	SerendipityValue *float64             `json:"serendipityValue"`
	Outlook          string               `json:"outlook"`
	Chart            []ChartPointDocument `json:"chart"`
	Warnings         []WarningDocument    `json:"warnings,omitempty"`
}

// BaselineDocument mirrors calculator.BaselineResult.
type BaselineDocument struct {
	WeeklyTarget       *float64 `json:"weeklyTarget"`
	RequiredHourlyRate *float64 `json:"requiredHourlyRate"`
	CurrentProjection  *float64 `json:"currentProjection"`
}

// OpportunityDocument mirrors calculator.OpportunityResult.
type OpportunityDocument struct {
	HourlyRate               *float64 `json:"hourlyRate"`
	TotalProjection          *float64 `json:"totalProjection"`
	PotentialWithSerendipity *float64 `json:"potentialWithSerendipity"`
	TotalValue               *float64 `json:"totalValue"`
	MovementTowardGoal       *float64 `json:"movementTowardGoal"`
	EffortRatio              *float64 `json:"effortRatio"`
	OpportunityProfit        *float64 `json:"opportunityProfit"`
	RemainingHours           *float64 `json:"remainingHours"`
	ExceedsGoalBy            *float64 `json:"exceedsGoalBy"`
}

// ChartPointDocument mirrors calculator.ChartPoint.
type ChartPointDocument struct {
	Week            int      `json:"week"`
	Label           string   `json:"label"`
	Goal            *float64 `json:"goal"`
	Baseline        *float64 `json:"baseline"`
	Opportunity     *float64 `json:"opportunity"`
	WithSerendipity *float64 `json:"withSerendipity"`
}

// WarningDocument is an inline, non-blocking warning.
type WarningDocument struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewDocument converts an evaluation into its JSON shape.
func NewDocument(eval calculator.Evaluation) Document {
	b := eval.Baseline
	o := eval.Opportunity

	doc := Document{
		Input: eval.Input,
		Baseline: BaselineDocument{
			WeeklyTarget:       mathutil.FinitePtr(b.WeeklyTarget),
			RequiredHourlyRate: mathutil.FinitePtr(b.RequiredHourlyRate),
			CurrentProjection:  mathutil.FinitePtr(b.CurrentProjection),
		},
		Opportunity: OpportunityDocument{
			HourlyRate:               mathutil.FinitePtr(o.HourlyRate),
			TotalProjection:          mathutil.FinitePtr(o.TotalProjection),
			PotentialWithSerendipity: mathutil.FinitePtr(o.PotentialWithSerendipity),
			TotalValue:               mathutil.FinitePtr(o.TotalValue),
			MovementTowardGoal:       mathutil.FinitePtr(o.MovementTowardGoal),
			EffortRatio:              mathutil.FinitePtr(o.EffortRatio),
			OpportunityProfit:        mathutil.FinitePtr(o.OpportunityProfit),
			RemainingHours:           mathutil.FinitePtr(o.RemainingHours),
			ExceedsGoalBy:            mathutil.FinitePtr(o.ExceedsGoalBy),
		},
		SerendipityValue: mathutil.FinitePtr(eval.SerendipityValue),
		Outlook:          eval.Outlook,
		Chart:            make([]ChartPointDocument, 0, len(eval.Chart)),
		Warnings:         NewWarningDocuments(eval.Warnings),
	}

	for _, p := range eval.Chart {
		doc.Chart = append(doc.Chart, ChartPointDocument{
			Week:            p.Week,
			Label:           p.Label,
			Goal:            mathutil.FinitePtr(p.Goal),
			Baseline:        mathutil.FinitePtr(p.Baseline),
			Opportunity:     mathutil.FinitePtr(p.Opportunity),
			WithSerendipity: mathutil.FinitePtr(p.WithSerendipity),
		})
	}

	return doc
}

// NewWarningDocuments converts evaluation warnings, keeping the field name of
// division-by-zero warnings.
func NewWarningDocuments(warnings []error) []WarningDocument {
	if len(warnings) == 0 {
		return nil
	}
	docs := make([]WarningDocument, 0, len(warnings))
	for _, w := range warnings {
		doc := WarningDocument{Message: w.Error()}
		var divErr *calculator.DivisionByZeroError
		if errors.As(w, &divErr) {
			doc.Field = divErr.Field
		}
		docs = append(docs, doc)
	}
	return docs
}
