package calculator

import (
	"fmt"
	"iter"
	"slices"
)

// ChartPoint is one week on the chart. All four series share the baseline's
// week axis.
type ChartPoint struct {
	Week            int
	Label           string
	Goal            float64
	Baseline        float64
	Opportunity     float64
	WithSerendipity float64
}

// ChartSeries yields the chart points in week order. It holds no state of its
// own, so ranging over it again replays the same points.
type ChartSeries = iter.Seq[ChartPoint]

// GenerateChartSeries returns the weekly series for weeks 0 through
// b.TimeframeWeeks inclusive.
//
// The opportunity payout is spread over the baseline's timeframe rather than
// the opportunity's own so that every line shares the x-axis.
func GenerateChartSeries(b Baseline, o Opportunity) ChartSeries {
	weeks := float64(b.TimeframeWeeks)
	weeklyTarget := ComputeBaselineResult(b).WeeklyTarget
	opportunityStep := o.OfferedAmount / weeks
	serendipityStep := ComputeSerendipityValue(o) / weeks

	return func(yield func(ChartPoint) bool) {
		for week := 0; week <= b.TimeframeWeeks; week++ {
			w := float64(week)
			point := ChartPoint{
				Week:            week,
				Label:           WeekLabel(week),
				Goal:            b.GoalAmount,
				Baseline:        weeklyTarget * w,
				Opportunity:     opportunityStep * w,
				WithSerendipity: serendipityStep * w,
			}
			if !yield(point) {
				return
			}
		}
	}
}

// ChartPoints collects GenerateChartSeries into a slice.
func ChartPoints(b Baseline, o Opportunity) []ChartPoint {
	points := slices.Collect(GenerateChartSeries(b, o))
	if points == nil {
		return []ChartPoint{}
	}
	return points
}

// WeekLabel is the x-axis label for a week index.
func WeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}
