// Package output provides utilities for formatting and displaying calculator
// evaluations.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/opportunity-calculator/internal/calculator"
	"github.com/iwvelando/opportunity-calculator/pkg/format"
	"github.com/iwvelando/opportunity-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable report: the summary cards, the
// detailed calculations, any warnings and the weekly chart table.
func PrettyFormat(w io.Writer, eval calculator.Evaluation) {
	p := message.NewPrinter(language.English)
	in := eval.Input
	b := eval.Baseline
	o := eval.Opportunity

	fmt.Fprintf(w, "--- Opportunity: %s ---\n", in.Opportunity.Name)
	fmt.Fprintf(w, "Base Amount        | %s\n", format.Currency(o.TotalProjection))
	fmt.Fprintf(w, "With Serendipity   | %s (%g%%: %s)\n", format.Currency(eval.SerendipityValue),
		in.Opportunity.SerendipityPercent, eval.Outlook)
	fmt.Fprintf(w, "Opportunity Profit | %s\n", format.Percent(o.OpportunityProfit))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "--- Baseline Calculations ---\n")
	fmt.Fprintf(w, "Weekly Target        | %s\n", format.Currency(b.WeeklyTarget))
	fmt.Fprintf(w, "Required Hourly Rate | %s\n", format.Rate(b.RequiredHourlyRate))
	fmt.Fprintf(w, "Current Projection   | %s\n", format.Currency(b.CurrentProjection))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "--- Opportunity Analysis ---\n")
	fmt.Fprintf(w, "Hourly Rate            | %s\n", format.Rate(o.HourlyRate))
	fmt.Fprintf(w, "Potential Value        | %s\n", format.Currency(o.PotentialWithSerendipity))
	if in.Opportunity.AdditionalBenefits != 0 {
		fmt.Fprintf(w, "Total Value            | %s\n", format.Currency(o.TotalValue))
	}
	fmt.Fprintf(w, "Movement Toward Goal   | %s\n", format.Percent(o.MovementTowardGoal))
	fmt.Fprintf(w, "Effort Ratio           | %s\n", format.Percent(o.EffortRatio))
	fmt.Fprintf(w, "Opportunity Profit     | %s\n", format.Percent(o.OpportunityProfit))
	fmt.Fprintf(w, "Remaining Hours/Week   | %s\n", format.Hours(o.RemainingHours))
	fmt.Fprintf(w, "Exceeds Goal By        | %s\n", format.Currency(o.ExceedsGoalBy))

	if len(eval.Warnings) > 0 {
		fmt.Fprintf(w, "\n--- Warnings ---\n")
		for _, warning := range eval.Warnings {
			fmt.Fprintf(w, "! %s\n", warning)
		}
	}

	fmt.Fprintf(w, "\n--- Chart ---\n")
	fmt.Fprintf(w, "Week     | Goal          | Current Trajectory | Base Opportunity | With Serendipity\n")
	fmt.Fprintf(w, "____     | ____          | __________________ | ________________ | ________________\n")
	for _, point := range eval.Chart {
		_, _ = p.Fprintf(w, "%-8s | %s | %s | %s | %s\n", point.Label,
			printAmount(p, point.Goal), printAmount(p, point.Baseline),
			printAmount(p, point.Opportunity), printAmount(p, point.WithSerendipity))
	}
}

// CsvFormat writes the chart series in comma-separated value format.
func CsvFormat(w io.Writer, eval calculator.Evaluation) {
	fmt.Fprintf(w, `"week","goal","baseline","opportunity","withSerendipity"`)
	fmt.Fprintf(w, "\n")
	for _, point := range eval.Chart {
		fmt.Fprintf(w, `"%d","%s","%s","%s","%s"`, point.Week,
			csvAmount(point.Goal), csvAmount(point.Baseline),
			csvAmount(point.Opportunity), csvAmount(point.WithSerendipity))
		fmt.Fprintf(w, "\n")
	}
}

// CsvString returns CsvFormat output as a string.
func CsvString(eval calculator.Evaluation) string {
	var builder strings.Builder
	CsvFormat(&builder, eval)
	return builder.String()
}

// JSONFormat writes the evaluation as an indented JSON document.
func JSONFormat(w io.Writer, eval calculator.Evaluation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(eval))
}

func printAmount(p *message.Printer, amount float64) string {
	if !mathutil.IsFinite(amount) {
		return fmt.Sprintf("%13s", format.NotAvailable)
	}
	return p.Sprintf("$%12.2f", amount)
}

func csvAmount(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return ""
	}
	return fmt.Sprintf("%.2f", amount)
}
