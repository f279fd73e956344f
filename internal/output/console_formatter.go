package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rallyforge/benefits-engine/internal/domain"
)

// ConsoleFormatter renders the full table-based console report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, RenderTitle("VA BENEFITS SCENARIO REPORT"))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "  "+headerStyle.Render("Assumptions"))
	for _, line := range GenerateAssumptions(results.Assumptions) {
		fmt.Fprintln(&buf, "  "+mutedStyle.Render("• "+line))
	}
	fmt.Fprintln(&buf)

	fmt.Fprint(&buf, RenderTable(comparisonTable(results)))

	for _, sc := range sortedResults(results) {
		fmt.Fprintln(&buf)
		writeScenario(&buf, &sc)
	}

	writeAnalysis(&buf, results)
	return buf.Bytes(), nil
}

func comparisonTable(results *domain.ScenarioComparison) Table {
	t := Table{
		Title:   "Scenario Comparison",
		Headers: []string{"Scenario", "Rating", "Monthly Pay", "Year 1 Income", "Final Balance", "Longevity"},
	}
	for _, sc := range sortedResults(results) {
		t.Rows = append(t.Rows, []string{
			sc.Name,
			intToString(sc.Rating.Combined) + "%",
			FormatCurrency(sc.Offset.TotalMonthlyPay),
			FormatCurrency(sc.FirstYearIncome()),
			FormatCurrency(sc.FinalBalance()),
			longevityLabel(sc.Drawdown),
		})
	}
	return t
}

func writeScenario(buf *bytes.Buffer, sc *domain.ScenarioResult) {
	fmt.Fprintln(buf, "  "+titleStyle.Render(strings.ToUpper(sc.Name)))

	rating := Table{Title: "Disability Rating", Headers: []string{"Step", "Rating", "Remaining Before", "Remaining After"}}
	for i, st := range sc.Rating.Steps {
		rating.Rows = append(rating.Rows, []string{
			intToString(i + 1),
			st.Rating.StringFixed(1) + "%",
			st.Before.StringFixed(2),
			st.After.StringFixed(2),
		})
	}
	rating.Rows = append(rating.Rows, separatorRow,
		[]string{"Exact", "", "", sc.Rating.Exact.StringFixed(2) + "%"},
		[]string{"Combined", "", "", intToString(sc.Rating.Combined) + "%"},
	)
	if !sc.Rating.BilateralFactor.IsZero() {
		rating.Rows = append(rating.Rows, []string{"Bilateral factor", "", "", sc.Rating.BilateralFactor.StringFixed(2)})
	}
	fmt.Fprint(buf, RenderTable(rating))

	pay := Table{Title: "Monthly Pay", Headers: []string{"Item", "Amount"}}
	pay.Rows = [][]string{
		{"Retired pay (gross)", FormatCurrency(sc.Pension.GrossMonthly)},
		{"Survivor plan cost", FormatCurrency(sc.Pension.SurvivorCost)},
		{"VA compensation", FormatCurrency(sc.Compensation.Monthly)},
		{"VA waiver", FormatCurrency(sc.Offset.Waiver.Neg())},
		{"Restored (" + string(sc.Offset.Elected) + ")", FormatCurrency(sc.Offset.Restored)},
		separatorRow,
		{"Total monthly pay", FormatCurrency(sc.Offset.TotalMonthlyPay)},
	}
	if sc.CombatCategory.IsCombatRelated() {
		pay.Rows = append(pay.Rows, []string{"CRSC category", string(sc.CombatCategory)})
	}
	fmt.Fprint(buf, RenderTable(pay))

	dd := sc.Drawdown
	balances := make([]float64, 0, len(dd.Years))
	for _, y := range dd.Years {
		balances = append(balances, y.EndingBalance.InexactFloat64())
	}
	fmt.Fprintf(buf, "  %s %s  %s\n", headerStyle.Render("Drawdown"), mutedStyle.Render(dd.Strategy), RenderSparkline(balances))
	fmt.Fprintf(buf, "  Withdrawn %s, final balance %s, %s\n",
		FormatCurrency(dd.TotalWithdrawn), FormatCurrency(dd.FinalBalance), longevityStyled(dd))

	if sc.Budget != nil {
		b := sc.Budget
		status := goodStyle.Render("meets goals")
		if !b.MeetsGoal {
			status = warnStyle.Render("short " + FormatCurrency(b.ShortfallAmount))
		}
		fmt.Fprintf(buf, "  %s income %s, expenses %s, available %s (%s)\n", headerStyle.Render("Budget"),
			FormatCurrency(b.TotalIncome), FormatCurrency(b.TotalExpenses), FormatCurrency(b.AvailableSavings), status)
	}
	if sc.Evidence != nil {
		ev := sc.Evidence
		fmt.Fprintf(buf, "  %s %s, %d of %d matched\n", headerStyle.Render("Evidence"),
			ev.Confidence, len(ev.Matched), len(ev.Required))
		if len(ev.Missing) > 0 {
			fmt.Fprintln(buf, "  "+warnStyle.Render("missing: "+strings.Join(ev.Missing, ", ")))
		}
	}
}

func writeAnalysis(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	a := results.Analysis
	if a.BestForIncome == "" && len(a.Considerations) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "  "+headerStyle.Render("Analysis"))
	fmt.Fprintf(buf, "  Best for income:    %s\n", valueStyle.Render(a.BestForIncome))
	fmt.Fprintf(buf, "  Best for longevity: %s\n", valueStyle.Render(a.BestForLongevity))
	fmt.Fprintf(buf, "  Best for balance:   %s\n", valueStyle.Render(a.BestForBalance))
	for _, c := range a.Considerations {
		fmt.Fprintln(buf, "  "+warnStyle.Render("! "+c))
	}
}

func longevityLabel(dd domain.DrawdownResult) string {
	if dd.Depleted {
		return fmt.Sprintf("depleted yr %d", dd.DepletionYear)
	}
	return intToString(dd.LongevityYears) + "+ yrs"
}

func longevityStyled(dd domain.DrawdownResult) string {
	if dd.Depleted {
		return warnStyle.Render(longevityLabel(dd))
	}
	return goodStyle.Render("lasts " + longevityLabel(dd))
}

// ConsoleSummaryFormatter provides a concise plain console summary.
type ConsoleSummaryFormatter struct{}

func (c ConsoleSummaryFormatter) Name() string      { return "console-lite" }
func (c ConsoleSummaryFormatter) Extension() string { return "txt" }

func (c ConsoleSummaryFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "VA BENEFITS SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedResults(results) {
		fmt.Fprintf(&buf, "%s: Rating=%d%% Monthly=%s FirstYear=%s Longevity=%s\n",
			sc.Name,
			sc.Rating.Combined,
			FormatCurrency(sc.Offset.TotalMonthlyPay),
			FormatCurrency(sc.FirstYearIncome()),
			longevityLabel(sc.Drawdown),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.IncomeChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
