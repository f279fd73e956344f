package output

import (
	"sort"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FirstYearIncome  decimal.Decimal
	IncomeChange     decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest first-year income and
// measures it against the first scenario in the run, which acts as the baseline.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Results) == 0 {
		return Recommendation{}
	}
	baseline := results.Results[0].FirstYearIncome()
	type ranked struct {
		name   string
		income decimal.Decimal
	}
	ranks := make([]ranked, 0, len(results.Results))
	for i := range results.Results {
		sc := &results.Results[i]
		ranks = append(ranks, ranked{sc.Name, sc.FirstYearIncome()})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].income.GreaterThan(ranks[j].income) })
	best := ranks[0]
	delta := best.income.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{ScenarioName: best.name, FirstYearIncome: best.income, IncomeChange: delta, PercentageChange: pct}
}
