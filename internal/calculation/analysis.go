package calculation

import (
	"fmt"

	"github.com/rallyforge/benefits-engine/internal/domain"
	money "github.com/rallyforge/benefits-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Analyze picks the best scenario by first-year income, drawdown longevity and
// final accumulated balance, and lists the issues worth a second look.
func Analyze(results []domain.ScenarioResult) domain.Analysis {
	a := domain.Analysis{Considerations: []string{}}
	var bestIncome, bestBalance decimal.Decimal
	bestLongevity := -1

	for i := range results {
		r := &results[i]
		if income := r.FirstYearIncome(); a.BestForIncome == "" || income.GreaterThan(bestIncome) {
			bestIncome = income
			a.BestForIncome = r.Name
		}
		if balance := r.FinalBalance(); a.BestForBalance == "" || balance.GreaterThan(bestBalance) {
			bestBalance = balance
			a.BestForBalance = r.Name
		}
		if r.Drawdown.LongevityYears > bestLongevity {
			bestLongevity = r.Drawdown.LongevityYears
			a.BestForLongevity = r.Name
		}

		if r.Drawdown.Depleted {
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("%s: %s withdrawals run out in year %d", r.Name, r.Drawdown.Strategy, r.Drawdown.DepletionYear))
		}
		if r.Budget != nil && !r.Budget.MeetsGoal {
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("%s: savings goals short by %s a month", r.Name, money.NewMoneyFromDecimal(r.Budget.ShortfallAmount).Format()))
		}
		if r.Evidence != nil && len(r.Evidence.Missing) > 0 {
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("%s: %s evidence confidence, %d item(s) missing", r.Name, r.Evidence.Confidence, len(r.Evidence.Missing)))
		}
		if r.Offset.Waiver.IsPositive() && r.Offset.Elected == domain.OffsetNone {
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("%s: %s of retired pay is waived with no CRDP or CRSC restoration", r.Name, money.NewMoneyFromDecimal(r.Offset.Waiver).Format()))
		}
	}
	return a
}
