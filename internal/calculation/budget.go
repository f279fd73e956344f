package calculation

import (
	"sort"

	"github.com/rallyforge/benefits-engine/internal/domain"
	money "github.com/rallyforge/benefits-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

const uncategorized = "uncategorized"

// BuildBudgetBreakdown totals a monthly budget and checks it against the
// savings goals. Shortfall is max(0, goals - available savings).
func BuildBudgetBreakdown(b domain.Budget) domain.BudgetBreakdown {
	income := decimal.Zero
	for _, e := range b.Incomes {
		income = income.Add(e.Amount)
	}

	expenses := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	for _, e := range b.Expenses {
		expenses = expenses.Add(e.Amount)
		cat := e.Category
		if cat == "" {
			cat = uncategorized
		}
		byCategory[cat] = byCategory[cat].Add(e.Amount)
	}

	goals := decimal.Zero
	for _, g := range b.Goals {
		goals = goals.Add(g.Target)
	}

	categories := make([]domain.CategoryTotal, 0, len(byCategory))
	for cat, total := range byCategory {
		categories = append(categories, domain.CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	available := income.Sub(expenses)
	return domain.BudgetBreakdown{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		ExpensesByCategory: categories,
		AvailableSavings:   available,
		TotalGoals:         goals,
		MeetsGoal:          available.GreaterThanOrEqual(goals),
		ShortfallAmount:    money.NonNegative(goals.Sub(available)),
	}
}
