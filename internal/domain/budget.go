package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetEntry is a monthly income or expense line.
type BudgetEntry struct {
	Name     string          `yaml:"name" json:"name" toml:"name" validate:"required"`
	Category string          `yaml:"category,omitempty" json:"category,omitempty" toml:"category"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"`
}

// SavingsGoal is a monthly savings target.
type SavingsGoal struct {
	Name   string          `yaml:"name" json:"name" toml:"name" validate:"required"`
	Target decimal.Decimal `yaml:"target" json:"target" toml:"target"`
}

// Budget groups the monthly entries that feed a breakdown.
type Budget struct {
	Incomes  []BudgetEntry `yaml:"incomes" json:"incomes" toml:"incomes" validate:"dive"`
	Expenses []BudgetEntry `yaml:"expenses" json:"expenses" toml:"expenses" validate:"dive"`
	Goals    []SavingsGoal `yaml:"goals" json:"goals" toml:"goals" validate:"dive"`
}

// CategoryTotal is the sum of expenses in one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BudgetBreakdown aggregates a Budget.
// ShortfallAmount is always max(0, TotalGoals - AvailableSavings).
type BudgetBreakdown struct {
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
	AvailableSavings   decimal.Decimal `json:"available_savings"`
	TotalGoals         decimal.Decimal `json:"total_goals"`
	MeetsGoal          bool            `json:"meets_goal"`
	ShortfallAmount    decimal.Decimal `json:"shortfall_amount"`
}
