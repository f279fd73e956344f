package calculation

import (
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(12)
)

// growthPlaces bounds the scale of monthly growth so long horizons do not
// accumulate arbitrarily long decimal expansions.
const growthPlaces = 10

// CompoundMonthly projects a balance with a fixed monthly contribution for the
// given number of years. Each month the contribution is deposited first and the
// month's return (annualReturn/12) is applied to the new balance. One record is
// returned per year; RealBalance equals NominalBalance until ApplyInflation runs.
func CompoundMonthly(balance, monthlyContribution, annualReturn decimal.Decimal, years int) []domain.YearlyBalance {
	return compoundMonthly(balance, monthlyContribution, decimal.Zero, annualReturn, years)
}

func compoundMonthly(balance, contribution, match, annualReturn decimal.Decimal, years int) []domain.YearlyBalance {
	if years <= 0 {
		return []domain.YearlyBalance{}
	}
	monthlyRate := annualReturn.Div(monthsInYear)
	out := make([]domain.YearlyBalance, 0, years)

	for year := 1; year <= years; year++ {
		contributions := decimal.Zero
		matched := decimal.Zero
		growth := decimal.Zero

		for month := 0; month < 12; month++ {
			balance = balance.Add(contribution).Add(match)
			g := balance.Mul(monthlyRate).Round(growthPlaces)
			balance = balance.Add(g)

			contributions = contributions.Add(contribution)
			matched = matched.Add(match)
			growth = growth.Add(g)
		}

		out = append(out, domain.YearlyBalance{
			Year:           year,
			NominalBalance: balance,
			RealBalance:    balance,
			Contributions:  contributions,
			EmployerMatch:  matched,
			Growth:         growth,
		})
	}
	return out
}

// ProjectAccount projects an investment account over years and fills in real
// balances for the given inflation rate. It returns the projection and the
// annual return that was used: the weighted return of the fund allocations
// when any carry weight, otherwise the account's expected return.
func ProjectAccount(account domain.InvestmentAccount, years int, inflationRate decimal.Decimal) ([]domain.YearlyBalance, decimal.Decimal) {
	rate := EffectiveReturn(account)
	match := account.MonthlyContribution.Mul(account.EmployerMatchPercent)
	nominal := compoundMonthly(account.Balance, account.MonthlyContribution, match, rate, years)
	return ApplyInflation(nominal, inflationRate), rate
}

// EffectiveReturn picks the annual return used to grow an account.
func EffectiveReturn(account domain.InvestmentAccount) decimal.Decimal {
	for _, a := range account.FundAllocations {
		if !a.Weight.IsZero() {
			return WeightedReturn(account.FundAllocations)
		}
	}
	return account.ExpectedReturn
}

// AdjustForInflation discounts a nominal value to today's dollars:
// value / (1+inflationRate)^yearsElapsed.
func AdjustForInflation(value, inflationRate decimal.Decimal, yearsElapsed int) decimal.Decimal {
	if inflationRate.IsZero() || yearsElapsed <= 0 {
		return value
	}
	factor := one.Add(inflationRate).Pow(decimal.NewFromInt(int64(yearsElapsed)))
	if factor.IsZero() {
		return value
	}
	return value.Div(factor)
}

// ApplyInflation returns a copy of balances with RealBalance discounted by the
// number of years since the projection started.
func ApplyInflation(balances []domain.YearlyBalance, inflationRate decimal.Decimal) []domain.YearlyBalance {
	out := make([]domain.YearlyBalance, len(balances))
	for i, b := range balances {
		b.RealBalance = AdjustForInflation(b.NominalBalance, inflationRate, b.Year)
		out[i] = b
	}
	return out
}
