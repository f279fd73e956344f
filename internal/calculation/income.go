package calculation

import (
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectIncome projects a recurring monthly benefit. Year 1 pays
// MonthlyAmount*12; each later year grows by (1+COLARate).
func ProjectIncome(stream domain.IncomeStream, years int) domain.IncomeProjection {
	proj := domain.IncomeProjection{Source: stream.Source, Years: make([]domain.AnnualAmount, 0, max(years, 0))}
	annual := stream.MonthlyAmount.Mul(monthsInYear)
	growth := one.Add(stream.COLA())
	for year := 1; year <= years; year++ {
		if year > 1 {
			annual = annual.Mul(growth)
		}
		proj.Years = append(proj.Years, domain.AnnualAmount{Year: year, AnnualAmount: annual})
	}
	return proj
}

// SumIncome adds several projections year by year. The result is as long as
// the longest projection.
func SumIncome(projections []domain.IncomeProjection) []domain.AnnualAmount {
	years := 0
	for _, p := range projections {
		years = max(years, len(p.Years))
	}
	totals := make([]domain.AnnualAmount, years)
	for i := range totals {
		totals[i] = domain.AnnualAmount{Year: i + 1, AnnualAmount: decimal.Zero}
	}
	for _, p := range projections {
		for i, y := range p.Years {
			totals[i].AnnualAmount = totals[i].AnnualAmount.Add(y.AnnualAmount)
		}
	}
	return totals
}
