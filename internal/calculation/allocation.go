package calculation

import (
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// WeightedReturn returns the weight-normalized expected return of a set of
// fund allocations. Weights need not sum to 1. An empty set or a zero weight
// sum yields zero.
func WeightedReturn(allocations []domain.FundAllocation) decimal.Decimal {
	totalWeight := decimal.Zero
	weighted := decimal.Zero
	for _, a := range allocations {
		totalWeight = totalWeight.Add(a.Weight)
		weighted = weighted.Add(a.Weight.Mul(a.ExpectedReturn))
	}
	if totalWeight.IsZero() {
		return decimal.Zero
	}
	return weighted.Div(totalWeight)
}
