package calculation

import (
	"github.com/rallyforge/benefits-engine/internal/domain"
	money "github.com/rallyforge/benefits-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Survivor benefit plan parameters.
var (
	SurvivorCostRate    = decimal.RequireFromString("0.065")
	SurvivorBenefitRate = decimal.RequireFromString("0.55")
)

// CalculatePension computes monthly retired pay as
// high3Average * multiplier * yearsOfService. A survivor election costs
// base*coverage*6.5% and pays the survivor base*coverage*55%, where base
// defaults to the gross pension.
func CalculatePension(in domain.PensionInput) domain.PensionResult {
	gross := in.High3Average.Mul(in.Multiplier).Mul(in.YearsOfService)
	res := domain.PensionResult{
		GrossMonthly:    gross,
		SurvivorBase:    decimal.Zero,
		SurvivorCost:    decimal.Zero,
		NetMonthly:      gross,
		SurvivorBenefit: decimal.Zero,
	}

	if in.Survivor == nil || !in.Survivor.CoveragePercent.IsPositive() {
		return res
	}

	base := in.Survivor.BaseAmount
	if base.IsZero() {
		base = gross
	}
	covered := base.Mul(in.Survivor.CoveragePercent)
	res.SurvivorBase = base
	res.SurvivorCost = covered.Mul(SurvivorCostRate)
	res.SurvivorBenefit = covered.Mul(SurvivorBenefitRate)
	res.NetMonthly = money.NonNegative(gross.Sub(res.SurvivorCost))
	return res
}
