package calculation

import (
	"github.com/rallyforge/benefits-engine/internal/domain"
	money "github.com/rallyforge/benefits-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CRDP thresholds.
const (
	crdpMinRating = 50
	crdpMinYears  = 20
)

// crscPriority lists categories from strongest to weakest.
var crscPriority = []domain.CRSCCategory{
	domain.CRSCPurpleHeart,
	domain.CRSCArmedConflict,
	domain.CRSCHazardousService,
	domain.CRSCSimulatedWar,
	domain.CRSCInstrumentalityOfWar,
	domain.CRSCNotCombatRelated,
}

// ClassifyCRSC maps combat flags to a single category. The first set flag in
// priority order wins; no flags means not combat related.
func ClassifyCRSC(f domain.CombatFlags) domain.CRSCCategory {
	switch {
	case f.PurpleHeart:
		return domain.CRSCPurpleHeart
	case f.ArmedConflict:
		return domain.CRSCArmedConflict
	case f.HazardousService:
		return domain.CRSCHazardousService
	case f.SimulatedWar:
		return domain.CRSCSimulatedWar
	case f.InstrumentalityOfWar:
		return domain.CRSCInstrumentalityOfWar
	default:
		return domain.CRSCNotCombatRelated
	}
}

// ClassifyConditions returns the highest-priority category across conditions
// and the conditions that are combat related.
func ClassifyConditions(conditions []domain.DisabilityCondition) (domain.CRSCCategory, []domain.DisabilityCondition) {
	best := len(crscPriority) - 1
	var combat []domain.DisabilityCondition
	for _, c := range conditions {
		cat := ClassifyCRSC(c.Combat)
		if cat.IsCombatRelated() {
			combat = append(combat, c)
		}
		if i := priorityOf(cat); i < best {
			best = i
		}
	}
	return crscPriority[best], combat
}

func priorityOf(c domain.CRSCCategory) int {
	for i, p := range crscPriority {
		if p == c {
			return i
		}
	}
	return len(crscPriority) - 1
}

// ComputeOffset works out the VA waiver and which restoration program pays
// more. Retired pay is reduced dollar for dollar by VA compensation. CRDP
// restores the whole waiver at a combined rating of 50 or more with 20 years
// of service. CRSC restores up to the compensation paid for combat-related
// conditions. The member receives whichever is larger.
func ComputeOffset(in domain.OffsetInput) domain.OffsetResult {
	retired := money.NonNegative(in.RetiredPay)
	comp := money.NonNegative(in.VACompensation)
	waiver := decimal.Min(retired, comp)

	res := domain.OffsetResult{
		Waiver:     waiver,
		CRDPAmount: decimal.Zero,
		CRSCAmount: decimal.Zero,
		Elected:    domain.OffsetNone,
		Restored:   decimal.Zero,
	}

	if in.CombinedRating >= crdpMinRating && in.YearsOfService.GreaterThanOrEqual(decimal.NewFromInt(crdpMinYears)) {
		res.CRDPEligible = true
		res.CRDPAmount = waiver
	}
	if in.Category.IsCombatRelated() && in.CombatCompensation.IsPositive() {
		res.CRSCEligible = true
		res.CRSCAmount = decimal.Min(waiver, in.CombatCompensation)
	}

	switch {
	case res.CRDPEligible && res.CRDPAmount.GreaterThanOrEqual(res.CRSCAmount) && res.CRDPAmount.IsPositive():
		res.Elected = domain.OffsetCRDP
		res.Restored = res.CRDPAmount
	case res.CRSCEligible && res.CRSCAmount.IsPositive():
		res.Elected = domain.OffsetCRSC
		res.Restored = res.CRSCAmount
	}

	res.NetRetiredPay = retired.Sub(waiver)
	res.TotalMonthlyPay = money.Sum(res.NetRetiredPay, res.Restored, comp)
	return res
}
