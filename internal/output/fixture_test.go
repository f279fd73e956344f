package output

import (
	"time"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleComparison() *domain.ScenarioComparison {
	retire := domain.ScenarioResult{
		Name:           "Retire at 20",
		Rating:         domain.CombinedRating{Ratings: []int{50, 30}, Exact: d("65"), Combined: 70, Steps: []domain.RatingStep{{Rating: d("50"), Before: d("100"), After: d("50")}, {Rating: d("30"), Before: d("50"), After: d("35")}}},
		CombatCategory: domain.CRSCArmedConflict,
		Compensation:   domain.CompensationResult{Rating: 70, TableRating: 70, Monthly: d("1716.28")},
		Pension:        domain.PensionResult{GrossMonthly: d("4000"), NetMonthly: d("4000")},
		Offset:         domain.OffsetResult{Waiver: d("1716.28"), CRDPEligible: true, CRDPAmount: d("1716.28"), Elected: domain.OffsetCRDP, Restored: d("1716.28"), NetRetiredPay: d("2283.72"), TotalMonthlyPay: d("5716.28")},
		Accumulation:   []domain.YearlyBalance{{Year: 1, NominalBalance: d("110000"), RealBalance: d("107000")}, {Year: 2, NominalBalance: d("121000"), RealBalance: d("115000")}},
		Drawdown: domain.DrawdownResult{
			Strategy:       "flat_4",
			Years:          []domain.DrawdownYear{{Year: 1, BeginningBalance: d("121000"), Withdrawal: d("4840"), EndingBalance: d("116160")}},
			TotalWithdrawn: d("4840"),
			FinalBalance:   d("116160"),
			LongevityYears: 1,
		},
		TotalIncome: []domain.AnnualAmount{{Year: 1, AnnualAmount: d("68595.36")}},
		Budget:      &domain.BudgetBreakdown{TotalIncome: d("5716.28"), TotalExpenses: d("4000"), AvailableSavings: d("1716.28"), TotalGoals: d("2000"), ShortfallAmount: d("283.72")},
		Evidence:    &domain.EvidenceAssessment{Required: []string{"dd214", "nexus letter"}, Matched: []string{"dd214"}, Missing: []string{"nexus letter"}, Confidence: domain.ConfidenceLow},
	}
	stay := domain.ScenarioResult{
		Name:         "Medical retirement",
		Rating:       domain.CombinedRating{Ratings: []int{30}, Exact: d("30"), Combined: 30},
		Offset:       domain.OffsetResult{Elected: domain.OffsetNone, TotalMonthlyPay: d("3000")},
		Accumulation: []domain.YearlyBalance{{Year: 1, NominalBalance: d("50000"), RealBalance: d("48000")}},
		Drawdown:     domain.DrawdownResult{Strategy: "flat_5", Depleted: true, DepletionYear: 3, LongevityYears: 3},
		TotalIncome:  []domain.AnnualAmount{{Year: 1, AnnualAmount: d("36000")}},
	}
	return &domain.ScenarioComparison{
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Assumptions: domain.Assumptions{InflationRate: d("0.025"), COLARate: d("0.02"), ProjectionYears: 2, DrawdownYears: 1, DrawdownReturn: d("0.05")},
		Results:     []domain.ScenarioResult{stay, retire},
		Analysis: domain.Analysis{
			BestForIncome:    "Retire at 20",
			BestForLongevity: "Retire at 20",
			BestForBalance:   "Retire at 20",
			Considerations:   []string{"Medical retirement: flat_5 withdrawals run out in year 3"},
		},
	}
}
