package domain

import (
	"github.com/shopspring/decimal"
)

// FundAllocation is one fund's share of an account (e.g. a TSP fund).
type FundAllocation struct {
	Fund           string          `yaml:"fund" json:"fund" toml:"fund" validate:"required"`
	Weight         decimal.Decimal `yaml:"weight" json:"weight" toml:"weight"`
	ExpectedReturn decimal.Decimal `yaml:"expected_return" json:"expected_return" toml:"expected_return"`
}

// InvestmentAccount describes a retirement account at the start of a projection.
// Projections never modify it; each period produces a new YearlyBalance.
type InvestmentAccount struct {
	Name                 string           `yaml:"name,omitempty" json:"name,omitempty" toml:"name"`
	Balance              decimal.Decimal  `yaml:"balance" json:"balance" toml:"balance"`
	MonthlyContribution  decimal.Decimal  `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
	ExpectedReturn       decimal.Decimal  `yaml:"expected_return" json:"expected_return" toml:"expected_return"`
	EmployerMatchPercent decimal.Decimal  `yaml:"employer_match_percent" json:"employer_match_percent" toml:"employer_match_percent"`
	FundAllocations      []FundAllocation `yaml:"fund_allocations,omitempty" json:"fund_allocations,omitempty" toml:"fund_allocations" validate:"dive"`
}

// YearlyBalance is one year of a compounding projection.
type YearlyBalance struct {
	Year           int             `json:"year"`
	NominalBalance decimal.Decimal `json:"nominal_balance"`
	RealBalance    decimal.Decimal `json:"real_balance"`
	Contributions  decimal.Decimal `json:"contributions"`
	EmployerMatch  decimal.Decimal `json:"employer_match"`
	Growth         decimal.Decimal `json:"growth"`
}

// DrawdownYear is one year of a withdrawal-phase projection.
type DrawdownYear struct {
	Year             int             `json:"year"`
	BeginningBalance decimal.Decimal `json:"beginning_balance"`
	Withdrawal       decimal.Decimal `json:"withdrawal"`
	Growth           decimal.Decimal `json:"growth"`
	EndingBalance    decimal.Decimal `json:"ending_balance"`
}

// DrawdownResult summarizes a withdrawal-phase projection.
type DrawdownResult struct {
	Strategy       string          `json:"strategy"`
	Years          []DrawdownYear  `json:"years"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
	Depleted       bool            `json:"depleted"`
	DepletionYear  int             `json:"depletion_year,omitempty"`
	LongevityYears int             `json:"longevity_years"`
}
