package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Assumptions are the economic parameters shared by every scenario in a file.
type Assumptions struct {
	InflationRate   decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate" toml:"inflation_rate"`
	COLARate        decimal.Decimal `yaml:"cola_rate" json:"cola_rate" toml:"cola_rate"`
	ProjectionYears int             `yaml:"projection_years" json:"projection_years" toml:"projection_years" validate:"min=1,max=60"`
	DrawdownYears   int             `yaml:"drawdown_years" json:"drawdown_years" toml:"drawdown_years" validate:"min=0,max=60"`
	DrawdownReturn  decimal.Decimal `yaml:"drawdown_return" json:"drawdown_return" toml:"drawdown_return"`
}

// Describe renders the assumptions as human readable lines for reports.
func (a Assumptions) Describe() []string {
	pct := func(d decimal.Decimal) string { return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%" }
	return []string{
		fmt.Sprintf("Inflation: %s annually", pct(a.InflationRate)),
		fmt.Sprintf("COLA (retired pay & VA compensation): %s annually", pct(a.COLARate)),
		fmt.Sprintf("Accumulation horizon: %d years, monthly compounding", a.ProjectionYears),
		fmt.Sprintf("Drawdown horizon: %d years at %s return", a.DrawdownYears, pct(a.DrawdownReturn)),
	}
}

// WithdrawalPlan selects a withdrawal strategy for the drawdown phase.
// BaseRate, Drop and Raise are only read by the guardrail strategy; nil means
// the guardrail default.
type WithdrawalPlan struct {
	Strategy      string           `yaml:"strategy" json:"strategy" toml:"strategy" validate:"required"`
	DesiredAnnual decimal.Decimal  `yaml:"desired_annual" json:"desired_annual" toml:"desired_annual"`
	BaseRate      *decimal.Decimal `yaml:"base_rate,omitempty" json:"base_rate,omitempty" toml:"base_rate,omitempty"`
	Drop          *decimal.Decimal `yaml:"drop,omitempty" json:"drop,omitempty" toml:"drop,omitempty"`
	Raise         *decimal.Decimal `yaml:"raise,omitempty" json:"raise,omitempty" toml:"raise,omitempty"`
}

// EvidenceInput lists the evidence a claim needs and what was supplied.
type EvidenceInput struct {
	Required []string `yaml:"required" json:"required" toml:"required"`
	Provided []string `yaml:"provided" json:"provided" toml:"provided"`
}

// Scenario is one what-if case for a service member.
type Scenario struct {
	Name       string                `yaml:"name" json:"name" toml:"name" validate:"required"`
	Member     ServiceMember         `yaml:"member" json:"member" toml:"member"`
	Conditions []DisabilityCondition `yaml:"conditions" json:"conditions" toml:"conditions" validate:"dive"`
	Account    InvestmentAccount     `yaml:"account" json:"account" toml:"account"`
	Withdrawal WithdrawalPlan        `yaml:"withdrawal" json:"withdrawal" toml:"withdrawal"`
	Income     []IncomeStream        `yaml:"income,omitempty" json:"income,omitempty" toml:"income" validate:"dive"`
	Budget     *Budget               `yaml:"budget,omitempty" json:"budget,omitempty" toml:"budget"`
	Evidence   *EvidenceInput        `yaml:"evidence,omitempty" json:"evidence,omitempty" toml:"evidence"`
}

// CompensationRate is one row of a VA compensation table.
type CompensationRate struct {
	Rating  int             `yaml:"rating" json:"rating" toml:"rating" validate:"min=0,max=100,step10"`
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly" toml:"monthly"`
}

// CompensationTableConfig overrides the built-in compensation table.
type CompensationTableConfig struct {
	Rates              []CompensationRate `yaml:"rates" json:"rates" toml:"rates" validate:"dive"`
	DependentIncrement decimal.Decimal    `yaml:"dependent_increment" json:"dependent_increment" toml:"dependent_increment"`
	MinDependentRating *int               `yaml:"min_dependent_rating,omitempty" json:"min_dependent_rating,omitempty" toml:"min_dependent_rating,omitempty" validate:"omitempty,min=0,max=100"`
}

// Configuration is the top-level scenario file.
type Configuration struct {
	Assumptions  Assumptions              `yaml:"assumptions" json:"assumptions" toml:"assumptions"`
	Compensation *CompensationTableConfig `yaml:"compensation,omitempty" json:"compensation,omitempty" toml:"compensation"`
	Scenarios    []Scenario               `yaml:"scenarios" json:"scenarios" toml:"scenarios" validate:"min=1,dive"`
}

// ScenarioResult is everything the engine computed for one scenario.
type ScenarioResult struct {
	RunID          string              `json:"run_id"`
	Name           string              `json:"name"`
	Rating         CombinedRating      `json:"rating"`
	CombatCategory CRSCCategory        `json:"combat_category"`
	Compensation   CompensationResult  `json:"compensation"`
	Pension        PensionResult       `json:"pension"`
	Offset         OffsetResult        `json:"offset"`
	Accumulation   []YearlyBalance     `json:"accumulation"`
	Drawdown       DrawdownResult      `json:"drawdown"`
	Income         []IncomeProjection  `json:"income"`
	TotalIncome    []AnnualAmount      `json:"total_income"`
	Budget         *BudgetBreakdown    `json:"budget,omitempty"`
	Evidence       *EvidenceAssessment `json:"evidence,omitempty"`
	Events         Events              `json:"events"`
}

// FinalBalance returns the last accumulated nominal balance, or zero.
func (r *ScenarioResult) FinalBalance() decimal.Decimal {
	if len(r.Accumulation) == 0 {
		return decimal.Zero
	}
	return r.Accumulation[len(r.Accumulation)-1].NominalBalance
}

// FirstYearIncome returns the first projected year of combined income, or zero.
func (r *ScenarioResult) FirstYearIncome() decimal.Decimal {
	if len(r.TotalIncome) == 0 {
		return decimal.Zero
	}
	return r.TotalIncome[0].AnnualAmount
}

// ScenarioComparison holds the results of one configuration run.
type ScenarioComparison struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Assumptions Assumptions      `json:"assumptions"`
	Results     []ScenarioResult `json:"results"`
	Analysis    Analysis         `json:"analysis"`
}

// Analysis highlights the strongest scenarios in a comparison.
type Analysis struct {
	BestForIncome    string   `json:"best_for_income"`
	BestForLongevity string   `json:"best_for_longevity"`
	BestForBalance   string   `json:"best_for_balance"`
	Considerations   []string `json:"considerations"`
}
