package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format is a scenario file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Defaults applied to fields left empty in a scenario file.
const (
	DefaultProjectionYears = 30
	DefaultDrawdownYears   = 30
	DefaultStrategy        = "flat_4"
)

// DefaultRetiredPayMultiplier is the High-3 retired pay multiplier per year of service.
var DefaultRetiredPayMultiplier = decimal.NewFromFloat(0.025)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// FormatFor picks the decoder for a file name. YAML is the default, which
// also covers JSON.
func FormatFor(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadFromFile loads and validates a configuration from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatFor(filename))
}

// LoadBudget loads and validates a standalone budget file.
func (ip *InputParser) LoadBudget(filename string) (*domain.Budget, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var b domain.Budget
	switch FormatFor(filename) {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	var c Checker
	c.Merge(ValidateStruct(&b))
	ValidateBudget(&c, "budget", b)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("budget validation failed: %w", err)
	}
	return &b, nil
}

// NewConfiguration returns an empty configuration carrying the default
// assumptions. Decoding a file into it keeps the defaults for absent keys while
// explicit values, zero included, win.
func NewConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Assumptions: domain.Assumptions{
			ProjectionYears: DefaultProjectionYears,
			DrawdownYears:   DefaultDrawdownYears,
		},
	}
}

// Parse decodes data in the given format, fills defaults and validates the result.
func (ip *InputParser) Parse(data []byte, format Format) (*domain.Configuration, error) {
	config := NewConfiguration()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	ApplyDefaults(config)
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ApplyDefaults fills fields a scenario file may omit. A zero projection
// horizon is invalid and takes the default; the drawdown horizon may be zero,
// so its default comes from NewConfiguration instead.
func ApplyDefaults(config *domain.Configuration) {
	if config.Assumptions.ProjectionYears == 0 {
		config.Assumptions.ProjectionYears = DefaultProjectionYears
	}
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if s.Withdrawal.Strategy == "" {
			s.Withdrawal.Strategy = DefaultStrategy
		}
		if s.Member.RetiredPayMultiplier.IsZero() {
			s.Member.RetiredPayMultiplier = DefaultRetiredPayMultiplier
		}
		for j := range s.Income {
			if s.Income[j].COLARate == nil {
				cola := config.Assumptions.COLARate
				s.Income[j].COLARate = &cola
			}
		}
	}
}

var (
	minRate       = decimal.NewFromFloat(-0.10)
	maxRate       = decimal.NewFromFloat(0.20)
	minReturn     = decimal.NewFromFloat(-0.50)
	maxReturn     = decimal.NewFromFloat(0.50)
	maxMultiplier = decimal.NewFromFloat(0.10)
	maxService    = decimal.NewFromInt(60)
)

// ValidateConfiguration validates a loaded configuration. All failures are
// reported together as ValidationErrors.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	var c Checker
	c.Merge(ValidateStruct(config))

	ValidateAssumptions(&c, "assumptions", config.Assumptions)

	if config.Compensation != nil {
		for i, r := range config.Compensation.Rates {
			c.NonNegative(fmt.Sprintf("compensation.rates[%d].monthly", i), r.Monthly)
		}
		c.NonNegative("compensation.dependent_increment", config.Compensation.DependentIncrement)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		prefix := fmt.Sprintf("scenarios[%d]", i)
		if s.Name != "" && seen[s.Name] {
			c.Add(prefix+".name", "duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		ip.validateScenario(&c, prefix, s)
	}
	return c.Err()
}

// ValidateAssumptions checks the economic rates. Deflation is allowed but
// extreme values are not.
func ValidateAssumptions(c *Checker, prefix string, a domain.Assumptions) {
	c.Range(prefix+".inflation_rate", a.InflationRate, minRate, maxRate)
	c.Range(prefix+".cola_rate", a.COLARate, minRate, maxRate)
	c.Range(prefix+".drawdown_return", a.DrawdownReturn, minReturn, maxReturn)
}

func (ip *InputParser) validateScenario(c *Checker, prefix string, s *domain.Scenario) {
	ValidateMember(c, prefix+".member", s.Member)
	ValidateAccount(c, prefix+".account", s.Account)

	w := s.Withdrawal
	c.NonNegative(prefix+".withdrawal.desired_annual", w.DesiredAnnual)
	if w.BaseRate != nil {
		c.Range(prefix+".withdrawal.base_rate", *w.BaseRate, decimal.Zero, decimal.NewFromInt(1))
	}
	if w.Drop != nil {
		c.NonNegative(prefix+".withdrawal.drop", *w.Drop)
	}
	if w.Raise != nil {
		c.NonNegative(prefix+".withdrawal.raise", *w.Raise)
	}

	for i, st := range s.Income {
		c.NonNegative(fmt.Sprintf("%s.income[%d].monthly_amount", prefix, i), st.MonthlyAmount)
		c.Range(fmt.Sprintf("%s.income[%d].cola_rate", prefix, i), st.COLA(), minRate, maxRate)
	}
	if s.Budget != nil {
		ValidateBudget(c, prefix+".budget", *s.Budget)
	}
}

// ValidateMember checks a service member's pay and service figures.
func ValidateMember(c *Checker, prefix string, m domain.ServiceMember) {
	c.NonNegative(prefix+".high3_average", m.High3Average)
	c.Range(prefix+".retired_pay_multiplier", m.RetiredPayMultiplier, decimal.Zero, maxMultiplier)
	c.Range(prefix+".years_of_service", m.ServiceYears, decimal.Zero, maxService)

	if !m.EntryDate.IsZero() && !m.RetirementDate.IsZero() && m.RetirementDate.Before(m.EntryDate.Time) {
		c.Add(prefix+".retirement_date", "retirement date (%s) cannot be before entry date (%s)", m.RetirementDate, m.EntryDate)
	}
	if !m.BirthDate.IsZero() && !m.EntryDate.IsZero() && m.EntryDate.Before(m.BirthDate.Time) {
		c.Add(prefix+".entry_date", "entry date (%s) cannot be before birth date (%s)", m.EntryDate, m.BirthDate)
	}
	if m.Survivor != nil {
		c.NonNegative(prefix+".survivor.base_amount", m.Survivor.BaseAmount)
		c.Range(prefix+".survivor.coverage_percent", m.Survivor.CoveragePercent, decimal.Zero, decimal.NewFromInt(1))
	}
}

// ValidateAccount checks an investment account.
func ValidateAccount(c *Checker, prefix string, a domain.InvestmentAccount) {
	c.NonNegative(prefix+".balance", a.Balance)
	c.NonNegative(prefix+".monthly_contribution", a.MonthlyContribution)
	c.Range(prefix+".expected_return", a.ExpectedReturn, minReturn, maxReturn)
	c.Range(prefix+".employer_match_percent", a.EmployerMatchPercent, decimal.Zero, decimal.NewFromInt(1))
	for i, f := range a.FundAllocations {
		c.NonNegative(fmt.Sprintf("%s.fund_allocations[%d].weight", prefix, i), f.Weight)
		c.Range(fmt.Sprintf("%s.fund_allocations[%d].expected_return", prefix, i), f.ExpectedReturn, minReturn, maxReturn)
	}
}

// ValidateBudget requires non-negative budget amounts.
func ValidateBudget(c *Checker, prefix string, b domain.Budget) {
	for i, e := range b.Incomes {
		c.NonNegative(fmt.Sprintf("%s.incomes[%d].amount", prefix, i), e.Amount)
	}
	for i, e := range b.Expenses {
		c.NonNegative(fmt.Sprintf("%s.expenses[%d].amount", prefix, i), e.Amount)
	}
	for i, g := range b.Goals {
		c.NonNegative(fmt.Sprintf("%s.goals[%d].target", prefix, i), g.Target)
	}
}
