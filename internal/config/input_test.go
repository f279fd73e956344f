package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFor("scenarios.toml"))
	assert.Equal(t, FormatTOML, FormatFor("SCENARIOS.TOML"))
	assert.Equal(t, FormatYAML, FormatFor("scenarios.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("scenarios.json"))
	assert.Equal(t, FormatYAML, FormatFor("scenarios"))
}

func TestLoadFromFile_YAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(filepath.Join("..", "..", "testdata", "example_config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 25, config.Assumptions.ProjectionYears)
	assert.True(t, config.Assumptions.InflationRate.Equal(decimal.NewFromFloat(0.025)))
	require.Len(t, config.Scenarios, 2)

	first := config.Scenarios[0]
	assert.Equal(t, "Retire at 20 years", first.Name)
	assert.Equal(t, "2005-06-01", first.Member.EntryDate.String())
	assert.Equal(t, 2, first.Member.Dependents)
	require.Len(t, first.Conditions, 5)
	assert.True(t, first.Conditions[0].Combat.ArmedConflict)
	assert.True(t, first.Conditions[1].Bilateral)
	require.Len(t, first.Account.FundAllocations, 3)
	require.NotNil(t, first.Budget)
	assert.Len(t, first.Budget.Expenses, 4)
	require.NotNil(t, first.Member.Survivor)
	assert.True(t, first.Member.Survivor.CoveragePercent.Equal(decimal.NewFromInt(1)))

	second := config.Scenarios[1]
	assert.True(t, second.Member.RetiredPayMultiplier.Equal(DefaultRetiredPayMultiplier), "multiplier defaulted")
	require.Len(t, second.Income, 1)
	require.NotNil(t, second.Income[0].COLARate)
	assert.True(t, second.Income[0].COLARate.Equal(decimal.NewFromFloat(0.025)), "stream COLA defaults to the assumption")
}

func TestLoadFromFile_TOML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(filepath.Join("..", "..", "testdata", "example_config.toml"))
	require.NoError(t, err)

	assert.Equal(t, 10, config.Assumptions.ProjectionYears)
	require.Len(t, config.Scenarios, 1)
	s := config.Scenarios[0]
	assert.Equal(t, "Medical retirement", s.Name)
	assert.Equal(t, "2027-01-15", s.Member.RetirementDate.String())
	require.Len(t, s.Conditions, 2)
	assert.True(t, s.Conditions[0].Combat.InstrumentalityOfWar)
	assert.True(t, s.Account.Balance.Equal(decimal.NewFromInt(62000)))
	assert.Equal(t, "need_based", s.Withdrawal.Strategy)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("scenarios: [\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_Defaults(t *testing.T) {
	yml := "scenarios:\n" +
		"  - name: \"minimal\"\n" +
		"    member:\n" +
		"      name: \"A\"\n"

	config, err := NewInputParser().Parse([]byte(yml), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectionYears, config.Assumptions.ProjectionYears)
	assert.Equal(t, DefaultDrawdownYears, config.Assumptions.DrawdownYears)
	assert.Equal(t, DefaultStrategy, config.Scenarios[0].Withdrawal.Strategy)
}

func TestParse_ExplicitZerosKept(t *testing.T) {
	yml := "assumptions:\n" +
		"  cola_rate: 0.03\n" +
		"  drawdown_years: 0\n" +
		"compensation:\n" +
		"  min_dependent_rating: 0\n" +
		"scenarios:\n" +
		"  - name: \"annuity\"\n" +
		"    member:\n" +
		"      name: \"A\"\n" +
		"    withdrawal:\n" +
		"      strategy: guardrail\n" +
		"      drop: 0\n" +
		"      raise: 0\n" +
		"    income:\n" +
		"      - source: other\n" +
		"        monthly_amount: 500\n" +
		"        cola_rate: 0\n" +
		"      - source: social_security\n" +
		"        monthly_amount: 1200\n"

	config, err := NewInputParser().Parse([]byte(yml), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 0, config.Assumptions.DrawdownYears)
	assert.Equal(t, DefaultProjectionYears, config.Assumptions.ProjectionYears)

	require.NotNil(t, config.Compensation)
	require.NotNil(t, config.Compensation.MinDependentRating)
	assert.Equal(t, 0, *config.Compensation.MinDependentRating)

	s := config.Scenarios[0]
	require.NotNil(t, s.Withdrawal.Drop)
	require.NotNil(t, s.Withdrawal.Raise)
	assert.True(t, s.Withdrawal.Drop.IsZero())
	assert.True(t, s.Withdrawal.Raise.IsZero())
	assert.Nil(t, s.Withdrawal.BaseRate)

	require.Len(t, s.Income, 2)
	require.NotNil(t, s.Income[0].COLARate)
	assert.True(t, s.Income[0].COLARate.IsZero(), "explicit zero COLA kept")
	require.NotNil(t, s.Income[1].COLARate)
	assert.True(t, s.Income[1].COLARate.Equal(decimal.NewFromFloat(0.03)), "absent COLA inherits the assumption")
}

func TestParse_ExplicitZerosKeptTOML(t *testing.T) {
	doc := `[assumptions]
drawdown_years = 0

[[scenarios]]
name = "annuity"

[scenarios.member]
name = "A"

[[scenarios.income]]
source = "other"
monthly_amount = 500
cola_rate = 0
`
	config, err := NewInputParser().Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, 0, config.Assumptions.DrawdownYears)
	require.NotNil(t, config.Scenarios[0].Income[0].COLARate)
	assert.True(t, config.Scenarios[0].Income[0].COLARate.IsZero())
}

func TestValidateConfiguration_FieldErrors(t *testing.T) {
	yml := "assumptions:\n" +
		"  inflation_rate: 0.5\n" +
		"scenarios:\n" +
		"  - name: \"bad\"\n" +
		"    member:\n" +
		"      name: \"\"\n" +
		"      entry_date: \"2010-01-01\"\n" +
		"      retirement_date: \"2005-01-01\"\n" +
		"      high3_average: -10\n" +
		"    conditions:\n" +
		"      - code: \"5260\"\n" +
		"        rating: 15\n" +
		"      - code: \"\"\n" +
		"        rating: 110\n" +
		"    account:\n" +
		"      balance: -1\n" +
		"      employer_match_percent: 2\n" +
		"  - name: \"bad\"\n" +
		"    member:\n" +
		"      name: \"B\"\n"

	_, err := NewInputParser().Parse([]byte(yml), FormatYAML)
	require.Error(t, err)

	ve, ok := AsValidationErrors(err)
	require.True(t, ok, "error should carry field errors: %v", err)

	fields := map[string]string{}
	for _, fe := range ve {
		fields[fe.Field] = fe.Message
	}

	assert.Equal(t, "must be between -0.1 and 0.2", fields["assumptions.inflation_rate"])
	assert.Equal(t, "is required", fields["scenarios[0].member.name"])
	assert.Contains(t, fields["scenarios[0].member.retirement_date"], "cannot be before entry date")
	assert.Equal(t, "must not be negative", fields["scenarios[0].member.high3_average"])
	assert.Equal(t, "must be a multiple of 10", fields["scenarios[0].conditions[0].rating"])
	assert.Equal(t, "is required", fields["scenarios[0].conditions[1].code"])
	assert.Equal(t, "must be at most 100", fields["scenarios[0].conditions[1].rating"])
	assert.Equal(t, "must not be negative", fields["scenarios[0].account.balance"])
	assert.Equal(t, "must be between 0 and 1", fields["scenarios[0].account.employer_match_percent"])
	assert.Contains(t, fields["scenarios[1].name"], "duplicate scenario name")
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	config := &domain.Configuration{Assumptions: domain.Assumptions{ProjectionYears: 10}}
	err := NewInputParser().ValidateConfiguration(config)
	require.Error(t, err)

	ve, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "scenarios", ve[0].Field)
	assert.Equal(t, "must have at least 1 item(s)", ve[0].Message)
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(config))
	assert.Len(t, config.Scenarios, 2)
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := parser.Marshal(original, format)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "example."+string(format))
			require.NoError(t, os.WriteFile(path, data, 0o600))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			require.Len(t, loaded.Scenarios, len(original.Scenarios))
			assert.Equal(t, original.Scenarios[0].Member.RetirementDate.String(), loaded.Scenarios[0].Member.RetirementDate.String())
			assert.True(t, original.Scenarios[0].Account.Balance.Equal(loaded.Scenarios[0].Account.Balance))
			assert.Equal(t, original.Scenarios[1].Withdrawal.Strategy, loaded.Scenarios[1].Withdrawal.Strategy)
		})
	}
}

func TestLoadBudget(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "budget.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
incomes:
  - name: retired pay
    amount: 4000
expenses:
  - name: mortgage
    category: housing
    amount: 1800
goals:
  - name: emergency fund
    target: 500
`), 0o644))
	b, err := NewInputParser().LoadBudget(yamlPath)
	require.NoError(t, err)
	require.Len(t, b.Expenses, 1)
	assert.Equal(t, "housing", b.Expenses[0].Category)
	assert.True(t, b.Goals[0].Target.Equal(decimal.NewFromInt(500)))

	tomlPath := filepath.Join(dir, "budget.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
[[incomes]]
name = "pay"
amount = "100"

[[expenses]]
name = "food"
amount = "-5"
`), 0o644))
	_, err = NewInputParser().LoadBudget(tomlPath)
	require.Error(t, err)
	ve, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "budget.expenses[0].amount", ve[0].Field)

	_, err = NewInputParser().LoadBudget(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
