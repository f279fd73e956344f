package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceMember_Age(t *testing.T) {
	member := &ServiceMember{BirthDate: NewDate(1975, time.June, 15)}

	testCases := []struct {
		atDate   time.Time
		expected int
		desc     string
	}{
		{time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 49, "day before birthday"},
		{time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 50, "on birthday"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 50, "end of year"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, member.Age(tc.atDate))
		})
	}
}

func TestServiceMember_AgeWithoutBirthDate(t *testing.T) {
	member := &ServiceMember{}
	assert.Equal(t, 0, member.Age(time.Now()))
}

func TestServiceMember_YearsOfService(t *testing.T) {
	t.Run("derived from dates", func(t *testing.T) {
		member := &ServiceMember{
			EntryDate:      NewDate(2004, time.June, 1),
			RetirementDate: NewDate(2024, time.June, 1),
		}
		assert.True(t, member.YearsOfService().Equal(decimal.NewFromInt(20)),
			"expected 20 years, got %s", member.YearsOfService())
	})

	t.Run("override wins", func(t *testing.T) {
		member := &ServiceMember{
			EntryDate:      NewDate(2004, time.June, 1),
			RetirementDate: NewDate(2024, time.June, 1),
			ServiceYears:   decimal.NewFromFloat(22.5),
		}
		assert.True(t, member.YearsOfService().Equal(decimal.NewFromFloat(22.5)))
	})

	t.Run("missing dates", func(t *testing.T) {
		member := &ServiceMember{EntryDate: NewDate(2004, time.June, 1)}
		assert.True(t, member.YearsOfService().IsZero())
	})
}

func TestServiceMember_PensionInput(t *testing.T) {
	election := &SurvivorElection{CoveragePercent: decimal.NewFromInt(1)}
	member := &ServiceMember{
		High3Average:         decimal.NewFromInt(6000),
		RetiredPayMultiplier: decimal.NewFromFloat(0.025),
		ServiceYears:         decimal.NewFromInt(20),
		Survivor:             election,
	}

	input := member.PensionInput()
	assert.True(t, input.High3Average.Equal(decimal.NewFromInt(6000)))
	assert.True(t, input.Multiplier.Equal(decimal.NewFromFloat(0.025)))
	assert.True(t, input.YearsOfService.Equal(decimal.NewFromInt(20)))
	assert.Same(t, election, input.Survivor)
}

func TestCRSCCategory_IsCombatRelated(t *testing.T) {
	assert.True(t, CRSCPurpleHeart.IsCombatRelated())
	assert.True(t, CRSCInstrumentalityOfWar.IsCombatRelated())
	assert.False(t, CRSCNotCombatRelated.IsCombatRelated())
	assert.False(t, CRSCCategory("").IsCombatRelated())
}

func TestAssumptions_Describe(t *testing.T) {
	a := Assumptions{
		InflationRate:   decimal.NewFromFloat(0.025),
		COLARate:        decimal.NewFromFloat(0.03),
		ProjectionYears: 20,
		DrawdownYears:   30,
		DrawdownReturn:  decimal.NewFromFloat(0.05),
	}
	lines := a.Describe()
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "2.5%")
	assert.Contains(t, lines[1], "3.0%")
	assert.Contains(t, lines[2], "20 years")
	assert.Contains(t, lines[3], "5.0%")
}

func TestScenarioResult_Accessors(t *testing.T) {
	var empty ScenarioResult
	assert.True(t, empty.FinalBalance().IsZero())
	assert.True(t, empty.FirstYearIncome().IsZero())

	r := ScenarioResult{
		Accumulation: []YearlyBalance{
			{Year: 1, NominalBalance: decimal.NewFromInt(100)},
			{Year: 2, NominalBalance: decimal.NewFromInt(250)},
		},
		TotalIncome: []AnnualAmount{{Year: 1, AnnualAmount: decimal.NewFromInt(42000)}},
	}
	assert.True(t, r.FinalBalance().Equal(decimal.NewFromInt(250)))
	assert.True(t, r.FirstYearIncome().Equal(decimal.NewFromInt(42000)))
}
