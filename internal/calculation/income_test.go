package calculation

import (
	"testing"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectIncomeCOLA(t *testing.T) {
	cola := decimal.NewFromFloat(0.02)
	stream := domain.IncomeStream{
		Source:        domain.IncomeVACompensation,
		MonthlyAmount: decimal.NewFromInt(1000),
		COLARate:      &cola,
	}

	got := ProjectIncome(stream, 3)
	assert.Equal(t, domain.IncomeVACompensation, got.Source)
	require.Len(t, got.Years, 3)

	want := []string{"12000", "12240", "12484.8"}
	for i, w := range want {
		assert.Equal(t, i+1, got.Years[i].Year)
		assert.True(t, got.Years[i].AnnualAmount.Equal(decimal.RequireFromString(w)), "year %d: expected %s, got %s", i+1, w, got.Years[i].AnnualAmount)
	}
}

func TestProjectIncomeNoYears(t *testing.T) {
	got := ProjectIncome(domain.IncomeStream{MonthlyAmount: decimal.NewFromInt(1000)}, 0)
	assert.Empty(t, got.Years)
}

func TestSumIncome(t *testing.T) {
	a := ProjectIncome(domain.IncomeStream{MonthlyAmount: decimal.NewFromInt(100)}, 3)
	b := ProjectIncome(domain.IncomeStream{MonthlyAmount: decimal.NewFromInt(50)}, 2)

	got := SumIncome([]domain.IncomeProjection{a, b})
	require.Len(t, got, 3)
	assert.True(t, got[0].AnnualAmount.Equal(decimal.NewFromInt(1800)))
	assert.True(t, got[1].AnnualAmount.Equal(decimal.NewFromInt(1800)))
	assert.True(t, got[2].AnnualAmount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 3, got[2].Year)

	assert.Empty(t, SumIncome(nil))
}
