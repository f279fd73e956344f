package calculation

import (
	"testing"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatPercentageStrategies(t *testing.T) {
	registry := DefaultStrategies()
	balance := decimal.NewFromInt(100000)

	tests := []struct {
		strategy string
		want     int64
	}{
		{StrategyFlat3, 3000},
		{StrategyFlat4, 4000},
		{StrategyFlat5, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			s, err := registry.Resolve(domain.WithdrawalPlan{Strategy: tt.strategy})
			require.NoError(t, err)
			assert.Equal(t, tt.strategy, s.Name())
			got := s.Withdrawal(balance, decimal.NewFromInt(999999))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "expected %d, got %s", tt.want, got)
		})
	}

	s, _ := registry.Resolve(domain.WithdrawalPlan{Strategy: StrategyFlat4})
	assert.True(t, s.Withdrawal(decimal.Zero, decimal.Zero).IsZero())
	assert.True(t, s.Withdrawal(decimal.NewFromInt(-50), decimal.Zero).IsZero())
}

func TestGuardrailClamps(t *testing.T) {
	g := Guardrail{
		BaseRate: decimal.NewFromFloat(0.04),
		Drop:     decimal.NewFromFloat(0.01),
		Raise:    decimal.NewFromFloat(0.01),
	}
	balance := decimal.NewFromInt(100000)

	tests := []struct {
		name    string
		desired int64
		want    int64
	}{
		{"above ceiling", 10000, 5000},
		{"below floor", 1000, 3000},
		{"inside band", 4500, 4500},
		{"no desired amount uses base rate", 0, 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Withdrawal(balance, decimal.NewFromInt(tt.desired))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "expected %d, got %s", tt.want, got)
		})
	}
}

func TestGuardrailFactory(t *testing.T) {
	registry := DefaultStrategies()

	s, err := registry.Resolve(domain.WithdrawalPlan{Strategy: StrategyGuardrail})
	require.NoError(t, err)
	g, ok := s.(Guardrail)
	require.True(t, ok)
	assert.True(t, g.BaseRate.Equal(decimal.NewFromFloat(0.04)))
	assert.True(t, g.Drop.Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, g.Raise.Equal(decimal.NewFromFloat(0.01)))

	_, err = registry.Resolve(domain.WithdrawalPlan{
		Strategy: StrategyGuardrail,
		BaseRate: dec("0.03"),
		Drop:     dec("0.05"),
	})
	assert.Error(t, err)
}

func TestGuardrailZeroWidthBand(t *testing.T) {
	s, err := DefaultStrategies().Resolve(domain.WithdrawalPlan{
		Strategy: StrategyGuardrail,
		BaseRate: dec("0.04"),
		Drop:     dec("0"),
		Raise:    dec("0"),
	})
	require.NoError(t, err)
	g := s.(Guardrail)
	assert.True(t, g.Drop.IsZero())
	assert.True(t, g.Raise.IsZero())

	balance := decimal.NewFromInt(100000)
	for _, desired := range []int64{5000, 3000, 0} {
		got := s.Withdrawal(balance, decimal.NewFromInt(desired))
		assert.True(t, got.Equal(decimal.NewFromInt(4000)), "desired %d: got %s", desired, got)
	}
}

func TestGuardrailPartialOverride(t *testing.T) {
	s, err := DefaultStrategies().Resolve(domain.WithdrawalPlan{Strategy: StrategyGuardrail, Raise: dec("0")})
	require.NoError(t, err)
	g := s.(Guardrail)
	assert.True(t, g.BaseRate.Equal(decimal.NewFromFloat(0.04)))
	assert.True(t, g.Drop.Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, g.Raise.IsZero())
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestResolveUnknownStrategy(t *testing.T) {
	_, err := DefaultStrategies().Resolve(domain.WithdrawalPlan{Strategy: "yolo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "yolo")
}

func TestDefaultStrategiesAreIsolated(t *testing.T) {
	a := DefaultStrategies()
	b := DefaultStrategies()
	delete(a, StrategyFlat4)

	_, err := b.Resolve(domain.WithdrawalPlan{Strategy: StrategyFlat4})
	assert.NoError(t, err)
	assert.Equal(t, []string{StrategyFlat3, StrategyFlat4, StrategyFlat5, StrategyGuardrail, StrategyNeedBased}, b.Names())
}

func TestProjectDrawdownDepletion(t *testing.T) {
	got := ProjectDrawdown(decimal.NewFromInt(10000), NeedBased{}, decimal.NewFromInt(4000), decimal.Zero, 5)

	require.Len(t, got.Years, 5)
	assert.Equal(t, StrategyNeedBased, got.Strategy)
	assert.True(t, got.Depleted)
	assert.Equal(t, 3, got.DepletionYear)
	assert.Equal(t, 3, got.LongevityYears)
	assert.True(t, got.TotalWithdrawn.Equal(decimal.NewFromInt(10000)))
	assert.True(t, got.FinalBalance.IsZero())
	assert.True(t, got.Years[2].Withdrawal.Equal(decimal.NewFromInt(2000)), "last withdrawal is capped at the balance")
	assert.True(t, got.Years[3].Withdrawal.IsZero())
}

func TestProjectDrawdownFlat(t *testing.T) {
	s := FlatPercentage{Label: StrategyFlat4, Rate: decimal.NewFromFloat(0.04)}
	got := ProjectDrawdown(decimal.NewFromInt(100000), s, decimal.Zero, decimal.Zero, 2)

	require.Len(t, got.Years, 2)
	assert.False(t, got.Depleted)
	assert.Equal(t, 2, got.LongevityYears)
	assert.True(t, got.Years[0].Withdrawal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, got.Years[1].Withdrawal.Equal(decimal.NewFromInt(3840)))
	assert.True(t, got.FinalBalance.Equal(decimal.NewFromInt(92160)))
}

func TestProjectDrawdownGrowthAfterWithdrawal(t *testing.T) {
	s := FlatPercentage{Label: StrategyFlat4, Rate: decimal.NewFromFloat(0.04)}
	got := ProjectDrawdown(decimal.NewFromInt(100000), s, decimal.Zero, decimal.NewFromFloat(0.05), 1)

	require.Len(t, got.Years, 1)
	assert.True(t, got.Years[0].Growth.Equal(decimal.NewFromInt(4800)))
	assert.True(t, got.Years[0].EndingBalance.Equal(decimal.NewFromInt(100800)))
}

func TestProjectDrawdownEmptyAccount(t *testing.T) {
	got := ProjectDrawdown(decimal.Zero, NeedBased{}, decimal.NewFromInt(1000), decimal.Zero, 3)
	assert.False(t, got.Depleted, "an account that starts empty is not depleted by withdrawals")
	assert.True(t, got.TotalWithdrawn.IsZero())
}
