package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	assert.Equal(t, "12.35", m.String())

	d := stddec.NewFromFloat(10.125)
	assert.True(t, NewMoneyFromDecimal(d).Decimal.Equal(d))

	m3, err := NewMoneyFromString("123.45")
	require.NoError(t, err)
	assert.Equal(t, "123.45", m3.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestPeriodConversions(t *testing.T) {
	monthly := NewMoney(1500)
	assert.Equal(t, "18000.00", monthly.Annual().String())
	assert.Equal(t, "1500.00", monthly.Annual().Monthly().Round().String())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"999.999", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-2500", "-$2,500.00"},
		{"-125", "-$125.00"},
	}
	for _, c := range cases {
		m, err := NewMoneyFromString(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.out, m.Format(), "format(%s)", c.in)
	}
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().IsZero())
	got := Sum(stddec.NewFromInt(3000), stddec.NewFromInt(2000), stddec.NewFromFloat(0.5))
	assert.True(t, got.Equal(stddec.NewFromFloat(5000.5)))
}

func TestClamp(t *testing.T) {
	lo, hi := stddec.NewFromInt(10), stddec.NewFromInt(20)
	assert.True(t, Clamp(stddec.NewFromInt(5), lo, hi).Equal(lo))
	assert.True(t, Clamp(stddec.NewFromInt(25), lo, hi).Equal(hi))
	assert.True(t, Clamp(stddec.NewFromInt(15), lo, hi).Equal(stddec.NewFromInt(15)))
	assert.True(t, Clamp(stddec.NewFromInt(15), hi, lo).Equal(hi))
}

func TestNonNegative(t *testing.T) {
	assert.True(t, NonNegative(stddec.NewFromInt(-1)).IsZero())
	assert.True(t, NonNegative(stddec.NewFromInt(7)).Equal(stddec.NewFromInt(7)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "2.5%", Percent(stddec.NewFromFloat(0.025)))
	assert.Equal(t, "100.0%", Percent(stddec.NewFromInt(1)))
}
