package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func comparison(names ...string) *domain.ScenarioComparison {
	cmp := &domain.ScenarioComparison{
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Assumptions: domain.Assumptions{InflationRate: decimal.RequireFromString("0.025"), ProjectionYears: 1},
		Analysis:    domain.Analysis{BestForIncome: names[0], BestForLongevity: names[len(names)-1]},
	}
	for i, n := range names {
		cmp.Results = append(cmp.Results, domain.ScenarioResult{
			RunID:        "scn-" + n,
			Name:         n,
			Rating:       domain.CombinedRating{Combined: 10 * (i + 5)},
			Offset:       domain.OffsetResult{Elected: domain.OffsetCRSC, TotalMonthlyPay: decimal.RequireFromString("5823.88")},
			Accumulation: []domain.YearlyBalance{{Year: 1, NominalBalance: decimal.RequireFromString("12345.67")}},
			TotalIncome:  []domain.AnnualAmount{{Year: 1, AnnualAmount: decimal.RequireFromString("69886.56")}},
			Drawdown:     domain.DrawdownResult{Depleted: i == 1, DepletionYear: 7},
			Events:       domain.Events{domain.RatingCombinedEvent{Ratings: []int{50}, Combined: 50}},
		})
	}
	return cmp
}

func TestSaveAndListRuns(t *testing.T) {
	h := openTest(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return base }
	first, err := h.SaveRun(ctx, "first", comparison("A", "B"))
	require.NoError(t, err)
	h.now = func() time.Time { return base.Add(time.Hour) }
	second, err := h.SaveRun(ctx, "second", comparison("C"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	runs, err := h.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].RunID)
	assert.Equal(t, "first", runs[1].Label)
	assert.Equal(t, 2, runs[1].ScenarioCount)
	assert.Equal(t, "A", runs[1].BestForIncome)
	assert.True(t, runs[1].GeneratedAt.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))

	scenarios := runs[1].Scenarios
	require.Len(t, scenarios, 2)
	assert.Equal(t, "scn-A", scenarios[0].ScenarioID)
	assert.Equal(t, 60, scenarios[1].CombinedRating)
	assert.Equal(t, domain.OffsetCRSC, scenarios[0].Elected)
	assert.True(t, scenarios[0].TotalMonthlyPay.Equal(decimal.RequireFromString("5823.88")))
	assert.True(t, scenarios[0].FinalBalance.Equal(decimal.RequireFromString("12345.67")))
	assert.False(t, scenarios[0].Depleted)
	assert.True(t, scenarios[1].Depleted)

	limited, err := h.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "second", limited[0].Label)
}

func TestGetRunRoundTrip(t *testing.T) {
	h := openTest(t)
	ctx := context.Background()

	id, err := h.SaveRun(ctx, "round trip", comparison("A"))
	require.NoError(t, err)

	cmp, err := h.GetRun(ctx, id)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 1)
	assert.Equal(t, "A", cmp.Results[0].Name)
	assert.True(t, cmp.Assumptions.InflationRate.Equal(decimal.RequireFromString("0.025")))
	require.Len(t, cmp.Results[0].Events, 1)
	assert.Equal(t, domain.EventRatingCombined, cmp.Results[0].Events[0].Kind())

	_, err = h.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestDeleteRun(t *testing.T) {
	h := openTest(t)
	ctx := context.Background()

	id, err := h.SaveRun(ctx, "doomed", comparison("A", "B"))
	require.NoError(t, err)
	require.NoError(t, h.DeleteRun(ctx, id))

	runs, err := h.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.ErrorIs(t, h.DeleteRun(ctx, id), ErrRunNotFound)
}

func TestOpenInMemory(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	_, err = h.SaveRun(context.Background(), "mem", comparison("A"))
	require.NoError(t, err)
	runs, err := h.ListRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	_, err = h.SaveRun(context.Background(), "nil", nil)
	assert.Error(t, err)
}
