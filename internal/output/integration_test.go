package output_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/config"
	"github.com/rallyforge/benefits-engine/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleConfigurationsEndToEnd(t *testing.T) {
	for _, file := range []string{"example_config.yaml", "example_config.toml"} {
		t.Run(file, func(t *testing.T) {
			cfg, err := config.NewInputParser().LoadFromFile(filepath.Join("..", "..", "testdata", file))
			require.NoError(t, err)

			engine, err := calculation.NewEngine().ForConfiguration(cfg)
			require.NoError(t, err)
			results, err := engine.RunScenarios(context.Background(), cfg)
			require.NoError(t, err)
			require.Len(t, results.Results, len(cfg.Scenarios))

			for i, r := range results.Results {
				assert.Equal(t, cfg.Scenarios[i].Name, r.Name)
				assert.Len(t, r.Accumulation, cfg.Assumptions.ProjectionYears)
				assert.Len(t, r.Drawdown.Years, cfg.Assumptions.DrawdownYears)
				assert.True(t, r.FirstYearIncome().IsPositive())
			}
			assert.NotEmpty(t, results.Analysis.BestForIncome)

			for _, name := range output.AvailableFormatterNames() {
				var buf bytes.Buffer
				require.NoError(t, output.GenerateReport(&buf, results, name), name)
				assert.NotEmpty(t, buf.String(), name)
			}
		})
	}
}

func TestGenerateAllReportFiles(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(filepath.Join("..", "..", "testdata", "example_config.yaml"))
	require.NoError(t, err)
	results, err := calculation.NewEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := output.GenerateReportFiles(dir, results, "all")
	require.NoError(t, err)
	assert.Len(t, files, len(output.AvailableFormatterNames()))
	for _, f := range files {
		fi, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, fi.Size(), f)
	}
}
