package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "json"}, AvailableFormatterNames())

	tests := map[string]string{
		"console":      "console",
		" JSON ":       "json",
		"verbose":      "console",
		"summary":      "console-lite",
		"csv-detailed": "detailed-csv",
	}
	for in, want := range tests {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name(), in)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console-lite", NormalizeFormatName(" Text "))
	assert.Equal(t, "json", NormalizeFormatName("JSON-PRETTY"))
	assert.Equal(t, "all", NormalizeFormatName("ALL"))
	assert.Equal(t, "pdf", NormalizeFormatName("pdf"))
	assert.Len(t, AvailableFormatAliases(), 8)
}

func TestLookupFormatterUnknown(t *testing.T) {
	_, err := LookupFormatter("pdf")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `"pdf"`)
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestCSVSummarizerSortsByName(t *testing.T) {
	data, err := CSVSummarizer{}.Format(sampleComparison())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Scenario", rows[0][0])
	assert.Equal(t, "Medical retirement", rows[1][0])
	assert.Equal(t, "Retire at 20", rows[2][0])

	retire := rows[2]
	assert.Equal(t, "70", retire[1])
	assert.Equal(t, "1716.28", retire[2])
	assert.Equal(t, "CRDP", retire[5])
	assert.Equal(t, "5716.28", retire[7])
	assert.Equal(t, "121000.00", retire[9])
	assert.Equal(t, "LOW", retire[13])
	assert.Equal(t, "true", rows[1][12])
}

func TestCSVDetailedPadsShorterSeries(t *testing.T) {
	data, err := CSVDetailedExporter{}.Format(sampleComparison())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// header + 1 year for the medical scenario + 2 years for the 20-year scenario
	require.Len(t, rows, 4)
	second := rows[3]
	assert.Equal(t, "Retire at 20", second[0])
	assert.Equal(t, "2", second[1])
	assert.Equal(t, "121000.00", second[2])
	assert.Empty(t, second[7])
	assert.Empty(t, second[10])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "results")
	analysis := decoded["analysis"].(map[string]any)
	assert.Equal(t, "Retire at 20", analysis["best_for_income"])
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleComparison())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "VA BENEFITS SCENARIO REPORT")
	assert.Contains(t, out, "Inflation: 2.5% annually")
	assert.Contains(t, out, "$5,716.28")
	assert.Contains(t, out, "depleted yr 3")
	assert.Contains(t, out, "missing: nexus letter")
	assert.Contains(t, out, "Best for income:")
	assert.Contains(t, out, "run out in year 3")
	assert.Less(t, strings.Index(out, "MEDICAL RETIREMENT"), strings.Index(out, "RETIRE AT 20"))
}

func TestConsoleSummaryFormatter(t *testing.T) {
	data, err := ConsoleSummaryFormatter{}.Format(sampleComparison())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Retire at 20: Rating=70% Monthly=$5,716.28")
	assert.Contains(t, out, "Recommended: Retire at 20")
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, sampleComparison(), "csv-summary"))
	assert.True(t, strings.HasPrefix(buf.String(), "Scenario,CombinedRating"))

	err := GenerateReport(&buf, sampleComparison(), "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGenerateReportFiles(t *testing.T) {
	dir := t.TempDir()
	files, err := GenerateReportFiles(dir, sampleComparison(), "all")
	require.NoError(t, err)
	require.Len(t, files, 5)

	for _, f := range files {
		assert.Equal(t, dir, filepath.Dir(f))
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Contains(t, files, filepath.Join(dir, "benefits_report_20250102_030405.detailed-csv.csv"))
}
