package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGenerateReportSingleFormat(t *testing.T) {
	res := exampleComparison(t)
	dir := t.TempDir()

	files, err := GenerateReport(res, "json", dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "sip_report_20250401_093000.json"), files[0])

	info, err := os.Stat(files[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGenerateReportAll(t *testing.T) {
	res := exampleComparison(t)
	dir := t.TempDir()

	files, err := GenerateReport(res, "all", dir)
	require.NoError(t, err)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{
		"sip_report_20250401_093000.json",
		"sip_report_20250401_093000.yaml",
		"sip_report_20250401_093000.csv",
		"sip_allocations_20250401_093000.csv",
		"sip_report_20250401_093000.xlsx",
	}, names)
}

type prefixedFormatter struct{ JSONFormatter }

func (prefixedFormatter) FilePrefix() string { return "plan_totals" }

func TestWriteFormattedUsesFilePrefix(t *testing.T) {
	res := exampleComparison(t)
	dir := t.TempDir()

	name, err := WriteFormatted(prefixedFormatter{}, res, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plan_totals_20250401_093000.json"), name)

	name, err = WriteFormatted(CSVAllocationExporter{}, res, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sip_allocations_20250401_093000.csv"), name)
}

func TestGenerateReportUnsupported(t *testing.T) {
	res := exampleComparison(t)
	_, err := GenerateReport(res, "pdf", t.TempDir())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "xlsx")
}
