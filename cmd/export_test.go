package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/navs23/fundinsights"
	"github.com/navs23/fundinsights/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const sample = "Month\tBeginning balance\tPurchases & Withdrawals\tMarket Gain/Loss\tIncome returns\tFees\tEnding balance\n" +
	"Jan 2023\t1000\t100\t50\t10\t-5\t1155\n" +
	"Feb 2023\t1155\t0\t20\t5\t-5\t1175\n" +
	"Mar 2023\t1175\tn/a\t0\t0\t0\t1175"

func analysis(t *testing.T) *fundinsights.Analysis {
	t.Helper()
	a, err := fundinsights.Analyze(`{"name": "ISA", "rawData": ` + mustJSON(t, sample) + `}`)
	require.NoError(t, err)
	return a
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func checkDoc(t *testing.T, doc exportDoc) {
	t.Helper()
	assert.Equal(t, "ISA", doc.Name)
	assert.Equal(t, fundinsights.Amount(1175), doc.Summary.CurrentValue)
	assert.Equal(t, fundinsights.Amount(75), doc.Summary.TotalReturns)
	require.Len(t, doc.Years, 1)
	y := doc.Years[0]
	assert.Equal(t, "2023", y.Year)
	assert.True(t, y.PartialYear)
	assert.Equal(t, fundinsights.Amount(1000), y.StartBalance)
	assert.Equal(t, fundinsights.Amount(1175), y.EndBalance)
	assert.Len(t, y.Months, 3)
	assert.Equal(t, []string{`line 4: Purchases & Withdrawals: cannot read "n/a" as an amount`}, doc.Warnings)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export(&buf, analysis(t), FormatJSON, "GBP"))

	// the unreadable purchases are NaN, written as a string
	assert.Contains(t, buf.String(), `"purchases": "NaN"`)
	assert.Contains(t, buf.String(), `"totalContributions": "NaN"`)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "ISA", raw["name"])
	summary := raw["summary"].(map[string]any)
	assert.Equal(t, 1175.0, summary["currentValue"])
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export(&buf, analysis(t), FormatYAML, "GBP"))
	assert.Contains(t, buf.String(), "totalContributions: .nan")

	var doc exportDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	checkDoc(t, doc)
	assert.True(t, doc.Years[0].TotalContributions.IsNaN())
}

func TestExportXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export(&buf, analysis(t), FormatXLSX, "GBP"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), chart.YearlySheet)
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, export(&buf, analysis(t), "csv", "GBP"))
}
