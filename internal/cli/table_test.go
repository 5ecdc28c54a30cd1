package cli

import (
	"bytes"
	"testing"

	"github.com/Veraticus/quota-sniper/internal/match"
	"github.com/Veraticus/quota-sniper/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 180.000,00", FormatBRL(180000))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "30,56%", FormatPercent(0.30556))
	assert.Equal(t, "20,00%", FormatPercent(0.2))
}

func TestRenderQuotaTable(t *testing.T) {
	out := RenderQuotaTable([]model.Quota{
		{ID: 1, Admin: "CAIXA", Type: model.AssetProperty, Credit: 100000, DownPayment: 20000, Installment: 1100, Term: 100, RemainingBalance: 110000},
		{ID: 2, Admin: "PORTO", Type: model.AssetVehicle, Credit: 80000, DownPayment: 15000, RemainingBalance: 89000},
	})

	assert.Contains(t, out, "CAIXA")
	assert.Contains(t, out, "100x R$ 1.100,00")
	assert.Contains(t, out, "R$ 130.000,00")
	assert.Contains(t, out, "PORTO")
	assert.Contains(t, out, "Down payment")
}

func TestRenderResultTable(t *testing.T) {
	rows := []model.CombinationResult{
		{Admin: "X", Type: model.AssetProperty, Tier: model.TierUnmissable, IDs: []int{2, 1}, Terms: []int{90, 100}, TotalCredit: 180000, TotalDownPayment: 35000, TotalRemainingBalance: 200000, RealCostRatio: 0.30556},
		{Admin: "Y", Type: model.AssetVehicle, Tier: model.TierGold, IDs: []int{7}, Terms: []int{50}, TotalCredit: 50000, TotalDownPayment: 5000, TotalRemainingBalance: 50000, RealCostRatio: 0.1},
	}

	out := RenderResultTable(rows, 0)
	assert.Contains(t, out, "Unmissable")
	assert.Contains(t, out, "2 + 1")
	assert.Contains(t, out, "90 + 100")
	assert.Contains(t, out, "30,56%")
	assert.Contains(t, out, "Gold")

	limited := RenderResultTable(rows, 1)
	assert.Contains(t, limited, "Unmissable")
	assert.NotContains(t, limited, "Gold")
}

func TestRenderPoolSummary(t *testing.T) {
	out := RenderPoolSummary([]match.PoolSummary{
		{Admin: "CAIXA", Size: 30, Evaluated: 3000000, Matched: 12, Capped: true},
		{Admin: "PORTO", Size: 4, Evaluated: 15, Matched: 2},
	})

	assert.Contains(t, out, "3,000,000")
	assert.Contains(t, out, "stopped at cap")
	assert.Contains(t, out, "complete")
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatError("failed"), "failed")
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("Results"), "Results")
	assert.Contains(t, RenderBox("Summary", "3 quotas"), "3 quotas")
	assert.NotPanics(t, func() { TierStyle(model.Tier("unknown")).Render("x") })
}

func TestProgressBar_Report(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf)

	var reporter match.ProgressReporter = bar
	reporter.Report(50)
	reporter.Report(100)
	bar.Finish()

	assert.Contains(t, buf.String(), "Searching pools")
}
