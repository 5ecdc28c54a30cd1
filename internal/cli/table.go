package cli

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/quota-sniper/internal/match"
	"github.com/Veraticus/quota-sniper/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// brazilianFormat groups thousands with dots and uses a decimal comma.
const brazilianFormat = "#.###,##"

// FormatBRL renders an amount the way listings print it, e.g. "R$ 1.234,56".
func FormatBRL(v float64) string {
	return "R$ " + humanize.FormatFloat(brazilianFormat, v)
}

// FormatPercent renders a fraction as a percentage with a decimal comma.
func FormatPercent(ratio float64) string {
	return humanize.FormatFloat(brazilianFormat, ratio*100) + "%"
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor))
}

// RenderQuotaTable lists extracted quotas.
func RenderQuotaTable(quotas []model.Quota) string {
	rows := make([][]string, 0, len(quotas))
	for _, q := range quotas {
		rows = append(rows, []string{
			strconv.Itoa(q.ID),
			q.Admin,
			string(q.Type),
			FormatBRL(q.Credit),
			FormatBRL(q.DownPayment),
			FormatPercent(q.DownPaymentRatio()),
			installmentLabel(q),
			FormatBRL(q.RemainingBalance),
			FormatBRL(q.TotalCost()),
		})
	}

	return newTable().
		Headers("ID", "Admin", "Type", "Credit", "Down payment", "Entry %", "Installment", "Balance", "Total cost").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		}).
		String()
}

func installmentLabel(q model.Quota) string {
	if q.Term == 0 {
		return "-"
	}
	return fmt.Sprintf("%dx %s", q.Term, FormatBRL(q.Installment))
}

// RenderResultTable lists combinations in the given order, at most limit rows
// when limit is positive.
func RenderResultTable(results []model.CombinationResult, limit int) string {
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			string(r.Tier),
			r.Admin,
			string(r.Type),
			r.IDLabel(),
			FormatBRL(r.TotalCredit),
			FormatBRL(r.TotalDownPayment),
			FormatPercent(r.DownPaymentShare()),
			FormatBRL(r.TotalInstallment),
			r.TermLabel(),
			FormatBRL(r.TotalRemainingBalance),
			FormatPercent(r.RealCostRatio),
		})
	}

	return newTable().
		Headers("Tier", "Admin", "Type", "IDs", "Credit", "Down payment", "Entry %", "Installment", "Terms", "Balance", "Cost").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 0:
				return TierStyle(results[row].Tier).PaddingRight(2)
			default:
				return TableCellStyle
			}
		}).
		String()
}

// RenderPoolSummary describes how each administrator pool was searched.
func RenderPoolSummary(pools []match.PoolSummary) string {
	rows := make([][]string, 0, len(pools))
	for _, p := range pools {
		status := SuccessIcon + " complete"
		if p.Capped {
			status = WarningIcon + " stopped at cap"
		}
		rows = append(rows, []string{
			p.Admin,
			strconv.Itoa(p.Size),
			humanize.Comma(int64(p.Evaluated)),
			strconv.Itoa(p.Matched),
			status,
		})
	}

	return newTable().
		Headers("Admin", "Quotas", "Combinations", "Matches", "Search").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 4 && pools[row].Capped:
				return WarningStyle.PaddingRight(2)
			default:
				return TableCellStyle
			}
		}).
		String()
}
