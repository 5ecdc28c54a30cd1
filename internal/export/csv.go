// Package export writes search results for spreadsheets and reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Veraticus/quota-sniper/internal/model"
	"github.com/shopspring/decimal"
)

// CSVWriter writes quotas and combinations as CSV with fixed-point amounts.
type CSVWriter struct {
	RunID         string // written as a leading comment row when IncludeHeader is set
	IncludeHeader bool
}

// WriteResultsFile writes combinations to a CSV file at path.
func (w *CSVWriter) WriteResultsFile(path string, results []model.CombinationResult) error {
	return writeFile(path, func(out io.Writer) error {
		return w.WriteResults(out, results)
	})
}

// WriteQuotasFile writes quotas to a CSV file at path.
func (w *CSVWriter) WriteQuotasFile(path string, quotas []model.Quota) error {
	return writeFile(path, func(out io.Writer) error {
		return w.WriteQuotas(out, quotas)
	})
}

// WriteResults writes combinations in CSV format to out.
func (w *CSVWriter) WriteResults(out io.Writer, results []model.CombinationResult) error {
	writer := csv.NewWriter(out)

	if err := w.writeHeader(writer); err != nil {
		return err
	}

	header := []string{
		"Tier", "Admin", "Type", "IDs", "Terms", "Credit", "DownPayment",
		"DownPaymentShare", "Installment", "RemainingBalance", "TotalCost", "RealCostRatio",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range results {
		row := []string{
			string(r.Tier),
			r.Admin,
			string(r.Type),
			r.IDLabel(),
			r.TermLabel(),
			formatAmount(r.TotalCredit),
			formatAmount(r.TotalDownPayment),
			formatRatio(r.DownPaymentShare()),
			formatAmount(r.TotalInstallment),
			formatAmount(r.TotalRemainingBalance),
			formatAmount(r.TotalCost()),
			formatRatio(r.RealCostRatio),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteQuotas writes quotas in CSV format to out.
func (w *CSVWriter) WriteQuotas(out io.Writer, quotas []model.Quota) error {
	writer := csv.NewWriter(out)

	if err := w.writeHeader(writer); err != nil {
		return err
	}

	header := []string{
		"ID", "Admin", "Type", "Credit", "CreditSource", "DownPayment", "DownPaymentSource",
		"DownPaymentRatio", "Installment", "Term", "RemainingBalance", "BalanceSource", "TotalCost",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, q := range quotas {
		row := []string{
			strconv.Itoa(q.ID),
			q.Admin,
			string(q.Type),
			formatAmount(q.Credit),
			string(q.CreditSource),
			formatAmount(q.DownPayment),
			string(q.DownPaymentSource),
			formatRatio(q.DownPaymentRatio()),
			formatAmount(q.Installment),
			strconv.Itoa(q.Term),
			formatAmount(q.RemainingBalance),
			string(q.BalanceSource),
			formatAmount(q.TotalCost()),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *CSVWriter) writeHeader(writer *csv.Writer) error {
	if !w.IncludeHeader || w.RunID == "" {
		return nil
	}
	if err := writer.Write([]string{"# Run", w.RunID}); err != nil {
		return fmt.Errorf("failed to write CSV metadata: %w", err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %q: %w", path, cerr)
		}
	}()

	return write(f)
}

func formatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func formatRatio(ratio float64) string {
	return decimal.NewFromFloat(ratio).StringFixed(4)
}
