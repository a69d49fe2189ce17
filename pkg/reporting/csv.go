package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// DefaultCSVReporter implements CSV file output
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteLedgerCSV writes the period ledger plus a summary row to a CSV file
func (r *DefaultCSVReporter) WriteLedgerCSV(result *simulation.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Cycle",
		"Period",
		"Starting Balance",
		"Risk per Trade",
		"Return",
		"Added",
		"Withdrawn",
		"Tax",
		"Ending Balance",
	}); err != nil {
		return err
	}

	for _, row := range result.Ledger {
		record := []string{
			strconv.Itoa(row.Cycle),
			strconv.Itoa(row.Period),
			fmt.Sprintf("%.2f", row.StartBalance),
			fmt.Sprintf("%.2f", row.RiskPerTrade),
			fmt.Sprintf("%.2f", row.Return),
			fmt.Sprintf("%.2f", row.Contribution),
			fmt.Sprintf("%.2f", row.Withdrawal),
			fmt.Sprintf("%.2f", row.Tax),
			fmt.Sprintf("%.2f", row.EndBalance),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	// final summary row
	summary := fmt.Sprintf("expectancy=%.2fR; kelly=%.4f; end_balance=%.2f",
		result.Statistics.Expectancy, result.Statistics.KellyFraction, result.EndBalance)
	return w.Write([]string{"", "", "", "", "", "", "", "", summary})
}
