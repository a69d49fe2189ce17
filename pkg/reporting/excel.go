package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// DefaultExcelReporter implements Excel file output
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteLedgerXLSX writes the ledger and a summary to separate sheets in an
// Excel workbook
func (r *DefaultExcelReporter) WriteLedgerXLSX(result *simulation.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const ledgerSheet = "Ledger"
	const summarySheet = "Summary"
	// Replace default sheet
	fx.SetSheetName(fx.GetSheetName(0), ledgerSheet)
	fx.NewSheet(summarySheet)

	headStyle, _ := fx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	// Ledger header
	ledgerHeaders := []string{"Cycle", "Period", "Starting Balance", "Risk per Trade", "Return", "Added", "Withdrawn", "Tax", "Ending Balance"}
	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(ledgerSheet, cell, h)
		fx.SetCellStyle(ledgerSheet, cell, cell, headStyle)
	}

	// Ledger rows
	row := 2
	for _, lr := range result.Ledger {
		values := []interface{}{
			lr.Cycle,
			lr.Period,
			lr.StartBalance,
			lr.RiskPerTrade,
			lr.Return,
			lr.Contribution,
			lr.Withdrawal,
			lr.Tax,
			lr.EndBalance,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			fx.SetCellValue(ledgerSheet, cell, v)
		}
		row++
	}

	// Summary sheet
	summaryRows := [][]interface{}{
		{"Win Rate", fmt.Sprintf("%.1f%%", result.Parameters.WinRate*100)},
		{"Reward to Risk", result.Parameters.WinPayoffRatio},
		{"Expectancy per Trade (R)", result.Statistics.Expectancy},
		{"Kelly Fraction", result.Statistics.KellyFraction},
		{"Half-Kelly", result.Statistics.HalfKelly()},
		{"Risk per Trade", fmt.Sprintf("%.2f%%", result.Parameters.RiskPerTrade*100)},
		{"Starting Balance", result.StartBalance},
		{"Ending Balance", result.EndBalance},
		{"Total Return", fmt.Sprintf("%.2f%%", result.TotalReturn*100)},
		{"Target Reached", result.TargetReached},
	}
	for i, sr := range summaryRows {
		for j, v := range sr {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			fx.SetCellValue(summarySheet, cell, v)
			if j == 0 {
				fx.SetCellStyle(summarySheet, cell, cell, headStyle)
			}
		}
	}

	return fx.SaveAs(path)
}
