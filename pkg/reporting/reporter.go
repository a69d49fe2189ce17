package reporting

import (
	"path/filepath"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// DefaultReporter implements the complete Reporter interface
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	json    *DefaultJSONFormatter
	paths   *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all functionality
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		json:    NewDefaultJSONFormatter(),
		paths:   NewDefaultPathManager(),
	}
}

// Console output methods
func (r *DefaultReporter) OutputSummary(result *simulation.Result) {
	r.console.OutputSummary(result)
}

func (r *DefaultReporter) OutputLedger(result *simulation.Result) {
	r.console.OutputLedger(result)
}

// File output methods
func (r *DefaultReporter) WriteLedgerCSV(result *simulation.Result, path string) error {
	return r.csv.WriteLedgerCSV(result, path)
}

func (r *DefaultReporter) WriteLedgerXLSX(result *simulation.Result, path string) error {
	return r.excel.WriteLedgerXLSX(result, path)
}

func (r *DefaultReporter) WriteResultJSON(result *simulation.Result, path string) error {
	return r.json.WriteResultJSON(result, path)
}

// JSON methods
func (r *DefaultReporter) FormatResult(result *simulation.Result) ([]byte, error) {
	return r.json.FormatResult(result)
}

func (r *DefaultReporter) PrintResult(result *simulation.Result) error {
	return r.json.PrintResult(result)
}

// Path management methods
func (r *DefaultReporter) GetDefaultOutputDir(scenario string) string {
	return r.paths.GetDefaultOutputDir(scenario)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// ReportingManager provides a high-level interface for all reporting needs
type ReportingManager struct {
	reporter *DefaultReporter
	config   ReportingConfig
}

// NewReportingManager creates a new reporting manager with configuration
func NewReportingManager(config ReportingConfig) *ReportingManager {
	return &ReportingManager{
		reporter: NewDefaultReporter(),
		config:   config,
	}
}

// ReportResult outputs a simulation result according to configuration
func (m *ReportingManager) ReportResult(result *simulation.Result, scenario string) error {
	if m.config.EnableConsole {
		m.reporter.OutputSummary(result)
		if m.config.Verbose {
			m.reporter.OutputLedger(result)
		}
	}

	if m.config.EnableFiles {
		outputDir := m.config.OutputDir
		if outputDir == "" {
			outputDir = m.reporter.GetDefaultOutputDir(scenario)
		}

		if m.config.CSVEnabled {
			if err := m.reporter.WriteLedgerCSV(result, filepath.Join(outputDir, "ledger.csv")); err != nil {
				return err
			}
		}
		if m.config.ExcelEnabled {
			if err := m.reporter.WriteLedgerXLSX(result, filepath.Join(outputDir, "ledger.xlsx")); err != nil {
				return err
			}
		}
		if m.config.JSONEnabled {
			if err := m.reporter.WriteResultJSON(result, filepath.Join(outputDir, "result.json")); err != nil {
				return err
			}
		}
	}

	return nil
}
