package reporting

import (
	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// Package reporting provides output generation for simulation results

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputSummary(result *simulation.Result)
	OutputLedger(result *simulation.Result)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteLedgerCSV(result *simulation.Result, path string) error
	WriteLedgerXLSX(result *simulation.Result, path string) error
	WriteResultJSON(result *simulation.Result, path string) error
}

// JSONFormatter defines interface for JSON output
type JSONFormatter interface {
	FormatResult(result *simulation.Result) ([]byte, error)
	PrintResult(result *simulation.Result) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(scenario string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	JSONFormatter
	PathManager
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	EnableConsole bool
	EnableFiles   bool
	OutputDir     string
	CSVEnabled    bool
	ExcelEnabled  bool
	JSONEnabled   bool
	Verbose       bool
}
