package main

import (
	"fmt"
	"path/filepath"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
	"github.com/katiapek/CompoundingSimulator/pkg/reporting"
)

// outputResult dispatches the run result to the requested reporter
func outputResult(result *simulation.Result, flags *SimulatorFlags) error {
	reporter := reporting.NewDefaultReporter()

	switch *flags.Format {
	case "json":
		if *flags.Output == "" {
			return reporter.PrintResult(result)
		}
		if err := reporter.WriteResultJSON(result, *flags.Output); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", *flags.Output)
		return nil

	case "csv":
		path := *flags.Output
		if path == "" {
			path = filepath.Join(reporter.GetDefaultOutputDir(""), "ledger.csv")
		}
		if err := reporter.WriteLedgerCSV(result, path); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", path)
		return nil

	case "xlsx":
		path := *flags.Output
		if path == "" {
			path = filepath.Join(reporter.GetDefaultOutputDir(""), "ledger.xlsx")
		}
		if err := reporter.WriteLedgerXLSX(result, path); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", path)
		return nil

	default:
		reporter.OutputSummary(result)
		if *flags.Verbose {
			reporter.OutputLedger(result)
		}
		return nil
	}
}
