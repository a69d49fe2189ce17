package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputSummary prints the strategy statistics and run outcome
func (r *DefaultConsoleReporter) OutputSummary(result *simulation.Result) {
	params := result.Parameters
	stats := result.Statistics

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("STRATEGY PERFORMANCE SUMMARY")
	t.SetStyle(table.StyleRounded)

	kellyPct := stats.KellyFraction * 100
	riskVerdict := "✅ Below Kelly"
	if params.RiskPerTrade*100 >= kellyPct {
		riskVerdict = "⚠️ Above Kelly"
	}
	if stats.KellyFraction <= 0 {
		riskVerdict = "❌ Negative edge — no position should be taken"
	}

	t.AppendRows([]table.Row{
		{"🎯 Win Rate", fmt.Sprintf("%.1f%%", params.WinRate*100)},
		{"⚖️ Reward to Risk", fmt.Sprintf("%.2f : 1", params.WinPayoffRatio)},
		{"📊 Expectancy per Trade", fmt.Sprintf("%.2fR", stats.Expectancy)},
		{"📊 Kelly Criterion", fmt.Sprintf("%.2f%%", kellyPct)},
		{"📊 Half-Kelly", fmt.Sprintf("%.2f%%", stats.HalfKelly()*100)},
		{"🔧 Your Risk Level", fmt.Sprintf("%.2f%% (%s)", params.RiskPerTrade*100, riskVerdict)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"💰 Starting Balance", fmt.Sprintf("$%.2f", result.StartBalance)},
		{"💰 Ending Balance", fmt.Sprintf("$%.2f", result.EndBalance)},
		{"📈 Total Return", fmt.Sprintf("%.2f%%", result.TotalReturn*100)},
		{"🔄 Steps Simulated", len(result.Points) - 1},
	})
	if params.TargetBalance > 0 {
		reached := "not reached"
		if result.TargetReached {
			reached = "reached ✅"
		}
		t.AppendRow(table.Row{"🏁 Target Balance", fmt.Sprintf("$%.2f (%s)", params.TargetBalance, reached)})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 24, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// OutputLedger prints the full period ledger
func (r *DefaultConsoleReporter) OutputLedger(result *simulation.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("COMPOUNDING LEDGER")
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Cycle", "Period", "Start", "Risk/Trade", "Return", "Added", "Withdrawn", "Tax", "End"})
	for _, row := range result.Ledger {
		t.AppendRow(table.Row{
			row.Cycle,
			row.Period,
			fmt.Sprintf("$%.2f", row.StartBalance),
			fmt.Sprintf("$%.2f", row.RiskPerTrade),
			fmt.Sprintf("$%.2f", row.Return),
			fmt.Sprintf("$%.2f", row.Contribution),
			fmt.Sprintf("$%.2f", row.Withdrawal),
			fmt.Sprintf("$%.2f", row.Tax),
			fmt.Sprintf("$%.2f", row.EndBalance),
		})
	}

	t.Render()
	fmt.Println()
}

// Package-level convenience function
func OutputConsole(result *simulation.Result, verbose bool) {
	reporter := NewDefaultConsoleReporter()
	reporter.OutputSummary(result)
	if verbose {
		reporter.OutputLedger(result)
	}
}
