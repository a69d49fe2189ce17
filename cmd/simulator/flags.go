package main

import (
	"flag"
	"fmt"

	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

// SimulatorFlags holds all command line flags for the simulator command
type SimulatorFlags struct {
	// Configuration
	ConfigFile *string
	EnvFile    *string

	// Strategy setup
	WinRate    *float64
	Payoff     *float64
	Risk       *float64
	RiskAdjust *string

	// Time horizon
	Trades  *int
	Periods *int
	Cycles  *int

	// Account management
	Balance        *float64
	Target         *float64
	Contribute     *float64
	ContributeEach *string
	Withdraw       *float64
	WithdrawEach   *string
	TaxRate        *float64
	TaxEach        *string

	// Output options
	Format  *string
	Output  *string
	Verbose *bool

	// Help and version
	ShowVersion *bool
}

// NewSimulatorFlags creates and registers all command line flags
func NewSimulatorFlags() *SimulatorFlags {
	return &SimulatorFlags{
		ConfigFile: flag.String("config", "", "Path to JSON scenario file (flags override file values)"),
		EnvFile:    flag.String("env", ".env", "Path to environment file"),

		WinRate:    flag.Float64("win-rate", DefaultWinRate, "Win probability in [0,1]"),
		Payoff:     flag.Float64("payoff", DefaultPayoff, "Reward to risk ratio (2 = winners pay 2R)"),
		Risk:       flag.Float64("risk", DefaultRisk, "Risk per trade as a fraction of balance (0.02 = 2%)"),
		RiskAdjust: flag.String("risk-adjust", "period", "Re-size dollar risk every: period, cycle, never"),

		Trades:  flag.Int("trades", DefaultTrades, "Trading opportunities per period"),
		Periods: flag.Int("periods", DefaultPeriods, "Periods per cycle (e.g. months in a year)"),
		Cycles:  flag.Int("cycles", DefaultCycles, "Number of cycles to simulate (e.g. years)"),

		Balance:        flag.Float64("balance", DefaultBalance, "Starting account balance"),
		Target:         flag.Float64("target", 0, "Target balance; simulation stops once reached (0 = none)"),
		Contribute:     flag.Float64("contribute", 0, "Regular contribution amount"),
		ContributeEach: flag.String("contribute-every", "", "Contribution frequency: period, cycle"),
		Withdraw:       flag.Float64("withdraw", 0, "Regular withdrawal amount"),
		WithdrawEach:   flag.String("withdraw-every", "", "Withdrawal frequency: period, cycle"),
		TaxRate:        flag.Float64("tax", 0, "Capital gains tax rate in [0,1]"),
		TaxEach:        flag.String("tax-every", "", "Tax frequency: period, cycle"),

		Format:  flag.String("format", "console", "Output format (console, json, csv, xlsx)"),
		Output:  flag.String("output", "", "Output file path (csv/xlsx/json formats)"),
		Verbose: flag.Bool("verbose", false, "Print the full period ledger"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
	}
}

// Parameters assembles simulation parameters from the flags. When a
// scenario file supplied the base, only flags the user set explicitly
// override the file values.
func (f *SimulatorFlags) Parameters(fileParams *simulation.Parameters) simulation.Parameters {
	if fileParams == nil {
		return simulation.Parameters{
			StartingBalance: *f.Balance,
			RiskPerTrade:    *f.Risk,
			WinRate:         *f.WinRate,
			WinPayoffRatio:  *f.Payoff,
			TradesPerPeriod: *f.Trades,
			PeriodsPerCycle: *f.Periods,
			Cycles:          *f.Cycles,
			TargetBalance:   *f.Target,
			RiskAdjust:      parseFrequency(*f.RiskAdjust),
			Contribution:    simulation.CashFlow{Amount: *f.Contribute, Every: parseFrequency(*f.ContributeEach)},
			Withdrawal:      simulation.CashFlow{Amount: *f.Withdraw, Every: parseFrequency(*f.WithdrawEach)},
			Tax:             simulation.TaxPolicy{Rate: *f.TaxRate, Every: parseFrequency(*f.TaxEach)},
		}
	}

	params := *fileParams
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "balance":
			params.StartingBalance = *f.Balance
		case "risk":
			params.RiskPerTrade = *f.Risk
		case "win-rate":
			params.WinRate = *f.WinRate
		case "payoff":
			params.WinPayoffRatio = *f.Payoff
		case "trades":
			params.TradesPerPeriod = *f.Trades
		case "periods":
			params.PeriodsPerCycle = *f.Periods
		case "cycles":
			params.Cycles = *f.Cycles
		case "target":
			params.TargetBalance = *f.Target
		case "risk-adjust":
			params.RiskAdjust = parseFrequency(*f.RiskAdjust)
		case "contribute":
			params.Contribution.Amount = *f.Contribute
		case "contribute-every":
			params.Contribution.Every = parseFrequency(*f.ContributeEach)
		case "withdraw":
			params.Withdrawal.Amount = *f.Withdraw
		case "withdraw-every":
			params.Withdrawal.Every = parseFrequency(*f.WithdrawEach)
		case "tax":
			params.Tax.Rate = *f.TaxRate
		case "tax-every":
			params.Tax.Every = parseFrequency(*f.TaxEach)
		}
	})
	return params
}

func parseFrequency(s string) simulation.Frequency {
	switch s {
	case "period":
		return simulation.PerPeriod
	case "cycle":
		return simulation.PerCycle
	default:
		return simulation.Never
	}
}

// ValidateFlags rejects flag combinations the reporter cannot honor
func ValidateFlags(f *SimulatorFlags) error {
	switch *f.Format {
	case "console", "json", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown output format %q (use console, json, csv, xlsx)", *f.Format)
	}
	switch *f.RiskAdjust {
	case "period", "cycle", "never":
	default:
		return fmt.Errorf("unknown risk-adjust value %q (use period, cycle, never)", *f.RiskAdjust)
	}
	return nil
}
