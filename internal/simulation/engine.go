package simulation

import (
	"fmt"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
	"github.com/katiapek/CompoundingSimulator/internal/statistics"
)

// Run simulates compounding growth of a trading account. It is an
// expected-value simulation: every trade earns expectancy × dollar risk,
// there is no randomness, and identical parameters always produce the
// identical sequence of points.
//
// Dollar risk is re-sized from the current balance at the configured
// frequency. Contributions, withdrawals and taxes are settled at period
// boundaries (cycle-frequency flows settle on the last period of each
// cycle). The run stops early once the balance reaches the target or
// falls to zero.
//
// Overflow policy: the run fails with a NumericOverflow error the moment
// any balance stops being finite. Balances are never clamped.
func Run(params Parameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	stats, err := statistics.Compute(params.WinRate, params.WinPayoffRatio)
	if err != nil {
		return nil, err
	}

	balance := params.StartingBalance
	riskPerTrade := balance * params.RiskPerTrade

	totalTrades := params.TradesPerPeriod * params.PeriodsPerCycle * params.Cycles
	result := &Result{
		Parameters:   params,
		Statistics:   stats,
		Points:       make([]BalancePoint, 0, totalTrades+1),
		Ledger:       make([]LedgerRow, 0, params.PeriodsPerCycle*params.Cycles),
		StartBalance: balance,
	}
	result.Points = append(result.Points, BalancePoint{StepIndex: 0, Balance: balance})

	step := 0
simulate:
	for cycle := 1; cycle <= params.Cycles; cycle++ {
		cycleReturn := 0.0

		for period := 1; period <= params.PeriodsPerCycle; period++ {
			// Work only until the target has been reached or the account is gone
			if params.TargetBalance > 0 && balance >= params.TargetBalance {
				result.TargetReached = true
				break simulate
			}
			if balance <= 0 {
				break simulate
			}

			switch {
			case params.RiskAdjust == PerPeriod:
				riskPerTrade = balance * params.RiskPerTrade
			case params.RiskAdjust == PerCycle && period == 1:
				riskPerTrade = balance * params.RiskPerTrade
			}

			row := LedgerRow{
				Cycle:        cycle,
				Period:       period,
				StartBalance: balance,
				RiskPerTrade: riskPerTrade,
			}

			periodReturn := 0.0
			for trade := 0; trade < params.TradesPerPeriod; trade++ {
				tradeReturn := stats.Expectancy * riskPerTrade
				balance += tradeReturn
				periodReturn += tradeReturn
				step++

				if !isFinite(balance) {
					return nil, overflow(step, cycle, period)
				}
				result.Points = append(result.Points, BalancePoint{StepIndex: step, Balance: balance})
			}
			cycleReturn += periodReturn

			contribution := 0.0
			if params.Contribution.Every == PerPeriod {
				contribution = params.Contribution.Amount
			}
			withdrawal := 0.0
			if params.Withdrawal.Every == PerPeriod {
				withdrawal = params.Withdrawal.Amount
			}
			tax := 0.0
			if params.Tax.Every == PerPeriod {
				tax = periodReturn * params.Tax.Rate
			}

			// Cycle-frequency flows settle on the last period of the cycle
			if period == params.PeriodsPerCycle {
				if params.Contribution.Every == PerCycle {
					contribution = params.Contribution.Amount
				}
				if params.Withdrawal.Every == PerCycle {
					withdrawal = params.Withdrawal.Amount
				}
				if params.Tax.Every == PerCycle {
					tax = cycleReturn * params.Tax.Rate
				}
			}

			balance += contribution - withdrawal - tax
			if !isFinite(balance) {
				return nil, overflow(step, cycle, period)
			}
			if contribution != 0 || withdrawal != 0 || tax != 0 {
				// Keep the chart consistent with the ledger: the last point of
				// the period carries the settled balance
				result.Points[len(result.Points)-1].Balance = balance
			}

			row.Return = periodReturn
			row.Contribution = contribution
			row.Withdrawal = withdrawal
			row.Tax = tax
			row.EndBalance = balance
			result.Ledger = append(result.Ledger, row)
		}
	}

	if params.TargetBalance > 0 && balance >= params.TargetBalance {
		result.TargetReached = true
	}

	result.EndBalance = balance
	result.TotalReturn = (balance - result.StartBalance) / result.StartBalance
	return result, nil
}

func overflow(step, cycle, period int) error {
	return simerrors.NewOverflowError("simulation", "run",
		fmt.Sprintf("balance became non-finite at step %d (cycle %d, period %d)", step, cycle, period))
}
