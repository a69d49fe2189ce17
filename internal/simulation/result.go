package simulation

import (
	"github.com/katiapek/CompoundingSimulator/internal/statistics"
)

// BalancePoint is one point on the growth chart, one per simulated trade.
// Points are produced in strictly increasing StepIndex order; step 0 holds
// the starting balance.
type BalancePoint struct {
	StepIndex int     `json:"step"`
	Balance   float64 `json:"balance"`
}

// LedgerRow summarizes one compounding period: what the account started
// with, what was risked, earned, added, withdrawn and withheld, and where
// it ended up. End = Start + Return + Contribution - Withdrawal - Tax.
type LedgerRow struct {
	Cycle        int     `json:"cycle"`
	Period       int     `json:"period"`
	StartBalance float64 `json:"start_balance"`
	RiskPerTrade float64 `json:"risk_per_trade"` // dollar risk per trade this period
	Return       float64 `json:"return"`
	Contribution float64 `json:"contribution"`
	Withdrawal   float64 `json:"withdrawal"`
	Tax          float64 `json:"tax"`
	EndBalance   float64 `json:"end_balance"`
}

// Result is everything a single run produces. It is built fresh per run
// and holds no references to engine state.
type Result struct {
	Parameters Parameters        `json:"parameters"`
	Statistics statistics.Result `json:"statistics"`

	Points []BalancePoint `json:"points"`
	Ledger []LedgerRow    `json:"ledger"`

	StartBalance  float64 `json:"start_balance"`
	EndBalance    float64 `json:"end_balance"`
	TotalReturn   float64 `json:"total_return"`
	TargetReached bool    `json:"target_reached"`
}
