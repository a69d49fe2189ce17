package simulation

import (
	"fmt"
	"math"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
)

// Frequency selects when a recurring adjustment is applied.
// The zero value means the adjustment never happens.
type Frequency string

const (
	Never     Frequency = ""
	PerPeriod Frequency = "period"
	PerCycle  Frequency = "cycle"
)

func (f Frequency) valid() bool {
	switch f {
	case Never, PerPeriod, PerCycle:
		return true
	}
	return false
}

// CashFlow is a recurring contribution to or withdrawal from the account
type CashFlow struct {
	Amount float64   `json:"amount"`
	Every  Frequency `json:"every"`
}

// TaxPolicy withholds a fraction of realized returns at the chosen boundary
type TaxPolicy struct {
	Rate  float64   `json:"rate"`
	Every Frequency `json:"every"`
}

// Parameters are the inputs to one simulation run. All fields are plain
// values entered by the user; nothing here is read from a market.
type Parameters struct {
	StartingBalance float64 `json:"starting_balance"`
	RiskPerTrade    float64 `json:"risk_per_trade"` // fraction of balance in (0,1]
	WinRate         float64 `json:"win_rate"`       // [0,1]
	WinPayoffRatio  float64 `json:"win_payoff_ratio"`
	TradesPerPeriod int     `json:"trades_per_period"`
	PeriodsPerCycle int     `json:"periods_per_cycle"`
	Cycles          int     `json:"cycles"`

	// Optional account management settings
	TargetBalance float64   `json:"target_balance,omitempty"` // 0 = no target
	RiskAdjust    Frequency `json:"risk_adjust,omitempty"`    // when dollar risk is re-sized
	Contribution  CashFlow  `json:"contribution,omitempty"`
	Withdrawal    CashFlow  `json:"withdrawal,omitempty"`
	Tax           TaxPolicy `json:"tax,omitempty"`
}

const validateOp = "validate"

// Validate rejects any parameter outside its documented domain.
// Violations are reported before the simulation runs; a run never starts
// with partially valid inputs.
func (p Parameters) Validate() error {
	if !isFinite(p.StartingBalance) || p.StartingBalance <= 0 {
		return invalid(fmt.Sprintf("starting balance %v must be a positive finite number", p.StartingBalance))
	}
	if !isFinite(p.RiskPerTrade) || p.RiskPerTrade <= 0 || p.RiskPerTrade > 1 {
		return invalid(fmt.Sprintf("risk per trade %v outside (0,1]", p.RiskPerTrade))
	}
	if !isFinite(p.WinRate) || p.WinRate < 0 || p.WinRate > 1 {
		return invalid(fmt.Sprintf("win rate %v outside [0,1]", p.WinRate))
	}
	if !isFinite(p.WinPayoffRatio) || p.WinPayoffRatio <= 0 {
		return invalid(fmt.Sprintf("win payoff ratio %v must be a positive finite number", p.WinPayoffRatio))
	}
	if p.TradesPerPeriod < 1 {
		return invalid(fmt.Sprintf("trades per period %d must be at least 1", p.TradesPerPeriod))
	}
	if p.PeriodsPerCycle < 1 {
		return invalid(fmt.Sprintf("periods per cycle %d must be at least 1", p.PeriodsPerCycle))
	}
	if p.Cycles < 1 {
		return invalid(fmt.Sprintf("cycles %d must be at least 1", p.Cycles))
	}
	if !isFinite(p.TargetBalance) || p.TargetBalance < 0 {
		return invalid(fmt.Sprintf("target balance %v must be a non-negative finite number", p.TargetBalance))
	}
	if p.TargetBalance > 0 && p.TargetBalance < p.StartingBalance {
		return invalid(fmt.Sprintf("target balance %v below starting balance %v", p.TargetBalance, p.StartingBalance))
	}
	if !p.RiskAdjust.valid() {
		return invalid(fmt.Sprintf("risk adjust frequency %q must be %q, %q or empty", p.RiskAdjust, PerPeriod, PerCycle))
	}
	if err := p.Contribution.validate("contribution"); err != nil {
		return err
	}
	if err := p.Withdrawal.validate("withdrawal"); err != nil {
		return err
	}
	if !isFinite(p.Tax.Rate) || p.Tax.Rate < 0 || p.Tax.Rate > 1 {
		return invalid(fmt.Sprintf("tax rate %v outside [0,1]", p.Tax.Rate))
	}
	if !p.Tax.Every.valid() {
		return invalid(fmt.Sprintf("tax frequency %q must be %q, %q or empty", p.Tax.Every, PerPeriod, PerCycle))
	}
	return nil
}

func (c CashFlow) validate(name string) error {
	if !isFinite(c.Amount) || c.Amount < 0 {
		return invalid(fmt.Sprintf("%s amount %v must be a non-negative finite number", name, c.Amount))
	}
	if !c.Every.valid() {
		return invalid(fmt.Sprintf("%s frequency %q must be %q, %q or empty", name, c.Every, PerPeriod, PerCycle))
	}
	return nil
}

func invalid(message string) error {
	return simerrors.NewValidationError("simulation", validateOp, message)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
