package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
)

func validParams() Parameters {
	return Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.02,
		WinRate:         0.4,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 12,
		Cycles:          30,
	}
}

// TestParameters_Validate_Accepts tests that well-formed parameters pass
func TestParameters_Validate_Accepts(t *testing.T) {
	assert.NoError(t, validParams().Validate())

	p := validParams()
	p.TargetBalance = 1000000
	p.RiskAdjust = PerCycle
	p.Contribution = CashFlow{Amount: 100, Every: PerPeriod}
	p.Withdrawal = CashFlow{Amount: 50, Every: PerCycle}
	p.Tax = TaxPolicy{Rate: 0.19, Every: PerCycle}
	assert.NoError(t, p.Validate())
}

// TestParameters_Validate_Rejects tests each domain violation individually
func TestParameters_Validate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero starting balance", func(p *Parameters) { p.StartingBalance = 0 }},
		{"negative starting balance", func(p *Parameters) { p.StartingBalance = -100 }},
		{"infinite starting balance", func(p *Parameters) { p.StartingBalance = math.Inf(1) }},
		{"zero risk", func(p *Parameters) { p.RiskPerTrade = 0 }},
		{"risk above 100%", func(p *Parameters) { p.RiskPerTrade = 1.5 }},
		{"win rate above 1", func(p *Parameters) { p.WinRate = 1.5 }},
		{"negative win rate", func(p *Parameters) { p.WinRate = -0.1 }},
		{"NaN win rate", func(p *Parameters) { p.WinRate = math.NaN() }},
		{"zero payoff", func(p *Parameters) { p.WinPayoffRatio = 0 }},
		{"zero trades", func(p *Parameters) { p.TradesPerPeriod = 0 }},
		{"zero periods", func(p *Parameters) { p.PeriodsPerCycle = 0 }},
		{"zero cycles", func(p *Parameters) { p.Cycles = 0 }},
		{"negative target", func(p *Parameters) { p.TargetBalance = -1 }},
		{"target below start", func(p *Parameters) { p.TargetBalance = 500 }},
		{"bad risk adjust", func(p *Parameters) { p.RiskAdjust = "weekly" }},
		{"negative contribution", func(p *Parameters) { p.Contribution = CashFlow{Amount: -10, Every: PerPeriod} }},
		{"bad contribution frequency", func(p *Parameters) { p.Contribution = CashFlow{Amount: 10, Every: "daily"} }},
		{"negative withdrawal", func(p *Parameters) { p.Withdrawal = CashFlow{Amount: -10, Every: PerCycle} }},
		{"tax rate above 1", func(p *Parameters) { p.Tax = TaxPolicy{Rate: 1.1, Every: PerCycle} }},
		{"bad tax frequency", func(p *Parameters) { p.Tax = TaxPolicy{Rate: 0.2, Every: "quarterly"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, simerrors.IsValidation(err))
		})
	}
}
