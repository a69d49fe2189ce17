package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
)

// TestRun_SingleCycleGrowth tests a 50%/2:1 strategy over ten trades
func TestRun_SingleCycleGrowth(t *testing.T) {
	params := Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.01,
		WinRate:         0.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 1,
		Cycles:          1,
	}

	result, err := Run(params)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.Statistics.Expectancy, 1e-12)
	assert.InDelta(t, 0.25, result.Statistics.KellyFraction, 1e-12)

	// point 0 plus one point per trade, strictly increasing
	require.Len(t, result.Points, 11)
	assert.Equal(t, 0, result.Points[0].StepIndex)
	assert.InDelta(t, 1000.0, result.Points[0].Balance, 1e-9)
	for i := 1; i < len(result.Points); i++ {
		assert.Equal(t, i, result.Points[i].StepIndex)
		assert.Greater(t, result.Points[i].Balance, result.Points[i-1].Balance)
	}

	// dollar risk is 1% of 1000 and expectancy is 0.5R, so +5 per trade
	assert.InDelta(t, 1050.0, result.EndBalance, 1e-9)
	assert.InDelta(t, 0.05, result.TotalReturn, 1e-12)
}

// TestRun_Deterministic tests that identical parameters yield identical sequences
func TestRun_Deterministic(t *testing.T) {
	params := Parameters{
		StartingBalance: 2500,
		RiskPerTrade:    0.02,
		WinRate:         0.45,
		WinPayoffRatio:  1.8,
		TradesPerPeriod: 8,
		PeriodsPerCycle: 6,
		Cycles:          4,
		RiskAdjust:      PerPeriod,
		Contribution:    CashFlow{Amount: 50, Every: PerPeriod},
		Tax:             TaxPolicy{Rate: 0.15, Every: PerCycle},
	}

	first, err := Run(params)
	require.NoError(t, err)
	second, err := Run(params)
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.Ledger, second.Ledger)
	assert.Equal(t, first.EndBalance, second.EndBalance)
}

// TestRun_MonotoneWithPositiveEdge tests that a positive expectancy never shrinks the balance
func TestRun_MonotoneWithPositiveEdge(t *testing.T) {
	params := Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.05,
		WinRate:         0.6,
		WinPayoffRatio:  2,
		TradesPerPeriod: 5,
		PeriodsPerCycle: 12,
		Cycles:          10,
		RiskAdjust:      PerPeriod,
	}

	result, err := Run(params)
	require.NoError(t, err)
	for i := 1; i < len(result.Points); i++ {
		assert.GreaterOrEqual(t, result.Points[i].Balance, result.Points[i-1].Balance)
	}
}

// TestRun_CompoundingBeatsFixedRisk tests that re-sizing risk compounds the growth
func TestRun_CompoundingBeatsFixedRisk(t *testing.T) {
	params := Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.02,
		WinRate:         0.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 12,
		Cycles:          3,
	}

	fixed, err := Run(params)
	require.NoError(t, err)

	params.RiskAdjust = PerPeriod
	compounded, err := Run(params)
	require.NoError(t, err)

	assert.Greater(t, compounded.EndBalance, fixed.EndBalance)
}

// TestRun_LedgerConservation tests that every row balances its books
func TestRun_LedgerConservation(t *testing.T) {
	params := Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.01,
		WinRate:         0.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 2,
		Cycles:          2,
		RiskAdjust:      PerPeriod,
		Contribution:    CashFlow{Amount: 100, Every: PerPeriod},
		Withdrawal:      CashFlow{Amount: 30, Every: PerCycle},
		Tax:             TaxPolicy{Rate: 0.2, Every: PerCycle},
	}

	result, err := Run(params)
	require.NoError(t, err)
	require.Len(t, result.Ledger, 4)

	for i, row := range result.Ledger {
		expected := row.StartBalance + row.Return + row.Contribution - row.Withdrawal - row.Tax
		assert.InDelta(t, expected, row.EndBalance, 1e-9, "row %d", i)
		assert.InDelta(t, 100.0, row.Contribution, 1e-9, "contribution settles every period")

		if row.Period == params.PeriodsPerCycle {
			assert.InDelta(t, 30.0, row.Withdrawal, 1e-9, "withdrawal settles on the cycle boundary")
			assert.Greater(t, row.Tax, 0.0, "tax withheld on the summed cycle return")
		} else {
			assert.Zero(t, row.Withdrawal)
			assert.Zero(t, row.Tax)
		}

		if i > 0 {
			assert.InDelta(t, result.Ledger[i-1].EndBalance, row.StartBalance, 1e-9, "rows chain")
		}
	}

	last := result.Ledger[len(result.Ledger)-1]
	assert.InDelta(t, last.EndBalance, result.EndBalance, 1e-9)
	assert.InDelta(t, last.EndBalance, result.Points[len(result.Points)-1].Balance, 1e-9,
		"chart ends on the settled balance")
}

// TestRun_StopsAtTarget tests the early stop once the target balance is reached
func TestRun_StopsAtTarget(t *testing.T) {
	params := Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.01,
		WinRate:         0.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 5,
		Cycles:          2,
		TargetBalance:   1020,
	}

	result, err := Run(params)
	require.NoError(t, err)

	assert.True(t, result.TargetReached)
	assert.Len(t, result.Ledger, 1, "no further periods after the target is reached")
	assert.GreaterOrEqual(t, result.EndBalance, params.TargetBalance)
}

// TestRun_StopsOnRuin tests that a blown account stops producing periods
func TestRun_StopsOnRuin(t *testing.T) {
	params := Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    1.0,
		WinRate:         0.3,
		WinPayoffRatio:  1,
		TradesPerPeriod: 5,
		PeriodsPerCycle: 3,
		Cycles:          1,
	}

	result, err := Run(params)
	require.NoError(t, err)

	assert.Len(t, result.Ledger, 1)
	assert.LessOrEqual(t, result.EndBalance, 0.0)
}

// TestRun_InvalidInput tests that bad parameters never yield a partial sequence
func TestRun_InvalidInput(t *testing.T) {
	params := Parameters{
		StartingBalance: 0,
		RiskPerTrade:    0.01,
		WinRate:         0.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 1,
		Cycles:          1,
	}

	result, err := Run(params)
	require.Error(t, err)
	assert.True(t, simerrors.IsValidation(err))
	assert.Nil(t, result, "no sequence is returned on invalid input")
}

// TestRun_Overflow tests that runaway compounding is reported, not clamped
func TestRun_Overflow(t *testing.T) {
	params := Parameters{
		StartingBalance: 1e300,
		RiskPerTrade:    1.0,
		WinRate:         1.0,
		WinPayoffRatio:  20,
		TradesPerPeriod: 100,
		PeriodsPerCycle: 200,
		Cycles:          50,
		RiskAdjust:      PerPeriod,
	}

	result, err := Run(params)
	require.Error(t, err)
	assert.True(t, simerrors.IsOverflow(err))
	assert.Nil(t, result)
}

// TestProject_ClosedForm tests the compound interest formula A = P(1+r/n)^(nt)
func TestProject_ClosedForm(t *testing.T) {
	amount, err := Project(1000, 0.12, 12, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1126.825, amount, 0.001)

	// n=1 degenerates to simple annual compounding
	amount, err = Project(1000, 0.1, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1210.0, amount, 1e-9)
}

// TestProject_Errors tests domain and overflow failures of the projection
func TestProject_Errors(t *testing.T) {
	_, err := Project(0, 0.1, 12, 1)
	assert.True(t, simerrors.IsValidation(err))

	_, err = Project(1000, 0.1, 0, 1)
	assert.True(t, simerrors.IsValidation(err))

	_, err = Project(1e300, 1e6, 1, 10000)
	assert.True(t, simerrors.IsOverflow(err))
}
