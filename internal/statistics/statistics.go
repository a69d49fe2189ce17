package statistics

import (
	"fmt"
	"math"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
)

// Result holds the derived statistics for a trading strategy.
// Expectancy is the expected return per 1R risked; KellyFraction is the
// theoretically optimal fraction of capital to risk per trade. A negative
// Kelly fraction signals the strategy has no edge and should not be sized.
type Result struct {
	Expectancy    float64 `json:"expectancy"`
	KellyFraction float64 `json:"kelly_fraction"`
}

// HalfKelly returns the half-Kelly sizing most risk managers prefer
func (r Result) HalfKelly() float64 {
	return r.KellyFraction / 2
}

// Compute calculates expectancy and Kelly fraction from a win rate in [0,1]
// and a reward-to-risk ratio (e.g. 2 means winners pay 2R, losers cost 1R).
//
//	Expectancy = W×R − (1−W)×1
//	Kelly      = W − (1−W)/R
func Compute(winRate, winPayoffRatio float64) (Result, error) {
	if math.IsNaN(winRate) || math.IsInf(winRate, 0) || winRate < 0 || winRate > 1 {
		return Result{}, simerrors.NewValidationError("statistics", "compute",
			fmt.Sprintf("win rate %v outside [0,1]", winRate))
	}
	if math.IsNaN(winPayoffRatio) || math.IsInf(winPayoffRatio, 0) || winPayoffRatio <= 0 {
		return Result{}, simerrors.NewValidationError("statistics", "compute",
			fmt.Sprintf("win payoff ratio %v must be a positive finite number", winPayoffRatio))
	}

	lossRate := 1 - winRate
	return Result{
		Expectancy:    winRate*winPayoffRatio - lossRate,
		KellyFraction: winRate - lossRate/winPayoffRatio,
	}, nil
}
