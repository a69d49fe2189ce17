package simulation

import (
	"fmt"
	"math"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
)

// Project evaluates the classic compound interest formula
//
//	A = P × (1 + r/n)^(n×t)
//
// where P is the principal, r the expected return per cycle, n the number
// of compounding periods per cycle and t the number of cycles. It is the
// closed-form counterpart to Run for strategies with no cash flows or
// taxes. Same overflow policy: non-finite results are reported, not
// clamped.
func Project(principal, ratePerCycle float64, periodsPerCycle, cycles int) (float64, error) {
	if !isFinite(principal) || principal <= 0 {
		return 0, simerrors.NewValidationError("simulation", "project",
			fmt.Sprintf("principal %v must be a positive finite number", principal))
	}
	if !isFinite(ratePerCycle) {
		return 0, simerrors.NewValidationError("simulation", "project",
			fmt.Sprintf("rate per cycle %v must be finite", ratePerCycle))
	}
	if periodsPerCycle < 1 {
		return 0, simerrors.NewValidationError("simulation", "project",
			fmt.Sprintf("periods per cycle %d must be at least 1", periodsPerCycle))
	}
	if cycles < 1 {
		return 0, simerrors.NewValidationError("simulation", "project",
			fmt.Sprintf("cycles %d must be at least 1", cycles))
	}

	n := float64(periodsPerCycle)
	t := float64(cycles)
	amount := principal * math.Pow(1+ratePerCycle/n, n*t)
	if !isFinite(amount) {
		return 0, simerrors.NewOverflowError("simulation", "project",
			fmt.Sprintf("projection of %v at %v over %v periods is non-finite", principal, ratePerCycle, n*t))
	}
	return amount, nil
}
