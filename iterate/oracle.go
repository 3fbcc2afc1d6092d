package iterate

import (
	"errors"

	"github.com/nonopt-go/nonopt/vector"
)

// ErrOracleNil indicates a nil Oracle was supplied where one is required.
var ErrOracleNil = errors.New("iterate: oracle is nil")

// Oracle is the user-provided objective/subgradient routine. f need not be
// differentiable everywhere; Gradient returns an arbitrary element of the
// Clarke subdifferential at points of nonsmoothness. Either Evaluate* call
// may fail (ok == false) to model an oracle that refuses to evaluate at an
// infeasible or numerically unstable point.
type Oracle interface {
	// Evaluate returns f(x).
	Evaluate(x vector.Vector) (f float64, ok bool)

	// EvaluateGradient returns a subgradient g ∈ ∂f(x).
	EvaluateGradient(x vector.Vector) (g vector.Vector, ok bool)

	// EvaluateBoth returns f(x) and a subgradient g ∈ ∂f(x) in one call, for
	// oracles that can compute both more cheaply together than separately.
	EvaluateBoth(x vector.Vector) (f float64, g vector.Vector, ok bool)
}
