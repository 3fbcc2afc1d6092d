package iterate

import "github.com/nonopt-go/nonopt/vector"

// Iterate owns a position vector and lazily-computed, cached objective
// value and gradient, with flags recording whether each evaluation has
// been attempted and whether it succeeded.
type Iterate struct {
	position vector.Vector

	value       float64
	valueSet    bool
	valueOK     bool
	gradient    vector.Vector
	gradientSet bool
	gradientOK  bool
}

// New creates an Iterate at the given position. Nothing is evaluated yet.
func New(position vector.Vector) *Iterate {
	return &Iterate{position: position}
}

// Position returns the Iterate's location. The returned Vector shares
// storage with the Iterate; callers must Clone before mutating.
func (it *Iterate) Position() vector.Vector { return it.position }

// HasValue reports whether the most recent objective evaluation
// (EvaluateObjective or EvaluateObjectiveAndGradient) succeeded.
func (it *Iterate) HasValue() bool { return it.valueSet && it.valueOK }

// HasGradient reports whether the most recent gradient evaluation
// (EvaluateGradient or EvaluateObjectiveAndGradient) succeeded.
func (it *Iterate) HasGradient() bool { return it.gradientSet && it.gradientOK }

// Value returns the cached objective value. Callers must check HasValue first.
func (it *Iterate) Value() float64 { return it.value }

// Gradient returns the cached gradient. Callers must check HasGradient first.
func (it *Iterate) Gradient() vector.Vector { return it.gradient }

// EvaluateObjective evaluates f(position) via oracle, caching the result.
// Returns the success flag; repeated calls re-evaluate (the oracle, not the
// cache, is authoritative — a failed evaluation is not permanently sticky).
func (it *Iterate) EvaluateObjective(oracle Oracle) bool {
	if oracle == nil {
		it.valueSet, it.valueOK = true, false

		return false
	}
	f, ok := oracle.Evaluate(it.position)
	it.value, it.valueSet, it.valueOK = f, true, ok

	return ok
}

// EvaluateGradient evaluates ∇f(position) (or a subgradient) via oracle,
// caching the result.
func (it *Iterate) EvaluateGradient(oracle Oracle) bool {
	if oracle == nil {
		it.gradientSet, it.gradientOK = true, false

		return false
	}
	g, ok := oracle.EvaluateGradient(it.position)
	it.gradient, it.gradientSet, it.gradientOK = g, true, ok

	return ok
}

// EvaluateObjectiveAndGradient evaluates both f and a subgradient jointly,
// caching both. Use this when the oracle reports it can compute both more
// cheaply together (quantities.Quantities.EvaluateFunctionWithGradient).
func (it *Iterate) EvaluateObjectiveAndGradient(oracle Oracle) bool {
	if oracle == nil {
		it.valueSet, it.valueOK = true, false
		it.gradientSet, it.gradientOK = true, false

		return false
	}
	f, g, ok := oracle.EvaluateBoth(it.position)
	it.value, it.valueSet, it.valueOK = f, true, ok
	it.gradient, it.gradientSet, it.gradientOK = g, true, ok

	return ok
}

// MakeNewLinearCombination returns a new Iterate whose position is
// a*it.Position() + b*v. Neither input Iterate is mutated.
func (it *Iterate) MakeNewLinearCombination(a float64, b float64, v vector.Vector) (*Iterate, error) {
	pos, err := vector.LinearCombination(a, it.position, b, v)
	if err != nil {
		return nil, err
	}

	return New(pos), nil
}
