package vector

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for vector operations.
var (
	// ErrLengthMismatch indicates two vectors participating in an operation
	// do not share the same length.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrEmpty indicates an operation received a zero-length vector where a
	// positive dimension was required.
	ErrEmpty = errors.New("vector: empty vector")
)

// Vector is an ordered sequence of n double-precision values.
//
// The zero value is not meaningful; use New or NewZero.
type Vector struct {
	data []float64
}

// New wraps data as a Vector. data is taken by reference, not copied:
// callers that need an independent vector should use Clone.
func New(data []float64) Vector {
	return Vector{data: data}
}

// NewZero returns a freshly allocated zero Vector of length n.
func NewZero(n int) Vector {
	return Vector{data: make([]float64, n)}
}

// Len returns the vector's dimension.
func (v Vector) Len() int { return len(v.data) }

// At returns the i-th component.
func (v Vector) At(i int) float64 { return v.data[i] }

// Set assigns the i-th component.
func (v Vector) Set(i int, x float64) { v.data[i] = x }

// Data exposes the backing slice. Mutating it mutates v.
func (v Vector) Data() []float64 { return v.data }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return Vector{data: out}
}

// Dot returns the inner product ⟨v, w⟩.
func (v Vector) Dot(w Vector) float64 {
	return floats.Dot(v.data, w.data)
}

// Norm2 returns the Euclidean (2-) norm of v.
func (v Vector) Norm2() float64 {
	return floats.Norm(v.data, 2)
}

// Norm2Squared returns ‖v‖₂².
func (v Vector) Norm2Squared() float64 {
	d := v.Dot(v)

	return d
}

// NormInf returns the ∞-norm (max absolute component) of v. An empty vector
// has ∞-norm 0.
func (v Vector) NormInf() float64 {
	var m float64
	for _, x := range v.data {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

// AddScaled computes v + alpha*w in place, returning v for chaining.
// It panics on length mismatch — callers operate on vectors whose
// dimension (numberOfVariables) is fixed for the whole solve, so a
// mismatch is a programmer error, not a runtime condition to recover from.
func (v Vector) AddScaled(alpha float64, w Vector) Vector {
	if v.Len() != w.Len() {
		panic(ErrLengthMismatch)
	}
	floats.AddScaled(v.data, alpha, w.data)

	return v
}

// LinearCombination returns a new Vector equal to a*x + b*y.
func LinearCombination(a float64, x Vector, b float64, y Vector) (Vector, error) {
	if x.Len() != y.Len() {
		return Vector{}, ErrLengthMismatch
	}
	out := make([]float64, x.Len())
	for i := range out {
		out[i] = a*x.data[i] + b*y.data[i]
	}

	return Vector{data: out}, nil
}

// Sub returns a new Vector equal to x - y.
func Sub(x, y Vector) (Vector, error) {
	return LinearCombination(1, x, -1, y)
}

// Scale returns a new Vector equal to alpha*x.
func Scale(alpha float64, x Vector) Vector {
	out := make([]float64, x.Len())
	for i, xi := range x.data {
		out[i] = alpha * xi
	}

	return Vector{data: out}
}
