package main

import (
	"fmt"
	"math"

	"github.com/nonopt-go/nonopt/vector"
)

// objective names a selectable demo Oracle alongside its starting point.
type objective struct {
	name  string
	start []float64
	build func() demoOracle
}

// demoOracle is the subset of iterate.Oracle the demo objectives implement
// directly (EvaluateBoth is derived mechanically from the other two).
type demoOracle interface {
	Evaluate(x vector.Vector) (float64, bool)
	EvaluateGradient(x vector.Vector) (vector.Vector, bool)
}

// oracleAdapter promotes a demoOracle to the full iterate.Oracle contract.
type oracleAdapter struct{ demoOracle }

func (o oracleAdapter) EvaluateBoth(x vector.Vector) (float64, vector.Vector, bool) {
	f, ok := o.Evaluate(x)
	if !ok {
		return 0, vector.Vector{}, false
	}
	g, ok := o.EvaluateGradient(x)

	return f, g, ok
}

// sumOfAbs implements f(x) = Σ|x_i|, the classic nonsmooth bundle-method
// textbook example: a kink on every coordinate hyperplane.
type sumOfAbs struct{}

func (sumOfAbs) Evaluate(x vector.Vector) (float64, bool) {
	var s float64
	for i := 0; i < x.Len(); i++ {
		s += math.Abs(x.At(i))
	}

	return s, true
}

func (sumOfAbs) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	g := make([]float64, x.Len())
	for i := range g {
		if x.At(i) < 0 {
			g[i] = -1
		} else {
			g[i] = 1
		}
	}

	return vector.New(g), true
}

// sumOfSquares implements f(x) = Σx_i², a smooth convex sanity check.
type sumOfSquares struct{}

func (sumOfSquares) Evaluate(x vector.Vector) (float64, bool) {
	var s float64
	for i := 0; i < x.Len(); i++ {
		s += x.At(i) * x.At(i)
	}

	return s, true
}

func (sumOfSquares) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	g := make([]float64, x.Len())
	for i := range g {
		g[i] = 2 * x.At(i)
	}

	return vector.New(g), true
}

// maxOfTwoAffine implements f(x) = max(x_1, -x_1 + x_2), a 2-D piecewise
// linear function with its kink on the line x_1 = x_2/2; it has no
// minimizer, since f decreases without bound along that line.
type maxOfTwoAffine struct{}

func (maxOfTwoAffine) Evaluate(x vector.Vector) (float64, bool) {
	a := x.At(0)
	b := -x.At(0) + x.At(1)
	if a >= b {
		return a, true
	}

	return b, true
}

func (maxOfTwoAffine) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	a := x.At(0)
	b := -x.At(0) + x.At(1)
	if a >= b {
		return vector.New([]float64{1, 0}), true
	}

	return vector.New([]float64{-1, 1}), true
}

// catalog lists the demo objectives selectable via -objective.
var catalog = map[string]objective{
	"abs": {
		name:  "abs",
		start: []float64{2},
		build: func() demoOracle { return sumOfAbs{} },
	},
	"quadratic": {
		name:  "quadratic",
		start: []float64{3},
		build: func() demoOracle { return sumOfSquares{} },
	},
	"max2d": {
		name:  "max2d",
		start: []float64{1, 1},
		build: func() demoOracle { return maxOfTwoAffine{} },
	},
}

func listObjectives() string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}

	return fmt.Sprint(names)
}
