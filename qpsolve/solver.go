package qpsolve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/nonopt-go/nonopt/vector"
)

// tiny guards against division by (near) zero when the Frank-Wolfe move
// direction has collapsed to nothing.
const tiny = 1e-18

// SimplexQP is a reference qpsolve.Solver. It solves the dual
//
//	min_{ω ∈ simplex}  (1/2)‖Σ ω_i g_i‖² − Σ ω_i (b_i − b_0)
//
// by Frank-Wolfe (conditional gradient) with exact quadratic line search
// along each simplex-vertex direction, then recovers the primal step
// d = −Σ ω_i g_i, clipped to the ‖·‖₂ ≤ Δ trust region. b_0 = f(x_k) by
// the bundle invariant (spec.md §3), so c_i := b_i − b_0 ≤ 0 for every row
// under the downshift invariant, which in turn guarantees
// DualObjectiveQuadraticValue ≥ 0 (see doc comment there).
type SimplexQP struct {
	n int // problem dimension; 0 until the first SetVectorList call

	delta float64
	rho   float64

	g []vector.Vector
	b []float64

	omega []float64
	comb  *mat.VecDense // Σ ω_i g_i

	primal        *mat.VecDense // post-clip primal step
	primalNorm2Sq float64
	primalNormInf float64
	combNorm2Sq   float64
	dualValue     float64
	kktGap        float64
	iterations    int
	status        Status
}

// NewSimplexQP returns an unconfigured solver; SetVectorList/SetVector must
// be called before the first SolveQP.
func NewSimplexQP() *SimplexQP {
	return &SimplexQP{status: StatusUnsolved}
}

// SetScalar implements Solver.
func (s *SimplexQP) SetScalar(delta float64) { s.delta = delta }

// SetInexactSolutionTolerance implements Solver.
func (s *SimplexQP) SetInexactSolutionTolerance(rho float64) { s.rho = rho }

// SetVectorList implements Solver. It bulk-replaces G unconditionally: b is
// left as-is (stale, and possibly the wrong length) until the following
// SetVector call establishes the new pair — callers always call the two in
// sequence when installing a fresh bundle, exactly as SetVector's own
// dimension check assumes.
func (s *SimplexQP) SetVectorList(g []vector.Vector) error {
	s.g = make([]vector.Vector, len(g))
	for i, gi := range g {
		s.g[i] = gi.Clone()
		if i == 0 && s.n == 0 {
			s.n = gi.Len()
		}
	}
	s.resetDualState()

	return nil
}

// SetVector implements Solver.
func (s *SimplexQP) SetVector(b []float64) error {
	if len(s.g) != 0 && len(s.g) != len(b) {
		return ErrDimensionMismatch
	}
	s.b = make([]float64, len(b))
	copy(s.b, b)
	s.resetDualState()

	return nil
}

// AddData implements Solver.
func (s *SimplexQP) AddData(gNew []vector.Vector, bNew []float64) error {
	if len(gNew) != len(bNew) {
		return ErrDimensionMismatch
	}
	for _, gi := range gNew {
		s.g = append(s.g, gi.Clone())
		if s.n == 0 {
			s.n = gi.Len()
		}
	}
	s.b = append(s.b, bNew...)
	// Extend the warm-start dual solution with zero weight on new rows;
	// this is what makes the following SolveQPHot a true hot start.
	for range gNew {
		s.omega = append(s.omega, 0)
	}

	return nil
}

// SetPrimalSolutionToZero implements Solver.
func (s *SimplexQP) SetPrimalSolutionToZero() {
	s.primal = mat.NewVecDense(s.n, nil)
	s.primalNorm2Sq = 0
	s.primalNormInf = 0
}

// resetDualState invalidates the warm-start dual solution; called whenever
// the bundle is bulk-replaced (as opposed to incrementally extended).
func (s *SimplexQP) resetDualState() {
	s.omega = nil
	s.status = StatusUnsolved
}

// SolveQP implements Solver: a cold solve, resetting ω to the vertex on the
// current iterate's cut before iterating.
func (s *SimplexQP) SolveQP(opts Options) Status {
	s.omega = make([]float64, len(s.g))
	if len(s.omega) > 0 {
		s.omega[0] = 1
	}

	return s.solve(opts)
}

// SolveQPHot implements Solver: resumes Frank-Wolfe from the current ω.
func (s *SimplexQP) SolveQPHot(opts Options) Status {
	if len(s.omega) != len(s.g) {
		return s.SolveQP(opts)
	}

	return s.solve(opts)
}

func (s *SimplexQP) solve(opts Options) Status {
	m := len(s.g)
	if m == 0 {
		s.status = StatusFailure

		return s.status
	}
	if s.n == 0 {
		s.n = s.g[0].Len()
	}

	c := make([]float64, m)
	for i := range s.g {
		c[i] = s.b[i] - s.b[0]
	}

	comb := mat.NewVecDense(s.n, nil)
	for i, w := range s.omega {
		if w == 0 {
			continue
		}
		comb.AddScaledVec(comb, w, asVecDense(s.g[i]))
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultOptions().MaxIterations
	}
	tol := math.Max(s.rho, 1e-12)

	grad := make([]float64, m)
	gap := math.Inf(1)
	iter := 0
	for ; iter < maxIter; iter++ {
		sumOmegaC := 0.0
		for i, w := range s.omega {
			grad[i] = mat.Dot(asVecDense(s.g[i]), comb) - c[i]
			sumOmegaC += w * c[i]
		}
		sIdx, minGrad := 0, grad[0]
		wGrad := 0.0
		for i, gi := range grad {
			wGrad += s.omega[i] * gi
			if gi < minGrad {
				minGrad, sIdx = gi, i
			}
		}
		gap = wGrad - minGrad
		if gap <= tol {
			break
		}

		u := mat.NewVecDense(s.n, nil)
		u.SubVec(asVecDense(s.g[sIdx]), comb)
		uNormSq := mat.Dot(u, u)
		if uNormSq < tiny {
			break
		}
		t := ((c[sIdx] - sumOmegaC) - mat.Dot(comb, u)) / uNormSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}

		for i := range s.omega {
			s.omega[i] *= 1 - t
		}
		s.omega[sIdx] += t
		comb.AddScaledVec(comb, t, u)
	}

	s.comb = comb
	s.combNorm2Sq = mat.Dot(comb, comb)
	s.iterations = iter
	s.kktGap = gap

	sumOmegaC := 0.0
	for i, w := range s.omega {
		sumOmegaC += w * c[i]
	}
	s.dualValue = 0.5*s.combNorm2Sq - sumOmegaC
	if s.dualValue < 0 {
		// Numerical noise only: c_i ≤ 0 guarantees dualValue ≥ 0 exactly.
		s.dualValue = 0
	}

	primal := mat.NewVecDense(s.n, nil)
	primal.ScaleVec(-1, comb)
	norm2 := math.Sqrt(mat.Dot(primal, primal))
	if s.delta > 0 && norm2 > s.delta {
		primal.ScaleVec(s.delta/norm2, primal)
		norm2 = s.delta
	}
	s.primal = primal
	s.primalNorm2Sq = norm2 * norm2
	s.primalNormInf = vecInfNorm(primal)

	if gap <= tol {
		s.status = StatusSuccess
	} else {
		s.status = StatusIterationLimit
	}

	return s.status
}

// PrimalSolution implements Solver.
func (s *SimplexQP) PrimalSolution(out vector.Vector) {
	for i := 0; i < out.Len(); i++ {
		out.Set(i, s.primal.AtVec(i))
	}
}

// PrimalSolutionNorm2Squared implements Solver.
func (s *SimplexQP) PrimalSolutionNorm2Squared() float64 { return s.primalNorm2Sq }

// PrimalSolutionNormInf implements Solver.
func (s *SimplexQP) PrimalSolutionNormInf() float64 { return s.primalNormInf }

// DualObjectiveQuadraticValue implements Solver.
func (s *SimplexQP) DualObjectiveQuadraticValue() float64 { return s.dualValue }

// CombinationTranslatedNorm2Squared implements Solver.
func (s *SimplexQP) CombinationTranslatedNorm2Squared() float64 { return s.combNorm2Sq }

// DualSolutionOmegaLength implements Solver.
func (s *SimplexQP) DualSolutionOmegaLength() int { return len(s.omega) }

// DualSolutionOmega implements Solver.
func (s *SimplexQP) DualSolutionOmega(out []float64) { copy(out, s.omega) }

// NumberOfIterations implements Solver.
func (s *SimplexQP) NumberOfIterations() int { return s.iterations }

// VectorListLength implements Solver.
func (s *SimplexQP) VectorListLength() int { return len(s.g) }

// KKTErrorDual implements Solver.
func (s *SimplexQP) KKTErrorDual() float64 { return s.kktGap }

// Status implements Solver.
func (s *SimplexQP) Status() Status { return s.status }

func asVecDense(v vector.Vector) *mat.VecDense {
	return mat.NewVecDense(v.Len(), v.Data())
}

func vecInfNorm(v *mat.VecDense) float64 {
	var m float64
	for i := 0; i < v.Len(); i++ {
		if a := math.Abs(v.AtVec(i)); a > m {
			m = a
		}
	}

	return m
}
