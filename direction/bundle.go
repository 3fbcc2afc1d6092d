package direction

import (
	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/vector"
)

// bundle is the local (G, b) pair defining one QP's cutting-plane model.
// It is stack-local to one ComputeDirection call: built fresh at entry,
// discarded on every exit (spec.md §3/§5). Gradient vectors are borrowed
// from quantities.Quantities.PointSet or from a freshly-evaluated trial
// Iterate; bundle does not own them. The exception is the aggregate cut
// (refreshAggregate), whose gradient vector is allocated for and owned by
// the aggregated bundle.
type bundle struct {
	g []vector.Vector
	b []float64
}

func newSeedBundle(gradAtCurrent vector.Vector, fAtCurrent float64) bundle {
	return bundle{
		g: []vector.Vector{gradAtCurrent},
		b: []float64{fAtCurrent},
	}
}

func (bd *bundle) append(g vector.Vector, b float64) {
	bd.g = append(bd.g, g)
	bd.b = append(bd.b, b)
}

func (bd *bundle) len() int { return len(bd.g) }

func (bd *bundle) clone() bundle {
	g := make([]vector.Vector, len(bd.g))
	copy(g, bd.g)
	b := make([]float64, len(bd.b))
	copy(b, bd.b)

	return bundle{g: g, b: b}
}

// downshift computes b_i for a bundle point p ≠ x_k per spec.md §3:
//
//	b_i = min( f(p) + ⟨g_i, x_k − p⟩ , f(x_k) − κ·‖x_k − p‖₂² )
//
// guaranteeing b_i ≤ f(x_k) — the cutting plane lies below f(x_k),
// preserving model validity for nonconvex f (spec.md §4.1 "Downshifting
// rationale").
func downshift(current *iterate.Iterate, p *iterate.Iterate, gradAtP vector.Vector, fAtP float64, kappa float64) (float64, error) {
	diff, err := vector.Sub(current.Position(), p.Position())
	if err != nil {
		return 0, err
	}
	naive := fAtP + gradAtP.Dot(diff)
	capped := current.Value() - kappa*diff.Norm2Squared()
	if capped < naive {
		return capped, nil
	}

	return naive, nil
}
