package quantities

import (
	"sync"

	"github.com/nonopt-go/nonopt/iterate"
)

// PointSet is the ordered sequence of shared Iterates that forms the bundle
// of visited points across the whole solve. It is append-only within one
// direction computation; Prune drops the oldest entries between outer
// iterations. PointSet owns
// its Iterates; the local cutting-plane bundle built inside one direction
// computation holds only non-owning references into it.
//
// PointSet is safe for concurrent readers and a single mutating goroutine
// (the direction-computation core), matching the teacher's core.Graph
// RWMutex convention.
type PointSet struct {
	mu     sync.RWMutex
	points []*iterate.Iterate
}

// NewPointSet returns an empty PointSet.
func NewPointSet() *PointSet {
	return &PointSet{}
}

// Append adds p to the end of the point set and returns its index.
func (ps *PointSet) Append(p *iterate.Iterate) int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.points = append(ps.points, p)

	return len(ps.points) - 1
}

// Len returns the number of points currently in the set.
func (ps *PointSet) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.points)
}

// At returns the i-th point.
func (ps *PointSet) At(i int) *iterate.Iterate {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return ps.points[i]
}

// Snapshot returns a shallow copy of the current points, safe to range over
// without holding the PointSet's lock (new Appends during iteration are not
// reflected, matching "point set is append-only within one outer iteration"
// — a direction computation takes its snapshot once at entry).
func (ps *PointSet) Snapshot() []*iterate.Iterate {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make([]*iterate.Iterate, len(ps.points))
	copy(out, ps.points)

	return out
}

// Prune drops the oldest entries so that at most keep points remain. Used
// by pointset.Strategy implementations between outer iterations to bound
// memory; never called from within a single direction computation.
func (ps *PointSet) Prune(keep int) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	if len(ps.points) <= keep {
		return
	}
	ps.points = ps.points[len(ps.points)-keep:]
}
