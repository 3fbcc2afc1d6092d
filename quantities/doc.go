// Package quantities holds Quantities, the shared mutable state threaded
// through one solve: the current and trial iterate, the working direction,
// the point set (bundle candidates visited so far), the trust-region and
// stationarity radii, the running counters, and the CPU-time budget.
//
// Quantities is owned by the outer loop and mutated in place by the
// direction-computation core during one call; it is not safe for concurrent
// mutation. Only the point set is guarded, by a sync.RWMutex inside
// PointSet (mirroring the teacher library's core.Graph locking
// convention), so it may be read from another goroutine while a solve is
// in flight; the counters and radii are plain fields with no lock.
package quantities
