// Package iterate defines the Iterate type: a point x together with its
// lazily-computed, cached objective value and gradient, plus the Oracle
// contract the user's objective function/subgradient routine must satisfy.
//
// Caching mirrors the teacher library's lazy-evaluation-under-lock pattern
// (core.Graph methods compute and cache adjacency views on first access);
// here a single goroutine owns each Iterate for the duration of one
// direction computation, so no locking is required — concurrent access
// across outer iterations is Quantities' responsibility (see package
// quantities).
package iterate
