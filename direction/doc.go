// Package direction implements the cutting-plane direction-computation
// core: spec.md §4.1's ComputeDirection. Given the current iterate and
// accumulated point set, it builds and solves a sequence of cutting-plane
// QP subproblems, tries cheap gradient/shortened-step shortcuts first,
// aggregates the bundle for memory control, recovers from QP failures, and
// returns a status describing how (or whether) a descent step was found.
//
// The local cutting-plane bundle (G, b, and their aggregated/incremental
// variants) is stack-local to one ComputeDirection call: built fresh at
// entry, discarded on every exit path, exactly as spec.md §5 describes.
// Gradient vectors the bundle references are borrowed from the Iterates
// that hold them (quantities.Quantities.PointSet members, or trial Iterates
// evaluated during the call); the one gradient vector the bundle allocates
// and owns itself is the aggregate cut built when Options.TryAggregation is
// set. This is grounded on the teacher's "adjacency is owned by Graph, views
// borrow" discipline (core.Graph vs. matrix.AdjacencyMatrix) applied here
// to iterates vs. the transient bundle.
package direction
