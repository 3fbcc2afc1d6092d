// Package qpsolve defines the contract the direction-computation core uses
// to solve the cutting-plane QP subproblem, and provides SimplexQP, a
// concrete reference implementation.
//
// spec.md treats "the QP solver's interior algorithm" as an explicit
// Non-goal of the direction-computation core: any implementation
// satisfying the Solver contract may be substituted. SimplexQP exists so
// the rest of the system — the direction core, the outer loop, the demo
// CLI — can actually be exercised end to end; its algorithm (Frank-Wolfe /
// conditional gradient on the probability simplex, solving the classical
// minimum-norm-point dual of a piecewise-linear model) is a standard,
// well-understood choice for small bundle sizes, not a mandated one.
package qpsolve
