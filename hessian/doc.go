// Package hessian defines the Hessian-update contract consumed by the
// outer loop, plus DiagonalBFGS, a memory-light reference implementation.
//
// spec.md excludes "specific Hessian-update schemes" from this spec's
// scope; the direction-computation core never calls a Strategy, and
// neither it nor package reporter reads IterationNullString. Only the
// outer loop (nonopt.Solve) calls Update.
package hessian
