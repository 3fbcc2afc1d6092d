// Package linesearch defines the line-search contract the outer loop
// (package nonopt) consumes after the direction-computation core returns a
// direction, plus Armijo, a simple backtracking reference implementation.
//
// spec.md explicitly excludes "the line-search routine" from this spec's
// scope (§1 Non-goals); the direction-computation core never calls a
// Strategy, and neither it nor package reporter reads IterationNullString.
// Armijo exists so the ambient outer loop (nonopt.Solve) has
// something real to call.
package linesearch
