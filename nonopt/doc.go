// Package nonopt is the ambient outer iteration loop: the System Overview
// table of spec.md §2 names an "outer loop" as one of direction.ComputeDirection's
// external collaborators, and Solve supplies a minimal but real one so the
// whole system runs end to end (evaluate → direction.ComputeDirection →
// line search → Hessian update → termination test → repeat), driving
// package strategies's façade the way the teacher's tsp.SolveWithMatrix
// drives its own bbEngine.
package nonopt
