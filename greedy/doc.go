// Package greedy implements the deterministic and randomized greedy
// constructors for the Unicost Set Cover Problem: at each step, extend
// the current solution with the subset that maximizes newly covered
// points, under a configurable tie-break, until every point is covered.
//
// Three tie-break strategies share one inner loop (see solve.go):
//
//   - Solve / RestrictedSolve: strict improvement only; first index wins ties.
//   - RSolve / RestrictedRSolve: non-strict (>=) improvement; last index wins ties.
//   - RandomSolve / RestrictedRandomSolve: reservoir-sampled tie-break.
//
// Every constructor returns uerrors-classified NoSolution if the
// instance (or its authorized-subset restriction) cannot be covered.
package greedy
