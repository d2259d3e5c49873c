// Package rwls implements Row-Weighted Local Search over covering
// solutions: given a covering initial solution, it iteratively shrinks
// the selected-subset count by removing a subset and repairing coverage
// under a weighted objective that adapts to escape local optima.
//
// An Engine amortizes the O(n^2) neighbor-graph and covering-points
// preprocessing across many Improve calls against the same Instance.
// Each Improve call runs the shrink/swap main loop until its Budget or
// the context is exhausted, returning the best solution found and the
// step/time at which it was found.
package rwls
