// Package memetic drives a steady-state memetic search over a fixed-size
// population of (solution, weight-vector) individuals: each generation
// selects two parents, combines them with a crossover.Operator and a
// wcrossover.Operator, improves the resulting child with an rwls.Engine
// under a budget consumed cumulatively across the whole run, and
// inserts the improved child back into the population. It stops when
// either the wall-clock time limit or the cumulative RWLS budget is
// exhausted, and reports the best solution ever seen together with the
// position (generation, cumulative RWLS position, wall time) at which
// it was found.
package memetic
