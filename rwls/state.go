package rwls

import (
	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/problem"
)

// run holds the per-Improve-call mutable state: the working solution,
// weight vector, and the score/timestamp bookkeeping for every subset.
type run struct {
	engine *Engine
	inst   *problem.Instance

	solution *problem.Solution
	weights  []int64

	subsets          []subsetInfo
	pointsCoverCount []int
	uncoveredPoints  *bitset.Bitset

	tabu tabuQueue
	step int
}

// newRun initializes bookkeeping for sol per "Initialization per
// improvement call": subsets_covering_in_solution from sol, weights to
// the given seed (or all ones), each subset's score from the score
// definition, and an empty uncovered set (sol must already cover I).
func newRun(e *Engine, sol *problem.Solution, weights []int64) *run {
	inst := e.problem
	r := &run{
		engine:           e,
		inst:             inst,
		solution:         sol,
		weights:          weights,
		subsets:          make([]subsetInfo, inst.SubsetsNumber),
		pointsCoverCount: make([]int, inst.PointsNumber),
		uncoveredPoints:  bitset.New(inst.PointsNumber),
		tabu:             tabuQueue{limit: TabuListLength},
	}

	for p := 0; p < inst.PointsNumber; p++ {
		count := 0
		covering := e.subsetsCoveringPoints[p]
		covering.IterateOnBits(func(i int) bool {
			if sol.SelectedSubsets.Test(i) {
				count++
			}
			return true
		})
		r.pointsCoverCount[p] = count
	}

	for i := 0; i < inst.SubsetsNumber; i++ {
		r.subsets[i].canAddToSolution = true
		r.subsets[i].score = r.recomputeScore(i)
	}

	return r
}

func (r *run) recomputeScore(i int) int64 {
	var sum int64
	selected := r.solution.SelectedSubsets.Test(i)
	r.inst.SubsetsPoints[i].IterateOnBits(func(p int) bool {
		count := r.pointsCoverCount[p]
		if selected && count == 1 {
			sum += r.weights[p]
		} else if !selected && count == 0 {
			sum += r.weights[p]
		}
		return true
	})
	if selected {
		return -sum
	}
	return sum
}

func (r *run) assertScores() error {
	for i := 0; i < r.inst.SubsetsNumber; i++ {
		want := r.recomputeScore(i)
		if want != r.subsets[i].score {
			return errScoreMismatch(i, want, r.subsets[i].score)
		}
	}
	return nil
}

// tabuQueue is a bounded FIFO with linear-scan membership, matching the
// small-T assumption that keeps the scan effectively O(1).
type tabuQueue struct {
	items []int
	limit int
}

func (q *tabuQueue) push(i int) {
	q.items = append(q.items, i)
	if len(q.items) > q.limit {
		q.items = q.items[1:]
	}
}

func (q *tabuQueue) contains(i int) bool {
	for _, x := range q.items {
		if x == i {
			return true
		}
	}
	return false
}

func (r *run) isTabu(i int) bool { return r.tabu.contains(i) }

// markedWeightSum sums weights[p] over points set in both marked and
// target.
func markedWeightSum(marked, target *bitset.Bitset, weights []int64) int64 {
	var sum int64
	marked.IterateOnBits(func(p int) bool {
		if target.Test(p) {
			sum += weights[p]
		}
		return true
	})
	return sum
}
