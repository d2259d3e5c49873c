package rwls

import "github.com/ToluPeazy/uscp/bitset"

// add implements the Add(i) operation. Precondition: i is not currently
// selected and score(i) >= 0.
func (r *run) add(i int) {
	inst := r.inst
	newlyCovered := bitset.New(inst.PointsNumber)
	nowCoveredTwice := bitset.New(inst.PointsNumber)

	inst.SubsetsPoints[i].IterateOnBits(func(p int) bool {
		r.pointsCoverCount[p]++
		switch r.pointsCoverCount[p] {
		case 1:
			newlyCovered.Set(p)
		case 2:
			nowCoveredTwice.Set(p)
		}
		return true
	})

	r.solution.SelectedSubsets.Set(i)
	r.uncoveredPoints.Difference(inst.SubsetsPoints[i])
	r.subsets[i].score = -r.subsets[i].score

	for _, j := range r.engine.neighbors.Neighbors(i) {
		r.subsets[j].canAddToSolution = true
		if r.solution.SelectedSubsets.Test(j) {
			r.subsets[j].score += markedWeightSum(nowCoveredTwice, inst.SubsetsPoints[j], r.weights)
		} else {
			r.subsets[j].score -= markedWeightSum(newlyCovered, inst.SubsetsPoints[j], r.weights)
		}
	}
}

// remove implements the Remove(i) operation, symmetric to add.
func (r *run) remove(i int) {
	inst := r.inst
	newlyUncovered := bitset.New(inst.PointsNumber)
	nowCoveredOnce := bitset.New(inst.PointsNumber)

	inst.SubsetsPoints[i].IterateOnBits(func(p int) bool {
		r.pointsCoverCount[p]--
		switch r.pointsCoverCount[p] {
		case 0:
			newlyUncovered.Set(p)
		case 1:
			nowCoveredOnce.Set(p)
		}
		return true
	})

	r.solution.SelectedSubsets.Reset(i)
	r.uncoveredPoints.Union(newlyUncovered)
	r.subsets[i].score = -r.subsets[i].score
	r.subsets[i].canAddToSolution = false

	for _, j := range r.engine.neighbors.Neighbors(i) {
		r.subsets[j].canAddToSolution = true
		if r.solution.SelectedSubsets.Test(j) {
			r.subsets[j].score -= markedWeightSum(nowCoveredOnce, inst.SubsetsPoints[j], r.weights)
		} else {
			r.subsets[j].score += markedWeightSum(newlyUncovered, inst.SubsetsPoints[j], r.weights)
		}
	}
}

// applyWeightUpdate implements the swap-step weight update: every point
// still uncovered gets heavier, and every unselected subset covering a
// heavier point gains score proportionally, without a full recompute.
func (r *run) applyWeightUpdate() {
	r.uncoveredPoints.IterateOnBits(func(p int) bool {
		r.weights[p]++
		r.engine.subsetsCoveringPoints[p].IterateOnBits(func(j int) bool {
			if !r.solution.SelectedSubsets.Test(j) {
				r.subsets[j].score++
			}
			return true
		})
		return true
	})
}
