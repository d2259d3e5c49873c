package rwls

import "math/rand"

// selectSubsetToRemoveNoTimestamp implements the shrink-phase choice:
// the selected subset with maximum score, ties won by first-encountered
// bit order.
func (r *run) selectSubsetToRemoveNoTimestamp() int {
	best := -1
	var bestScore int64
	r.solution.SelectedSubsets.IterateOnBits(func(i int) bool {
		if best == -1 || r.subsets[i].score > bestScore {
			best, bestScore = i, r.subsets[i].score
		}
		return true
	})
	return best
}

// selectSwapRemove implements the swap-step remove choice: the selected
// subset maximizing (score, -timestamp) lexicographically, excluding
// tabu subsets when a non-tabu candidate exists.
func (r *run) selectSwapRemove() int {
	best := r.bestSelected(true)
	if best != -1 {
		return best
	}
	return r.bestSelected(false)
}

func (r *run) bestSelected(skipTabu bool) int {
	best := -1
	var bestScore int64
	var bestTimestamp int
	r.solution.SelectedSubsets.IterateOnBits(func(i int) bool {
		if skipTabu && r.isTabu(i) {
			return true
		}
		s, ts := r.subsets[i].score, r.subsets[i].timestamp
		if best == -1 || s > bestScore || (s == bestScore && ts < bestTimestamp) {
			best, bestScore, bestTimestamp = i, s, ts
		}
		return true
	})
	return best
}

// selectSwapAdd implements the swap-step add choice for uncovered point
// p: among subsets covering p that are unselected and can_add_to_solution,
// pick the one maximizing (score, -timestamp). If that initial seed is
// tabu but a non-tabu candidate also exists, prefer the non-tabu one;
// otherwise accept the tabu seed.
func (r *run) selectSwapAdd(p int) int {
	seed := r.bestAddCandidate(p, false)
	if seed == -1 || !r.isTabu(seed) {
		return seed
	}
	if alt := r.bestAddCandidate(p, true); alt != -1 {
		return alt
	}
	return seed
}

func (r *run) bestAddCandidate(p int, skipTabu bool) int {
	best := -1
	var bestScore int64
	var bestTimestamp int
	r.engine.subsetsCoveringPoints[p].IterateOnBits(func(i int) bool {
		if r.solution.SelectedSubsets.Test(i) || !r.subsets[i].canAddToSolution {
			return true
		}
		if skipTabu && r.isTabu(i) {
			return true
		}
		s, ts := r.subsets[i].score, r.subsets[i].timestamp
		if best == -1 || s > bestScore || (s == bestScore && ts < bestTimestamp) {
			best, bestScore, bestTimestamp = i, s, ts
		}
		return true
	})
	return best
}

// selectUncoveredPoint draws a point from uncoveredPoints. By default it
// reproduces the source's slightly first-bit-biased draw: r uniform in
// [0, count] inclusive, returned as the first bit whose 1-based running
// counter is >= r, so r = 0 and r = 1 both pick the first bit.
// WithUnbiasedSampling switches to a uniform draw.
func (r *run) selectUncoveredPoint(rng *rand.Rand) int {
	count := r.uncoveredPoints.Count()
	if count == 0 {
		return -1
	}

	if r.engine.unbiasedSampling {
		target := rng.Intn(count)
		idx := 0
		result := -1
		r.uncoveredPoints.IterateOnBits(func(p int) bool {
			if idx == target {
				result = p
				return false
			}
			idx++
			return true
		})
		return result
	}

	draw := rng.Intn(count + 1)
	counter := 0
	result := -1
	r.uncoveredPoints.IterateOnBits(func(p int) bool {
		counter++
		if counter >= draw {
			result = p
			return false
		}
		return true
	})
	return result
}
