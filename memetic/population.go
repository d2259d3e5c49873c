package memetic

import "math/rand"

// selectParents picks two distinct indices into population uniformly at
// random without replacement.
func selectParents(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// worstIndex returns the index of the individual with the largest
// selected-subsets count, the standard "replace worst" insertion target.
func worstIndex(population []Individual) int {
	worst := 0
	for i := 1; i < len(population); i++ {
		if population[i].Solution.SelectedSubsets.Count() > population[worst].Solution.SelectedSubsets.Count() {
			worst = i
		}
	}
	return worst
}

// bestIndex returns the index of the individual with the smallest
// selected-subsets count.
func bestIndex(population []Individual) int {
	best := 0
	for i := 1; i < len(population); i++ {
		if population[i].Solution.SelectedSubsets.Count() < population[best].Solution.SelectedSubsets.Count() {
			best = i
		}
	}
	return best
}
