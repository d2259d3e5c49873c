package wcrossover

import "math/rand"

type resetOp struct{}

func (o *resetOp) Name() string { return "reset" }

func (o *resetOp) Apply1(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }
func (o *resetOp) Apply2(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }

func (o *resetOp) apply(a, b []int64) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		out[i] = 1
	}
	return out
}

type keepOp struct{}

func (o *keepOp) Name() string { return "keep" }

func (o *keepOp) Apply1(a, b []int64, _ *rand.Rand) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	copy(out, a)
	return out
}

func (o *keepOp) Apply2(a, b []int64, _ *rand.Rand) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(b))
	copy(out, b)
	return out
}

type averageOp struct{}

func (o *averageOp) Name() string { return "average" }

func (o *averageOp) Apply1(a, b []int64, rng *rand.Rand) []int64 { return o.apply(a, b) }
func (o *averageOp) Apply2(a, b []int64, rng *rand.Rand) []int64 { return o.apply(a, b) }

func (o *averageOp) apply(a, b []int64) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		out[i] = (a[i] + b[i]) / 2
	}
	return out
}

type mixRandomOp struct{}

func (o *mixRandomOp) Name() string { return "mix_random" }

func (o *mixRandomOp) Apply1(a, b []int64, rng *rand.Rand) []int64 { return o.apply(a, b, rng) }
func (o *mixRandomOp) Apply2(a, b []int64, rng *rand.Rand) []int64 { return o.apply(a, b, rng) }

func (o *mixRandomOp) apply(a, b []int64, rng *rand.Rand) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		if rng.Float64() < 0.5 {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

type addOp struct{}

func (o *addOp) Name() string { return "add" }

func (o *addOp) Apply1(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }
func (o *addOp) Apply2(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }

func (o *addOp) apply(a, b []int64) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

type differenceOp struct{}

func (o *differenceOp) Name() string { return "difference" }

func (o *differenceOp) Apply1(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }
func (o *differenceOp) Apply2(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }

func (o *differenceOp) apply(a, b []int64) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		out[i] = d
	}
	return out
}

type maxOp struct{}

func (o *maxOp) Name() string { return "max" }

func (o *maxOp) Apply1(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }
func (o *maxOp) Apply2(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }

func (o *maxOp) apply(a, b []int64) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

type minOp struct{}

func (o *minOp) Name() string { return "min" }

func (o *minOp) Apply1(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }
func (o *minOp) Apply2(a, b []int64, _ *rand.Rand) []int64 { return o.apply(a, b) }

func (o *minOp) apply(a, b []int64) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// minmaxOp: apply1 favors the larger value (like taking the max), apply2
// favors the smaller (like taking the min), grounded on
// wcrossover/minmax.hpp's asymmetric apply1/apply2 pair.
type minmaxOp struct{}

func (o *minmaxOp) Name() string { return "minmax" }

func (o *minmaxOp) Apply1(a, b []int64, _ *rand.Rand) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

func (o *minmaxOp) Apply2(a, b []int64, _ *rand.Rand) []int64 {
	requireSameLength(a, b)
	out := make([]int64, len(a))
	for i := range out {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// shuffleOp: apply1 returns a random permutation of a, apply2 of b,
// grounded on wcrossover/shuffle.hpp.
type shuffleOp struct{}

func (o *shuffleOp) Name() string { return "shuffle" }

func (o *shuffleOp) Apply1(a, b []int64, rng *rand.Rand) []int64 {
	requireSameLength(a, b)
	return shuffled(a, rng)
}

func (o *shuffleOp) Apply2(a, b []int64, rng *rand.Rand) []int64 {
	requireSameLength(a, b)
	return shuffled(b, rng)
}

func shuffled(v []int64, rng *rand.Rand) []int64 {
	out := make([]int64, len(v))
	copy(out, v)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
