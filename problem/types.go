package problem

import "github.com/ToluPeazy/uscp/bitset"

// Instance is a Unicost Set Cover Problem instance: a ground set of
// PointsNumber points and a family of SubsetsNumber subsets, each
// described by a Bitset of length PointsNumber whose bit j is set iff
// the subset covers point j.
//
// Instance is immutable once returned by NewInstance or a Reduction
// producer; nothing in this package or its callers mutates
// SubsetsPoints after construction.
type Instance struct {
	// Name identifies the instance, typically the source file's base name.
	Name string

	// PointsNumber is the size of the ground set (m in spec.md).
	PointsNumber int

	// SubsetsNumber is the size of the subset family (n in spec.md).
	SubsetsNumber int

	// SubsetsPoints[i] is the bitset of points covered by subset i.
	SubsetsPoints []*bitset.Bitset

	// Reduction is non-nil when this Instance was produced by reducing a
	// parent instance; nil for an instance loaded directly from a file.
	Reduction *Reduction
}

// Reduction records the mapping from a reduced Instance back to the
// parent Instance it was derived from.
type Reduction struct {
	// Parent is the original, larger instance.
	Parent *Instance

	// PointsMapping[p] is the parent point index for reduced point p.
	PointsMapping []int

	// SubsetsMapping[i] is the parent subset index for reduced subset i.
	SubsetsMapping []int
}

// Solution is a candidate cover over an Instance: a bitset of selected
// subsets, a cached bitset of the points they cover, and a flag mirroring
// whether that cache is a full cover.
//
// A Solution must be created for, and used against, exactly one
// Instance. Mutating SelectedSubsets directly (as the greedy and RWLS
// algorithms do for performance) leaves CoveredPoints/CoverAllPoints
// stale until ComputeCover is called; algorithms that mutate
// incrementally update both fields themselves instead of calling
// ComputeCover on every step.
type Solution struct {
	instance *Instance

	// SelectedSubsets is the bitset of subset indices currently selected.
	SelectedSubsets *bitset.Bitset

	// CoveredPoints caches the union of SubsetsPoints[i] over selected i.
	CoveredPoints *bitset.Bitset

	// CoverAllPoints caches CoveredPoints.All().
	CoverAllPoints bool
}
