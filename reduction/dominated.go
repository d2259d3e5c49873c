package reduction

import (
	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/problem"
)

// DominatedReducer eliminates dominated subsets (columns) and points
// implied by another point's coverage (rows), iterated to a fixpoint:
// a subset dominated by another covering a superset of its points is
// redundant and dropped; a point covered wherever another point is
// covered (every subset covering the other point also covers it) is
// implied by that other point and dropped, since any
// solution covering the surviving point automatically covers the
// dropped one.
type DominatedReducer struct{}

// NewDominatedReducer returns a DominatedReducer, the default Reducer
// this module wires behind the reduction facade.
func NewDominatedReducer() *DominatedReducer {
	return &DominatedReducer{}
}

// Reduce implements Reducer.
func (r *DominatedReducer) Reduce(inst *problem.Instance) (*problem.Instance, Expander, error) {
	points := identityRange(inst.PointsNumber)
	subsets := identityRange(inst.SubsetsNumber)

	for {
		nextSubsets := eliminateDominatedSubsets(inst, points, subsets)
		nextPoints := eliminateImpliedPoints(inst, nextSubsets, points)
		if len(nextSubsets) == len(subsets) && len(nextPoints) == len(points) {
			subsets, points = nextSubsets, nextPoints
			break
		}
		subsets, points = nextSubsets, nextPoints
	}

	reducedSubsetsPoints := make([]*bitset.Bitset, len(subsets))
	for ri, parentSubset := range subsets {
		reducedSubsetsPoints[ri] = restrictedCoverage(inst, points, parentSubset)
	}

	reduced, err := problem.NewInstance(inst.Name+"-reduced", len(points), reducedSubsetsPoints)
	if err != nil {
		return nil, nil, err
	}
	reduced.Reduction = &problem.Reduction{
		Parent:         inst,
		PointsMapping:  points,
		SubsetsMapping: subsets,
	}

	return reduced, &expander{reduced: reduced}, nil
}

func identityRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// restrictedCoverage returns the bitset of retained points (indexed by
// position within points, not parent index) that parent subset
// parentSubset covers.
func restrictedCoverage(inst *problem.Instance, points []int, parentSubset int) *bitset.Bitset {
	b := bitset.New(len(points))
	for rp, parentPoint := range points {
		if inst.SubsetsPoints[parentSubset].Test(parentPoint) {
			b.Set(rp)
		}
	}
	return b
}

// eliminateDominatedSubsets drops any subset in subsets whose restricted
// coverage is contained in another surviving subset's restricted
// coverage (ties broken by keeping the lower parent index).
func eliminateDominatedSubsets(inst *problem.Instance, points []int, subsets []int) []int {
	coverage := make([]*bitset.Bitset, len(subsets))
	for i, parentSubset := range subsets {
		coverage[i] = restrictedCoverage(inst, points, parentSubset)
	}

	dominated := make([]bool, len(subsets))
	for i := range subsets {
		if dominated[i] {
			continue
		}
		for j := range subsets {
			if i == j || dominated[j] {
				continue
			}
			if coverage[j].Contains(coverage[i]) && (coverage[i].Count() < coverage[j].Count() ||
				(coverage[i].Count() == coverage[j].Count() && subsets[i] > subsets[j])) {
				dominated[i] = true
				break
			}
		}
	}

	kept := make([]int, 0, len(subsets))
	for i, parentSubset := range subsets {
		if !dominated[i] {
			kept = append(kept, parentSubset)
		}
	}
	return kept
}

// eliminateImpliedPoints drops any point in points whose set of covering
// subsets (restricted to the surviving subsets) is contained in another
// surviving point's covering-subset set: covering the surviving point
// always covers the dropped one too.
func eliminateImpliedPoints(inst *problem.Instance, subsets []int, points []int) []int {
	coverers := make([]*bitset.Bitset, len(points))
	for pi, parentPoint := range points {
		b := bitset.New(len(subsets))
		for si, parentSubset := range subsets {
			if inst.SubsetsPoints[parentSubset].Test(parentPoint) {
				b.Set(si)
			}
		}
		coverers[pi] = b
	}

	// If every subset covering p also covers q (coverers(p) subset of
	// coverers(q)), then covering p always covers q too: q is redundant
	// and gets dropped, not p.
	implied := make([]bool, len(points))
	for p := range points {
		for q := range points {
			if p == q || implied[q] {
				continue
			}
			if coverers[q].Contains(coverers[p]) && (coverers[p].Count() < coverers[q].Count() ||
				(coverers[p].Count() == coverers[q].Count() && points[q] > points[p])) {
				implied[q] = true
			}
		}
	}

	kept := make([]int, 0, len(points))
	for pi, parentPoint := range points {
		if !implied[pi] {
			kept = append(kept, parentPoint)
		}
	}
	return kept
}
