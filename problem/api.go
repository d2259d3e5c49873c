package problem

import "github.com/ToluPeazy/uscp/bitset"

// NewInstance validates and constructs an Instance. Every element of
// subsetsPoints must be a *bitset.Bitset of length pointsNumber.
func NewInstance(name string, pointsNumber int, subsetsPoints []*bitset.Bitset) (*Instance, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if pointsNumber < 0 {
		return nil, ErrNegativePointsNumber
	}
	for _, sp := range subsetsPoints {
		if sp.Len() != pointsNumber {
			return nil, ErrSubsetLengthMismatch
		}
	}

	return &Instance{
		Name:          name,
		PointsNumber:  pointsNumber,
		SubsetsNumber: len(subsetsPoints),
		SubsetsPoints: subsetsPoints,
	}, nil
}

// HasSolution reports whether the bitwise union of every subset's
// coverage equals the all-ones bitset of length PointsNumber, i.e.
// whether the instance admits at least one covering solution.
func (i *Instance) HasSolution() bool {
	union := bitset.New(i.PointsNumber)
	for _, sp := range i.SubsetsPoints {
		union.Union(sp)
	}
	return union.All()
}

// NewSolution returns an empty Solution (no subsets selected) over inst.
func NewSolution(inst *Instance) *Solution {
	return &Solution{
		instance:        inst,
		SelectedSubsets: bitset.New(inst.SubsetsNumber),
		CoveredPoints:   bitset.New(inst.PointsNumber),
		CoverAllPoints:  inst.PointsNumber == 0,
	}
}

// Instance returns the Instance s was built over.
func (s *Solution) Instance() *Instance {
	return s.instance
}

// ComputeCover recomputes CoveredPoints from SelectedSubsets and updates
// CoverAllPoints. Callers that mutate SelectedSubsets in bulk (e.g. after
// loading a serialized index list) must call this afterward.
func (s *Solution) ComputeCover() {
	s.CoveredPoints.ClearAll()
	s.SelectedSubsets.IterateOnBits(func(i int) bool {
		s.CoveredPoints.Union(s.instance.SubsetsPoints[i])
		return true
	})
	s.CoverAllPoints = s.CoveredPoints.All()
}

// Clone returns an independent deep copy of s over the same Instance.
func (s *Solution) Clone() *Solution {
	return &Solution{
		instance:        s.instance,
		SelectedSubsets: s.SelectedSubsets.Clone(),
		CoveredPoints:   s.CoveredPoints.Clone(),
		CoverAllPoints:  s.CoverAllPoints,
	}
}

// Assign overwrites s's contents with other's. Assign panics if the two
// solutions were not built over instances of identical dimensions.
func (s *Solution) Assign(other *Solution) {
	s.instance = other.instance
	s.SelectedSubsets.CopyFrom(other.SelectedSubsets)
	s.CoveredPoints.CopyFrom(other.CoveredPoints)
	s.CoverAllPoints = other.CoverAllPoints
}

// MarshalIndices returns the sorted list of selected subset indices, the
// serialization snapshot described in spec.md's Solution section.
func (s *Solution) MarshalIndices() []int {
	indices := make([]int, 0, s.SelectedSubsets.Count())
	s.SelectedSubsets.IterateOnBits(func(i int) bool {
		indices = append(indices, i)
		return true
	})
	return indices
}

// LoadIndices resets SelectedSubsets to exactly the given indices and
// recomputes the cover. LoadIndices returns ErrIndexOutOfRange if any
// index is outside [0, SubsetsNumber).
func (s *Solution) LoadIndices(indices []int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= s.instance.SubsetsNumber {
			return ErrIndexOutOfRange
		}
	}
	s.SelectedSubsets.ClearAll()
	for _, idx := range indices {
		s.SelectedSubsets.Set(idx)
	}
	s.ComputeCover()
	return nil
}
