package rwls

import (
	"context"
	"runtime"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/problem"
	"golang.org/x/sync/errgroup"
)

// neighborStore answers subset-adjacency queries: i and j are neighbors
// iff subsets_points[i] and subsets_points[j] share a point. Two
// representations satisfy the same interface, matching the design note
// that dense/sparse neighbor storage must be interchangeable behind one
// contract: sparseNeighbors (adjacency lists, default, memory-light for
// the loosely-overlapping instances typical of OR-Library/STS data) and
// denseNeighbors (a bitset per subset, faster iteration on instances
// with heavy pairwise overlap at the cost of O(n^2) bits resident).
type neighborStore interface {
	Neighbors(i int) []int
}

type sparseNeighbors struct {
	adjacency [][]int
}

func (s *sparseNeighbors) Neighbors(i int) []int { return s.adjacency[i] }

type denseNeighbors struct {
	rows []*bitset.Bitset
	// materialized once at build time so Neighbors doesn't allocate.
	adjacency [][]int
}

func (d *denseNeighbors) Neighbors(i int) []int { return d.adjacency[i] }

// buildNeighbors computes the subset-neighbor relation. Work is sharded
// by owned row index i: each goroutine only ever writes to rows/lists it
// owns, so no destination cell is written by more than one goroutine and
// no lock is required for the neighbor-graph write the design note
// warns about.
func buildNeighbors(ctx context.Context, inst *problem.Instance, dense bool) (neighborStore, error) {
	n := inst.SubsetsNumber
	adjacency := make([][]int, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				var row []int
				for j := 0; j < n; j++ {
					if j == i {
						continue
					}
					if inst.SubsetsPoints[i].Intersects(inst.SubsetsPoints[j]) {
						row = append(row, j)
					}
				}
				adjacency[i] = row
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !dense {
		return &sparseNeighbors{adjacency: adjacency}, nil
	}

	rows := make([]*bitset.Bitset, n)
	for i, row := range adjacency {
		b := bitset.New(n)
		for _, j := range row {
			b.Set(j)
		}
		rows[i] = b
	}
	return &denseNeighbors{rows: rows, adjacency: adjacency}, nil
}

// buildSubsetsCoveringPoints computes, for each point p, the bitset of
// subsets covering p. Work is sharded by owned point range: each
// goroutine only writes to the destination cells for points in its own
// range, reading (never writing) every subset's coverage bitset.
func buildSubsetsCoveringPoints(ctx context.Context, inst *problem.Instance) ([]*bitset.Bitset, error) {
	m := inst.PointsNumber
	out := make([]*bitset.Bitset, m)
	for p := range out {
		out[p] = bitset.New(inst.SubsetsNumber)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > m {
		workers = m
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (m + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > m {
			hi = m
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			for p := lo; p < hi; p++ {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				for i := 0; i < inst.SubsetsNumber; i++ {
					if inst.SubsetsPoints[i].Test(p) {
						out[p].Set(i)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
