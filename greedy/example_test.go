package greedy_test

import (
	"fmt"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/problem"
)

func ExampleSolve() {
	rows := [][]int{{0, 1, 2}, {0}, {1}, {2}}
	subsets := make([]*bitset.Bitset, len(rows))
	for i, row := range rows {
		b := bitset.New(3)
		for _, p := range row {
			b.Set(p)
		}
		subsets[i] = b
	}

	inst, err := problem.NewInstance("example", 3, subsets)
	if err != nil {
		panic(err)
	}

	sol, err := greedy.Solve(inst)
	if err != nil {
		panic(err)
	}

	fmt.Println(sol.SelectedSubsets.Count())
	// Output: 1
}
