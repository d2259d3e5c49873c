package reduction_test

import (
	"fmt"

	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/reduction"
)

func ExampleDominatedReducer_Reduce() {
	inst, err := problem.NewInstance("example", 3, subsetsFromSlices(3, [][]int{
		{0, 1},
		{0},
		{2},
	}))
	if err != nil {
		panic(err)
	}

	reducer := reduction.NewDominatedReducer()
	reduced, expander, err := reducer.Reduce(inst)
	if err != nil {
		panic(err)
	}

	sol := problem.NewSolution(reduced)
	for i := 0; i < reduced.SubsetsNumber; i++ {
		sol.SelectedSubsets.Set(i)
	}
	sol.ComputeCover()

	expanded := expander.Expand(sol)
	fmt.Println(reduced.SubsetsNumber, expanded.CoverAllPoints)
	// Output: 2 true
}
