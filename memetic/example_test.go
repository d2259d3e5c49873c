package memetic_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ToluPeazy/uscp/crossover"
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/memetic"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
	"github.com/ToluPeazy/uscp/wcrossover"
)

func ExampleRun() {
	rows := [][]int{
		{0, 6},
		{1, 2, 7, 8},
		{3, 4, 5, 9, 10, 11},
		{0, 1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10, 11},
	}
	inst, err := problem.NewInstance("overshoot", 12, subsetsFromSlices(12, rows))
	if err != nil {
		panic(err)
	}

	engine, err := rwls.New(context.Background(), inst)
	if err != nil {
		panic(err)
	}

	pop := make([]memetic.Individual, 4)
	for i := range pop {
		rng := rand.New(rand.NewSource(int64(i + 1)))
		sol, err := greedy.RandomSolve(rng, inst)
		if err != nil {
			panic(err)
		}
		weights := make([]int64, inst.PointsNumber)
		for p := range weights {
			weights[p] = 1
		}
		pop[i] = memetic.Individual{Solution: sol, Weights: weights}
	}

	cReg := crossover.NewRegistry(inst)
	sub, err := cReg.Get("subproblem_greedy")
	if err != nil {
		panic(err)
	}
	wReg := wcrossover.NewRegistry()
	avg, err := wReg.Get("average")
	if err != nil {
		panic(err)
	}

	cfg := memetic.Config{PopulationSize: len(pop), RWLSCumulativeSteps: 8000}
	report, err := memetic.Run(context.Background(), inst, pop, engine, sub, avg, cfg, rand.New(rand.NewSource(23)))
	if err != nil {
		panic(err)
	}

	fmt.Println(report.SolutionFinal.SelectedSubsets.Count())
	// Output: 2
}
