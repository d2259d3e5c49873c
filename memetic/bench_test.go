package memetic_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/crossover"
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/memetic"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
	"github.com/ToluPeazy/uscp/wcrossover"
)

func buildBenchInstance(b *testing.B, points, subsets int) *problem.Instance {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	sp := make([]*bitset.Bitset, subsets)
	for i := 0; i < subsets; i++ {
		bs := bitset.New(points)
		for p := 0; p < points; p++ {
			if rng.Float64() < 0.1 {
				bs.Set(p)
			}
		}
		if i < points {
			bs.Set(i % points)
		}
		sp[i] = bs
	}
	inst, err := problem.NewInstance("bench", points, sp)
	if err != nil {
		b.Fatal(err)
	}
	return inst
}

func BenchmarkMemeticRun(b *testing.B) {
	inst := buildBenchInstance(b, 200, 400)
	engine, err := rwls.New(context.Background(), inst)
	if err != nil {
		b.Fatal(err)
	}

	cReg := crossover.NewRegistry(inst)
	sub, err := cReg.Get("subproblem_greedy")
	if err != nil {
		b.Fatal(err)
	}
	wReg := wcrossover.NewRegistry()
	avg, err := wReg.Get("average")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		pop := make([]memetic.Individual, 6)
		for i := range pop {
			rng := rand.New(rand.NewSource(int64(i + 1)))
			sol, err := greedy.RandomSolve(rng, inst)
			if err != nil {
				b.Fatal(err)
			}
			weights := make([]int64, inst.PointsNumber)
			for p := range weights {
				weights[p] = 1
			}
			pop[i] = memetic.Individual{Solution: sol, Weights: weights}
		}

		cfg := memetic.Config{PopulationSize: len(pop), RWLSCumulativeSteps: 2000}
		_, err := memetic.Run(context.Background(), inst, pop, engine, sub, avg, cfg, rand.New(rand.NewSource(int64(n))))
		if err != nil {
			b.Fatal(err)
		}
	}
}
