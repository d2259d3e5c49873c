package rwls_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
)

func buildBenchInstance(b *testing.B, points, subsets int) *problem.Instance {
	rng := rand.New(rand.NewSource(5))
	rows := make([]*bitset.Bitset, subsets)
	for i := range rows {
		bs := bitset.New(points)
		for p := 0; p < points; p++ {
			if rng.Float64() < 0.08 {
				bs.Set(p)
			}
		}
		rows[i] = bs
	}
	for p := 0; p < points && p < subsets; p++ {
		rows[p].Set(p)
	}
	inst, err := problem.NewInstance("bench", points, rows)
	if err != nil {
		b.Fatal(err)
	}
	return inst
}

func BenchmarkEnginePreprocess(b *testing.B) {
	inst := buildBenchInstance(b, 150, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rwls.New(context.Background(), inst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkImprove(b *testing.B) {
	inst := buildBenchInstance(b, 150, 200)
	engine, err := rwls.New(context.Background(), inst)
	if err != nil {
		b.Fatal(err)
	}
	seed, err := greedy.Solve(inst)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Improve(context.Background(), seed.Clone(), nil, rwls.Budget{MaxSteps: 1000}, rng); err != nil {
			b.Fatal(err)
		}
	}
}
