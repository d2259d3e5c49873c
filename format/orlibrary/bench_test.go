package orlibrary_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/ToluPeazy/uscp/format/orlibrary"
)

func buildBenchSource(points, subsets int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	covering := make([][]int, points)
	for i := 0; i < subsets; i++ {
		for p := 0; p < points; p++ {
			if rng.Float64() < 0.1 || i == p%subsets {
				covering[p] = append(covering[p], i+1)
			}
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%d %d\n", points, subsets)
	for i := 0; i < subsets; i++ {
		fmt.Fprint(&out, "1 ")
	}
	fmt.Fprint(&out, "\n")
	for p := 0; p < points; p++ {
		fmt.Fprintf(&out, "%d ", len(covering[p]))
		for _, idx := range covering[p] {
			fmt.Fprintf(&out, "%d ", idx)
		}
		fmt.Fprint(&out, "\n")
	}
	return out.String()
}

func BenchmarkRead(b *testing.B) {
	src := buildBenchSource(200, 200, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := orlibrary.Read(strings.NewReader(src), "bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	src := buildBenchSource(200, 200, 7)
	inst, err := orlibrary.Read(strings.NewReader(src), "bench")
	if err != nil {
		b.Fatal(err)
	}

	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := orlibrary.Write(&buf, inst); err != nil {
			b.Fatal(err)
		}
	}
}
