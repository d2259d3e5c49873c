package wcrossover_test

import (
	"fmt"
	"math/rand"

	"github.com/ToluPeazy/uscp/wcrossover"
)

func ExampleRegistry_Get() {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("minmax")
	if err != nil {
		panic(err)
	}

	a := []int64{1, 9, 3}
	b := []int64{4, 2, 3}
	rng := rand.New(rand.NewSource(1))
	fmt.Println(op.Apply1(a, b, rng))
	fmt.Println(op.Apply2(a, b, rng))
	// Output:
	// [4 9 3]
	// [1 2 3]
}
