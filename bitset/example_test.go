package bitset_test

import (
	"fmt"

	"github.com/ToluPeazy/uscp/bitset"
)

func ExampleBitset_IterateOnBits() {
	b := bitset.New(8)
	b.Set(1)
	b.Set(4)
	b.Set(7)

	b.IterateOnBits(func(i int) bool {
		fmt.Println(i)
		return true
	})
	// Output:
	// 1
	// 4
	// 7
}
