package sts_test

import (
	"fmt"
	"strings"

	"github.com/ToluPeazy/uscp/format/sts"
)

func ExampleRead() {
	src := `4 3
1 2 3
1 2 4
2 3 4
`
	inst, err := sts.Read(strings.NewReader(src), "example")
	if err != nil {
		panic(err)
	}
	fmt.Println(inst.PointsNumber, inst.SubsetsNumber, inst.HasSolution())
	// Output: 3 4 true
}
