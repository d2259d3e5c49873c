package orlibrary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ToluPeazy/uscp/problem"
)

// wrapAt is the number of integers the reference writer puts on a line
// before breaking, a soft-wrap convention with no parsing significance
// (Read tokenizes on any whitespace).
const wrapAt = 12

type lineWrapper struct {
	w     *bufio.Writer
	count int
}

func (lw *lineWrapper) writeInt(v int) {
	fmt.Fprintf(lw.w, "%d ", v)
	lw.count++
	if lw.count%wrapAt == 0 {
		fmt.Fprint(lw.w, "\n")
	}
}

func (lw *lineWrapper) endLine() {
	if lw.count%wrapAt != 0 {
		fmt.Fprint(lw.w, "\n")
	}
	lw.count = 0
}

// Write serializes inst in OR-Library format: this module's unicost model
// has no per-subset cost, so every subset is written with a cost of 1,
// matching the "unicost" variant of the format.
func Write(w io.Writer, inst *problem.Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", inst.PointsNumber, inst.SubsetsNumber)

	lw := &lineWrapper{w: bw}
	for i := 0; i < inst.SubsetsNumber; i++ {
		lw.writeInt(1)
	}
	lw.endLine()

	for p := 0; p < inst.PointsNumber; p++ {
		covering := make([]int, 0)
		for i := 0; i < inst.SubsetsNumber; i++ {
			if inst.SubsetsPoints[i].Test(p) {
				covering = append(covering, i+1)
			}
		}
		lw.writeInt(len(covering))
		for _, idx := range covering {
			lw.writeInt(idx)
		}
		lw.endLine()
	}

	return bw.Flush()
}

// WriteFile writes inst to path in OR-Library format. WriteFile refuses to
// clobber an existing file unless overwrite is set.
func WriteFile(path string, inst *problem.Instance, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errFileExists(path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, inst)
}
