package sts

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/problem"
)

// tripleSize is the fixed covering-count per point in a Steiner triple
// system: every point lies on exactly three triples (subsets).
const tripleSize = 3

type tokenReader struct {
	scanner *bufio.Scanner
	what    string
}

func newTokenReader(r io.Reader, what string) *tokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s, what: what}
}

func (t *tokenReader) nextInt() (int, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, errUnexpectedEOF(t.what)
	}
	return strconv.Atoi(t.scanner.Text())
}

// Read parses a Steiner triple system instance: subsets-number,
// points-number, then per point exactly three 1-based covering subset
// indices.
func Read(r io.Reader, name string) (*problem.Instance, error) {
	tr := newTokenReader(r, "sts instance")

	subsetsNumber, err := tr.nextInt()
	if err != nil {
		return nil, err
	}
	if subsetsNumber <= 0 {
		return nil, errInvalidCount("subsets number", subsetsNumber)
	}

	pointsNumber, err := tr.nextInt()
	if err != nil {
		return nil, err
	}
	if pointsNumber <= 0 {
		return nil, errInvalidCount("points number", pointsNumber)
	}

	subsetsPoints := make([]*bitset.Bitset, subsetsNumber)
	for i := range subsetsPoints {
		subsetsPoints[i] = bitset.New(pointsNumber)
	}

	for p := 0; p < pointsNumber; p++ {
		for c := 0; c < tripleSize; c++ {
			oneBased, err := tr.nextInt()
			if err != nil {
				return nil, err
			}
			if oneBased < 1 || oneBased > subsetsNumber {
				return nil, errSubsetIndexOutOfRange(oneBased, subsetsNumber)
			}
			subsetsPoints[oneBased-1].Set(p)
		}
	}

	return problem.NewInstance(name, pointsNumber, subsetsPoints)
}

// ReadFile opens path and parses it as a Steiner triple system instance,
// naming the resulting Instance after the file's base name with its
// extension stripped.
func ReadFile(path string) (*problem.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return Read(f, name)
}
