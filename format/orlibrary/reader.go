package orlibrary

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

// tokenReader tokenizes an io.Reader on whitespace, the shape every
// OR-Library instance file (and its unicost/steiner-triple-system
// siblings) is written in.
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

// Read parses an OR-Library USCP instance: points-number, subsets-number,
// subsets-number ignored unicost weights, then per point a covering-count
// followed by that many 1-based covering subset indices.
func Read(r io.Reader, name string) (*problem.Instance, error) {
	tr := newTokenReader(r, "orlibrary instance")

	pointsNumber, err := tr.nextInt()
	if err != nil {
		return nil, err
	}
	if pointsNumber <= 0 {
		return nil, errInvalidCount("points number", pointsNumber)
	}

	subsetsNumber, err := tr.nextInt()
	if err != nil {
		return nil, err
	}
	if subsetsNumber <= 0 {
		return nil, errInvalidCount("subsets number", subsetsNumber)
	}

	for i := 0; i < subsetsNumber; i++ {
		if _, err := tr.nextInt(); err != nil {
			return nil, err
		}
	}

	subsetsPoints := make([]*bitset.Bitset, subsetsNumber)
	for i := range subsetsPoints {
		subsetsPoints[i] = bitset.New(pointsNumber)
	}

	for p := 0; p < pointsNumber; p++ {
		coveringCount, err := tr.nextInt()
		if err != nil {
			return nil, err
		}
		if coveringCount < 0 || coveringCount > subsetsNumber {
			return nil, errInvalidCoveringCount(p, coveringCount, subsetsNumber)
		}
		for c := 0; c < coveringCount; c++ {
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

// ReadRail parses the OR-Library rail instance variant. The rail files
// share orlibrary's exact grammar but are laid out with looser,
// non-uniform whitespace/newlines; since Read already tokenizes on any
// run of whitespace, ReadRail is Read under a name that documents the
// instance family at call sites.
func ReadRail(r io.Reader, name string) (*problem.Instance, error) {
	return Read(r, name)
}

// ReadFile opens path and parses it as an OR-Library instance, naming the
// resulting Instance after the file's base name with its extension
// stripped.
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
