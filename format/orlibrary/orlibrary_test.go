package orlibrary_test

import (
	"strings"
	"testing"

	"github.com/ToluPeazy/uscp/format/orlibrary"
	"github.com/stretchr/testify/require"
)

func TestReadParsesInstance(t *testing.T) {
	// 4 points, 3 subsets, unicost weights, then per-point covering lists:
	// point0 covered by subsets {1,2}, point1 by {2}, point2 by {1,3}, point3 by {3}.
	src := `4 3
1 1 1
2 1 2
1 2
2 1 3
1 3
`
	inst, err := orlibrary.Read(strings.NewReader(src), "test-instance")
	require.NoError(t, err)
	require.Equal(t, "test-instance", inst.Name)
	require.Equal(t, 4, inst.PointsNumber)
	require.Equal(t, 3, inst.SubsetsNumber)

	require.True(t, inst.SubsetsPoints[0].Test(0))
	require.True(t, inst.SubsetsPoints[1].Test(0))
	require.True(t, inst.SubsetsPoints[1].Test(1))
	require.True(t, inst.SubsetsPoints[0].Test(2))
	require.True(t, inst.SubsetsPoints[2].Test(2))
	require.True(t, inst.SubsetsPoints[2].Test(3))
	require.True(t, inst.HasSolution())
}

func TestReadRejectsNonPositivePointsNumber(t *testing.T) {
	_, err := orlibrary.Read(strings.NewReader("0 3\n"), "bad")
	require.Error(t, err)
}

func TestReadRejectsNonPositiveSubsetsNumber(t *testing.T) {
	_, err := orlibrary.Read(strings.NewReader("3 0\n"), "bad")
	require.Error(t, err)
}

func TestReadRejectsCoveringCountOutOfRange(t *testing.T) {
	src := `2 1
1
5
`
	_, err := orlibrary.Read(strings.NewReader(src), "bad")
	require.Error(t, err)
}

func TestReadRejectsSubsetIndexOutOfRange(t *testing.T) {
	src := `1 1
1
1
7
`
	_, err := orlibrary.Read(strings.NewReader(src), "bad")
	require.Error(t, err)
}

func TestReadRejectsTruncatedInput(t *testing.T) {
	_, err := orlibrary.Read(strings.NewReader("4"), "bad")
	require.Error(t, err)
}

func TestReadRailParsesSameGrammar(t *testing.T) {
	src := "4    3\n1 1 1\n2 1 2\n1 2\n2 1 3\n1 3\n"
	inst, err := orlibrary.ReadRail(strings.NewReader(src), "rail-instance")
	require.NoError(t, err)
	require.Equal(t, 4, inst.PointsNumber)
	require.Equal(t, 3, inst.SubsetsNumber)
}

func TestWriteReadRoundTrip(t *testing.T) {
	src := `4 3
1 1 1
2 1 2
1 2
2 1 3
1 3
`
	inst, err := orlibrary.Read(strings.NewReader(src), "roundtrip")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, orlibrary.Write(&buf, inst))

	reread, err := orlibrary.Read(strings.NewReader(buf.String()), "roundtrip")
	require.NoError(t, err)

	require.Equal(t, inst.PointsNumber, reread.PointsNumber)
	require.Equal(t, inst.SubsetsNumber, reread.SubsetsNumber)
	for i := range inst.SubsetsPoints {
		require.True(t, inst.SubsetsPoints[i].Equal(reread.SubsetsPoints[i]))
	}
}
