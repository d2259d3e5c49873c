package wcrossover_test

import (
	"math/rand"
	"testing"

	"github.com/ToluPeazy/uscp/wcrossover"
	"github.com/stretchr/testify/require"
)

func TestUnknownOperator(t *testing.T) {
	reg := wcrossover.NewRegistry()
	_, err := reg.Get("does_not_exist")
	require.Error(t, err)
}

func TestNamesNonEmpty(t *testing.T) {
	require.NotEmpty(t, wcrossover.Names())
}

func TestReset(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("reset")
	require.NoError(t, err)

	a := []int64{5, 6, 7}
	b := []int64{1, 2, 3}
	out := op.Apply1(a, b, nil)
	require.Equal(t, []int64{1, 1, 1}, out)
	require.Equal(t, out, op.Apply2(a, b, nil))
}

func TestKeepIsAsymmetric(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("keep")
	require.NoError(t, err)

	a := []int64{1, 2, 3}
	b := []int64{4, 5, 6}
	require.Equal(t, a, op.Apply1(a, b, nil))
	require.Equal(t, b, op.Apply2(a, b, nil))
}

func TestAverage(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("average")
	require.NoError(t, err)

	a := []int64{4, 5, 10}
	b := []int64{2, 7, 11}
	require.Equal(t, []int64{3, 6, 10}, op.Apply1(a, b, nil))
}

func TestMixRandomPicksFromEitherParent(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("mix_random")
	require.NoError(t, err)

	a := []int64{1, 1, 1, 1}
	b := []int64{2, 2, 2, 2}
	out := op.Apply1(a, b, rand.New(rand.NewSource(1)))
	for _, v := range out {
		require.True(t, v == 1 || v == 2)
	}
}

func TestAdd(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("add")
	require.NoError(t, err)

	require.Equal(t, []int64{4, 6}, op.Apply1([]int64{1, 2}, []int64{3, 4}, nil))
}

func TestDifferenceIsAbsolute(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("difference")
	require.NoError(t, err)

	require.Equal(t, []int64{2, 2}, op.Apply1([]int64{1, 5}, []int64{3, 3}, nil))
}

func TestMaxMin(t *testing.T) {
	reg := wcrossover.NewRegistry()
	maxOp, err := reg.Get("max")
	require.NoError(t, err)
	minOp, err := reg.Get("min")
	require.NoError(t, err)

	a := []int64{1, 9}
	b := []int64{4, 2}
	require.Equal(t, []int64{4, 9}, maxOp.Apply1(a, b, nil))
	require.Equal(t, []int64{1, 2}, minOp.Apply1(a, b, nil))
}

func TestMinmaxApply1MaxApply2Min(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("minmax")
	require.NoError(t, err)

	a := []int64{1, 9}
	b := []int64{4, 2}
	require.Equal(t, []int64{4, 9}, op.Apply1(a, b, nil))
	require.Equal(t, []int64{1, 2}, op.Apply2(a, b, nil))
}

func TestShufflePreservesMultiset(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("shuffle")
	require.NoError(t, err)

	a := []int64{1, 2, 3, 4, 5}
	b := []int64{6, 7, 8, 9, 10}
	out1 := op.Apply1(a, b, rand.New(rand.NewSource(1)))
	out2 := op.Apply2(a, b, rand.New(rand.NewSource(1)))

	require.ElementsMatch(t, a, out1)
	require.ElementsMatch(t, b, out2)
}

func TestMismatchedLengthsPanic(t *testing.T) {
	reg := wcrossover.NewRegistry()
	op, err := reg.Get("add")
	require.NoError(t, err)

	require.Panics(t, func() {
		op.Apply1([]int64{1, 2}, []int64{1}, nil)
	})
}
