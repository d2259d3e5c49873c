package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/report"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func encodeToReader(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, v))
	return bytes.NewReader(buf.Bytes())
}

func TestPrintGreedyRendersFields(t *testing.T) {
	src := report.GreedyReport{
		SolutionFinal: report.Solution{Instance: "i", SelectedSubsets: []int{0, 2}, CoverAllPoints: true},
	}
	var out bytes.Buffer
	require.NoError(t, printGreedy(&out, encodeToReader(t, src)))
	require.Contains(t, out.String(), "instance")
	require.Contains(t, out.String(), "i")
	require.Contains(t, out.String(), "selected_subsets")
}

func TestPrintRWLSRendersFields(t *testing.T) {
	src := report.RWLSReport{
		SolutionInitial: report.Solution{Instance: "i", SelectedSubsets: []int{0, 1, 2}},
		SolutionFinal:   report.Solution{Instance: "i", SelectedSubsets: []int{0}, CoverAllPoints: true},
		Steps:           10,
	}
	var out bytes.Buffer
	require.NoError(t, printRWLS(&out, encodeToReader(t, src)))
	require.Contains(t, out.String(), "steps")
	require.Contains(t, out.String(), "10")
}

func TestPrintMemeticRendersFields(t *testing.T) {
	src := report.MemeticReport{
		SolutionFinal:     report.Solution{Instance: "i", SelectedSubsets: []int{0}, CoverAllPoints: true},
		CrossoverOperator: "identity",
		Generations:       5,
	}
	var out bytes.Buffer
	require.NoError(t, printMemetic(&out, encodeToReader(t, src)))
	require.Contains(t, out.String(), "identity")
	require.Contains(t, out.String(), "generations")
}

func TestPrintWarnsOnMissingInstanceProvenance(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	xlog.Init(zap.New(core))

	src := report.GreedyReport{SolutionFinal: report.Solution{SelectedSubsets: []int{0}}}
	var out bytes.Buffer
	require.NoError(t, printGreedy(&out, encodeToReader(t, src)))
	require.True(t, strings.Contains(out.String(), "instance"))
	require.Equal(t, 1, logs.FilterMessage("report solution is missing instance provenance").Len())
}
