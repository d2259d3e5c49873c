package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/report"
	"go.uber.org/zap"
)

// checkProvenance warns when a loaded solution snapshot is missing the
// instance identity it was solved against, mirroring the reference
// printer's git-provenance checks on loaded report data: a report that
// cannot be traced back to its instance is still printable, just
// suspect.
func checkProvenance(sol report.Solution) {
	if sol.Instance == "" {
		xlog.Get().Warn("report solution is missing instance provenance")
	}
}

func printGreedy(w io.Writer, r io.Reader) error {
	var rep report.GreedyReport
	if err := report.Decode(r, &rep); err != nil {
		return err
	}
	checkProvenance(rep.SolutionFinal)

	tw := newTabwriter(w)
	defer tw.Flush()
	printField(tw, "instance", rep.SolutionFinal.Instance)
	printField(tw, "selected_subsets", len(rep.SolutionFinal.SelectedSubsets))
	printField(tw, "cover_all_points", rep.SolutionFinal.CoverAllPoints)
	printField(tw, "time", rep.Time)
	return nil
}

func printRWLS(w io.Writer, r io.Reader) error {
	var rep report.RWLSReport
	if err := report.Decode(r, &rep); err != nil {
		return err
	}
	checkProvenance(rep.SolutionFinal)

	tw := newTabwriter(w)
	defer tw.Flush()
	printField(tw, "instance", rep.SolutionFinal.Instance)
	printField(tw, "initial_subsets", len(rep.SolutionInitial.SelectedSubsets))
	printField(tw, "final_subsets", len(rep.SolutionFinal.SelectedSubsets))
	printField(tw, "cover_all_points", rep.SolutionFinal.CoverAllPoints)
	printField(tw, "steps", rep.Steps)
	printField(tw, "time", rep.Time)
	printField(tw, "found_at_step", rep.FoundAt.Step)
	printField(tw, "found_at_time", rep.FoundAt.Time)
	return nil
}

func printMemetic(w io.Writer, r io.Reader) error {
	var rep report.MemeticReport
	if err := report.Decode(r, &rep); err != nil {
		return err
	}
	checkProvenance(rep.SolutionFinal)

	tw := newTabwriter(w)
	defer tw.Flush()
	printField(tw, "instance", rep.SolutionFinal.Instance)
	printField(tw, "final_subsets", len(rep.SolutionFinal.SelectedSubsets))
	printField(tw, "cover_all_points", rep.SolutionFinal.CoverAllPoints)
	printField(tw, "generations", rep.Generations)
	printField(tw, "crossover_operator", rep.CrossoverOperator)
	printField(tw, "weight_crossover_operator", rep.WeightCrossoverOperator)
	printField(tw, "found_at_generation", rep.FoundAt.Generation)
	printField(tw, "found_at_rwls_steps", rep.FoundAt.RWLSCumulativePosition.Step)
	printField(tw, "found_at_time", rep.FoundAt.Time)
	return nil
}

func newTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printField(tw *tabwriter.Writer, name string, value interface{}) {
	if _, err := fmt.Fprintf(tw, "%s\t%v\n", name, value); err != nil {
		xlog.Get().Error("uscp-print: write failed", zap.Error(err))
	}
}
