package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var reportType string

	cmd := &cobra.Command{
		Use:   "uscp-print <report.json>",
		Short: "Print a human-readable summary of a uscp-solve JSON report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			switch reportType {
			case "greedy":
				return printGreedy(cmd.OutOrStdout(), f)
			case "rwls":
				return printRWLS(cmd.OutOrStdout(), f)
			case "memetic":
				return printMemetic(cmd.OutOrStdout(), f)
			default:
				return fmt.Errorf("uscp-print: unknown --type %q, want greedy, rwls, or memetic", reportType)
			}
		},
	}

	cmd.Flags().StringVar(&reportType, "type", "", "report kind: greedy, rwls, or memetic")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
