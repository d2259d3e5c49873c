package main

import (
	"github.com/ToluPeazy/uscp/internal/config"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uscp-solve",
		Short: "Solve Unicost Set Cover Problem instances",
		Long: `uscp-solve loads one or more USCP instances and runs the requested
combination of greedy construction, RWLS improvement, and the memetic
driver against each, writing a JSON report per run.`,
		Example: `  uscp-solve --instance_path=./scp41.txt --instance_type=orlibrary --instance_name=scp41 --greedy --rwls --rwls_steps=100000 --output_prefix=./out/
  uscp-solve --instance_type=orlibrary_rail --instance_path=./rail_42.txt --instance_name=R42 --memetic --memetic_crossover=subproblem_rwls --memetic_wcrossover=max --memetic_time=6m`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}
