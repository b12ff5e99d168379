package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/internal/problem"
)

func newSolveCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an instance read from a YAML file",
		Example: `  knapsack solve -f warehouse.yaml
  knapsack solve -f - -o json < warehouse.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := problem.LoadFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			return a.solve(cmd, p)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Problem file, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
