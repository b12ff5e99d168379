package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/internal/problem"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Enter the items interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := problem.Prompt(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Limits)
			if err != nil {
				return err
			}

			return a.solve(cmd, p)
		},
	}
}
