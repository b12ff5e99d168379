// Package commands wires the knapsack CLI: configuration, logging, tracing
// and the solve/prompt subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/compare"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/report"
	"github.com/katalvlaran/knapsack/internal/telemetry"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "knapsack",
		Short: "Warehouse packing optimizer",
		Long: `knapsack - compare packing strategies for one warehouse.

Runs the exact 0/1 dynamic program, the fractional greedy relaxation and
Branch-and-Bound on the same items and prints their optimal values.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default $HOME/.knapsack.yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newSolveCmd(a), newPromptCmd(a))

	return root
}

// Execute runs the CLI and exits with status 1 on any error.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// load resolves the configuration and the logger before any subcommand runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	v, err := config.New(cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.LogLevel}))
	a.logger.Debug("config loaded", "limits", a.cfg.Limits, "bound", a.cfg.Bound.String(),
		"dp_memory", a.cfg.DPMemory.String(), "format", a.cfg.Format)

	return nil
}

// solve compares the strategies on p and prints the report.
func (a *app) solve(cmd *cobra.Command, p compare.Problem) error {
	ctx := cmd.Context()
	shutdown, err := telemetry.Init(ctx, telemetry.Options{
		Endpoint: a.cfg.OTLPEndpoint,
		Stdout:   a.cfg.Trace,
		Writer:   cmd.ErrOrStderr(),
		Version:  Version,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			a.logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	opts := compare.DefaultOptions()
	opts.Limits = a.cfg.Limits
	opts.DP.MemoryMode = a.cfg.DPMemory
	opts.BB.BoundAlgo = a.cfg.Bound
	opts.Logger = a.logger

	rep, err := compare.Run(ctx, p, opts)
	if err != nil {
		return err
	}
	if err := rep.Consistent(); err != nil {
		return err
	}
	a.logger.Info("compared", "items", rep.Items, "capacity", rep.Capacity,
		"dp", rep.Durations.DP, "fractional", rep.Durations.Fractional, "bnb", rep.Durations.BranchAndBound)

	return report.Write(cmd.OutOrStdout(), rep, report.Format(a.cfg.Format))
}
