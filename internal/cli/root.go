// Package cli wires the nanobench commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "nanobench",
		Short:   "Cycle-accurate micro-benchmarking harness",
		Version: version,
		Long: `nanobench times a small code snippet many times in a tight loop with a
serialized hardware cycle counter, trims outliers from both ends of the
sorted sample and reports quantiles, mean, variance, an approximate mode and
confidence intervals.

For stable numbers run it on a core isolated at boot (isolcpus=<n>) and pin
the sampling thread with --cpu <n>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newSnippetsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with os.Args and reports any error on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
