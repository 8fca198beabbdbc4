package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/nanobench/internal/bench/cycles"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and cycle counter details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nanobench %s (%s/%s, counter %s, overhead %dns)\n",
				version, runtime.GOOS, runtime.GOARCH, cycles.Name(), cycles.Overhead(1000))
			return err
		},
	}
}
