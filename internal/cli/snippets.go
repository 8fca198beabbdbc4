package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/nanobench/internal/bench/snippets"
)

func newSnippetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snippets",
		Short: "List the snippets that can be benchmarked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range snippets.List() {
				if _, err := fmt.Fprintf(out, "%-14s %s\n", s.Name, s.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
