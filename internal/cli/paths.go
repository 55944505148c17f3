// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// NewPathsCommand creates the paths command.
func NewPathsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <edge-list>",
		Short: "List the time-respecting k-paths of a temporal network",
		Long: `Extract every k-path (paths of k links) whose consecutive links are at
most delta time units apart, together with its fractional weight.

Use "-" to read the edge list from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runPaths(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := opts.loadStream(cmd, path)
	if err != nil {
		return err
	}
	n, err := opts.newNetwork(opts.logger(cmd), s)
	if err != nil {
		return err
	}

	paths, err := n.KPaths()
	if err != nil {
		return err
	}

	report := newPathsReport(n.Order(), n.MaxTimeDiff(), s.Separator(), paths)
	return writeOutput(cmd.OutOrStdout(), opts.Format, report)
}
