// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// GraphOptions holds flags for the graph command.
type GraphOptions struct {
	Null   bool
	Matrix bool
}

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GraphOptions{}

	cmd := &cobra.Command{
		Use:   "graph <edge-list>",
		Short: "Build the k-th order aggregate network",
		Long: `Build the k-th order aggregate network of a temporal network.

With --null the null model is built instead: delta spans the whole
observation period, so every causally possible path is counted.
With --matrix the network is printed as its weighted adjacency matrix,
rows and columns in sorted vertex order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Null, "null", false, "build the null model")
	cmd.Flags().BoolVar(&opts.Matrix, "matrix", false, "print the weighted adjacency matrix instead of the edge list")

	return cmd
}

func runGraph(rootOpts *RootOptions, opts *GraphOptions, path string, cmd *cobra.Command) error {
	s, err := rootOpts.loadStream(cmd, path)
	if err != nil {
		return err
	}
	n, err := rootOpts.newNetwork(rootOpts.logger(cmd), s)
	if err != nil {
		return err
	}

	model, delta := "bounded", n.MaxTimeDiff()
	build := n.Graph
	if opts.Null {
		model, delta = "null", n.NullMaxTimeDiff()
		build = n.NullGraph
	}
	g, err := build()
	if err != nil {
		return err
	}

	if opts.Matrix {
		report, err := newMatrixReport(model, n.Order(), delta, g)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), rootOpts.Format, report)
	}

	return writeOutput(cmd.OutOrStdout(), rootOpts.Format, newGraphReport(model, n.Order(), delta, g))
}
