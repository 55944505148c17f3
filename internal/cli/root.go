// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/honet/higherorder"
	"github.com/katalvlaran/honet/temporal"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigFile string

	cfg *Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the honet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{cfg: NewConfig()}

	cmd := &cobra.Command{
		Use:   "honet",
		Short: "honet - higher-order networks from temporal link streams",
		Long: `Build k-th order aggregate networks from time-stamped edge lists.

Vertices of an order-k network are (k-1)-grams of nodes; edges are weighted
by the k-paths inferred within a maximal time difference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.ConfigFile != "" {
				if err := opts.cfg.LoadFromFile(opts.ConfigFile); err != nil {
					return fmt.Errorf("loading config %s: %w", opts.ConfigFile, err)
				}
			}
			if opts.Verbose {
				opts.cfg.Set("logging.level", "debug")
			}
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (yaml|json|toml)")
	pf.IntP("order", "k", 2, "order of the aggregate network")
	pf.Int64P("delta", "d", 1, "maximal time difference between consecutive edges of a path")
	pf.String("separator", temporal.DefaultSeparator, "separator joining node names in k-gram vertices")
	pf.String("delimiter", "", "field delimiter of the edge list (default: any whitespace)")

	// Flags take precedence over the config file
	opts.cfg.mustBindFlag("network.order", pf.Lookup("order"))
	opts.cfg.mustBindFlag("network.delta", pf.Lookup("delta"))
	opts.cfg.mustBindFlag("input.separator", pf.Lookup("separator"))
	opts.cfg.mustBindFlag("input.delimiter", pf.Lookup("delimiter"))

	// Add subcommands
	cmd.AddCommand(NewPathsCommand(opts))
	cmd.AddCommand(NewGraphCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}

// logger builds the diagnostic logger; logs always go to stderr so that
// structured output on stdout stays parseable. Every logger owns its own
// SyncWriter, so goroutines writing to the same stderr must share one logger.
func (o *RootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	return o.cfg.CreateLogger(cmd.ErrOrStderr())
}

// loadStream reads the edge list at path; "-" reads stdin.
func (o *RootOptions) loadStream(cmd *cobra.Command, path string) (*temporal.Network, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	s, err := temporal.ReadEdgeList(r,
		temporal.WithDelimiter(o.cfg.Delimiter()),
		temporal.WithNetworkOptions(temporal.WithSeparator(o.cfg.Separator())),
	)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return s, nil
}

// newNetwork creates a facade over s with the configured order and delta,
// logging through log.
func (o *RootOptions) newNetwork(log zerolog.Logger, s temporal.Stream) (*higherorder.Network, error) {
	n, err := higherorder.New(s, o.cfg.Order(),
		higherorder.WithMaxTimeDiff(o.cfg.Delta()),
		higherorder.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("order", n.Order()).Int64("delta", n.MaxTimeDiff()).Msg("network configured")

	return n, nil
}
