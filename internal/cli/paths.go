package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyorder/pkg/circuit"
)

// pathsCommand creates the paths command, which lists the Euler paths of a
// single network.
func (c *CLI) pathsCommand() *cobra.Command {
	var (
		flags   solveFlags
		network string
		labels  bool
	)

	cmd := &cobra.Command{
		Use:   "paths [circuit]",
		Short: "List every Euler path of one network",
		Example: `  polyorder paths simple --network pull-down
  polyorder paths cell.toml -n up --labels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := circuit.ParseNetwork(network)
			if err != nil {
				return err
			}
			return c.runPaths(cmd, args[0], n, &flags, labels)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&network, "network", "n", string(circuit.PullUp), "network: pull-up, pull-down")
	cmd.Flags().BoolVar(&labels, "labels", false, "print gate sequences only")

	return cmd
}

func (c *CLI) runPaths(cmd *cobra.Command, arg string, n circuit.Network, flags *solveFlags, labels bool) error {
	circ, err := circuit.Resolve(arg)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	opts := flags.options(c.Logger)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()

	col, cached, err := runner.EnumerateWithCacheInfo(ctx, n, circ.Graph(n), opts)
	if err != nil {
		return err
	}

	printNetworkStats(string(n), col, cached)
	if !col.Exists {
		printDetail("odd nets: %v", col.OddVertices)
		return nil
	}
	printPaths(os.Stdout, col.Paths, labels)
	if col.Truncated {
		printWarning("path limit reached (raise --max-paths)")
	}
	return nil
}
