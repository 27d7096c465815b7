package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyorder/pkg/errors"
	pkgio "github.com/matzehuels/polyorder/pkg/io"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	solveFlags
	output string // JSON report path
	format string // stdout format: text or json
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "solve [circuit]",
		Short: "Find gate orderings shared by the pull-up and pull-down networks",
		Long: `Find gate orderings shared by the pull-up and pull-down networks.

The circuit is a TOML or JSON file or the name of a builtin circuit. Every
Euler path of each network is enumerated and the gate sequences common to
both are reported, each with one witness path per network.

Results are cached locally for faster subsequent runs.`,
		Example: `  polyorder solve simple
  polyorder solve cell.toml -o cell.json
  polyorder solve cell.toml --format json --max-paths 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, formatText, formatJSON); err != nil {
				return err
			}
			return c.runSolve(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write a JSON report to this file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "stdout format: text, json")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, arg string, opts *solveOpts) error {
	res, err := c.solve(cmd, arg, &opts.solveFlags)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := pkgio.ExportJSON(res, opts.output); err != nil {
			return err
		}
	}

	if opts.format == formatJSON {
		return pkgio.WriteJSON(res, os.Stdout)
	}
	printSolveResult(res)
	if opts.output != "" {
		printFile(opts.output)
	}
	if len(res.Orderings) > 0 {
		printNextStep("Draw an ordering", fmt.Sprintf("polyorder render %s --ordering 0", arg))
	}
	return nil
}

func printSolveResult(res *pipeline.Result) {
	switch n := len(res.Orderings); n {
	case 0:
		printWarning("%s: no gate ordering is shared by both networks", res.Circuit.Name)
	case 1:
		printSuccess("%s: 1 shared gate ordering", res.Circuit.Name)
	default:
		printSuccess("%s: %d shared gate orderings", res.Circuit.Name, n)
	}
	if res.Circuit.Expression != "" {
		printDetail("Z = %s", res.Circuit.Expression)
	}
	printNetworkStats("pull-up", res.PullUp, res.CacheInfo.ResultHit || res.CacheInfo.PullUpHit)
	printNetworkStats("pull-down", res.PullDown, res.CacheInfo.ResultHit || res.CacheInfo.PullDownHit)

	if res.PullUp.Truncated || res.PullDown.Truncated {
		printWarning("path limit reached; orderings may be incomplete (raise --max-paths)")
	}
	if len(res.Orderings) > 0 {
		fmt.Println(orderingTable(res.Orderings).Render())
	}
}
