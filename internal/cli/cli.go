package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyorder/pkg/buildinfo"
	"github.com/matzehuels/polyorder/pkg/cache"
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/observability"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "polyorder"

// Environment variables read by serve.
const (
	envRedisURL = "POLYORDER_REDIS_URL"
	envMongoURI = "POLYORDER_MONGO_URI"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the pipeline and
// cache hooks log through the CLI logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "polyorder finds gate orderings shared by CMOS pull-up and pull-down networks",
		Long: `polyorder enumerates every Euler path through the pull-up and pull-down
transistor networks of a CMOS cell and reports the gate sequences both
networks can be traversed in. Each such sequence is a polysilicon gate order
that lets both diffusion rows run without breaks.

Circuits are TOML or JSON files, or the name of a builtin circuit
(` + "`polyorder solve simple`" + `).`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Options Helpers
// =============================================================================

// solveFlags are the flags shared by every command that solves a circuit.
type solveFlags struct {
	maxPaths int
	timeout  time.Duration
	noCache  bool
	refresh  bool
}

// register adds the flags to cmd and completes its circuit argument.
func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.ValidArgsFunction = completeCircuit
	cmd.Flags().IntVar(&f.maxPaths, "max-paths", pipeline.DefaultMaxPaths, "maximum paths per network (-1 for no limit)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", pipeline.DefaultTimeout, "abort the search after this long")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute and overwrite cached results")
}

func (f *solveFlags) options(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		MaxPaths: f.maxPaths,
		Timeout:  f.timeout,
		Refresh:  f.refresh,
		Logger:   logger,
	}
}

// solve loads the circuit named by arg and solves it.
func (c *CLI) solve(cmd *cobra.Command, arg string, f *solveFlags) (*pipeline.Result, error) {
	circ, err := circuit.Resolve(arg)
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Cache.Close()

	c.Logger.Debugf("Solving %s (%d pull-up, %d pull-down transistors)",
		circ.Name, len(circ.PullUp), len(circ.PullDown))
	spinner := newSpinnerWithContext(cmd.Context(), "Enumerating Euler paths for "+circ.Name)
	spinner.Start()
	res, err := runner.Solve(cmd.Context(), circ, f.options(c.Logger))
	spinner.Stop()
	return res, err
}
