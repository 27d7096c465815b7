package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyorder/pkg/api"
	"github.com/matzehuels/polyorder/pkg/cache"
	"github.com/matzehuels/polyorder/pkg/observability"
	"github.com/matzehuels/polyorder/pkg/pipeline"
	"github.com/matzehuels/polyorder/pkg/store"
)

const (
	defaultAddr       = ":8080"
	redisKeyPrefix    = "polyorder:v1:"
	shutdownTimeout   = 10 * time.Second
	cleanupInterval   = time.Hour
	readHeaderTimeout = 10 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	ttl      time.Duration
	maxPaths int
	timeout  time.Duration
	noCache  bool
	dataDir  string
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Solved circuits are cached in Redis when ` + envRedisURL + ` is set and in the
local file cache otherwise. Solve records are kept in MongoDB when
` + envMongoURI + ` is set, in --data-dir when given, and in memory
otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", store.DefaultTTL, "how long solve records are kept")
	cmd.Flags().IntVar(&opts.maxPaths, "max-paths", pipeline.DefaultMaxPaths, "maximum paths per network")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", pipeline.DefaultTimeout, "per-request solve timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "keep solve records as files in this directory")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	observability.NewLogHooks(c.Logger).Register()

	cch, keyer, err := c.serveCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer cch.Close()

	st, err := c.serveStore(ctx, opts.dataDir)
	if err != nil {
		return err
	}
	defer st.Close(context.WithoutCancel(ctx))

	srv := api.New(pipeline.NewRunner(cch, keyer, c.Logger), st, c.Logger)
	srv.TTL = opts.ttl
	srv.Options = pipeline.Options{MaxPaths: opts.maxPaths, Timeout: opts.timeout}

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go c.cleanupLoop(ctx, st)

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serveCache picks Redis when configured and the file cache otherwise.
func (c *CLI) serveCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	url := os.Getenv(envRedisURL)
	if noCache || url == "" {
		cch, err := newCache(noCache)
		return cch, nil, err
	}
	rc, err := cache.NewRedisCache(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Info("using redis cache", "prefix", redisKeyPrefix)
	return rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix), nil
}

// serveStore picks MongoDB when configured, then a data directory, then
// memory.
func (c *CLI) serveStore(ctx context.Context, dataDir string) (store.Store, error) {
	uri := os.Getenv(envMongoURI)
	switch {
	case uri == "" && dataDir != "":
		c.Logger.Info("using file store", "dir", dataDir)
		return store.NewFileStore(dataDir)
	case uri == "":
		c.Logger.Warn("no " + envMongoURI + " set, solve records are kept in memory")
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewMongoStore(ctx, store.MongoConfig{URI: uri})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("using mongodb store", "database", store.DefaultDatabase)
	return st, nil
}

// cleanupLoop removes expired records until ctx is done.
func (c *CLI) cleanupLoop(ctx context.Context, st store.Store) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := st.Cleanup(ctx); err != nil {
				c.Logger.Warn("cleanup failed", "error", err)
			}
		}
	}
}
