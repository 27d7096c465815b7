package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/polyorder/pkg/cache"
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/match"
	"github.com/matzehuels/polyorder/pkg/multigraph"
	"github.com/matzehuels/polyorder/pkg/observability"
)

// Runner solves circuits with caching. It holds no per-solve state and is
// safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a Runner. A nil cache disables caching, a nil keyer
// selects the DefaultKeyer and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Solve enumerates both networks of c concurrently and matches their
// label sequences.
//
// A network without Euler paths is not an error: its collection has
// Exists false and the result has no orderings.
func (r *Runner) Solve(ctx context.Context, c *circuit.Circuit, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	hash, err := CircuitHash(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash circuit")
	}
	key := r.Keyer.ResultKey(hash, opts.KeyOpts())
	logger := r.logger(opts)

	if !opts.Refresh {
		if res, ok := r.cachedResult(ctx, logger, key); ok {
			res.Circuit = c
			res.CacheInfo.ResultHit = true
			logger.Info("solved from cache", "circuit", c.Name, "orderings", len(res.Orderings))
			return res, nil
		}
	}

	res := &Result{Circuit: c, CircuitHash: hash}
	up, down := c.Graphs()

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		col, hit, err := r.EnumerateWithCacheInfo(gctx, circuit.PullUp, up, opts)
		res.PullUp, res.CacheInfo.PullUpHit = col, hit
		return err
	})
	g.Go(func() error {
		col, hit, err := r.EnumerateWithCacheInfo(gctx, circuit.PullDown, down, opts)
		res.PullDown, res.CacheInfo.PullDownHit = col, hit
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Stats.EnumerateTime = time.Since(start)
	res.Stats.PullUpPaths = res.PullUp.Len()
	res.Stats.PullDownPaths = res.PullDown.Len()

	start = time.Now()
	res.Orderings = match.Orderings(res.PullUp, res.PullDown)
	res.Stats.MatchTime = time.Since(start)
	res.Stats.Orderings = len(res.Orderings)
	observability.Pipeline().OnMatchComplete(ctx, len(res.Orderings), res.Stats.MatchTime)

	logger.Info("solved circuit",
		"circuit", c.Name,
		"pull_up_paths", res.Stats.PullUpPaths,
		"pull_down_paths", res.Stats.PullDownPaths,
		"orderings", res.Stats.Orderings,
		"duration", res.Stats.EnumerateTime+res.Stats.MatchTime)

	if res.PullUp.Truncated || res.PullDown.Truncated {
		logger.Warn("path limit reached, orderings may be incomplete", "max_paths", opts.limit())
	}
	r.store(ctx, logger, "result", key, res, cache.TTLResult)
	return res, nil
}

// EnumerateWithCacheInfo returns the Euler paths of one network and
// whether they came from the cache.
func (r *Runner) EnumerateWithCacheInfo(ctx context.Context, n circuit.Network, g *multigraph.Graph, opts Options) (*euler.Collection, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	hash, err := GraphHash(g)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash %s network", n)
	}
	key := r.Keyer.PathsKey(hash, opts.KeyOpts())
	logger := r.logger(opts)

	if !opts.Refresh {
		var col euler.Collection
		if r.load(ctx, logger, "paths", key, &col) {
			return &col, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnEnumerateStart(ctx, string(n), g.EdgeCount())
	start := time.Now()

	e := euler.Enumerator{
		Logger:   logger.With("network", n),
		MaxPaths: opts.limit(),
	}
	col, err := e.Enumerate(ctx, g)
	if err != nil {
		hooks.OnEnumerateComplete(ctx, string(n), 0, time.Since(start), err)
		return nil, false, errors.Wrap(errors.GetCode(err), err, "%s network", n)
	}
	hooks.OnEnumerateComplete(ctx, string(n), col.Len(), time.Since(start), nil)

	r.store(ctx, logger, "paths", key, col, cache.TTLPaths)
	return col, false, nil
}

// Enumerate returns the Euler paths of one network.
func (r *Runner) Enumerate(ctx context.Context, n circuit.Network, g *multigraph.Graph, opts Options) (*euler.Collection, error) {
	col, _, err := r.EnumerateWithCacheInfo(ctx, n, g, opts)
	return col, err
}

// logger prefers the per-solve logger over the Runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func (r *Runner) cachedResult(ctx context.Context, logger *log.Logger, key string) (*Result, bool) {
	var res Result
	if !r.load(ctx, logger, "result", key, &res) {
		return nil, false
	}
	return &res, true
}

// load decodes a cache entry into v. Backend and decode errors count as
// misses.
func (r *Runner) load(ctx context.Context, logger *log.Logger, keyType, key string, v any) bool {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit || json.Unmarshal(data, v) != nil {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, keyType, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("cache encode failed", "type", keyType, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// GraphHash identifies a network by its edges in insertion order.
func GraphHash(g *multigraph.Graph) (string, error) {
	return cache.HashJSON(g.Edges())
}

// CircuitHash identifies a circuit by its two networks. Name and
// expression do not affect the hash.
func CircuitHash(c *circuit.Circuit) (string, error) {
	return cache.HashJSON([2][]circuit.Transistor{c.PullUp, c.PullDown})
}
