// Package pipeline solves a circuit: it builds both transistor networks,
// enumerates their Euler paths, and intersects the label sequences.
//
// The CLI and the HTTP server both go through [Runner], so caching and
// logging behave the same everywhere.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Solve(ctx, c, pipeline.Options{MaxPaths: 10000})
//	if err != nil {
//	    return err
//	}
//	for _, o := range result.Orderings {
//	    fmt.Println(o.Sequence)
//	}
//
// A single network can be enumerated on its own with [Runner.Enumerate].
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyorder/pkg/cache"
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/match"
)

const (
	// DefaultMaxPaths caps the paths kept per network. Highly parallel
	// networks have factorially many Euler paths.
	DefaultMaxPaths = 100_000

	// DefaultTimeout bounds one solve when the caller sets no deadline.
	DefaultTimeout = 30 * time.Second
)

// Options configures a solve.
type Options struct {
	// MaxPaths caps the paths per network. Zero selects DefaultMaxPaths;
	// a negative value removes the cap.
	MaxPaths int `json:"max_paths,omitempty"`

	// Timeout bounds the solve. Zero selects DefaultTimeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Refresh skips cache reads but still writes fresh results.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives this solve's log lines. Nil selects the Runner's
	// logger.
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults fills unset options. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must not be negative")
	}
	if o.MaxPaths == 0 {
		o.MaxPaths = DefaultMaxPaths
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	o.validated = true
	return nil
}

// limit is the Enumerator path limit: zero for unlimited.
func (o *Options) limit() int {
	if o.MaxPaths < 0 {
		return 0
	}
	return o.MaxPaths
}

// KeyOpts returns the options that distinguish cached results.
func (o *Options) KeyOpts() cache.PathsKeyOpts {
	return cache.PathsKeyOpts{MaxPaths: o.limit()}
}

// Result is a solved circuit.
type Result struct {
	Circuit     *circuit.Circuit `json:"circuit"`
	CircuitHash string           `json:"circuit_hash"`

	PullUp   *euler.Collection `json:"pull_up"`
	PullDown *euler.Collection `json:"pull_down"`

	// Orderings are the gate orders valid for both networks.
	Orderings []match.Ordering `json:"orderings"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"-"`
}

// Sequences returns the gate order of every ordering.
func (r *Result) Sequences() []euler.Sequence {
	seqs := make([]euler.Sequence, len(r.Orderings))
	for i, o := range r.Orderings {
		seqs[i] = o.Sequence
	}
	return seqs
}

// Collection returns the paths of network n.
func (r *Result) Collection(n circuit.Network) *euler.Collection {
	if n == circuit.PullUp {
		return r.PullUp
	}
	return r.PullDown
}

// Stats records the size and duration of a solve.
type Stats struct {
	PullUpPaths   int           `json:"pull_up_paths"`
	PullDownPaths int           `json:"pull_down_paths"`
	Orderings     int           `json:"orderings"`
	EnumerateTime time.Duration `json:"enumerate_time"`
	MatchTime     time.Duration `json:"match_time"`
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	ResultHit   bool
	PullUpHit   bool
	PullDownHit bool
}
