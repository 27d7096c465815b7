package euler

import (
	"context"
	"errors"
	"slices"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/multigraph"
)

// errPathLimit stops the search once MaxPaths paths have been recorded.
var errPathLimit = errors.New("path limit reached")

// Enumerator finds all Euler paths of a multigraph.
//
// The zero value is ready to use: it logs to log.Default() and has no
// path limit. An Enumerator holds no per-run state and may be shared.
type Enumerator struct {
	// Logger receives the no-Euler-path notice and debug statistics.
	Logger *log.Logger

	// MaxPaths stops the search after this many paths. Zero means no limit.
	MaxPaths int
}

// FindEulerPaths enumerates every Euler path of g with a default Enumerator.
func FindEulerPaths(g *multigraph.Graph) (*Collection, error) {
	var e Enumerator
	return e.Enumerate(context.Background(), g)
}

// Enumerate returns every Euler path of g, from every admissible start.
//
// If g has an odd-degree vertex count other than 0 or 2 no Euler path exists:
// Enumerate logs a warning and returns an empty collection with Exists false
// and a nil error. It returns an INCONSISTENT_GRAPH error if g violates the
// symmetric-incidence invariant or the walk state becomes contradictory, and
// a TIMEOUT error wrapping ctx.Err() if ctx ends before the search does.
func (e *Enumerator) Enumerate(ctx context.Context, g *multigraph.Graph) (*Collection, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	logger := e.logger()

	odd := g.OddVertices()
	c := &Collection{
		OddVertices: odd,
		EdgeCount:   g.EdgeCount(),
	}
	if len(odd) != 0 && len(odd) != 2 {
		logger.Warn("no Euler path exists", "odd_vertices", len(odd), "vertices", odd)
		return c, nil
	}
	c.Exists = true

	c.Starts = odd
	if len(odd) == 0 {
		c.Starts = g.Vertices()
	}

	w := &walker{
		ctx:   ctx,
		g:     g,
		used:  multigraph.NewEdgeSet(g.EdgeCount()),
		steps: make([]Step, 0, g.EdgeCount()),
		out:   c,
		limit: e.MaxPaths,
	}
	for _, start := range c.Starts {
		w.start = start
		if err := w.extend(start); err != nil {
			if errors.Is(err, errPathLimit) {
				c.Truncated = true
				logger.Warn("path limit reached", "max_paths", e.MaxPaths)
				break
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, perrors.Wrap(perrors.ErrCodeTimeout, ctxErr,
					"enumeration stopped after %d paths", len(c.Paths))
			}
			return nil, err
		}
	}

	logger.Debug("enumerated Euler paths",
		"edges", g.EdgeCount(),
		"starts", len(c.Starts),
		"paths", len(c.Paths))
	return c, nil
}

func (e *Enumerator) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

// walker is the mutable state of one enumeration. Sibling branches are
// isolated by undoing every step on return, so a single used set and step
// stack serve the whole search.
type walker struct {
	ctx   context.Context
	g     *multigraph.Graph
	used  multigraph.EdgeSet
	start string
	steps []Step
	out   *Collection
	limit int
}

func (w *walker) extend(at string) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	if len(w.steps) == w.g.EdgeCount() {
		return w.record()
	}

	for _, inc := range w.candidates(at) {
		if !w.used.Add(inc.Edge) {
			return perrors.New(perrors.ErrCodeInconsistentGraph,
				"edge %d (%s) consumed twice on one path", inc.Edge, inc.Label)
		}
		w.steps = append(w.steps, Step{Vertex: inc.To, Label: inc.Label, Edge: inc.Edge})

		err := w.extend(inc.To)

		w.steps = w.steps[:len(w.steps)-1]
		w.used.Remove(inc.Edge)
		if err != nil {
			return err
		}
	}
	return nil
}

// candidates returns the incidences the walk may take from at: unused edges,
// one entry per edge, restricted to non-bridges whenever any exist.
func (w *walker) candidates(at string) []multigraph.Incidence {
	var open, safe []multigraph.Incidence
	for _, inc := range w.g.Incidences(at) {
		if w.used.Has(inc.Edge) {
			continue
		}
		if slices.ContainsFunc(open, func(o multigraph.Incidence) bool { return o.Edge == inc.Edge }) {
			continue // second end of a self-loop
		}
		open = append(open, inc)
		if !w.g.IsCutEdge(inc.Edge, &w.used) {
			safe = append(safe, inc)
		}
	}
	if len(safe) > 0 {
		return safe
	}
	return open
}

func (w *walker) record() error {
	if w.used.Len() != w.g.EdgeCount() {
		return perrors.New(perrors.ErrCodeInconsistentGraph,
			"path of %d steps covers %d of %d edges", len(w.steps), w.used.Len(), w.g.EdgeCount())
	}
	w.out.Paths = append(w.out.Paths, Path{Start: w.start, Steps: slices.Clone(w.steps)})
	if w.limit > 0 && len(w.out.Paths) >= w.limit {
		return errPathLimit
	}
	return nil
}
