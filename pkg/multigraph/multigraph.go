package multigraph

import (
	"slices"

	"github.com/matzehuels/polyorder/pkg/errors"
)

// Edge is an undirected, labeled connection between nets U and V.
// ID is the edge's position in insertion order and is unique per graph.
type Edge struct {
	ID    int    // Insertion index, starting at 0
	U     string // First endpoint as given to AddEdge
	V     string // Second endpoint as given to AddEdge
	Label string // Gate signal of the transistor
}

// Other returns the endpoint of e opposite to v.
// For a self-loop it returns v.
func (e Edge) Other(v string) string {
	if e.U == v {
		return e.V
	}
	return e.U
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Incidence is one end of an edge as seen from a vertex: the neighbor it
// leads to, the edge label and the edge ID.
type Incidence struct {
	To    string
	Label string
	Edge  int
}

// Graph is an undirected multigraph with labeled edges.
//
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	order []string               // vertex insertion order
	adj   map[string][]Incidence // vertex -> incidences in insertion order
	edges []Edge
}

// New creates an empty multigraph.
func New() *Graph {
	return &Graph{adj: make(map[string][]Incidence)}
}

// AddEdge inserts an edge between u and v labeled label and returns its ID.
// Both directions are recorded. Vertices are created on first use; no check
// is made for label uniqueness or parallel edges.
func (g *Graph) AddEdge(u, v, label string) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Label: label})
	g.touch(u)
	g.touch(v)
	g.adj[u] = append(g.adj[u], Incidence{To: v, Label: label, Edge: id})
	g.adj[v] = append(g.adj[v], Incidence{To: u, Label: label, Edge: id})
	return id
}

func (g *Graph) touch(v string) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
		g.order = append(g.order, v)
	}
}

// Degree returns the number of incidences recorded for v.
// Each parallel edge counts once and a self-loop counts twice.
// Returns 0 for an unknown vertex.
func (g *Graph) Degree(v string) int { return len(g.adj[v]) }

// Vertices returns all vertices in the order they were first seen.
func (g *Graph) Vertices() []string { return slices.Clone(g.order) }

// HasVertex reports whether v has been added to the graph.
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.adj[v]
	return ok
}

// Incidences returns a copy of v's incidence list in insertion order.
func (g *Graph) Incidences(v string) []Incidence { return slices.Clone(g.adj[v]) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Edge returns the edge with the given ID and true, or false if out of range.
func (g *Graph) Edge(id int) (Edge, bool) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// Labels returns the label of every edge in insertion order.
func (g *Graph) Labels() []string {
	labels := make([]string, len(g.edges))
	for i, e := range g.edges {
		labels[i] = e.Label
	}
	return labels
}

// OddVertices returns the vertices with odd degree, in insertion order.
func (g *Graph) OddVertices() []string {
	var odd []string
	for _, v := range g.order {
		if len(g.adj[v])%2 != 0 {
			odd = append(odd, v)
		}
	}
	return odd
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		order: slices.Clone(g.order),
		adj:   make(map[string][]Incidence, len(g.adj)),
		edges: slices.Clone(g.edges),
	}
	for v, inc := range g.adj {
		c.adj[v] = slices.Clone(inc)
	}
	return c
}

// Validate checks the symmetric-incidence invariant: every edge appears
// exactly once in each endpoint's list (twice for a self-loop), and every
// incidence refers to a known edge with matching endpoints and label.
// Returns an error with code INCONSISTENT_GRAPH on the first violation.
func (g *Graph) Validate() error {
	seen := make([]int, len(g.edges))
	for v, incs := range g.adj {
		for _, inc := range incs {
			e, ok := g.Edge(inc.Edge)
			if !ok {
				return errors.New(errors.ErrCodeInconsistentGraph,
					"vertex %s references unknown edge %d", v, inc.Edge)
			}
			if inc.Label != e.Label || (v != e.U && v != e.V) || inc.To != e.Other(v) {
				return errors.New(errors.ErrCodeInconsistentGraph,
					"vertex %s has incidence (%s, %s) that does not match edge %d %s-%s",
					v, inc.To, inc.Label, e.ID, e.U, e.V)
			}
			seen[inc.Edge]++
		}
	}
	for id, n := range seen {
		if n != 2 {
			e := g.edges[id]
			return errors.New(errors.ErrCodeInconsistentGraph,
				"edge %d %s-%s (%s) has %d incidences, want 2", id, e.U, e.V, e.Label, n)
		}
	}
	return nil
}
