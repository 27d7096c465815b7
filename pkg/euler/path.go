package euler

import (
	"slices"
	"strings"
)

// Step is one move of a walk: the edge taken and the vertex it leads to.
type Step struct {
	Vertex string `json:"vertex"`
	Label  string `json:"label"`
	Edge   int    `json:"edge"`
}

// Path is a walk given by its start vertex and the steps taken from it.
type Path struct {
	Start string `json:"start"`
	Steps []Step `json:"steps"`
}

// Len returns the number of vertices on the path, counting repeats.
// A path over a graph with E edges is complete when Len() == E+1.
func (p Path) Len() int { return len(p.Steps) + 1 }

// End returns the last vertex of the path.
func (p Path) End() string {
	if len(p.Steps) == 0 {
		return p.Start
	}
	return p.Steps[len(p.Steps)-1].Vertex
}

// IsClosed reports whether the path ends where it started.
func (p Path) IsClosed() bool { return p.End() == p.Start }

// Vertices returns the visited vertices in order, starting with Start.
func (p Path) Vertices() []string {
	vs := make([]string, 0, p.Len())
	vs = append(vs, p.Start)
	for _, s := range p.Steps {
		vs = append(vs, s.Vertex)
	}
	return vs
}

// Labels returns the ordered edge labels of the path.
func (p Path) Labels() Sequence {
	seq := make(Sequence, len(p.Steps))
	for i, s := range p.Steps {
		seq[i] = s.Label
	}
	return seq
}

// Edges returns the edge IDs of the path in traversal order.
func (p Path) Edges() []int {
	ids := make([]int, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.Edge
	}
	return ids
}

// Reverse returns the same walk traversed from its end back to its start.
func (p Path) Reverse() Path {
	vs := p.Vertices()
	r := Path{Start: p.End(), Steps: make([]Step, 0, len(p.Steps))}
	for i := len(p.Steps) - 1; i >= 0; i-- {
		r.Steps = append(r.Steps, Step{Vertex: vs[i], Label: p.Steps[i].Label, Edge: p.Steps[i].Edge})
	}
	return r
}

// String renders the path as "Z -C- VDD -A- AB -B- Z".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(p.Start)
	for _, s := range p.Steps {
		b.WriteString(" -")
		b.WriteString(s.Label)
		b.WriteString("- ")
		b.WriteString(s.Vertex)
	}
	return b.String()
}

// Sequence is the ordered list of edge labels along a path.
// Two sequences are equal only if they hold the same labels in the same order.
type Sequence []string

// Equal reports whether s and o hold the same labels in the same order.
func (s Sequence) Equal(o Sequence) bool { return slices.Equal(s, o) }

// Reverse returns the labels in reverse order.
func (s Sequence) Reverse() Sequence {
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}

// Key returns a string that identifies the sequence unambiguously,
// suitable as a map key.
func (s Sequence) Key() string { return strings.Join(s, "\x00") }

// String joins the labels with spaces.
func (s Sequence) String() string { return strings.Join(s, " ") }

// Compare orders sequences lexicographically, shorter prefixes first.
func Compare(a, b Sequence) int { return slices.Compare(a, b) }
