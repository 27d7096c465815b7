package euler

// Collection holds every complete Euler path found for one graph.
type Collection struct {
	Paths []Path `json:"paths"`

	// Starts lists the vertices the search started from.
	Starts []string `json:"starts"`
	// OddVertices lists the vertices of odd degree in insertion order.
	OddVertices []string `json:"odd_vertices"`
	// EdgeCount is the number of edges every path covers.
	EdgeCount int `json:"edge_count"`

	// Exists is false when the odd-degree count rules out any Euler path.
	// It can be true with no paths if the graph is disconnected.
	Exists bool `json:"exists"`
	// Truncated is set when the search stopped at Enumerator.MaxPaths.
	Truncated bool `json:"truncated,omitempty"`
}

// Len returns the number of paths.
func (c *Collection) Len() int { return len(c.Paths) }

// Empty reports whether no Euler path was found.
func (c *Collection) Empty() bool { return len(c.Paths) == 0 }

// Sequences returns the label sequence of every path, in path order.
// Sequences can repeat when distinct paths share labels.
func (c *Collection) Sequences() []Sequence {
	seqs := make([]Sequence, len(c.Paths))
	for i, p := range c.Paths {
		seqs[i] = p.Labels()
	}
	return seqs
}

// PathsWithLabels returns the paths whose label sequence equals seq.
func (c *Collection) PathsWithLabels(seq Sequence) []Path {
	var out []Path
	for _, p := range c.Paths {
		if p.Labels().Equal(seq) {
			out = append(out, p)
		}
	}
	return out
}
