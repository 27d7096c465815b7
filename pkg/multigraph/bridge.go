package multigraph

// IsBridge reports whether the edge (u, v, label) is a cut-edge of the full
// graph. It is shorthand for IsBridgeExcluding with no used edges.
func (g *Graph) IsBridge(u, v, label string) bool {
	return g.IsBridgeExcluding(u, v, label, nil)
}

// IsBridgeExcluding reports whether the edge (u, v, label) is a cut-edge of
// the graph with the edges in used removed.
//
// The edge is resolved to the first unused incidence at u that leads to v
// with the given label. If there is none, IsBridgeExcluding returns false.
func (g *Graph) IsBridgeExcluding(u, v, label string, used *EdgeSet) bool {
	for _, inc := range g.adj[u] {
		if inc.To == v && inc.Label == label && !used.Has(inc.Edge) {
			return g.IsCutEdge(inc.Edge, used)
		}
	}
	return false
}

// IsCutEdge reports whether removing edge id from the graph minus used
// strictly reduces the number of vertices reachable from the edge's first
// endpoint. A self-loop is never a cut-edge. Edges that are unknown or
// already in used report false.
//
// The check is O(V+E) and depends on used: the same edge can be a bridge at
// one point of a walk and not at another.
func (g *Graph) IsCutEdge(id int, used *EdgeSet) bool {
	e, ok := g.Edge(id)
	if !ok || e.IsLoop() || used.Has(id) {
		return false
	}
	before := g.reachable(e.U, used, -1)
	after := g.reachable(e.U, used, id)
	return after < before
}

// Reachable returns the number of vertices reachable from start over edges
// not in used, including start itself.
func (g *Graph) Reachable(start string, used *EdgeSet) int {
	if !g.HasVertex(start) {
		return 0
	}
	return g.reachable(start, used, -1)
}

// reachable counts vertices reachable from start, skipping edges in used and
// the edge with ID skip.
func (g *Graph) reachable(start string, used *EdgeSet, skip int) int {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, inc := range g.adj[v] {
			if inc.Edge == skip || used.Has(inc.Edge) || visited[inc.To] {
				continue
			}
			visited[inc.To] = true
			stack = append(stack, inc.To)
		}
	}
	return len(visited)
}
