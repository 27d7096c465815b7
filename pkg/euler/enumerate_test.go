package euler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	perrors "github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/multigraph"
)

func triangle() *multigraph.Graph {
	g := multigraph.New()
	g.AddEdge("Z", "VDD", "C")
	g.AddEdge("VDD", "AB", "A")
	g.AddEdge("AB", "Z", "B")
	return g
}

func star() *multigraph.Graph {
	g := multigraph.New()
	g.AddEdge("AB", "Z", "C")
	g.AddEdge("AB", "GND", "A")
	g.AddEdge("AB", "GND", "B")
	return g
}

func seqs(ss ...string) []Sequence {
	out := make([]Sequence, len(ss))
	for i, s := range ss {
		out[i] = strings.Fields(s)
	}
	return out
}

func TestEnumerateTriangle(t *testing.T) {
	c, err := FindEulerPaths(triangle())
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}

	if !c.Exists {
		t.Fatal("Exists = false for an all-even graph")
	}
	if diff := cmp.Diff([]string{"Z", "VDD", "AB"}, c.Starts); diff != "" {
		t.Errorf("Starts mismatch (-want +got):\n%s", diff)
	}

	want := seqs("C A B", "B A C", "C B A", "A B C", "A C B", "B C A")
	if diff := cmp.Diff(want, c.Sequences()); diff != "" {
		t.Errorf("Sequences mismatch (-want +got):\n%s", diff)
	}

	for _, p := range c.Paths {
		if !p.IsClosed() {
			t.Errorf("path %s is not closed", p)
		}
	}
}

func TestEnumerateStar(t *testing.T) {
	c, err := FindEulerPaths(star())
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}

	if diff := cmp.Diff([]string{"AB", "Z"}, c.OddVertices); diff != "" {
		t.Errorf("OddVertices mismatch (-want +got):\n%s", diff)
	}

	want := seqs("A B C", "B A C", "C A B", "C B A")
	if diff := cmp.Diff(want, c.Sequences()); diff != "" {
		t.Errorf("Sequences mismatch (-want +got):\n%s", diff)
	}

	first := c.Paths[0]
	if got := first.String(); got != "AB -A- GND -B- AB -C- Z" {
		t.Errorf("first path = %q", got)
	}
}

func TestEnumerateNoEulerPath(t *testing.T) {
	// Four odd vertices: a hub with three leaves.
	g := multigraph.New()
	g.AddEdge("AB", "Z", "C")
	g.AddEdge("AB", "GND", "A")
	g.AddEdge("AB", "X", "B")

	c, err := FindEulerPaths(g)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	if c.Exists {
		t.Error("Exists = true with four odd vertices")
	}
	if !c.Empty() {
		t.Errorf("got %d paths, want none", c.Len())
	}
	if len(c.OddVertices) != 4 {
		t.Errorf("OddVertices = %v, want 4 entries", c.OddVertices)
	}
}

func TestEnumerateDisconnected(t *testing.T) {
	g := multigraph.New()
	g.AddEdge("a", "b", "X")
	g.AddEdge("b", "a", "Y")
	g.AddEdge("c", "d", "P")
	g.AddEdge("d", "c", "Q")

	c, err := FindEulerPaths(g)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	if !c.Exists {
		t.Error("degree precondition holds, Exists should be true")
	}
	if !c.Empty() {
		t.Errorf("disconnected graph produced %d paths", c.Len())
	}
}

// An edge plus a separate cycle has exactly two odd vertices but no walk
// covering every edge; both searches must agree on that.
func TestEnumerateDisconnectedOddPair(t *testing.T) {
	g := multigraph.New()
	g.AddEdge("n4", "n1", "L0")
	g.AddEdge("n2", "n3", "L1")
	g.AddEdge("n3", "n0", "L2")
	g.AddEdge("n0", "n2", "L3")

	c, err := FindEulerPaths(g)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	if !c.Exists || !c.Empty() {
		t.Fatalf("Exists = %v with %d paths, want true with none", c.Exists, c.Len())
	}
	if diff := cmp.Diff(bruteForce(g, c.Starts), walkKeys(c.Paths)); diff != "" {
		t.Errorf("pruned search differs from brute force (-want +got):\n%s", diff)
	}
}

func TestEnumerateEmptyGraph(t *testing.T) {
	c, err := FindEulerPaths(multigraph.New())
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	if !c.Empty() {
		t.Errorf("empty graph produced %d paths", c.Len())
	}
}

func TestEnumerateSingleEdge(t *testing.T) {
	g := multigraph.New()
	g.AddEdge("a", "b", "X")

	c, err := FindEulerPaths(g)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	// The lone edge is a bridge but is forced, so both directions appear.
	want := []string{"a -X- b", "b -X- a"}
	var got []string
	for _, p := range c.Paths {
		got = append(got, p.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateSelfLoop(t *testing.T) {
	g := multigraph.New()
	g.AddEdge("a", "b", "X")
	g.AddEdge("b", "b", "L")

	c, err := FindEulerPaths(g)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	want := seqs("X L", "L X")
	if diff := cmp.Diff(want, c.Sequences()); diff != "" {
		t.Errorf("Sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateDuplicateLabels(t *testing.T) {
	// Two parallel transistors driven by the same signal are distinct edges.
	g := multigraph.New()
	g.AddEdge("a", "b", "X")
	g.AddEdge("a", "b", "X")

	c, err := FindEulerPaths(g)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	// Two starts times two edge orders.
	if c.Len() != 4 {
		t.Fatalf("got %d paths, want 4", c.Len())
	}
	for _, p := range c.Paths {
		if !p.Labels().Equal(Sequence{"X", "X"}) {
			t.Errorf("path %s has labels %v", p, p.Labels())
		}
	}
}

func TestEnumerateComplexCircuit(t *testing.T) {
	up := multigraph.New()
	up.AddEdge("Z", "AB", "A")
	up.AddEdge("AB", "BCD", "B")
	up.AddEdge("BCD", "VDD", "C")
	up.AddEdge("BCD", "VDD", "D")

	c, err := FindEulerPaths(up)
	if err != nil {
		t.Fatalf("FindEulerPaths: %v", err)
	}
	want := seqs("A B C D", "A B D C", "C D B A", "D C B A")
	if diff := cmp.Diff(want, c.Sequences()); diff != "" {
		t.Errorf("Sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateMaxPaths(t *testing.T) {
	e := Enumerator{MaxPaths: 2}
	c, err := e.Enumerate(context.Background(), triangle())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("got %d paths, want 2", c.Len())
	}
	if !c.Truncated {
		t.Error("Truncated = false")
	}
}

func TestEnumerateContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var e Enumerator
	_, err := e.Enumerate(ctx, triangle())
	if !perrors.Is(err, perrors.ErrCodeTimeout) {
		t.Errorf("err = %v, want %v", err, perrors.ErrCodeTimeout)
	}
}

func TestEnumerateDeadline(t *testing.T) {
	// K5 doubled has a very large number of Euler circuits.
	g := multigraph.New()
	vs := []string{"a", "b", "c", "d", "e"}
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			g.AddEdge(vs[i], vs[j], fmt.Sprintf("%s%s", vs[i], vs[j]))
			g.AddEdge(vs[i], vs[j], fmt.Sprintf("%s%s'", vs[i], vs[j]))
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var e Enumerator
	_, err := e.Enumerate(ctx, g)
	if !perrors.Is(err, perrors.ErrCodeTimeout) {
		t.Errorf("err = %v, want %v", err, perrors.ErrCodeTimeout)
	}
}

// TestEnumerateProperties checks the path invariants on random graphs and
// compares the pruned search with an unpruned brute force.
func TestEnumerateProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 200; trial++ {
		g := randomGraph(rng, 2+rng.IntN(4), 1+rng.IntN(6))
		name := fmt.Sprintf("trial %d: %v", trial, g.Edges())

		c, err := FindEulerPaths(g)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		odd := g.OddVertices()
		if len(odd) > 2 && !c.Empty() {
			t.Errorf("%s: %d odd vertices but %d paths", name, len(odd), c.Len())
		}

		for _, p := range c.Paths {
			if p.Len() != g.EdgeCount()+1 {
				t.Errorf("%s: path %s has %d vertices, want %d", name, p, p.Len(), g.EdgeCount()+1)
			}
			ids := p.Edges()
			slices.Sort(ids)
			if ids = slices.Compact(ids); len(ids) != g.EdgeCount() {
				t.Errorf("%s: path %s repeats an edge", name, p)
			}
			if len(odd) == 2 && !(slices.Contains(odd, p.Start) && slices.Contains(odd, p.End()) && p.Start != p.End()) {
				t.Errorf("%s: path %s does not run between odd vertices %v", name, p, odd)
			}
			if len(odd) == 0 && !p.IsClosed() {
				t.Errorf("%s: path %s is not closed", name, p)
			}
			if !walkIsValid(g, p) {
				t.Errorf("%s: path %s uses an edge not incident to its vertices", name, p)
			}
		}

		if len(odd) == 0 && !c.Empty() {
			for _, v := range g.Vertices() {
				if !slices.ContainsFunc(c.Paths, func(p Path) bool { return p.Start == v }) {
					t.Errorf("%s: vertex %s never starts a circuit", name, v)
				}
			}
		}

		if len(odd) == 0 || len(odd) == 2 {
			want := bruteForce(g, c.Starts)
			if diff := cmp.Diff(want, walkKeys(c.Paths), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s: pruned search differs from brute force (-want +got):\n%s", name, diff)
			}
		}
	}
}

func randomGraph(rng *rand.Rand, vertices, edges int) *multigraph.Graph {
	g := multigraph.New()
	for i := 0; i < edges; i++ {
		u := rng.IntN(vertices)
		v := rng.IntN(vertices - 1)
		if v >= u {
			v++
		}
		g.AddEdge(fmt.Sprintf("n%d", u), fmt.Sprintf("n%d", v), fmt.Sprintf("L%d", i))
	}
	return g
}

func walkIsValid(g *multigraph.Graph, p Path) bool {
	at := p.Start
	for _, s := range p.Steps {
		e, ok := g.Edge(s.Edge)
		if !ok || (e.U != at && e.V != at) || e.Other(at) != s.Vertex || e.Label != s.Label {
			return false
		}
		at = s.Vertex
	}
	return true
}

func walkKeys(paths []Path) []string {
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = fmt.Sprint(p.Start, p.Edges())
	}
	slices.Sort(keys)
	return keys
}

// bruteForce enumerates Euler walks from starts with no bridge pruning.
func bruteForce(g *multigraph.Graph, starts []string) []string {
	var keys []string
	used := multigraph.NewEdgeSet(g.EdgeCount())
	var ids []int
	var walk func(start, at string)
	walk = func(start, at string) {
		if len(ids) == g.EdgeCount() {
			keys = append(keys, fmt.Sprint(start, slices.Clone(ids)))
			return
		}
		for _, inc := range g.Incidences(at) {
			if !used.Add(inc.Edge) {
				continue
			}
			ids = append(ids, inc.Edge)
			walk(start, inc.To)
			ids = ids[:len(ids)-1]
			used.Remove(inc.Edge)
		}
	}
	for _, s := range starts {
		walk(s, s)
	}
	slices.Sort(keys)
	return keys
}
