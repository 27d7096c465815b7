package multigraph

import (
	"slices"
	"testing"

	"github.com/matzehuels/polyorder/pkg/errors"
)

// triangle is the pull-up network of the simple circuit.
func triangle() *Graph {
	g := New()
	g.AddEdge("Z", "VDD", "C")
	g.AddEdge("VDD", "AB", "A")
	g.AddEdge("AB", "Z", "B")
	return g
}

// star is the pull-down network of the simple circuit.
func star() *Graph {
	g := New()
	g.AddEdge("AB", "Z", "C")
	g.AddEdge("AB", "GND", "A")
	g.AddEdge("AB", "GND", "B")
	return g
}

func TestAddEdge(t *testing.T) {
	g := New()
	if id := g.AddEdge("a", "b", "X"); id != 0 {
		t.Errorf("first AddEdge ID = %d, want 0", id)
	}
	if id := g.AddEdge("a", "b", "X"); id != 1 {
		t.Errorf("parallel AddEdge ID = %d, want 1", id)
	}

	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", g.VertexCount())
	}

	want := []Incidence{{To: "b", Label: "X", Edge: 0}, {To: "b", Label: "X", Edge: 1}}
	if got := g.Incidences("a"); !slices.Equal(got, want) {
		t.Errorf("Incidences(a) = %v, want %v", got, want)
	}
	want = []Incidence{{To: "a", Label: "X", Edge: 0}, {To: "a", Label: "X", Edge: 1}}
	if got := g.Incidences("b"); !slices.Equal(got, want) {
		t.Errorf("Incidences(b) = %v, want %v", got, want)
	}
}

func TestDegree(t *testing.T) {
	tests := []struct {
		name   string
		g      *Graph
		vertex string
		want   int
	}{
		{"triangle corner", triangle(), "Z", 2},
		{"star hub", star(), "AB", 3},
		{"star leaf", star(), "Z", 1},
		{"parallel pair", star(), "GND", 2},
		{"unknown vertex", star(), "VDD", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Degree(tt.vertex); got != tt.want {
				t.Errorf("Degree(%s) = %d, want %d", tt.vertex, got, tt.want)
			}
		})
	}
}

func TestDegreeSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("a", "a", "X")
	if got := g.Degree("a"); got != 2 {
		t.Errorf("Degree(a) = %d, want 2", got)
	}
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount() = %d, want 1", g.VertexCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestVerticesInsertionOrder(t *testing.T) {
	g := triangle()
	want := []string{"Z", "VDD", "AB"}
	if got := g.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
}

func TestOddVertices(t *testing.T) {
	if got := triangle().OddVertices(); len(got) != 0 {
		t.Errorf("triangle OddVertices() = %v, want none", got)
	}
	want := []string{"AB", "Z"}
	if got := star().OddVertices(); !slices.Equal(got, want) {
		t.Errorf("star OddVertices() = %v, want %v", got, want)
	}
}

func TestLabels(t *testing.T) {
	want := []string{"C", "A", "B"}
	if got := triangle().Labels(); !slices.Equal(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestEdgeLookup(t *testing.T) {
	g := triangle()
	e, ok := g.Edge(1)
	if !ok {
		t.Fatal("Edge(1) not found")
	}
	if e.U != "VDD" || e.V != "AB" || e.Label != "A" {
		t.Errorf("Edge(1) = %+v", e)
	}
	if e.Other("VDD") != "AB" || e.Other("AB") != "VDD" {
		t.Errorf("Other() mismatch for %+v", e)
	}
	if _, ok := g.Edge(3); ok {
		t.Error("Edge(3) should not exist")
	}
	if _, ok := g.Edge(-1); ok {
		t.Error("Edge(-1) should not exist")
	}
}

func TestClone(t *testing.T) {
	g := triangle()
	c := g.Clone()
	c.AddEdge("Z", "GND", "D")

	if g.EdgeCount() != 3 {
		t.Errorf("original EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if g.HasVertex("GND") {
		t.Error("clone mutation leaked into original")
	}
	if c.Degree("Z") != 3 {
		t.Errorf("clone Degree(Z) = %d, want 3", c.Degree("Z"))
	}
}

func TestValidate(t *testing.T) {
	if err := star().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	t.Run("missing reverse incidence", func(t *testing.T) {
		g := triangle()
		g.adj["VDD"] = g.adj["VDD"][1:]
		if err := g.Validate(); !errors.Is(err, errors.ErrCodeInconsistentGraph) {
			t.Errorf("Validate() = %v, want %v", err, errors.ErrCodeInconsistentGraph)
		}
	})

	t.Run("mismatched endpoint", func(t *testing.T) {
		g := triangle()
		g.adj["Z"][0].To = "AB"
		if err := g.Validate(); !errors.Is(err, errors.ErrCodeInconsistentGraph) {
			t.Errorf("Validate() = %v, want %v", err, errors.ErrCodeInconsistentGraph)
		}
	})

	t.Run("unknown edge", func(t *testing.T) {
		g := triangle()
		g.adj["Z"] = append(g.adj["Z"], Incidence{To: "VDD", Label: "Q", Edge: 9})
		if err := g.Validate(); !errors.Is(err, errors.ErrCodeInconsistentGraph) {
			t.Errorf("Validate() = %v, want %v", err, errors.ErrCodeInconsistentGraph)
		}
	})
}
