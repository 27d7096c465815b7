package render

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/polyorder/pkg/cache"
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

func solve(t *testing.T, c *circuit.Circuit) *pipeline.Result {
	t.Helper()
	res, err := pipeline.NewRunner(cache.NewNullCache(), nil, nil).Solve(context.Background(), c, pipeline.Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return res
}

func TestResultNetworks(t *testing.T) {
	c, err := circuit.Builtin("simple")
	if err != nil {
		t.Fatal(err)
	}
	res := solve(t, c)

	nets, err := ResultNetworks(res, 2)
	if err != nil {
		t.Fatalf("ResultNetworks: %v", err)
	}
	if len(nets) != 2 || nets[0].Name != "pull-up" || nets[1].Name != "pull-down" {
		t.Fatalf("networks = %+v", nets)
	}
	want := res.Orderings[2].Sequence
	for _, n := range nets {
		if n.Path == nil {
			t.Fatalf("%s: no path overlaid", n.Name)
		}
		if got := n.Path.Labels(); !got.Equal(want) {
			t.Errorf("%s path gates = %v, want %v", n.Name, got, want)
		}
	}

	dot := ToDOT(nets, Options{})
	if !strings.Contains(dot, "cluster_1") || !strings.Contains(dot, highlight) {
		t.Errorf("DOT lacks second cluster or overlay:\n%s", dot)
	}

	for _, idx := range []int{-1, len(res.Orderings)} {
		if _, err := ResultNetworks(res, idx); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ResultNetworks(%d) error = %v, want INVALID_INPUT", idx, err)
		}
	}
}

func TestResultNetworksWithoutOrderings(t *testing.T) {
	c := &circuit.Circuit{
		Name: "hub",
		PullUp: []circuit.Transistor{
			{From: "VDD", To: "Z", Gate: "A"},
		},
		PullDown: []circuit.Transistor{
			{From: "H", To: "Z", Gate: "A"},
			{From: "H", To: "GND", Gate: "B"},
			{From: "H", To: "X", Gate: "C"},
		},
	}
	res := solve(t, c)
	if len(res.Orderings) != 0 {
		t.Fatalf("orderings = %d, want 0", len(res.Orderings))
	}

	nets, err := ResultNetworks(res, 0)
	if err != nil {
		t.Fatalf("ResultNetworks: %v", err)
	}
	for _, n := range nets {
		if n.Path != nil {
			t.Errorf("%s: unexpected overlay", n.Name)
		}
	}
	if _, err := ResultNetworks(res, 1); err == nil {
		t.Error("ResultNetworks(1) with no orderings should fail")
	}
}
