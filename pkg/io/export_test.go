package io

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

func solve(t *testing.T, name string) *pipeline.Result {
	t.Helper()
	c, err := circuit.Builtin(name)
	if err != nil {
		t.Fatal(err)
	}
	r := pipeline.NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	res, err := r.Solve(context.Background(), c, pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestNewReport(t *testing.T) {
	rep := NewReport(solve(t, "simple"))

	if rep.Circuit != "simple" || rep.Expression == "" {
		t.Errorf("header = %q, %q", rep.Circuit, rep.Expression)
	}
	if n := len(rep.Networks["pull_up"].Paths); n != 6 {
		t.Errorf("pull_up paths = %d, want 6", n)
	}
	if diff := cmp.Diff([]string{"AB", "Z"}, rep.Networks["pull_down"].OddVertices); diff != "" {
		t.Errorf("pull_down odd vertices mismatch (-want +got):\n%s", diff)
	}

	first := rep.Orderings[0]
	want := Ordering{
		Gates:    []string{"A", "B", "C"},
		PullUp:   []WalkJSON{{Nets: []string{"VDD", "AB", "Z", "VDD"}, Gates: []string{"A", "B", "C"}}},
		PullDown: []WalkJSON{{Nets: []string{"AB", "GND", "AB", "Z"}, Gates: []string{"A", "B", "C"}}},
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first ordering mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	res := solve(t, "complex")

	var buf bytes.Buffer
	if err := WriteJSON(res, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(NewReport(res), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple.json")
	if err := ExportJSON(solve(t, "simple"), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"orderings"`) {
		t.Errorf("export missing orderings:\n%s", data)
	}
	if err := ExportJSON(solve(t, "simple"), filepath.Join(path, "nested")); err == nil {
		t.Error("expected error writing below a file")
	}
}

func TestReadJSONRejectsMismatchedPath(t *testing.T) {
	in := `{"circuit":"x","networks":{"pull_up":{"exists":true,"odd_vertices":[],
	        "paths":[{"nets":["a","b"],"gates":["X","Y"]}]}},"orderings":[]}`
	if _, err := ReadJSON(strings.NewReader(in)); err == nil {
		t.Error("expected error for path with mismatched nets and gates")
	}
	if _, err := ReadJSON(strings.NewReader("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
