package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

// Report is the JSON form of a solved circuit.
type Report struct {
	Circuit    string             `json:"circuit"`
	Expression string             `json:"expression,omitempty"`
	Networks   map[string]Network `json:"networks"`
	Orderings  []Ordering         `json:"orderings"`
}

// Network summarizes the Euler paths of one network.
type Network struct {
	Exists      bool       `json:"exists"`
	Truncated   bool       `json:"truncated,omitempty"`
	OddVertices []string   `json:"odd_vertices"`
	Paths       []WalkJSON `json:"paths"`
}

// Ordering is one shared gate order with its witness paths.
type Ordering struct {
	Gates    []string   `json:"gates"`
	PullUp   []WalkJSON `json:"pull_up"`
	PullDown []WalkJSON `json:"pull_down"`
}

// WalkJSON is a path as parallel net and gate lists:
// Nets[i] -Gates[i]- Nets[i+1].
type WalkJSON struct {
	Nets  []string `json:"nets"`
	Gates []string `json:"gates"`
}

// NewReport converts a pipeline result.
func NewReport(res *pipeline.Result) *Report {
	r := &Report{
		Networks:  make(map[string]Network, 2),
		Orderings: make([]Ordering, 0, len(res.Orderings)),
	}
	if res.Circuit != nil {
		r.Circuit = res.Circuit.Name
		r.Expression = res.Circuit.Expression
	}
	r.Networks["pull_up"] = newNetwork(res.PullUp)
	r.Networks["pull_down"] = newNetwork(res.PullDown)

	for _, o := range res.Orderings {
		r.Orderings = append(r.Orderings, Ordering{
			Gates:    []string(o.Sequence),
			PullUp:   walks(o.PullUp),
			PullDown: walks(o.PullDown),
		})
	}
	return r
}

func newNetwork(c *euler.Collection) Network {
	if c == nil {
		return Network{OddVertices: []string{}, Paths: []WalkJSON{}}
	}
	odd := c.OddVertices
	if odd == nil {
		odd = []string{}
	}
	return Network{
		Exists:      c.Exists,
		Truncated:   c.Truncated,
		OddVertices: odd,
		Paths:       walks(c.Paths),
	}
}

func walks(paths []euler.Path) []WalkJSON {
	out := make([]WalkJSON, len(paths))
	for i, p := range paths {
		out[i] = WalkJSON{Nets: p.Vertices(), Gates: []string(p.Labels())}
	}
	return out
}

// WriteJSON encodes the report of res to w, indented.
func WriteJSON(res *pipeline.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(res)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the report of res to a file at path.
func ExportJSON(res *pipeline.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSON decodes a report written by [WriteJSON].
func ReadJSON(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for name, n := range rep.Networks {
		for i, w := range n.Paths {
			if len(w.Nets) != len(w.Gates)+1 {
				return nil, fmt.Errorf("%s path %d: %d nets for %d gates", name, i, len(w.Nets), len(w.Gates))
			}
		}
	}
	return &rep, nil
}
