package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/multigraph"
)

// Formats accepted by the render command.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

const highlight = "#d9480f"

// Network is one graph to draw, with an optional path to overlay.
type Network struct {
	Name  string
	Graph *multigraph.Graph
	Path  *euler.Path
}

// Options configures diagram generation.
type Options struct {
	// Title is drawn above the diagram.
	Title string

	// Detailed appends edge IDs to gate labels, which tells parallel
	// transistors with the same gate apart.
	Detailed bool
}

// ToDOT converts networks to a Graphviz DOT graph, one cluster each.
// Node IDs are prefixed with the cluster index because nets such as the
// output appear in both networks.
func ToDOT(nets []Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  edge [fontsize=16];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=22;\n", opts.Title)
	}

	for i, n := range nets {
		buf.WriteString("\n")
		writeCluster(&buf, i, n, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, idx int, n Network, opts Options) {
	fmt.Fprintf(buf, "  subgraph cluster_%d {\n", idx)
	fmt.Fprintf(buf, "    label=%q;\n", n.Name)
	buf.WriteString("    style=rounded;\n")

	steps := stepNumbers(n.Path)
	for _, v := range n.Graph.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", v)}
		if IsRail(v) {
			attrs = append(attrs, "shape=box", "fillcolor=lightgrey")
		}
		if n.Path != nil && v == n.Path.Start {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(buf, "    %q [%s];\n", nodeID(idx, v), strings.Join(attrs, ", "))
	}

	for _, e := range n.Graph.Edges() {
		label := e.Label
		if opts.Detailed {
			label = fmt.Sprintf("%s #%d", e.Label, e.ID)
		}
		attrs := []string{}
		if step, ok := steps[e.ID]; ok {
			label = fmt.Sprintf("%d: %s", step, label)
			attrs = append(attrs, fmt.Sprintf("color=%q", highlight), fmt.Sprintf("fontcolor=%q", highlight), "penwidth=2")
		}
		attrs = append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
		fmt.Fprintf(buf, "    %q -- %q [%s];\n", nodeID(idx, e.U), nodeID(idx, e.V), strings.Join(attrs, ", "))
	}
	buf.WriteString("  }\n")
}

// stepNumbers maps edge IDs on p to their 1-based position.
func stepNumbers(p *euler.Path) map[int]int {
	if p == nil {
		return nil
	}
	steps := make(map[int]int, len(p.Steps))
	for i, s := range p.Steps {
		steps[s.Edge] = i + 1
	}
	return steps
}

func nodeID(cluster int, v string) string {
	return fmt.Sprintf("n%d_%s", cluster, v)
}

// IsRail reports whether a net name denotes a supply rail.
func IsRail(v string) bool {
	switch strings.ToUpper(v) {
	case "VDD", "VCC", "GND", "VSS":
		return true
	}
	return false
}
