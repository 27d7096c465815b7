// Package render draws transistor networks as Graphviz diagrams.
//
// Each network becomes an undirected cluster: nets are nodes, transistors
// are edges labeled with their gate. Supply rails are drawn as filled boxes.
// A chosen Euler path can be overlaid, numbering and coloring the edges in
// traversal order, which is how a gate ordering is checked by eye.
//
//	up, down := c.Graphs()
//	dot := render.ToDOT([]render.Network{
//	    {Name: "pull-up", Graph: up, Path: &upPath},
//	    {Name: "pull-down", Graph: down, Path: &downPath},
//	}, render.Options{Title: c.Name})
//	svg, err := render.RenderSVG(ctx, dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package render
