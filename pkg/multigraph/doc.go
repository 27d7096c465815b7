// Package multigraph provides a labeled undirected multigraph and a
// state-dependent cut-edge (bridge) oracle.
//
// # Overview
//
// A CMOS pull-up or pull-down network is modeled as a multigraph whose
// vertices are circuit nets (VDD, GND, Z, internal nodes) and whose edges are
// transistors labeled by the signal driving their gate. Two transistors in
// parallel between the same nets become parallel edges, so the structure must
// allow multiple edges between one vertex pair, and labels need not be unique.
//
// # Basic Usage
//
// Vertices are created implicitly the first time an edge touches them:
//
//	g := multigraph.New()
//	g.AddEdge("Z", "VDD", "C")
//	g.AddEdge("VDD", "AB", "A")
//	g.AddEdge("AB", "Z", "B")
//
//	g.Degree("Z")       // 2
//	g.OddVertices()     // []
//
// Every edge is recorded twice, once in the incidence list of each endpoint,
// and carries a numeric ID assigned in insertion order. Edge identity is the
// ID, never the (u, v, label) triple, so u->v and v->u are the same edge and
// two parallel edges with equal labels remain distinct.
//
// # Bridges
//
// [Graph.IsBridge] reports whether removing an edge disconnects its endpoints.
// During an Euler walk the question is asked against the graph minus the
// edges already consumed, represented by an [EdgeSet]; see
// [Graph.IsBridgeExcluding] and [Graph.IsCutEdge]. Exclusion is logical, so a
// bridge check never mutates the incidence lists.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once built it may be read by
// any number of goroutines, provided each one uses its own [EdgeSet].
package multigraph
