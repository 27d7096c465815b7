// Package euler enumerates every Euler path of a labeled multigraph.
//
// # Overview
//
// An Euler path traverses every edge exactly once. One exists only when the
// graph has zero or two vertices of odd degree. With two, every Euler path
// starts at one of them and ends at the other; with zero, every Euler path is
// a closed circuit and any vertex can be the start.
//
// [Enumerator.Enumerate] checks that precondition, then runs an exhaustive
// depth-first search from every admissible start vertex. At each step it
// applies Fleury's rule against the current state of the walk: an untraversed
// edge whose removal would disconnect the remaining edges is only taken when
// no other edge is available. Every Euler path obeys this rule, so pruning
// with it loses nothing.
//
// # Results
//
// A [Collection] holds every complete [Path] and the diagnostics of the run.
// A graph that fails the degree precondition is not an error: the collection
// comes back empty with Exists set to false, and a warning is logged.
// [Path.Labels] projects a path onto its edge labels, giving the [Sequence]
// that is compared across networks by package match.
//
// # Cost
//
// The search is worst-case exponential in the number of edges, and every
// step runs an O(V+E) bridge check per candidate edge. CMOS gate networks
// have a handful of transistors, so this is fine in practice. Callers feeding
// larger graphs should bound the run with a context deadline or
// [Enumerator.MaxPaths].
package euler
