// Package pkg provides the libraries behind polyorder, a tool that finds
// polysilicon gate orderings for CMOS standard cells.
//
// # Overview
//
// A static CMOS gate has a pull-up network of PMOS transistors and a
// pull-down network of NMOS transistors. Modeling each network as a
// multigraph (nets are vertices, transistors are edges labeled by their
// gate) turns "lay out one unbroken diffusion row" into "find an Euler
// path". A gate order that is the label sequence of an Euler path in both
// networks lets both rows share one set of vertical polysilicon lines.
//
// # Architecture
//
// The data flow through polyorder:
//
//	circuit file (TOML/JSON)
//	         ↓
//	    [circuit] package (validate, build two multigraphs)
//	         ↓
//	    [euler] package (enumerate Euler paths per network)
//	         ↓
//	    [match] package (intersect label sequences)
//	         ↓
//	    [io] / [render] packages (JSON report, DOT/SVG diagram)
//
// [pipeline] runs these steps with caching and both networks in parallel.
//
// # Quick Start
//
//	c, _ := circuit.Builtin("simple")
//	up, down := c.Graphs()
//
//	pu, _ := euler.FindEulerPaths(up)
//	pd, _ := euler.FindEulerPaths(down)
//
//	for _, seq := range match.FindMatchingSequences(pu, pd) {
//	    fmt.Println(seq)
//	}
//
// # Main Packages
//
// ## Core
//
//   - [multigraph]: labeled undirected multigraph, used-edge set, bridge test
//   - [euler]: Euler path enumeration with Fleury's rule
//   - [match]: cross-network label sequence intersection
//   - [circuit]: circuit descriptions and the builtin circuits
//
// ## Infrastructure
//
//   - [pipeline]: cached, parallel solve of a circuit
//   - [cache]: null, file and Redis caches
//   - [store]: solve records in memory, on disk or in MongoDB
//   - [api]: HTTP API
//   - [render]: Graphviz diagrams of both networks
//   - [io]: JSON reports
//   - [observability]: hooks for logging and metrics
//   - [errors]: coded errors and input validation
//   - [buildinfo]: version information
//
// [multigraph]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/multigraph
// [euler]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/euler
// [match]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/match
// [circuit]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/circuit
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/store
// [api]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/api
// [render]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/polyorder/pkg/buildinfo
package pkg
