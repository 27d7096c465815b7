// Package io writes solve results as JSON reports and reads them back.
//
// A report is the stable, tool-facing form of a [pipeline.Result]: it
// drops cache and timing details and spells every path out as vertex and
// gate lists, so downstream layout tools need not know about edge IDs.
//
//	{
//	  "circuit": "simple",
//	  "expression": "!(C & (A | B))",
//	  "networks": {
//	    "pull_up":   {"exists": true, "odd_vertices": [], "paths": [...]},
//	    "pull_down": {"exists": true, "odd_vertices": ["AB", "Z"], "paths": [...]}
//	  },
//	  "orderings": [
//	    {"gates": ["A", "B", "C"],
//	     "pull_up":   [{"nets": ["VDD", "AB", "Z", "VDD"], "gates": ["A", "B", "C"]}],
//	     "pull_down": [{"nets": ["AB", "GND", "AB", "Z"], "gates": ["A", "B", "C"]}]}
//	  ]
//	}
//
// Use [ExportJSON] to write a report file and [ReadJSON] to decode one.
//
// [pipeline.Result]: github.com/matzehuels/polyorder/pkg/pipeline.Result
package io
