package match_test

import (
	"fmt"

	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/match"
	"github.com/matzehuels/polyorder/pkg/multigraph"
)

func ExampleFindMatchingSequences() {
	up := multigraph.New()
	up.AddEdge("Z", "VDD", "C")
	up.AddEdge("VDD", "AB", "A")
	up.AddEdge("AB", "Z", "B")

	down := multigraph.New()
	down.AddEdge("AB", "Z", "C")
	down.AddEdge("AB", "GND", "A")
	down.AddEdge("AB", "GND", "B")

	upPaths, _ := euler.FindEulerPaths(up)
	downPaths, _ := euler.FindEulerPaths(down)

	for _, seq := range match.FindMatchingSequences(upPaths, downPaths) {
		fmt.Println(seq)
	}
	// Output:
	// A B C
	// B A C
	// C A B
	// C B A
}
