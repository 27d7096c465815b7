package euler_test

import (
	"fmt"

	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/multigraph"
)

func ExampleFindEulerPaths() {
	// Pull-up network of !(C & A & B): three transistors in a ring.
	g := multigraph.New()
	g.AddEdge("Z", "VDD", "C")
	g.AddEdge("VDD", "AB", "A")
	g.AddEdge("AB", "Z", "B")

	c, err := euler.FindEulerPaths(g)
	if err != nil {
		panic(err)
	}
	for _, p := range c.Paths {
		fmt.Println(p)
	}
	// Output:
	// Z -C- VDD -A- AB -B- Z
	// Z -B- AB -A- VDD -C- Z
	// VDD -C- Z -B- AB -A- VDD
	// VDD -A- AB -B- Z -C- VDD
	// AB -A- VDD -C- Z -B- AB
	// AB -B- Z -C- VDD -A- AB
}
