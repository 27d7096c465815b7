// Package circuit reads CMOS cell descriptions and builds their transistor
// networks as multigraphs.
//
// A circuit names its pull-up and pull-down networks as lists of
// transistors. Each transistor joins two nets and is labeled by its gate
// signal:
//
//	name = "simple"
//	expression = "!(C & (A | B))"
//
//	[[pull_up]]
//	from = "Z"
//	to = "VDD"
//	gate = "C"
//
// Circuits are read from TOML or JSON. The same shape is accepted by the
// HTTP API.
package circuit

import (
	"slices"

	"github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/multigraph"
)

// Network selects one half of a CMOS cell.
type Network string

const (
	PullUp   Network = "pull-up"
	PullDown Network = "pull-down"
)

// Networks lists both networks in pull-up, pull-down order.
var Networks = []Network{PullUp, PullDown}

// ParseNetwork accepts "pull-up", "pullup", "up", "pmos" and their
// pull-down counterparts.
func ParseNetwork(s string) (Network, error) {
	switch s {
	case "pull-up", "pullup", "pull_up", "up", "pmos":
		return PullUp, nil
	case "pull-down", "pulldown", "pull_down", "down", "nmos":
		return PullDown, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"unknown network %q (use pull-up or pull-down)", s)
}

// Transistor is one edge of a network: a device between two nets,
// driven by Gate.
type Transistor struct {
	From string `toml:"from" json:"from"`
	To   string `toml:"to" json:"to"`
	Gate string `toml:"gate" json:"gate"`
}

// Circuit is a CMOS cell: a pull-up and a pull-down network driving the
// same output.
type Circuit struct {
	Name       string       `toml:"name" json:"name"`
	Expression string       `toml:"expression,omitempty" json:"expression,omitempty"`
	PullUp     []Transistor `toml:"pull_up" json:"pull_up"`
	PullDown   []Transistor `toml:"pull_down" json:"pull_down"`
}

// Transistors returns the transistors of network n.
func (c *Circuit) Transistors(n Network) []Transistor {
	if n == PullUp {
		return c.PullUp
	}
	return c.PullDown
}

// Graph builds the multigraph of network n. Edge IDs follow the
// transistor order of the description.
func (c *Circuit) Graph(n Network) *multigraph.Graph {
	g := multigraph.New()
	for _, t := range c.Transistors(n) {
		g.AddEdge(t.From, t.To, t.Gate)
	}
	return g
}

// Graphs builds both networks.
func (c *Circuit) Graphs() (up, down *multigraph.Graph) {
	return c.Graph(PullUp), c.Graph(PullDown)
}

// Gates returns the distinct gate signals of both networks, sorted.
func (c *Circuit) Gates() []string {
	var gates []string
	for _, n := range Networks {
		for _, t := range c.Transistors(n) {
			gates = append(gates, t.Gate)
		}
	}
	slices.Sort(gates)
	return slices.Compact(gates)
}

// Validate checks that the circuit has a usable name, that both networks
// are non-empty, and that every net and gate name is well formed.
// It does not check that the two networks are complementary.
func (c *Circuit) Validate() error {
	if c.Name != "" {
		if err := errors.ValidateName("circuit", c.Name); err != nil {
			return err
		}
	}
	for _, n := range Networks {
		ts := c.Transistors(n)
		if len(ts) == 0 {
			return errors.New(errors.ErrCodeInvalidCircuit, "%s network has no transistors", n)
		}
		for i, t := range ts {
			if err := validateTransistor(t); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidCircuit, err,
					"%s transistor %d", n, i+1)
			}
		}
	}
	return nil
}

func validateTransistor(t Transistor) error {
	if err := errors.ValidateName("net", t.From); err != nil {
		return err
	}
	if err := errors.ValidateName("net", t.To); err != nil {
		return err
	}
	return errors.ValidateName("gate", t.Gate)
}
