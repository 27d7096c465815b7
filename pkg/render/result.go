package render

import (
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/errors"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

// ResultNetworks returns both networks of res with the first witness
// paths of ordering idx overlaid. Without orderings the networks are drawn
// bare and idx must be 0.
func ResultNetworks(res *pipeline.Result, idx int) ([]Network, error) {
	up, down := res.Circuit.Graphs()
	nets := []Network{
		{Name: string(circuit.PullUp), Graph: up},
		{Name: string(circuit.PullDown), Graph: down},
	}
	if len(res.Orderings) == 0 && idx == 0 {
		return nets, nil
	}
	if idx < 0 || idx >= len(res.Orderings) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"ordering %d out of range (have %d)", idx, len(res.Orderings))
	}
	o := res.Orderings[idx]
	nets[0].Path = &o.PullUp[0]
	nets[1].Path = &o.PullDown[0]
	return nets, nil
}
