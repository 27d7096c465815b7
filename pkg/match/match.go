// Package match intersects the Euler path label sequences of two networks.
//
// A gate ordering is valid for a CMOS cell when the same polysilicon order
// traces an Euler path through both the pull-up and the pull-down network.
// Matching is exact: same labels, same order. A sequence and its reverse are
// distinct unless both appear on each side.
package match

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/matzehuels/polyorder/pkg/euler"
)

// Ordering is a gate order shared by both networks, with the paths that
// realize it on each side.
type Ordering struct {
	Sequence euler.Sequence `json:"sequence"`
	PullUp   []euler.Path   `json:"pull_up"`
	PullDown []euler.Path   `json:"pull_down"`
}

// FindMatchingSequences returns the label sequences that occur in both
// collections, without duplicates, in lexicographic order.
// The result is empty when either collection is empty.
func FindMatchingSequences(a, b *euler.Collection) []euler.Sequence {
	if a == nil || b == nil {
		return nil
	}
	return Intersect(a.Sequences(), b.Sequences())
}

// Intersect returns the sequences present in both a and b, deduplicated
// and sorted lexicographically. Intersect(a, b) equals Intersect(b, a).
func Intersect(a, b []euler.Sequence) []euler.Sequence {
	left, right := newSet(a), newSet(b)
	if left.Size() > right.Size() {
		left, right = right, left
	}

	var out []euler.Sequence
	it := left.Iterator()
	for it.Next() {
		seq := it.Value().(euler.Sequence)
		if right.Contains(seq) {
			out = append(out, seq)
		}
	}
	return out
}

// Orderings returns every common sequence of the two networks together with
// its witness paths, in lexicographic sequence order.
func Orderings(pullUp, pullDown *euler.Collection) []Ordering {
	common := FindMatchingSequences(pullUp, pullDown)
	out := make([]Ordering, 0, len(common))
	for _, seq := range common {
		out = append(out, Ordering{
			Sequence: seq,
			PullUp:   pullUp.PathsWithLabels(seq),
			PullDown: pullDown.PathsWithLabels(seq),
		})
	}
	return out
}

func newSet(seqs []euler.Sequence) *treeset.Set {
	s := treeset.NewWith(func(a, b interface{}) int {
		return euler.Compare(a.(euler.Sequence), b.(euler.Sequence))
	})
	for _, seq := range seqs {
		s.Add(seq)
	}
	return s
}
