package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tpeters/earlex"
	"github.com/tpeters/earlex/forest"
)

// tracer traces with key 'earlex.walk'.
func tracer() tracing.Trace {
	return tracing.Select("earlex.walk")
}

// TreeBuilder reconstructs Tree values from a forest.ParseState. It holds
// no state of its own between calls; the zero value is ready to use.
type TreeBuilder struct{}

// EvalAll enumerates every distinct parse tree the forest admits, one per
// accepting item times every combination of merged derivations beneath
// it, with structurally identical trees de-duplicated (spec.md §8
// properties 1–3). Returns *NoAcceptingParseError if ps has no accepting
// item.
func (TreeBuilder) EvalAll(ps *forest.ParseState) ([]*Node, error) {
	accepting := ps.AcceptingItems()
	if len(accepting) == 0 {
		return nil, &NoAcceptingParseError{}
	}
	memo := make(map[forest.Item][][]Tree)
	visiting := make(map[forest.Item]bool)
	var all []*Node
	for _, it := range accepting {
		all = append(all, buildNodes(ps, it, memo, visiting)...)
	}
	tracer().Debugf("EvalAll produced %d distinct trees", len(all))
	return all, nil
}

// EvalOne reconstructs a single, deterministically chosen parse tree,
// terminating even when the forest contains cyclic derivations from
// unbounded ε-ambiguity (spec.md §8, the "P -> (P) | PP | ε" case).
func (TreeBuilder) EvalOne(ps *forest.ParseState) (*Node, error) {
	accepting := ps.AcceptingItems()
	if len(accepting) == 0 {
		return nil, &NoAcceptingParseError{}
	}
	it := accepting[0]
	memo := make(map[forest.Item][]Tree)
	visiting := make(map[forest.Item]bool)
	seq, ok := shortestSeq(ps, it, memo, visiting)
	if !ok {
		err := &StuckWalkError{Rule: it.Rule.Label()}
		if gconf.GetBool("panic-on-stuck-walk") {
			panic(err)
		}
		return nil, err
	}
	return &Node{Rule: it.Rule, NodeSpan: earlex.Span{it.Start, it.End}, Children: seq}, nil
}
