package walk

/*
Package walk reconstructs Tree values out of a forest.ParseState, and
folds them into host values via an Evaluator. Both directions share one
reconstruction engine (childSeqs/buildNodes below): enumerate every way
to fill in an item's children by recursing over its merged Derivations and
taking the cross-product across Complete derivations — exactly spec.md
§4.4's "cross-product over derivations" memoized-reconstruction
algorithm, grounded on the same back-pointer shape the teacher's
parsetree.go walk() traverses, but enumerating every alternative rather
than picking one by a longest-rule heuristic.

A grammar with unbounded ε-ambiguity (e.g. a nonterminal reachable only
through chains of other nullable nonterminals completing each other) can
produce a forest containing genuinely cyclic derivations: item A's only
way to complete is via item B, and B's via A. EvalAll's enumeration
detects such a cycle with a "currently being expanded" guard and treats
that particular recursive path as contributing no additional trees — it
does not attempt to enumerate an infinite family, just the finite ones
reachable without revisiting an item already on the current stack.
EvalOne walks the same merged derivations but stops at the first
derivation it can resolve without revisiting an item already on its own
stack, which is what lets it terminate even on the grammars where EvalAll
would otherwise need to be told where to stop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"sort"

	"github.com/cnf/structhash"

	"github.com/tpeters/earlex"
	"github.com/tpeters/earlex/forest"
)

// childSeqs enumerates every sequence of Trees that fills item's body up
// to its current dot, one sequence per distinct combination of merged
// derivations along the way. memo caches completed results per item;
// visiting guards against the cyclic-derivation case described above.
func childSeqs(ps *forest.ParseState, item forest.Item, memo map[forest.Item][][]Tree, visiting map[forest.Item]bool) [][]Tree {
	if done, ok := memo[item]; ok {
		return done
	}
	if visiting[item] {
		return nil
	}
	visiting[item] = true

	ds := ps.Set(int(item.End)).Derivations(item)
	var out [][]Tree
	if len(ds) == 0 {
		// A dot-0 item with no recorded derivation is a pure hypothesis:
		// nothing has been matched yet, so the only sequence is empty.
		out = [][]Tree{{}}
	} else {
		for _, d := range ds {
			switch d.Kind {
			case forest.EmptyDerivation:
				out = append(out, []Tree{})
			case forest.ScanDerivation:
				tok, _ := ps.TokenAt(int(d.Predecessor.End))
				term := d.Predecessor.NextSymbol().Name
				for _, seq := range childSeqs(ps, d.Predecessor, memo, visiting) {
					out = append(out, appendTree(seq, &Leaf{TermName: term, Token: tok}))
				}
			case forest.CompleteDerivation:
				causeNodes := buildNodes(ps, d.Cause, memo, visiting)
				for _, predSeq := range childSeqs(ps, d.Predecessor, memo, visiting) {
					for _, cause := range causeNodes {
						out = append(out, appendTree(predSeq, cause))
					}
				}
			}
		}
	}

	delete(visiting, item)
	out = dedupeSeqs(out)
	memo[item] = out
	return out
}

// buildNodes expands a Complete item into one Node per distinct child
// sequence childSeqs finds for it.
func buildNodes(ps *forest.ParseState, item forest.Item, memo map[forest.Item][][]Tree, visiting map[forest.Item]bool) []*Node {
	seqs := childSeqs(ps, item, memo, visiting)
	nodes := make([]*Node, 0, len(seqs))
	for _, seq := range seqs {
		nodes = append(nodes, &Node{
			Rule:     item.Rule,
			NodeSpan: earlex.Span{item.Start, item.End},
			Children: seq,
		})
	}
	return nodes
}

func appendTree(seq []Tree, t Tree) []Tree {
	out := make([]Tree, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = t
	return out
}

// dedupeSeqs removes structurally identical sequences, keeping the first
// occurrence, so ambiguity that collapses to the same tree (e.g. two
// derivations of the same ε-production) is not double-counted (spec.md §8
// property 3).
func dedupeSeqs(seqs [][]Tree) [][]Tree {
	seen := make(map[string]bool, len(seqs))
	out := make([][]Tree, 0, len(seqs))
	for _, seq := range seqs {
		key, err := structhash.Hash(seq, 1)
		if err != nil {
			out = append(out, seq)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, seq)
	}
	return out
}

// shortestSeq walks the same merged derivations as childSeqs but commits
// to the first derivation, in a deterministic preference order, that can
// be resolved without revisiting an item already on the current stack. It
// returns ok == false only when every derivation recorded for item leads
// straight back into a cycle.
func shortestSeq(ps *forest.ParseState, item forest.Item, memo map[forest.Item][]Tree, visiting map[forest.Item]bool) ([]Tree, bool) {
	if done, ok := memo[item]; ok {
		return done, true
	}
	if visiting[item] {
		return nil, false
	}
	visiting[item] = true
	defer delete(visiting, item)

	ds := ps.Set(int(item.End)).Derivations(item)
	if len(ds) == 0 {
		memo[item] = []Tree{}
		return []Tree{}, true
	}
	ds = append([]forest.Derivation(nil), ds...)
	sort.SliceStable(ds, func(a, b int) bool {
		return derivationPriority(ds[a]) < derivationPriority(ds[b])
	})
	for _, d := range ds {
		switch d.Kind {
		case forest.EmptyDerivation:
			memo[item] = []Tree{}
			return []Tree{}, true
		case forest.ScanDerivation:
			predSeq, ok := shortestSeq(ps, d.Predecessor, memo, visiting)
			if !ok {
				continue
			}
			tok, _ := ps.TokenAt(int(d.Predecessor.End))
			term := d.Predecessor.NextSymbol().Name
			out := appendTree(predSeq, &Leaf{TermName: term, Token: tok})
			memo[item] = out
			return out, true
		case forest.CompleteDerivation:
			predSeq, ok := shortestSeq(ps, d.Predecessor, memo, visiting)
			if !ok {
				continue
			}
			causeSeq, ok2 := shortestSeq(ps, d.Cause, memo, visiting)
			if !ok2 {
				continue
			}
			node := &Node{Rule: d.Cause.Rule, NodeSpan: earlex.Span{d.Cause.Start, d.Cause.End}, Children: causeSeq}
			out := appendTree(predSeq, node)
			memo[item] = out
			return out, true
		}
	}
	return nil, false
}

// derivationPriority orders EmptyDerivation before ScanDerivation before
// CompleteDerivation (the first two always terminate in one step), and
// among CompleteDerivations prefers the one with the narrower Cause span
// — this is what biases shortestSeq toward the canonical shortest parse
// rather than an arbitrary one.
func derivationPriority(d forest.Derivation) uint64 {
	switch d.Kind {
	case forest.EmptyDerivation:
		return 0
	case forest.ScanDerivation:
		return 1
	default:
		return 2 + (d.Cause.End - d.Cause.Start)
	}
}
