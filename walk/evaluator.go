package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/cnf/structhash"

	"github.com/tpeters/earlex"
	"github.com/tpeters/earlex/forest"
)

// LeafFunc converts a matched token into a host value. If unset, a leaf
// folds to its token's lexeme as a plain string.
type LeafFunc func(earlex.Token) (interface{}, error)

// RuleAction folds a rule's already-evaluated children, plus the span the
// rule covered, into a host value for the nonterminal it reduces.
type RuleAction func(children []interface{}, span earlex.Span) (interface{}, error)

// Evaluator folds reconstructed Trees into arbitrary host values, via a
// rule-action registry keyed by canonical rule label — the same
// dispatch-by-production shape the teacher's termr.RewriteRule table
// uses for AST rewriting, applied here to bottom-up semantic evaluation.
// The zero value has no registered actions; use On/OnLeaf to populate it.
type Evaluator struct {
	actions map[string]RuleAction
	leafFn  LeafFunc
	builder TreeBuilder
}

// NewEvaluator creates an Evaluator with no registered actions.
func NewEvaluator() *Evaluator {
	return &Evaluator{actions: make(map[string]RuleAction)}
}

// On registers action for every rule whose canonical label (per
// grammar.Rule.Label) is ruleLabel. Returns the receiver so registrations
// can be chained.
func (e *Evaluator) On(ruleLabel string, action RuleAction) *Evaluator {
	if e.actions == nil {
		e.actions = make(map[string]RuleAction)
	}
	e.actions[ruleLabel] = action
	return e
}

// OnLeaf registers the function used to fold terminal tokens. Returns the
// receiver so registrations can be chained.
func (e *Evaluator) OnLeaf(fn LeafFunc) *Evaluator {
	e.leafFn = fn
	return e
}

// EvalOne folds TreeBuilder's deterministically chosen tree into a single
// host value.
func (e *Evaluator) EvalOne(ps *forest.ParseState) (interface{}, error) {
	tree, err := e.builder.EvalOne(ps)
	if err != nil {
		return nil, err
	}
	return e.fold(tree)
}

// EvalAll folds every distinct tree TreeBuilder.EvalAll enumerates into a
// host value, de-duplicating results that fold to the same value even if
// they came from structurally different trees (spec.md §8 property 3,
// restated in terms of evaluated values rather than trees).
func (e *Evaluator) EvalAll(ps *forest.ParseState) ([]interface{}, error) {
	trees, err := e.builder.EvalAll(ps)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(trees))
	var out []interface{}
	for _, tree := range trees {
		v, err := e.fold(tree)
		if err != nil {
			return nil, err
		}
		key, hashErr := structhash.Hash(v, 1)
		if hashErr == nil && seen[key] {
			continue
		}
		if hashErr == nil {
			seen[key] = true
		}
		out = append(out, v)
	}
	return out, nil
}

func (e *Evaluator) fold(t Tree) (interface{}, error) {
	switch n := t.(type) {
	case *Leaf:
		if e.leafFn != nil {
			v, err := e.leafFn(n.Token)
			if err != nil {
				return nil, &LeafFnError{Lexeme: n.Token.Lexeme(), Err: err}
			}
			return v, nil
		}
		return n.Token.Lexeme(), nil
	case *Node:
		children := make([]interface{}, len(n.Children))
		for i, c := range n.Children {
			v, err := e.fold(c)
			if err != nil {
				return nil, err
			}
			children[i] = v
		}
		label := n.Rule.Label()
		if action, ok := e.actions[label]; ok {
			v, err := action(children, n.NodeSpan)
			if err != nil {
				return nil, &ActionError{Rule: label, Err: err}
			}
			return v, nil
		}
		if len(children) == 1 {
			return children[0], nil
		}
		return nil, &UnhandledRuleError{Rule: label}
	default:
		return nil, &UnhandledRuleError{Rule: "<unknown tree node>"}
	}
}
