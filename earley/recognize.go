package earley

/*
Package earley implements Earley's algorithm: predict, scan and complete
over a sequence of state sets S₀…Sₙ, one per input position. Unlike the
teacher's recognizer — which records a single backlink per item and later
resolves ambiguity in the tree walker by picking the longest-bodied rule —
this recognizer merges every Derivation that produces an item directly
onto that item (forest.StateSet.Insert), so the state sets themselves are
already a shared parse forest: no information about alternative
derivations is thrown away during recognition.

http://citeseerx.ist.psu.edu/viewdoc/download?doi=10.1.1.12.4254&rep=rep1&type=pdf
From "Practical Earley Parsing" by John Aycock and R. Nigel Horspool, 2002:

Earley parsers operate by constructing a sequence of sets, sometimes
called Earley sets. Given an input x1 x2 … xn, the parser builds n+1
sets: an initial set S0 and one set Si for each input symbol xi. […] each
set is typically represented as a list of items, as suggested by Earley
[…]. This list representation of a set is particularly convenient,
because the list of items acts as a 'work queue' when building the set:
items are examined in order, applying Scanner, Predictor and Completer as
necessary; items added to the set are appended onto the end of the list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/tpeters/earlex/forest"
	"github.com/tpeters/earlex/grammar"
)

// tracer traces with key 'earlex.earley'.
func tracer() tracing.Trace {
	return tracing.Select("earlex.earley")
}

// Recognize runs Earley's algorithm for g against the tokens delivered by
// cursor, and returns the resulting forest.ParseState. If the input is
// accepted, ParseState.AcceptingItems() is non-empty and err is nil. If the
// input is rejected, err is one of three variants carrying positional
// diagnostics, and the returned ParseState still holds whatever state sets
// were built — useful for tests asserting on partial shapes, but not a
// parse forest for a failed input:
//
//   - *UnexpectedTokenError: a scanned token matched no terminal expected
//     at its position, so the next state set came up empty mid-stream.
//   - *UnexpectedEOFError: the input ran out while the final state set
//     still held an item waiting on a terminal — genuine truncation.
//   - *NoParseError: the input ran out with nothing left waiting on a
//     terminal, yet no item accepts — the grammar simply rejects input of
//     this length.
func Recognize(g *grammar.Grammar, cursor TokenCursor) (*forest.ParseState, error) {
	ps := forest.NewEmptyParseState(g)
	S0 := ps.Set(0)
	for _, r := range g.RulesFor(g.Start()) {
		insertPredicted(S0, r, 0)
	}

	token, ok := cursor.Next()
	i := 0
	for {
		S := ps.Set(i)
		var next *forest.StateSet
		if ok {
			next = ps.AppendStateSet()
		}

		S.IterateOnce()
		for S.Next() {
			it := S.Current()
			if it.Complete() {
				completeItem(ps, i, it)
				continue
			}
			sym := it.NextSymbol()
			if sym.IsTerminal() {
				if ok && sym.Matches(token.Lexeme()) {
					scanned := it.Advance(uint64(i + 1))
					next.Insert(scanned, forest.Scan(it, token.Lexeme()))
				}
				continue
			}
			predictItem(g, S, i, it)
		}
		tracer().Debugf("S%d settled with %d items", i, S.Size())

		if !ok {
			break
		}
		if next.Size() == 0 {
			return ps, &UnexpectedTokenError{
				Position: uint64(i),
				Lexeme:   token.Lexeme(),
				Expected: ps.ExpectedTerminals(i),
			}
		}
		ps.AppendToken(token)
		i++
		token, ok = cursor.Next()
	}

	if len(ps.AcceptingItems()) == 0 {
		if expected := ps.ExpectedTerminals(i); len(expected) > 0 {
			return ps, &UnexpectedEOFError{Expected: expected}
		}
		return ps, &NoParseError{Grammar: g, States: ps.States}
	}
	return ps, nil
}

// predictItem adds, for item it waiting on nonterminal sym, one dot-at-0
// item per rule headed by sym — an ε-production's dot-0 item is already
// Complete, recorded with an EmptyDerivation rather than left unexplained.
//
// It then catches up on any instance of sym that completed earlier in
// this same state set, advancing it immediately over each one. Without
// this, an item predicted after sym's completion already ran through
// completeItem would never learn about it: completers only look forward
// from the moment they process a completed item, and a symbol can be
// nullable in more than one way (e.g. X -> ε | A A with A also nullable),
// so this cannot be shortcut to a single generic "sym is nullable" fact —
// each completed instance of sym needs its own Complete derivation to
// keep distinct ε-derivations distinguishable (spec.md §8 property 1).
//
// This is why nullability is never consulted here via grammar.DerivesEpsilon:
// that precomputed closure only answers "can sym vanish", while recognition
// needs to know which completed instance of sym vanished, so the dot is
// advanced only once an actual Complete item for sym is found, above.
func predictItem(g *grammar.Grammar, S *forest.StateSet, i int, it forest.Item) {
	sym := it.NextSymbol()
	for _, r := range g.RulesFor(sym) {
		insertPredicted(S, r, uint64(i))
	}
	for _, cause := range S.CompletedForHead(sym, uint64(i)) {
		S.Insert(it.Advance(uint64(i)), forest.Complete(it, cause))
	}
}

// insertPredicted adds the dot-0 item for rule at position at to S. An
// ε-production's dot-0 item is already Complete, so it is recorded with
// an EmptyDerivation rather than left as an unexplained hypothesis.
func insertPredicted(S *forest.StateSet, rule *grammar.Rule, at uint64) {
	predicted := forest.NewItem(rule, at)
	if rule.IsEpsilon() {
		S.Insert(predicted, forest.Empty())
	} else {
		S.InsertPrediction(predicted)
	}
}

// completeItem advances every item in S_{it.Start} that was waiting on
// it.Rule.LHS, recording a Complete derivation for each. it.Start may
// equal i (a nullable completion closing within the same state set).
func completeItem(ps *forest.ParseState, i int, it forest.Item) {
	origin := ps.Set(int(it.Start))
	S := ps.Set(i)
	for _, pred := range origin.IncompleteWithNext(it.Rule.LHS) {
		S.Insert(pred.Advance(uint64(i)), forest.Complete(pred, it))
	}
}
