package forest

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/tpeters/earlex"
	"github.com/tpeters/earlex/grammar"
)

// ParseState is the artifact a recognizer run produces: the grammar it was
// run against, the sequence of state sets S₀…Sₙ it built, and the tokens
// consumed along the way (spec.md §4.3). It is read-only from the caller's
// perspective — forest.Derivation back-pointers are how the tree builder
// walks it, never mutation.
type ParseState struct {
	Grammar *grammar.Grammar
	States  []*StateSet
	Tokens  []earlex.Token // Tokens[i] is the token that advanced Sᵢ into Sᵢ₊₁
}

// NewParseState allocates a ParseState with n+1 empty state sets
// (S₀ through Sₙ) for a run over n input tokens.
func NewParseState(g *grammar.Grammar, n int) *ParseState {
	states := make([]*StateSet, n+1)
	for i := range states {
		states[i] = NewStateSet()
	}
	return &ParseState{Grammar: g, States: states, Tokens: make([]earlex.Token, 0, n)}
}

// NewEmptyParseState allocates a ParseState holding only S₀, for a
// recognizer that pulls tokens from a cursor and does not know the input
// length in advance. Use AppendStateSet and AppendToken to grow it.
func NewEmptyParseState(g *grammar.Grammar) *ParseState {
	return &ParseState{Grammar: g, States: []*StateSet{NewStateSet()}}
}

// AppendStateSet grows the ParseState by one empty state set and returns
// it, ready for the recognizer's next position.
func (ps *ParseState) AppendStateSet() *StateSet {
	s := NewStateSet()
	ps.States = append(ps.States, s)
	return s
}

// AppendToken records the token consumed to reach the state set most
// recently added by AppendStateSet.
func (ps *ParseState) AppendToken(tok earlex.Token) {
	ps.Tokens = append(ps.Tokens, tok)
}

// NumSets returns the number of state sets, n+1 for n input tokens.
func (ps *ParseState) NumSets() int {
	return len(ps.States)
}

// Set returns the state set Sᵢ. Panics on an out-of-range i, exactly as a
// slice index would — there is no recoverable meaning for an index outside
// [0, NumSets()).
func (ps *ParseState) Set(i int) *StateSet {
	return ps.States[i]
}

// TokenAt returns the token consumed to advance from Sᵢ to Sᵢ₊₁, and
// whether one exists (it does not for i == NumSets()-1, the final set).
func (ps *ParseState) TokenAt(i int) (earlex.Token, bool) {
	if i < 0 || i >= len(ps.Tokens) {
		return nil, false
	}
	return ps.Tokens[i], true
}

// AcceptingItems returns every item in the final state set Sₙ that is
// Complete, has Start == 0, and has head equal to the grammar's start
// symbol — the acceptance condition of spec.md §4.2. An empty result means
// the input was rejected.
func (ps *ParseState) AcceptingItems() []Item {
	last := ps.States[len(ps.States)-1]
	start := ps.Grammar.Start()
	var out []Item
	for _, it := range last.Items() {
		if it.Complete() && it.Start == 0 && it.Rule.LHS == start {
			out = append(out, it)
		}
	}
	return out
}

// ExpectedTerminals returns the names of every terminal symbol that some
// incomplete item in Sᵢ is waiting on, deduplicated and in first-seen
// order. This backs the "derivable from the incomplete items in the last
// non-empty state set" diagnostic of spec.md §7.
func (ps *ParseState) ExpectedTerminals(i int) []string {
	seen := linkedhashset.New()
	for _, it := range ps.States[i].Items() {
		sym := it.NextSymbol()
		if sym != nil && sym.IsTerminal() {
			seen.Add(sym.Name)
		}
	}
	out := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(string))
	}
	return out
}

// Export renders a compact, deterministic textual dump of every state set:
// one line per item, followed by its derivations indented beneath it.
// Intended for golden-file tests of state-set shape, not for end users.
func (ps *ParseState) Export() string {
	var b strings.Builder
	for i, set := range ps.States {
		fmt.Fprintf(&b, "S%d:\n", i)
		for _, it := range set.Items() {
			fmt.Fprintf(&b, "  %s\n", it)
			for _, d := range set.Derivations(it) {
				fmt.Fprintf(&b, "    <- %s\n", d)
			}
		}
	}
	return b.String()
}
