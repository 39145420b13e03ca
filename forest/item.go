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

	"github.com/tpeters/earlex/grammar"
)

// Item is an Earley item: a rule together with a dot position within its
// body and the [Start, End) span of input it spans so far (spec.md §3).
// Two items are identical exactly when all four fields compare equal, so
// Item is a plain comparable struct and needs no hashing to serve as a map
// key or a member of internal/iteratable.Set[Item].
type Item struct {
	Rule  *grammar.Rule
	Dot   int
	Start uint64
	End   uint64
}

// NewItem builds an item with the dot at position 0, start == end == at.
// This is the shape every predicted item takes before anything has been
// scanned or completed into it.
func NewItem(rule *grammar.Rule, at uint64) Item {
	return Item{Rule: rule, Dot: 0, Start: at, End: at}
}

// Complete reports whether the dot has reached the end of the rule's body.
func (it Item) Complete() bool {
	return it.Dot >= len(it.Rule.RHS)
}

// NextSymbol returns the symbol immediately after the dot, or nil if the
// item is Complete.
func (it Item) NextSymbol() *grammar.Symbol {
	if it.Complete() {
		return nil
	}
	return it.Rule.RHS[it.Dot]
}

// Advance returns a copy of it with the dot moved one position to the
// right and End set to newEnd. It does not mutate it.
func (it Item) Advance(newEnd uint64) Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Start: it.Start, End: newEnd}
}

func (it Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s -> ", it.Rule.LHS.Name)
	for i, s := range it.Rule.RHS {
		if i == it.Dot {
			b.WriteString("• ")
		}
		b.WriteString(s.Name)
		b.WriteString(" ")
	}
	if it.Dot == len(it.Rule.RHS) {
		b.WriteString("•")
	}
	fmt.Fprintf(&b, ", %d..%d]", it.Start, it.End)
	return b.String()
}
