package forest

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/tpeters/earlex/grammar"
	"github.com/tpeters/earlex/internal/iteratable"
)

// StateSet is one Earley state set Sᵢ: an insertion-ordered, deduplicating
// collection of Items, each carrying every Derivation that produced it.
// Inserting an Item already present does not duplicate it — it merges the
// new Derivation onto the existing one, which is exactly what turns a
// grammar's ambiguity into a shared, polynomial-size forest instead of an
// exponential blow-up of duplicate items (spec.md §4.3).
//
// StateSet builds its worklist behavior directly on internal/iteratable.
// Set: the recognizer drives predict/scan/complete by calling IterateOnce
// once per state set and then Next/Current in a loop, and Insert may
// append new items mid-loop — they are picked up by the same pass, which
// is the fixed-point termination condition the Earley inner loop needs.
type StateSet struct {
	items       *iteratable.Set[Item]
	derivations map[Item]*iteratable.Set[Derivation]
}

// NewStateSet creates an empty state set.
func NewStateSet() *StateSet {
	return &StateSet{
		items:       iteratable.NewSet[Item](0),
		derivations: make(map[Item]*iteratable.Set[Derivation]),
	}
}

// Insert adds it to the set if not already present, and adds d to the set
// of derivations recorded for it (merging, not duplicating, if it was
// already present). Returns true if it was newly added. A newly added item
// is picked up by a worklist pass already in progress, so the recognizer
// itself does not need to consult the result.
func (s *StateSet) Insert(it Item, d Derivation) bool {
	isNew := s.items.Add(it)
	ds, ok := s.derivations[it]
	if !ok {
		ds = iteratable.NewSet[Derivation](1)
		s.derivations[it] = ds
	}
	ds.Add(d)
	return isNew
}

// InsertPrediction adds a freshly predicted item (Dot == 0, no derivation)
// if not already present. Returns true if it was newly added.
func (s *StateSet) InsertPrediction(it Item) bool {
	isNew := s.items.Add(it)
	if _, ok := s.derivations[it]; !ok {
		s.derivations[it] = iteratable.NewSet[Derivation](0)
	}
	return isNew
}

// Items returns every item in the set, in insertion order.
func (s *StateSet) Items() []Item {
	return s.items.Values()
}

// Size returns the number of items in the set.
func (s *StateSet) Size() int {
	return s.items.Size()
}

// Derivations returns every derivation recorded for it, in the order they
// were inserted. An item with no recorded derivations is a pure prediction
// (Dot == 0, a hypothesis rather than something derived).
func (s *StateSet) Derivations(it Item) []Derivation {
	ds, ok := s.derivations[it]
	if !ok {
		return nil
	}
	return ds.Values()
}

// IncompleteWithNext returns every item in the set that is not Complete and
// whose NextSymbol is sym, in insertion order. This is the predecessor
// search the completer runs against an earlier state set Sⱼ = S[item.
// Start] when item completes: every such predecessor advances its dot over
// sym via a CompleteDerivation.
func (s *StateSet) IncompleteWithNext(sym *grammar.Symbol) []Item {
	return s.items.Subset(func(it Item) bool {
		return !it.Complete() && it.NextSymbol() == sym
	}).Values()
}

// CompletedForHead returns every item in the set that is Complete, has
// Start == start, and has head sym, in insertion order. The predictor
// calls this right after predicting sym to catch up on any instance of
// sym that already completed earlier in the same pass — without this
// catch-up, a predecessor item predicted after such a completion would
// never learn about it, since a completer only looks forward from the
// point a completed item is processed, never backward (spec.md §9's
// ε-stability property depends on this symmetry).
func (s *StateSet) CompletedForHead(sym *grammar.Symbol, start uint64) []Item {
	return s.items.Subset(func(it Item) bool {
		return it.Complete() && it.Rule.LHS == sym && it.Start == start
	}).Values()
}

// IterateOnce resets the set's worklist cursor to the start. See Next.
func (s *StateSet) IterateOnce() {
	s.items.IterateOnce()
}

// Next advances the worklist cursor and reports whether an item is
// available at the new position, re-checking the set's current size on
// every call so items Inserted since the last Next are visited in the same
// pass.
func (s *StateSet) Next() bool {
	return s.items.Next()
}

// Current returns the item at the worklist cursor's current position.
// Only valid after a call to Next that returned true.
func (s *StateSet) Current() Item {
	return s.items.Item()
}
