package forest

import (
	"testing"

	"github.com/tpeters/earlex/grammar"
)

func buildAbGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewGrammarBuilder("ab")
	b.LHS("S").T("a", func(s string) bool { return s == "a" }).N("S").End()
	b.LHS("S").T("b", func(s string) bool { return s == "b" }).End()
	g, err := b.Finalize("S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestItemCompleteAndNextSymbol(t *testing.T) {
	g := buildAbGrammar(t)
	rule := g.RulesFor(g.Symbol("S"))[0] // S -> a S
	it := NewItem(rule, 0)
	if it.Complete() {
		t.Fatalf("freshly predicted item should not be complete")
	}
	if it.NextSymbol() != g.Symbol("a") {
		t.Fatalf("expected next symbol a, got %v", it.NextSymbol())
	}
	it = it.Advance(1)
	if it.NextSymbol() != g.Symbol("S") {
		t.Fatalf("expected next symbol S, got %v", it.NextSymbol())
	}
	it = it.Advance(1)
	if !it.Complete() {
		t.Fatalf("item with dot at end of body should be complete")
	}
}

func TestStateSetMergesDerivationsOnDuplicateInsert(t *testing.T) {
	g := buildAbGrammar(t)
	rule := g.RulesFor(g.Symbol("S"))[1] // S -> b
	pred := NewItem(rule, 0)
	completed := pred.Advance(1)

	s := NewStateSet()
	if !s.Insert(completed, Scan(pred, "b")) {
		t.Fatalf("first insert should report new")
	}
	// A second, independent derivation of the same item must merge, not duplicate.
	otherRule := g.RulesFor(g.Symbol("S"))[0]
	otherPred := NewItem(otherRule, 0)
	if s.Insert(completed, Complete(otherPred, completed)) {
		t.Fatalf("second insert of the same item should not report new")
	}
	if s.Size() != 1 {
		t.Fatalf("expected exactly one item after merge, got %d", s.Size())
	}
	if got := len(s.Derivations(completed)); got != 2 {
		t.Fatalf("expected 2 merged derivations, got %d", got)
	}
}

func TestStateSetWorklistGrowsWhileIterating(t *testing.T) {
	g := buildAbGrammar(t)
	rule := g.RulesFor(g.Symbol("S"))[1]
	s := NewStateSet()
	s.InsertPrediction(NewItem(rule, 0))

	visited := 0
	s.IterateOnce()
	for s.Next() {
		visited++
		it := s.Current()
		if !it.Complete() && visited == 1 {
			// Simulate a predict step appending a new hypothesis mid-pass.
			s.InsertPrediction(it.Advance(0))
		}
	}
	if visited != 2 {
		t.Fatalf("expected worklist to pick up the item appended mid-iteration, visited=%d", visited)
	}
}

func TestIncompleteWithNext(t *testing.T) {
	g := buildAbGrammar(t)
	rule := g.RulesFor(g.Symbol("S"))[0] // S -> a S
	s := NewStateSet()
	waiting := NewItem(rule, 0).Advance(1) // dot before S
	s.InsertPrediction(waiting)
	s.InsertPrediction(NewItem(rule, 0)) // dot before a, not waiting on S

	found := s.IncompleteWithNext(g.Symbol("S"))
	if len(found) != 1 || found[0] != waiting {
		t.Fatalf("expected exactly the item waiting on S, got %v", found)
	}
}

func TestParseStateAcceptingItems(t *testing.T) {
	g := buildAbGrammar(t)
	rule := g.RulesFor(g.Symbol("S"))[1] // S -> b
	ps := NewParseState(g, 1)
	accepted := NewItem(rule, 0).Advance(1)
	ps.Set(1).Insert(accepted, Scan(NewItem(rule, 0), "b"))

	got := ps.AcceptingItems()
	if len(got) != 1 || got[0] != accepted {
		t.Fatalf("expected the single complete start-rule item to be accepting, got %v", got)
	}
}

func TestExpectedTerminalsDeduplicates(t *testing.T) {
	g := buildAbGrammar(t)
	s0 := NewStateSet()
	for _, r := range g.RulesFor(g.Symbol("S")) {
		s0.InsertPrediction(NewItem(r, 0))
		s0.InsertPrediction(NewItem(r, 1)) // a second item waiting on the same terminal
	}
	ps := &ParseState{Grammar: g, States: []*StateSet{s0}}
	expected := ps.ExpectedTerminals(0)
	if len(expected) != 2 {
		t.Fatalf("expected 2 distinct terminals (a, b), got %v", expected)
	}
}
