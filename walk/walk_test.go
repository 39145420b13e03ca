package walk

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tpeters/earlex"
	"github.com/tpeters/earlex/earley"
	"github.com/tpeters/earlex/grammar"
)

type simpleToken struct {
	lexeme string
	span   earlex.Span
}

func (s simpleToken) TokType() earlex.TokType { return 0 }
func (s simpleToken) Lexeme() string          { return s.lexeme }
func (s simpleToken) Span() earlex.Span       { return s.span }

func tokenize(lexemes ...string) []earlex.Token {
	toks := make([]earlex.Token, len(lexemes))
	for i, l := range lexemes {
		toks[i] = simpleToken{lexeme: l, span: earlex.Span{uint64(i), uint64(i + 1)}}
	}
	return toks
}

func exact(lexeme string) func(string) bool {
	return func(s string) bool { return s == lexeme }
}

// S -> S S | b, input "b b b": the classic ambiguous-grammar corner case
// of spec.md §8 — expect exactly 2 trees, a left- and a right-associating
// bracketing of the three b's.
func TestEvalAllAmbiguousSSorB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	b := grammar.NewGrammarBuilder("SS-or-b")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").T("b", exact("b")).End()
	g, err := b.Finalize("S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ps, err := earley.Recognize(g, earley.NewSliceCursor(tokenize("b", "b", "b")))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	trees, err := (TreeBuilder{}).EvalAll(ps)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("expected exactly 2 trees for 'b b b', got %d: %v", len(trees), trees)
	}
}

// The ε-padded variant from spec.md §8: S -> S S X, X -> ε, S -> b, same
// input, same count of distinct trees.
func TestEvalAllAmbiguousEpsilonPadded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	b := grammar.NewGrammarBuilder("SSX")
	b.LHS("S").N("S").N("S").N("X").End()
	b.LHS("S").T("b", exact("b")).End()
	b.LHS("X").End()
	g, err := b.Finalize("S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ps, err := earley.Recognize(g, earley.NewSliceCursor(tokenize("b", "b", "b")))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	trees, err := (TreeBuilder{}).EvalAll(ps)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("expected exactly 2 trees for the ε-padded grammar, got %d: %v", len(trees), trees)
	}
}

// "1+(2*3-4)" under a precedence grammar must parse to exactly one tree.
func TestEvalAllPrecedenceMath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	isDigits := func(s string) bool {
		if s == "" {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	b := grammar.NewGrammarBuilder("Math")
	b.LHS("Sum").N("Sum").T("+", exact("+")).N("Mul").End()
	b.LHS("Sum").N("Sum").T("-", exact("-")).N("Mul").End()
	b.LHS("Sum").N("Mul").End()
	b.LHS("Mul").N("Mul").T("*", exact("*")).N("Pow").End()
	b.LHS("Mul").N("Mul").T("/", exact("/")).N("Pow").End()
	b.LHS("Mul").N("Pow").End()
	b.LHS("Pow").T("number", isDigits).End()
	b.LHS("Pow").T("(", exact("(")).N("Sum").T(")", exact(")")).End()
	g, err := b.Finalize("Sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ps, err := earley.Recognize(g, earley.NewSliceCursor(tokenize("1", "+", "(", "2", "*", "3", "-", "4", ")")))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	trees, err := (TreeBuilder{}).EvalAll(ps)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree for '1+(2*3-4)', got %d", len(trees))
	}
	root := trees[0]
	if root.Rule.Label() != "Sum -> Sum + Mul" {
		t.Errorf("expected root rule 'Sum -> Sum + Mul', got %q", root.Rule.Label())
	}
	mulNode, ok := root.Children[2].(*Node)
	if !ok || mulNode.Rule.Label() != "Mul -> Pow" {
		t.Fatalf("expected third child of root to reduce via 'Mul -> Pow'")
	}
	powNode, ok := mulNode.Children[0].(*Node)
	if !ok || powNode.Rule.Label() != "Pow -> ( Sum )" {
		t.Fatalf("expected the parenthesized group, got %v", mulNode.Children[0])
	}
	// Inside the parens, "2*3-4" must bind as (2*3)-4: the top rule is the
	// '-' alternative, with '2*3' nested as its Mul operand.
	innerSum, ok := powNode.Children[1].(*Node)
	if !ok || innerSum.Rule.Label() != "Sum -> Sum - Mul" {
		t.Fatalf("expected inner 'Sum -> Sum - Mul', got %v", powNode.Children[1])
	}
	leftMul, ok := innerSum.Children[0].(*Node)
	for ok && leftMul.Rule.Label() == "Sum -> Mul" {
		leftMul, ok = leftMul.Children[0].(*Node)
	}
	if !ok || leftMul.Rule.Label() != "Mul -> Mul * Pow" {
		t.Fatalf("expected '2*3' to bind as 'Mul -> Mul * Pow', got %v", innerSum.Children[0])
	}
}

// E -> E+E | E*E | n on "0*1*2*3*4*5" (6 operands, 5 operators) must
// yield exactly Catalan(5) = 42 trees.
func TestEvalAllCatalanFive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	isDigit := func(s string) bool { return len(s) == 1 && s[0] >= '0' && s[0] <= '9' }
	b := grammar.NewGrammarBuilder("E")
	b.LHS("E").N("E").T("+", exact("+")).N("E").End()
	b.LHS("E").N("E").T("*", exact("*")).N("E").End()
	b.LHS("E").T("n", isDigit).End()
	g, err := b.Finalize("E")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ps, err := earley.Recognize(g, earley.NewSliceCursor(tokenize("0", "*", "1", "*", "2", "*", "3", "*", "4", "*", "5")))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	trees, err := (TreeBuilder{}).EvalAll(ps)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if len(trees) != 42 {
		t.Fatalf("expected Catalan(5) = 42 trees, got %d", len(trees))
	}
}

// P -> (P) | PP | ε on empty input: unbounded ε-ambiguity. EvalOne must
// terminate and return the shortest (ε) parse.
func TestEvalOneUnboundedEpsilonTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	b := grammar.NewGrammarBuilder("Paren")
	b.LHS("P").T("(", exact("(")).N("P").T(")", exact(")")).End()
	b.LHS("P").N("P").N("P").End()
	b.LHS("P").End()
	g, err := b.Finalize("P")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ps, err := earley.Recognize(g, earley.NewSliceCursor(nil))
	if err != nil {
		t.Fatalf("unexpected parse error on empty input: %v", err)
	}
	tree, err := (TreeBuilder{}).EvalOne(ps)
	if err != nil {
		t.Fatalf("expected EvalOne to terminate with a result, got error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected the shortest parse to be the bare ε-production, got %v", tree)
	}
}

// Leaf and Node must print in the canonical form spec.md §6 fixes:
// Leaf("terminal_name", "lexeme") and Node("rule_label", [child, …]), with
// Node("X -> ", []) for a childless ε-production.
func TestTreeStringCanonicalForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	b := grammar.NewGrammarBuilder("Paren")
	b.LHS("P").T("(", exact("(")).N("P").T(")", exact(")")).End()
	b.LHS("P").End()
	g, err := b.Finalize("P")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ps, err := earley.Recognize(g, earley.NewSliceCursor(tokenize("(", ")")))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	tree, err := (TreeBuilder{}).EvalOne(ps)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}

	want := `Node("P -> ( P )", [Leaf("(", "("), Node("P -> ", []), Leaf(")", ")")])`
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// E -> E+E | E*E | n on "3+4*2" with numeric actions must fold to
// {11.0, 14.0} under EvalAll.
func TestEvaluatorEvalAllArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earlex.walk")
	defer teardown()

	isDigit := func(s string) bool { return len(s) == 1 && s[0] >= '0' && s[0] <= '9' }
	b := grammar.NewGrammarBuilder("E")
	b.LHS("E").N("E").T("+", exact("+")).N("E").End()
	b.LHS("E").N("E").T("*", exact("*")).N("E").End()
	b.LHS("E").T("n", isDigit).End()
	g, err := b.Finalize("E")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ps, err := earley.Recognize(g, earley.NewSliceCursor(tokenize("3", "+", "4", "*", "2")))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	ev := NewEvaluator()
	ev.OnLeaf(func(tok earlex.Token) (interface{}, error) {
		if l := tok.Lexeme(); l == "+" || l == "*" {
			return l, nil
		}
		return strconv.ParseFloat(tok.Lexeme(), 64)
	})
	ev.On("E -> E + E", func(children []interface{}, _ earlex.Span) (interface{}, error) {
		return children[0].(float64) + children[2].(float64), nil
	})
	ev.On("E -> E * E", func(children []interface{}, _ earlex.Span) (interface{}, error) {
		return children[0].(float64) * children[2].(float64), nil
	})

	results, err := ev.EvalAll(ps)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	got := make(map[float64]bool, len(results))
	for _, r := range results {
		got[r.(float64)] = true
	}
	want := map[float64]bool{11.0: true, 14.0: true}
	if len(got) != len(want) {
		t.Fatalf("expected results %v, got %v", want, got)
	}
	for v := range want {
		if !got[v] {
			t.Errorf("expected result set to include %v, got %v", v, got)
		}
	}
}
