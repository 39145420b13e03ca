package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// GrammarBuilder is a mutable staging area for accumulating symbols and
// rules. It is inert after Finalize succeeds — further calls on it do not
// affect the Grammar already returned. Create one with NewGrammarBuilder.
type GrammarBuilder struct {
	name    string
	symbols *symbolTable
	rules   *arraylist.List // ordered []*Rule, pre-Serial assignment
	err     error           // first error encountered, sticky
}

// NewGrammarBuilder creates an empty builder for a grammar named name.
// The name is used only for diagnostics.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:    name,
		symbols: newSymbolTable(),
		rules:   arraylist.New(),
	}
}

func (b *GrammarBuilder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return err
}

// DeclareNonterminal registers a Nonterminal symbol named name. Fails with
// *DuplicateSymbolError if name is already declared with a different kind.
// Declaring the same nonterminal name twice is not an error.
func (b *GrammarBuilder) DeclareNonterminal(name string) error {
	if old := b.symbols.resolve(name); old != nil {
		if old.IsTerminal() {
			return b.fail(&DuplicateSymbolError{Name: name})
		}
		return nil
	}
	b.symbols.define(newNonterminal(name))
	return nil
}

// DeclareTerminal registers a Terminal symbol named name with the given
// lexeme-match predicate. Fails with *DuplicateSymbolError if name is
// already declared as a Nonterminal. Redeclaring an existing terminal
// stores a new Symbol with predicate under name; rules added before the
// redeclaration keep the earlier Symbol and its predicate.
func (b *GrammarBuilder) DeclareTerminal(name string, predicate func(lexeme string) bool) error {
	if old := b.symbols.resolve(name); old != nil && old.IsNonterminal() {
		return b.fail(&DuplicateSymbolError{Name: name})
	}
	b.symbols.define(newTerminal(name, predicate))
	return nil
}

// AddRule registers a rule head -> body. Fails with *UnknownSymbolError if
// head is not a declared nonterminal, or if any body name is undeclared.
// body may be empty, denoting an ε-production.
func (b *GrammarBuilder) AddRule(head string, body ...string) error {
	h := b.symbols.resolve(head)
	if h == nil || h.IsTerminal() {
		return b.fail(&UnknownSymbolError{Name: head})
	}
	rhs := make([]*Symbol, len(body))
	for i, name := range body {
		s := b.symbols.resolve(name)
		if s == nil {
			return b.fail(&UnknownSymbolError{Name: name})
		}
		rhs[i] = s
	}
	b.rules.Add(&Rule{LHS: h, RHS: rhs})
	return nil
}

// Finalize freezes the builder into an immutable Grammar keyed by the
// declared start symbol. Fails with *UnknownStartError if start is
// undeclared, with *NoRulesForStartError if start has no productions, or
// with the first error recorded by an earlier Declare/AddRule call.
func (b *GrammarBuilder) Finalize(start string) (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	startSym := b.symbols.resolve(start)
	if startSym == nil || startSym.IsTerminal() {
		return nil, &UnknownStartError{Name: start}
	}
	rules := make([]*Rule, b.rules.Size())
	hasStartRule := false
	for i := 0; i < b.rules.Size(); i++ {
		v, _ := b.rules.Get(i)
		r := v.(*Rule)
		r.Serial = i
		rules[i] = r
		if r.LHS == startSym {
			hasStartRule = true
		}
	}
	if !hasStartRule {
		return nil, &NoRulesForStartError{Name: start}
	}
	symbols := newSymbolTable()
	b.symbols.each(func(s *Symbol) { symbols.define(s) })
	return newGrammar(b.name, symbols, rules, startSym), nil
}

// --- Fluent rule construction, mirroring the teacher's b.LHS(...).N(...).T(...).End() idiom ---

// LHS begins a fluent rule declaration for the nonterminal head. head is
// auto-declared as a Nonterminal if not already known.
func (b *GrammarBuilder) LHS(head string) *RuleBuilder {
	_ = b.DeclareNonterminal(head)
	return &RuleBuilder{b: b, head: head}
}

// RuleBuilder accumulates the body of one rule before committing it with End.
type RuleBuilder struct {
	b    *GrammarBuilder
	head string
	body []string
}

// N appends a nonterminal reference to the rule body, auto-declaring it if
// this is its first appearance anywhere in the grammar.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	_ = rb.b.DeclareNonterminal(name)
	rb.body = append(rb.body, name)
	return rb
}

// T appends a terminal reference to the rule body. If name has not been
// declared yet, it is declared with predicate; if it has, the existing
// predicate is kept and predicate is ignored (terminals are shared across
// the rules that mention them).
func (rb *RuleBuilder) T(name string, predicate func(lexeme string) bool) *RuleBuilder {
	if rb.b.symbols.resolve(name) == nil {
		_ = rb.b.DeclareTerminal(name, predicate)
	}
	rb.body = append(rb.body, name)
	return rb
}

// End commits the accumulated rule and returns the parent builder, so
// further LHS(...)... chains can follow.
func (rb *RuleBuilder) End() *GrammarBuilder {
	_ = rb.b.AddRule(rb.head, rb.body...)
	return rb.b
}
