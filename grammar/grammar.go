package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Grammar is an immutable bundle: the set of declared symbols, the ordered
// list of rules, and a distinguished start symbol. Build one with
// GrammarBuilder; a Grammar itself offers no mutators and may be shared
// freely across concurrent parses (spec.md §5).
type Grammar struct {
	name     string
	symbols  *symbolTable
	rules    []*Rule
	start    *Symbol
	nullable map[*Symbol]bool
}

func newGrammar(name string, symbols *symbolTable, rules []*Rule, start *Symbol) *Grammar {
	return &Grammar{
		name:     name,
		symbols:  symbols,
		rules:    rules,
		start:    start,
		nullable: computeNullable(rules),
	}
}

// Name returns the grammar's diagnostic name, as given to NewGrammarBuilder.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the grammar's distinguished start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Symbol looks up a declared symbol by name, or returns nil.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols.resolve(name)
}

// Rules returns all rules, in declaration order, indexed by Serial.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule returns the rule with the given serial number.
func (g *Grammar) Rule(serial int) *Rule {
	return g.rules[serial]
}

// RulesFor returns every rule whose head is sym, in declaration order.
func (g *Grammar) RulesFor(sym *Symbol) []*Rule {
	var out []*Rule
	for _, r := range g.rules {
		if r.LHS == sym {
			out = append(out, r)
		}
	}
	return out
}

// DerivesEpsilon reports whether sym can derive the empty string. Computed
// once, at Finalize time, by least-fixed-point over rule bodies (spec.md
// §9): a nonterminal is nullable if some rule for it has an empty body, or
// a body consisting entirely of already-known-nullable symbols. Terminals
// are never nullable.
func (g *Grammar) DerivesEpsilon(sym *Symbol) bool {
	if sym == nil || sym.IsTerminal() {
		return false
	}
	return g.nullable[sym]
}

// EachSymbol iterates over every declared symbol, in declaration order.
func (g *Grammar) EachSymbol(fn func(*Symbol)) {
	g.symbols.each(fn)
}

// Equal reports structural equality: the same set of symbol names with
// the same kinds, and the same set of rules (by label), independent of
// declaration order. This realizes spec.md §8 property 5
// (order-independence): grammars built by adding the same rules/symbols
// in a different order compare Equal.
func (g *Grammar) Equal(other *Grammar) bool {
	if other == nil {
		return false
	}
	if g.start.Name != other.start.Name {
		return false
	}
	if g.symbols.size() != other.symbols.size() {
		return false
	}
	eq := true
	g.symbols.each(func(s *Symbol) {
		os := other.symbols.resolve(s.Name)
		if os == nil || os.kind != s.kind {
			eq = false
		}
	})
	if !eq {
		return false
	}
	if len(g.rules) != len(other.rules) {
		return false
	}
	seen := make(map[string]int)
	for _, r := range g.rules {
		seen[r.Label()]++
	}
	for _, r := range other.rules {
		seen[r.Label()]--
	}
	for _, count := range seen {
		if count != 0 {
			return false
		}
	}
	return true
}

func computeNullable(rules []*Rule) map[*Symbol]bool {
	nullable := make(map[*Symbol]bool)
	changed := true
	for changed {
		changed = false
		for _, r := range rules {
			if nullable[r.LHS] {
				continue
			}
			allNullable := true
			for _, s := range r.RHS {
				if s.IsTerminal() || !nullable[s] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[r.LHS] = true
				changed = true
			}
		}
	}
	return nullable
}
