package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Kind distinguishes the two variants of Symbol.
type Kind int8

const (
	// Nonterminal symbols carry a unique name and no match predicate.
	Nonterminal Kind = iota
	// Terminal symbols carry a unique name and a lexeme-match predicate.
	Terminal
)

// Symbol is a tagged union: a Nonterminal, identified solely by name, or a
// Terminal, identified by name plus a behavioral match predicate over
// input lexemes. Equality of two Symbols is by name; within one grammar
// names are unique across both variants (see Grammar's invariant).
type Symbol struct {
	Name  string
	kind  Kind
	match func(lexeme string) bool // nil for nonterminals
}

func newNonterminal(name string) *Symbol {
	return &Symbol{Name: name, kind: Nonterminal}
}

func newTerminal(name string, predicate func(string) bool) *Symbol {
	return &Symbol{Name: name, kind: Terminal, match: predicate}
}

// IsTerminal reports whether the symbol is a Terminal.
func (s *Symbol) IsTerminal() bool {
	return s.kind == Terminal
}

// IsNonterminal reports whether the symbol is a Nonterminal.
func (s *Symbol) IsNonterminal() bool {
	return s.kind == Nonterminal
}

// Matches reports whether a terminal symbol's predicate accepts lexeme. It
// always returns false for nonterminal symbols.
func (s *Symbol) Matches(lexeme string) bool {
	return s.kind == Terminal && s.match != nil && s.match(lexeme)
}

func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}
