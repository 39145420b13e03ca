package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "fmt"

// DuplicateSymbolError is returned when a symbol name is declared twice
// with conflicting variants (e.g. first as a nonterminal, then as a
// terminal, or vice versa).
type DuplicateSymbolError struct {
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("grammar: symbol %q already declared with a different kind", e.Name)
}

// UnknownSymbolError is returned when a rule references a head or body
// name that has not been declared.
type UnknownSymbolError struct {
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("grammar: symbol %q is not declared", e.Name)
}

// UnknownStartError is returned by Finalize when the start symbol has not
// been declared.
type UnknownStartError struct {
	Name string
}

func (e *UnknownStartError) Error() string {
	return fmt.Sprintf("grammar: start symbol %q is not declared", e.Name)
}

// NoRulesForStartError is returned by Finalize when the start symbol has
// no productions.
type NoRulesForStartError struct {
	Name string
}

func (e *NoRulesForStartError) Error() string {
	return fmt.Sprintf("grammar: start symbol %q has no rules", e.Name)
}
