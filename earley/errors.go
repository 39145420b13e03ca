package earley

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"

	"github.com/tpeters/earlex/forest"
	"github.com/tpeters/earlex/grammar"
)

// UnexpectedTokenError is returned when the token at Position matched no
// terminal expected by any item in the preceding state set — the
// recognizer's work-list for the next state set came up empty. Expected
// lists the terminal names that, had the input matched one of them, would
// have let the parse continue (spec.md §7).
type UnexpectedTokenError struct {
	Position uint64
	Lexeme   string
	Expected []string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q at position %d, expected one of %v", e.Lexeme, e.Position, e.Expected)
}

// UnexpectedEOFError is returned when the input ended with the final state
// set still holding an item mid-construct — waiting on a terminal that
// never arrived. Expected lists the terminal names that would have let the
// parse continue.
type UnexpectedEOFError struct {
	Expected []string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected one of %v", e.Expected)
}

// NoParseError is returned when the full input was consumed, scanning never
// stalled on a single bad token, and the final state set closed with no item
// left waiting on a terminal — yet no accepting item ends at position n. The
// grammar simply does not accept this input of this length; Grammar and
// States are carried so a caller can inspect the complete forest built so
// far for diagnostics.
type NoParseError struct {
	Grammar *grammar.Grammar
	States  []*forest.StateSet
}

func (e *NoParseError) Error() string {
	return fmt.Sprintf("no parse: input fully consumed but no accepting item in grammar %q", e.Grammar.Name())
}
