package earlex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "fmt"

// TokType is a category type for a Token. Applications are free to use any
// int value; the recognizer never interprets a TokType itself and does not
// pass it to terminal match predicates, which see only the token's lexeme.
type TokType int

// Token is produced by a token cursor and consumed by the recognizer. Only
// Lexeme is used by terminal-match predicates; TokType and Span are carried
// along for walkers and diagnostics.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// Span captures a half-open range [From, To) of input positions. Every
// terminal and every reduced nonterminal in a parse forest is tagged with
// the span of input it covers.
type Span [2]uint64

// From returns the start of the span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the position just behind the end of the span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of the span.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull reports whether a span is the zero value.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
