package earley

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "github.com/tpeters/earlex"

// TokenCursor is the recognizer's only external contract: a pull-based,
// forward-only source of tokens. Recognize calls Next until it returns
// ok == false, then treats that as end of input. A cursor is opaque — the
// recognizer never rewinds, peeks ahead, or inspects anything about how
// tokens are produced; tokenizing the input is deliberately left to the
// caller (spec.md §1, §6).
type TokenCursor interface {
	Next() (tok earlex.Token, ok bool)
}

// SliceCursor is a trivial TokenCursor over an in-memory slice of tokens,
// provided for tests and small embedders that already have their input
// fully tokenized. It is the only scanner-shaped code in this module —
// there is no lexer generator and no backtracking.
type SliceCursor struct {
	tokens []earlex.Token
	pos    int
}

// NewSliceCursor wraps tokens as a TokenCursor.
func NewSliceCursor(tokens []earlex.Token) *SliceCursor {
	return &SliceCursor{tokens: tokens}
}

// Next returns the next token in the slice, or ok == false once exhausted.
func (c *SliceCursor) Next() (earlex.Token, bool) {
	if c.pos >= len(c.tokens) {
		return nil, false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}
