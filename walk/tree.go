package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strings"

	"github.com/tpeters/earlex"
	"github.com/tpeters/earlex/grammar"
)

// Tree is the printed form a reconstructed parse takes: either a Leaf
// (one matched token) or a Node (one rule instance with its children).
// Both carry the Span of input they cover.
type Tree interface {
	Span() earlex.Span
	String() string
}

// Leaf wraps the token matched by a terminal in the grammar, together with
// the name of the terminal symbol that matched it — the name a grammar was
// built with (e.g. "number"), not the token's own Lexeme or TokType.
type Leaf struct {
	TermName string
	Token    earlex.Token
}

// Span returns the leaf token's span.
func (l *Leaf) Span() earlex.Span {
	return l.Token.Span()
}

func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q)", l.TermName, l.Token.Lexeme())
}

// Node is one instance of a grammar rule's application: the rule that
// matched, the span of input its whole right-hand side covers, and one
// child Tree per symbol in the rule's body, in order. A rule with an
// empty body produces a Node with no children, with From == To.
type Node struct {
	Rule     *grammar.Rule
	NodeSpan earlex.Span
	Children []Tree
}

// Span returns the span the underlying Earley item covered.
func (n *Node) Span() earlex.Span {
	return n.NodeSpan
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("Node(")
	b.WriteString(fmt.Sprintf("%q", n.Rule.Label()))
	b.WriteString(", [")
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("])")
	return b.String()
}
