package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "strings"

// Rule is an ordered pair (head, body): head is a nonterminal symbol and
// body is a finite, possibly empty, ordered sequence of symbols. An empty
// body is an ε-production. Serial is the rule's index within its
// grammar's rule list, assigned at Finalize time; it is carried for
// diagnostics and for callers that want a stable rule identity cheaper
// than comparing Label strings.
type Rule struct {
	Serial int
	LHS    *Symbol
	RHS    []*Symbol
}

// IsEpsilon reports whether this rule has an empty body.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

// Label returns the canonical printed form "HEAD -> s1 s2 ... sk", with a
// single space between symbols, or "HEAD -> " (trailing space, no body)
// for an ε-production. This is the key by which semantic actions are
// registered and by which tree nodes are identified in golden tests.
func (r *Rule) Label() string {
	var b strings.Builder
	b.WriteString(r.LHS.Name)
	b.WriteString(" -> ")
	for i, s := range r.RHS {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.Name)
	}
	return b.String()
}

func (r *Rule) String() string {
	return r.Label()
}
