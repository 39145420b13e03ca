/*
Package earlex provides a general context-free Earley recognizer, a shared
parse-forest extractor and two derivation walkers (a concrete-syntax-tree
builder and a semantic evaluator).

Earley's algorithm, unlike LL/LR table-driven parsers, accepts any
context-free grammar — ambiguous, left-recursive, right-recursive, or
riddled with ε-productions — without requiring the grammar to be massaged
into a restricted form first. The price is a cubic worst-case bound instead
of linear, which for the sizes of grammar this package targets (hand-written
language front-ends, DSLs, configuration grammars) is rarely felt.

The package is organized as four concerns, leaves first:

  - github.com/tpeters/earlex/grammar: build and freeze a Grammar.
  - github.com/tpeters/earlex/earley: recognize a token stream against a Grammar.
  - github.com/tpeters/earlex/forest: the items, derivations and state sets a
    recognizer run produces (a shared, packed representation of all parses).
  - github.com/tpeters/earlex/walk: walk the forest to emit concrete syntax
    trees or user-defined semantic values, enumerating every derivation when
    the grammar is ambiguous.

A worked introduction to the algorithm and the nullable-completion fix
applied here may be found in "Practical Earley Parsing" by John Aycock and
R. Nigel Horspool (2002), and in Dick Grune & Ceriel J.H. Jacobs, "Parsing
Techniques", 2nd ed., section 7.2.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package earlex
