package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "fmt"

// NoAcceptingParseError is returned when the ParseState handed to a
// TreeBuilder or Evaluator has no accepting item — the recognizer should
// have reported a ParseError already, but a caller that calls EvalOne or
// EvalAll directly on a rejected ParseState gets this instead of a panic.
type NoAcceptingParseError struct{}

func (e *NoAcceptingParseError) Error() string {
	return "no accepting parse in this parse state"
}

// StuckWalkError is returned (or, if the panic-on-stuck-walk configuration
// flag is set, turned into a panic) when every derivation recorded for an
// accepting item leads back into a cycle — a forest built by a correct
// recognizer should never be entirely cyclic at an accepting item, so
// this indicates a recognizer bug rather than a grammar-level rejection.
type StuckWalkError struct {
	Rule string
}

func (e *StuckWalkError) Error() string {
	return fmt.Sprintf("walk stuck: no acyclic derivation found for %s", e.Rule)
}

// UnhandledRuleError is returned by Evaluator.EvalOne/EvalAll when a Node
// folds through a rule with no registered RuleAction and a child count
// other than one (ε-productions included), so the single-child identity
// default does not apply.
type UnhandledRuleError struct {
	Rule string
}

func (e *UnhandledRuleError) Error() string {
	return fmt.Sprintf("no action registered for rule %q", e.Rule)
}

// LeafFnError wraps an error returned by a registered LeafFunc.
type LeafFnError struct {
	Lexeme string
	Err    error
}

func (e *LeafFnError) Error() string {
	return fmt.Sprintf("leaf function failed on %q: %v", e.Lexeme, e.Err)
}

func (e *LeafFnError) Unwrap() error {
	return e.Err
}

// ActionError wraps an error returned by a registered RuleAction.
type ActionError struct {
	Rule string
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action for rule %q failed: %v", e.Rule, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
