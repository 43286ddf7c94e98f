// Package dfa implements a complete deterministic finite automaton:
// subset construction from an nfa.NFA, Hopcroft-style minimization, DFA
// execution, and synthesis back into a regular expression.
package dfa

import "fmt"

// ErrorKind classifies dfa package errors into a closed enumeration.
type ErrorKind uint8

const (
	// InvalidState indicates an operation referenced a state id that is
	// not part of the automaton.
	InvalidState ErrorKind = iota

	// InvalidTarget indicates a transition's destination state id is not
	// part of the automaton.
	InvalidTarget

	// InvalidSymbol indicates a transition, or a Run input, used a
	// symbol that is not in the automaton's alphabet.
	InvalidSymbol

	// DuplicateTransition indicates an attempt to register a transition
	// for a (state, symbol) pair that already has one. A
	// DFA's transition function maps each pair to at most one state, so
	// unlike nfa.Builder.AddTransition this is always an error.
	DuplicateTransition

	// IncompleteAutomaton indicates an operation required a total transition
	// function (every state defined for every alphabet symbol) but the
	// automaton has at least one missing transition.
	IncompleteAutomaton

	// InvalidConfig indicates a Config value failed Config.Validate.
	InvalidConfig
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidState:
		return "InvalidState"
	case InvalidTarget:
		return "InvalidTarget"
	case InvalidSymbol:
		return "InvalidSymbol"
	case DuplicateTransition:
		return "DuplicateTransition"
	case IncompleteAutomaton:
		return "IncompleteAutomaton"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// DFAError is the error type returned by every public dfa package entry
// point. Kind is stable and intended for errors.Is comparisons; Message
// is a human-readable detail that may change between versions.
type DFAError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DFAError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dfa: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dfa: %s", e.Message)
}

// Unwrap returns the underlying error, if any, for errors.Is/As.
func (e *DFAError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is by Kind, ignoring Message.
func (e *DFAError) Is(target error) bool {
	t, ok := target.(*DFAError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrSymbolNotInAlphabet is returned by Run when the input string
// contains a symbol outside the DFA's alphabet. The reference
// implementation leaves this case unspecified; this package treats it as
// a hard error rather than silently rejecting or panicking.
var ErrSymbolNotInAlphabet = &DFAError{
	Kind:    InvalidSymbol,
	Message: "input contains a symbol outside the DFA alphabet",
}
