// Package regexfsm provides a regular-language toolkit that walks a
// pattern through every classical automaton stage: Thompson NFA
// construction, subset-construction determinization, Hopcroft-style
// minimization, and synthesis back into a regular expression.
//
// The pattern grammar is deliberately small:
//
//	Expr   := Concat ('|' Concat)*
//	Concat := Factor+
//	Factor := Atom '*'?
//	Atom   := Symbol | '(' Expr ')'
//
// with '*' binding tighter than concatenation, which in turn binds
// tighter than '|'.
//
// Basic usage:
//
//	re, err := regexfsm.CompileNFA("a|(ab|b)*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := re.ToDFA()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	min, err := d.Minimize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := min.Run("abab")
//
// The work is split into two packages, nfa and dfa; dfa imports nfa for
// subset construction, and nfa never imports dfa. This package is the
// only one that imports both, so it is where NFA-to-DFA conversion
// methods live.
package regexfsm

import (
	"github.com/regexfsm/regexfsm/dfa"
	"github.com/regexfsm/regexfsm/nfa"
)

// NFA wraps a compiled nondeterministic finite automaton.
//
// An NFA is safe to use concurrently from multiple goroutines: every
// operation on it is read-only.
type NFA struct {
	inner   *nfa.NFA
	pattern string
}

// CompileNFA parses pattern and builds its Thompson-construction NFA.
// Returns an error if the pattern is malformed (unbalanced parentheses,
// a forbidden adjacent token pair) or structurally invalid (an empty
// alternation branch).
//
// Example:
//
//	re, err := regexfsm.CompileNFA(`a|(ab|b)*`)
func CompileNFA(pattern string) (*NFA, error) {
	n, err := nfa.FromPattern(pattern)
	if err != nil {
		return nil, err
	}
	return &NFA{inner: n, pattern: pattern}, nil
}

// MustCompileNFA compiles pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time, such as
// those embedded directly in source.
func MustCompileNFA(pattern string) *NFA {
	re, err := CompileNFA(pattern)
	if err != nil {
		panic("regexfsm: CompileNFA(" + pattern + "): " + err.Error())
	}
	return re
}

// Pattern returns the source pattern this NFA was compiled from.
func (n *NFA) Pattern() string {
	return n.pattern
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int {
	return n.inner.NumStates()
}

// ToDFA determinizes the NFA via subset construction. The result is
// always a complete DFA (see DFA.IsComplete).
func (n *NFA) ToDFA() (*DFA, error) {
	d, err := dfa.FromNFA(n.inner)
	if err != nil {
		return nil, err
	}
	return &DFA{inner: d}, nil
}

// String returns a human-readable transition table for the automaton.
func (n *NFA) String() string {
	return n.inner.String()
}

// DFA wraps a deterministic finite automaton, either produced by
// NFA.ToDFA or built directly with dfa.Builder and wrapped via FromDFA.
//
// A DFA is safe to use concurrently from multiple goroutines: every
// operation on it is read-only.
type DFA struct {
	inner *dfa.DFA
}

// FromDFA wraps an already-constructed dfa.DFA (for example the output
// of a hand-assembled dfa.Builder) as a DFA.
func FromDFA(d *dfa.DFA) *DFA {
	return &DFA{inner: d}
}

// CompileDFA parses pattern, builds its NFA, and determinizes it in one
// step. It is equivalent to CompileNFA followed by ToDFA.
func CompileDFA(pattern string) (*DFA, error) {
	n, err := CompileNFA(pattern)
	if err != nil {
		return nil, err
	}
	return n.ToDFA()
}

// MustCompileDFA compiles and determinizes pattern, panicking on
// failure.
func MustCompileDFA(pattern string) *DFA {
	d, err := CompileDFA(pattern)
	if err != nil {
		panic("regexfsm: CompileDFA(" + pattern + "): " + err.Error())
	}
	return d
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int {
	return d.inner.NumStates()
}

// IsComplete reports whether every state has an outgoing transition for
// every alphabet symbol.
func (d *DFA) IsComplete() bool {
	return d.inner.IsComplete()
}

// Run decides whether input is accepted by the automaton.
func (d *DFA) Run(input string) (bool, error) {
	return d.inner.Run(input)
}

// Minimize returns the minimal DFA accepting the same language as d.
func (d *DFA) Minimize() (*DFA, error) {
	m, err := dfa.Minimize(d.inner)
	if err != nil {
		return nil, err
	}
	return &DFA{inner: m}, nil
}

// ToRegex synthesizes a regular expression whose language equals d's,
// via Kleene's state-elimination construction.
func (d *DFA) ToRegex() string {
	return dfa.ToRegex(d.inner)
}

// String returns a human-readable transition table for the automaton.
func (d *DFA) String() string {
	return d.inner.String()
}
