package nfa

import (
	"fmt"
	"sort"
	"strings"
)

// StateID uniquely identifies an NFA state. States are always numbered
// densely from 0 by a Builder, so StateID doubles as a slice index.
type StateID uint32

// Symbol is a single input character. Epsilon is a reserved Symbol value
// that never appears in an NFA's alphabet; it marks a transition that
// consumes no input.
type Symbol = rune

// Epsilon is the sentinel symbol for an unlabeled (epsilon) transition.
//
// The reference implementation this package is modeled on reuses the NUL
// character '\x00' for this purpose. That is unsafe in Go: '\x00' is an
// ordinary, legally typeable rune, so a caller's pattern could collide
// with it. Epsilon is instead rune(-1), a value no UTF-8 decode and no
// rune literal can ever produce.
const Epsilon Symbol = -1

// nfaKey is the key of the NFA transition relation: a state paired with
// the symbol consumed leaving it. An NFA transition relation maps a
// (state, symbol) pair to a SET of destination states, so NFA.trans
// stores one sorted slice of StateID per nfaKey.
type nfaKey struct {
	state  StateID
	symbol Symbol
}

// NFA is an immutable nondeterministic finite automaton: a set of states,
// an alphabet (never containing Epsilon), a transition relation mapping
// (state, symbol) to a set of destination states, a single start state,
// and a set of accepting states.
//
// Values are produced by Builder.Build and never mutated afterward.
type NFA struct {
	numStates int
	alphabet  []Symbol
	trans     map[nfaKey][]StateID
	start     StateID
	accept    map[StateID]bool
}

// NumStates returns the number of states in the automaton. States are
// numbered 0..NumStates()-1.
func (n *NFA) NumStates() int {
	return n.numStates
}

// Alphabet returns the automaton's input alphabet in sorted order. The
// result never contains Epsilon and must not be mutated by the caller.
func (n *NFA) Alphabet() []Symbol {
	return n.alphabet
}

// Start returns the start state.
func (n *NFA) Start() StateID {
	return n.start
}

// IsAccept reports whether state is an accepting state.
func (n *NFA) IsAccept(state StateID) bool {
	return n.accept[state]
}

// AcceptStates returns the accepting states in ascending order. The
// result must not be mutated by the caller.
func (n *NFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(n.accept))
	for s := range n.accept {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions returns the sorted set of states reachable from state by
// consuming symbol directly (symbol may be Epsilon). The result is nil if
// there is no such transition; callers must not mutate a non-nil result.
func (n *NFA) Transitions(state StateID, symbol Symbol) []StateID {
	return n.trans[nfaKey{state, symbol}]
}

// StateIter iterates over every (state, symbol, targets) transition
// triple recorded in the automaton, in deterministic order: states
// ascending, then symbols ascending with Epsilon sorted before any real
// symbol.
type StateIter struct {
	keys []nfaKey
	nfa  *NFA
	pos  int
}

// Iter returns a StateIter over all transitions of the automaton.
func (n *NFA) Iter() *StateIter {
	keys := make([]nfaKey, 0, len(n.trans))
	for k := range n.trans {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].symbol < keys[j].symbol
	})
	return &StateIter{keys: keys, nfa: n}
}

// HasNext reports whether another transition remains.
func (it *StateIter) HasNext() bool {
	return it.pos < len(it.keys)
}

// Next returns the next (state, symbol, targets) triple. It panics if
// called when HasNext is false.
func (it *StateIter) Next() (StateID, Symbol, []StateID) {
	k := it.keys[it.pos]
	it.pos++
	return k.state, k.symbol, it.nfa.trans[k]
}

func symbolString(s Symbol) string {
	if s == Epsilon {
		return "ε"
	}
	return string(s)
}

// String renders the automaton as a human-readable transition table.
func (n *NFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NFA{states: %d, start: %d, accept: %v}\n", n.numStates, n.start, n.AcceptStates())
	it := n.Iter()
	for it.HasNext() {
		state, symbol, targets := it.Next()
		fmt.Fprintf(&b, "  %d --%s--> %v\n", state, symbolString(symbol), targets)
	}
	return b.String()
}
