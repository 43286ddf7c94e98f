package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// StateID uniquely identifies a DFA state. States are always numbered
// densely from 0 by a Builder, so StateID doubles as a slice index.
type StateID uint32

// Symbol is a single input character. A DFA's alphabet never contains an
// epsilon sentinel; every transition consumes exactly one Symbol.
type Symbol = rune

// dfaKey is the key of the DFA transition function: a state paired with
// the symbol consumed leaving it. Unlike nfa.nfaKey, a dfaKey maps to at
// most one destination state.
type dfaKey struct {
	state  StateID
	symbol Symbol
}

// DFA is an immutable deterministic finite automaton: a set of states, an
// alphabet, a (possibly partial, see IsComplete) transition function
// mapping (state, symbol) to exactly one destination state, a single
// start state, and a set of accepting states.
//
// Values are produced by Builder.Build and never mutated afterward.
type DFA struct {
	numStates int
	alphabet  []Symbol
	trans     map[dfaKey]StateID
	start     StateID
	accept    map[StateID]bool
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int {
	return d.numStates
}

// Alphabet returns the automaton's input alphabet in sorted order. The
// result must not be mutated by the caller.
func (d *DFA) Alphabet() []Symbol {
	return d.alphabet
}

// Start returns the start state.
func (d *DFA) Start() StateID {
	return d.start
}

// IsAccept reports whether state is an accepting state.
func (d *DFA) IsAccept(state StateID) bool {
	return d.accept[state]
}

// AcceptStates returns the accepting states in ascending order. The
// result must not be mutated by the caller.
func (d *DFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(d.accept))
	for s := range d.accept {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transition returns the destination state reached from state on symbol,
// and whether that transition is defined.
func (d *DFA) Transition(state StateID, symbol Symbol) (StateID, bool) {
	to, ok := d.trans[dfaKey{state, symbol}]
	return to, ok
}

// IsComplete reports whether every state has an outgoing transition for
// every symbol in the alphabet. Subset construction always yields a
// complete DFA; minimization and synthesis both require completeness as
// a precondition.
func (d *DFA) IsComplete() bool {
	for s := 0; s < d.numStates; s++ {
		for _, sym := range d.alphabet {
			if _, ok := d.trans[dfaKey{StateID(s), sym}]; !ok {
				return false
			}
		}
	}
	return true
}

// Run decides whether input is accepted by the automaton, consuming one
// rune of input per transition. Per spec.md §4.5/§9, a missing transition
// has two distinct causes and Run reports them distinctly: a symbol that
// is not even in the DFA's alphabet returns ErrSymbolNotInAlphabet (the
// open question's resolved "reject cleanly" semantics), while a symbol
// that is in the alphabet but for which this particular state has no
// recorded transition — only possible when the DFA is not IsComplete —
// returns an IncompleteAutomaton error, matching the reference's "automata is
// incomplete" failure.
func (d *DFA) Run(input string) (bool, error) {
	state := d.start
	for _, r := range input {
		to, ok := d.Transition(state, r)
		if !ok {
			if !d.inAlphabet(r) {
				return false, ErrSymbolNotInAlphabet
			}
			return false, &DFAError{Kind: IncompleteAutomaton, Message: "run: automata is incomplete"}
		}
		state = to
	}
	return d.IsAccept(state), nil
}

func (d *DFA) inAlphabet(symbol Symbol) bool {
	for _, s := range d.alphabet {
		if s == symbol {
			return true
		}
	}
	return false
}

// StateIter iterates over every (state, symbol, target) transition
// recorded in the automaton, in deterministic order: states ascending,
// then symbols ascending.
type StateIter struct {
	keys []dfaKey
	dfa  *DFA
	pos  int
}

// Iter returns a StateIter over all transitions of the automaton.
func (d *DFA) Iter() *StateIter {
	keys := make([]dfaKey, 0, len(d.trans))
	for k := range d.trans {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].symbol < keys[j].symbol
	})
	return &StateIter{keys: keys, dfa: d}
}

// HasNext reports whether another transition remains.
func (it *StateIter) HasNext() bool {
	return it.pos < len(it.keys)
}

// Next returns the next (state, symbol, target) triple. It panics if
// called when HasNext is false.
func (it *StateIter) Next() (StateID, Symbol, StateID) {
	k := it.keys[it.pos]
	it.pos++
	return k.state, k.symbol, it.dfa.trans[k]
}

// String renders the automaton as a human-readable transition table.
func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DFA{states: %d, start: %d, accept: %v}\n", d.numStates, d.start, d.AcceptStates())
	it := d.Iter()
	for it.HasNext() {
		state, symbol, to := it.Next()
		fmt.Fprintf(&b, "  %d --%c--> %d\n", state, symbol, to)
	}
	return b.String()
}
