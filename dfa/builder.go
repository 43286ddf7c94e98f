package dfa

import (
	"sort"

	"github.com/regexfsm/regexfsm/internal/conv"
)

// Builder assembles a DFA incrementally. Unlike nfa.Builder, adding a
// second destination for a (state, symbol) pair that already has one is
// an error: a DFA's transition function is total over at most one
// destination per pair.
type Builder struct {
	numStates int
	symbols   map[Symbol]bool
	trans     map[dfaKey]StateID
	start     StateID
	hasStart  bool
	accept    map[StateID]bool
}

// NewBuilder returns an empty Builder with no states.
func NewBuilder() *Builder {
	return &Builder{
		symbols: make(map[Symbol]bool),
		trans:   make(map[dfaKey]StateID),
		accept:  make(map[StateID]bool),
	}
}

// NumStates returns the number of states added so far.
func (b *Builder) NumStates() int {
	return b.numStates
}

// AddState appends a new state and returns its id.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(b.numStates))
	b.numStates++
	return id
}

func (b *Builder) validState(id StateID) bool {
	return int(id) < b.numStates
}

// SetStart designates id as the start state.
func (b *Builder) SetStart(id StateID) error {
	if !b.validState(id) {
		return &DFAError{Kind: InvalidState, Message: "SetStart: unknown state"}
	}
	b.start = id
	b.hasStart = true
	return nil
}

// AddSymbol registers symbol in the builder's alphabet.
func (b *Builder) AddSymbol(symbol Symbol) {
	b.symbols[symbol] = true
}

// AddAcceptState marks id as an accepting state.
func (b *Builder) AddAcceptState(id StateID) error {
	if !b.validState(id) {
		return &DFAError{Kind: InvalidState, Message: "AddAcceptState: unknown state"}
	}
	b.accept[id] = true
	return nil
}

// RemoveState removes the most recently added state along with any
// transitions or accept marking referencing it. It returns an
// InvalidState error if the builder has no states or id is not the last
// state.
func (b *Builder) RemoveState(id StateID) error {
	if b.numStates == 0 || id != StateID(b.numStates-1) {
		return &DFAError{Kind: InvalidState, Message: "RemoveState: id is not the last state"}
	}
	for key := range b.trans {
		if key.state == id || b.trans[key] == id {
			delete(b.trans, key)
		}
	}
	delete(b.accept, id)
	if b.hasStart && b.start == id {
		b.hasStart = false
	}
	b.numStates--
	return nil
}

// RemoveSymbol removes symbol from the builder's alphabet and purges
// every transition keyed on it. It returns an InvalidSymbol error if the
// symbol was never added.
func (b *Builder) RemoveSymbol(symbol Symbol) error {
	if !b.symbols[symbol] {
		return &DFAError{Kind: InvalidSymbol, Message: "RemoveSymbol: symbol not in alphabet"}
	}
	delete(b.symbols, symbol)
	for key := range b.trans {
		if key.symbol == symbol {
			delete(b.trans, key)
		}
	}
	return nil
}

// RemoveAcceptState unmarks id as an accepting state.
func (b *Builder) RemoveAcceptState(id StateID) error {
	if !b.validState(id) {
		return &DFAError{Kind: InvalidState, Message: "RemoveAcceptState: unknown state"}
	}
	delete(b.accept, id)
	return nil
}

// AddTransition records the unique destination reached from state on
// symbol. symbol must already be registered via AddSymbol; unlike
// nfa.Builder.AddTransition, a DFA builder never registers the alphabet
// implicitly, matching spec.md's "symbol not in alphabet" error mode for
// this builder. It returns DuplicateTransition if a transition was
// already registered for this (state, symbol) pair, whether or not it has
// the same destination.
func (b *Builder) AddTransition(state StateID, symbol Symbol, to StateID) error {
	if !b.validState(state) {
		return &DFAError{Kind: InvalidState, Message: "AddTransition: unknown source state"}
	}
	if !b.validState(to) {
		return &DFAError{Kind: InvalidTarget, Message: "AddTransition: unknown target state"}
	}
	if !b.symbols[symbol] {
		return &DFAError{Kind: InvalidSymbol, Message: "AddTransition: symbol not in alphabet"}
	}
	key := dfaKey{state, symbol}
	if _, ok := b.trans[key]; ok {
		return &DFAError{Kind: DuplicateTransition, Message: "AddTransition: transition already exists"}
	}
	b.trans[key] = to
	return nil
}

// RemoveTransition deletes the (state, symbol, to) transition if present.
// It is a no-op if no such transition was registered.
func (b *Builder) RemoveTransition(state StateID, symbol Symbol, to StateID) {
	key := dfaKey{state, symbol}
	if existing, ok := b.trans[key]; ok && existing == to {
		delete(b.trans, key)
	}
}

// Alphabet returns the builder's current alphabet in sorted order.
func (b *Builder) Alphabet() []Symbol {
	out := make([]Symbol, 0, len(b.symbols))
	for s := range b.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Build freezes the builder's current state into an immutable DFA.
func (b *Builder) Build() (*DFA, error) {
	if !b.hasStart {
		return nil, &DFAError{Kind: InvalidState, Message: "Build: no start state set"}
	}
	trans := make(map[dfaKey]StateID, len(b.trans))
	for k, v := range b.trans {
		trans[k] = v
	}
	accept := make(map[StateID]bool, len(b.accept))
	for s := range b.accept {
		accept[s] = true
	}
	return &DFA{
		numStates: b.numStates,
		alphabet:  b.Alphabet(),
		trans:     trans,
		start:     b.start,
		accept:    accept,
	}, nil
}
