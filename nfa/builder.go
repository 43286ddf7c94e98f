package nfa

import (
	"sort"

	"github.com/regexfsm/regexfsm/internal/conv"
)

// Builder assembles an NFA incrementally: states are appended one at a
// time, transitions (including epsilon transitions) are registered
// against them, and Build freezes the result into an immutable NFA.
//
// A Builder's states are always numbered densely from 0; RemoveState only
// ever removes the most recently added state, so LastState()+1 always
// equals NumStates().
type Builder struct {
	numStates int
	symbols   map[Symbol]bool
	trans     map[nfaKey]map[StateID]bool
	start     StateID
	hasStart  bool
	accept    map[StateID]bool
}

// NewBuilder returns an empty Builder with no states.
func NewBuilder() *Builder {
	return &Builder{
		symbols: make(map[Symbol]bool),
		trans:   make(map[nfaKey]map[StateID]bool),
		accept:  make(map[StateID]bool),
	}
}

// NumStates returns the number of states added so far.
func (b *Builder) NumStates() int {
	return b.numStates
}

// LastState returns the most recently added state. It panics if no state
// has been added yet.
func (b *Builder) LastState() StateID {
	if b.numStates == 0 {
		panic("nfa: LastState called on an empty builder")
	}
	return StateID(b.numStates - 1)
}

// AddState appends a new state and returns its id.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(b.numStates))
	b.numStates++
	return id
}

// RemoveState removes the most recently added state along with any
// transitions or accept marking referencing it. It returns an
// InvalidState error if the builder has no states or id is not the last
// state.
func (b *Builder) RemoveState(id StateID) error {
	if b.numStates == 0 || id != StateID(b.numStates-1) {
		return &RegexError{Kind: InvalidState, Message: "RemoveState: id is not the last state"}
	}
	for key := range b.trans {
		if key.state == id {
			delete(b.trans, key)
		}
	}
	for key, targets := range b.trans {
		delete(targets, id)
		if len(targets) == 0 {
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

func (b *Builder) validState(id StateID) bool {
	return int(id) < b.numStates
}

// SetStart designates id as the start state. It returns an InvalidState
// error if id is out of range.
func (b *Builder) SetStart(id StateID) error {
	if !b.validState(id) {
		return &RegexError{Kind: InvalidState, Message: "SetStart: unknown state"}
	}
	b.start = id
	b.hasStart = true
	return nil
}

// StartState returns the designated start state. It panics if none was
// set.
func (b *Builder) StartState() StateID {
	if !b.hasStart {
		panic("nfa: StartState called before SetStart")
	}
	return b.start
}

// AddSymbol registers symbol in the builder's alphabet. Epsilon is never
// added to the alphabet; calling AddSymbol(Epsilon) is a no-op.
func (b *Builder) AddSymbol(symbol Symbol) {
	if symbol == Epsilon {
		return
	}
	b.symbols[symbol] = true
}

// RemoveSymbol removes symbol from the builder's alphabet. It returns an
// InvalidSymbol error if the symbol was never added.
func (b *Builder) RemoveSymbol(symbol Symbol) error {
	if !b.symbols[symbol] {
		return &RegexError{Kind: InvalidSymbol, Message: "RemoveSymbol: symbol not in alphabet"}
	}
	delete(b.symbols, symbol)
	return nil
}

// AddAcceptState marks id as an accepting state.
func (b *Builder) AddAcceptState(id StateID) error {
	if !b.validState(id) {
		return &RegexError{Kind: InvalidState, Message: "AddAcceptState: unknown state"}
	}
	b.accept[id] = true
	return nil
}

// RemoveAcceptState unmarks id as an accepting state.
func (b *Builder) RemoveAcceptState(id StateID) error {
	if !b.validState(id) {
		return &RegexError{Kind: InvalidState, Message: "RemoveAcceptState: unknown state"}
	}
	delete(b.accept, id)
	return nil
}

// AddTransition records that consuming symbol from state may lead to to.
// symbol may be Epsilon. If symbol is not Epsilon, it is added to the
// alphabet automatically. Adding the same (state, symbol, to) triple more
// than once is a no-op: unlike a DFA, an NFA's transition relation is
// naturally a set of destinations per (state, symbol) pair.
func (b *Builder) AddTransition(state StateID, symbol Symbol, to StateID) error {
	if !b.validState(state) {
		return &RegexError{Kind: InvalidState, Message: "AddTransition: unknown source state"}
	}
	if !b.validState(to) {
		return &RegexError{Kind: InvalidTarget, Message: "AddTransition: unknown target state"}
	}
	b.AddSymbol(symbol)
	key := nfaKey{state, symbol}
	targets, ok := b.trans[key]
	if !ok {
		targets = make(map[StateID]bool)
		b.trans[key] = targets
	}
	targets[to] = true
	return nil
}

// RemoveTransition deletes the (state, symbol, to) triple if present. It
// is a no-op if the triple was never added.
func (b *Builder) RemoveTransition(state StateID, symbol Symbol, to StateID) {
	key := nfaKey{state, symbol}
	if targets, ok := b.trans[key]; ok {
		delete(targets, to)
		if len(targets) == 0 {
			delete(b.trans, key)
		}
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

// Build freezes the builder's current state into an immutable NFA. The
// builder remains usable afterward; Build copies, it does not consume.
func (b *Builder) Build() (*NFA, error) {
	if !b.hasStart {
		return nil, &RegexError{Kind: StructuralRegex, Message: "Build: no start state set"}
	}
	trans := make(map[nfaKey][]StateID, len(b.trans))
	for key, targets := range b.trans {
		ids := make([]StateID, 0, len(targets))
		for t := range targets {
			ids = append(ids, t)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		trans[key] = ids
	}
	accept := make(map[StateID]bool, len(b.accept))
	for s := range b.accept {
		accept[s] = true
	}
	return &NFA{
		numStates: b.numStates,
		alphabet:  b.Alphabet(),
		trans:     trans,
		start:     b.start,
		accept:    accept,
	}, nil
}

// copyInto appends a copy of src's states and transitions into b, with
// every state id shifted by the returned offset. It does not copy src's
// start or accept markings; callers wire those up themselves.
func copyInto(b *Builder, src *NFA) StateID {
	offset := StateID(conv.IntToUint32(b.numStates))
	for i := 0; i < src.numStates; i++ {
		b.AddState()
	}
	it := src.Iter()
	for it.HasNext() {
		state, symbol, targets := it.Next()
		for _, to := range targets {
			// Errors are impossible here: both endpoints were just
			// allocated above and are always in range.
			_ = b.AddTransition(state+offset, symbol, to+offset)
		}
	}
	return offset
}

// NewSymbolNFA builds the two-state NFA that accepts exactly the single
// symbol sym: a start state with one transition to an accept state.
func NewSymbolNFA(sym Symbol) *NFA {
	b := NewBuilder()
	start := b.AddState()
	accept := b.AddState()
	_ = b.SetStart(start)
	_ = b.AddTransition(start, sym, accept)
	_ = b.AddAcceptState(accept)
	nfa, _ := b.Build()
	return nfa
}

// Concat builds the Thompson construction for the concatenation of a and
// b: every accept state of a gains an epsilon transition to b's start,
// and a's accept states are no longer accepting.
func Concat(a, b *NFA) *NFA {
	builder := NewBuilder()
	aOffset := copyInto(builder, a)
	bOffset := copyInto(builder, b)

	_ = builder.SetStart(a.start + aOffset)
	for _, acc := range a.AcceptStates() {
		_ = builder.AddTransition(acc+aOffset, Epsilon, b.start+bOffset)
	}
	for _, acc := range b.AcceptStates() {
		_ = builder.AddAcceptState(acc + bOffset)
	}

	nfa, _ := builder.Build()
	return nfa
}

// Union builds the Thompson construction for the alternation of a and b:
// a fresh start state 0 is prepended (a and b are renumbered to sit after
// it), with epsilon transitions from 0 to both a's and b's starts. The
// accept states of both branches remain accepting.
//
// The fresh start is always allocated first and given id 0, so that a
// Union of two NFAs whose own starts are 0 (guaranteed by induction: every
// NFA operator in this package preserves "start is 0") itself has start
// 0, matching the invariant spec.md requires of Nfa.from's result.
func Union(a, b *NFA) *NFA {
	builder := NewBuilder()
	start := builder.AddState()
	aOffset := copyInto(builder, a)
	bOffset := copyInto(builder, b)

	_ = builder.SetStart(start)
	_ = builder.AddTransition(start, Epsilon, a.start+aOffset)
	_ = builder.AddTransition(start, Epsilon, b.start+bOffset)
	for _, acc := range a.AcceptStates() {
		_ = builder.AddAcceptState(acc + aOffset)
	}
	for _, acc := range b.AcceptStates() {
		_ = builder.AddAcceptState(acc + bOffset)
	}

	nfa, _ := builder.Build()
	return nfa
}

// KleeneStar builds the Thompson construction for zero-or-more repetition
// of a: a single fresh state 0 is prepended, itself accepting (the zero-
// repetitions case), with an epsilon transition to a's old start (now
// renumbered to sit after it) and an epsilon loop-back from every one of
// a's accept states to that same old start, for further repetitions.
//
// Exactly one state is added, as spec.md §4.2 describes ("prepend a
// fresh start state 0"), and it is allocated first so the result's start
// is 0 by the same induction Union relies on.
func KleeneStar(a *NFA) *NFA {
	builder := NewBuilder()
	start := builder.AddState()
	offset := copyInto(builder, a)

	_ = builder.SetStart(start)
	_ = builder.AddAcceptState(start)
	_ = builder.AddTransition(start, Epsilon, a.start+offset)
	for _, acc := range a.AcceptStates() {
		_ = builder.AddTransition(acc+offset, Epsilon, a.start+offset)
		_ = builder.AddAcceptState(acc + offset)
	}

	nfa, _ := builder.Build()
	return nfa
}
