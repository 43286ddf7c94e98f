package dfa

import (
	"errors"
	"testing"
)

func TestBuilderDuplicateTransitionIsError(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	s1 := b.AddState()
	_ = b.SetStart(s0)
	b.AddSymbol('a')

	if err := b.AddTransition(s0, 'a', s1); err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
	// Re-adding the same destination is an error too.
	err := b.AddTransition(s0, 'a', s1)
	var de *DFAError
	if !errors.As(err, &de) || de.Kind != DuplicateTransition {
		t.Fatalf("AddTransition (same destination) = %v, want DuplicateTransition", err)
	}
	// A different destination for the same (state, symbol) pair is an error.
	err = b.AddTransition(s0, 'a', s0)
	if !errors.As(err, &de) || de.Kind != DuplicateTransition {
		t.Fatalf("AddTransition (conflicting destination) = %v, want DuplicateTransition", err)
	}
}

func TestBuilderAddTransitionRejectsUnknownSymbol(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	_ = b.SetStart(s0)

	err := b.AddTransition(s0, 'a', s0)
	var de *DFAError
	if !errors.As(err, &de) || de.Kind != InvalidSymbol {
		t.Fatalf("AddTransition with unregistered symbol = %v, want InvalidSymbol", err)
	}
}

func TestBuilderRemoveState(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	s1 := b.AddState()
	_ = b.SetStart(s0)
	b.AddSymbol('a')
	_ = b.AddTransition(s0, 'a', s1)
	_ = b.AddAcceptState(s1)

	if err := b.RemoveState(s1); err != nil {
		t.Fatalf("RemoveState: %v", err)
	}
	if b.NumStates() != 1 {
		t.Fatalf("NumStates() = %d, want 1", b.NumStates())
	}
	if _, ok := b.trans[dfaKey{s0, 'a'}]; ok {
		t.Fatalf("transition to removed state survived")
	}

	if err := b.RemoveState(s0 + 1); err == nil {
		t.Fatalf("RemoveState(non-last) = nil, want error")
	}
}

func TestBuilderRemoveSymbolPurgesTransitions(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	_ = b.SetStart(s0)
	b.AddSymbol('a')
	b.AddSymbol('b')
	_ = b.AddTransition(s0, 'a', s0)
	_ = b.AddTransition(s0, 'b', s0)

	if err := b.RemoveSymbol('a'); err != nil {
		t.Fatalf("RemoveSymbol: %v", err)
	}
	if _, ok := b.trans[dfaKey{s0, 'a'}]; ok {
		t.Fatalf("transition on removed symbol survived")
	}
	if _, ok := b.trans[dfaKey{s0, 'b'}]; !ok {
		t.Fatalf("unrelated transition on 'b' was purged")
	}
	if err := b.RemoveSymbol('a'); err == nil {
		t.Fatalf("RemoveSymbol('a') again = nil, want InvalidSymbol error")
	}
}

func TestBuilderRemoveAcceptStateAndTransition(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	_ = b.SetStart(s0)
	b.AddSymbol('a')
	_ = b.AddTransition(s0, 'a', s0)
	_ = b.AddAcceptState(s0)

	if err := b.RemoveAcceptState(s0); err != nil {
		t.Fatalf("RemoveAcceptState: %v", err)
	}
	if b.accept[s0] {
		t.Fatalf("state still marked accepting after RemoveAcceptState")
	}

	b.RemoveTransition(s0, 'a', s0)
	if _, ok := b.trans[dfaKey{s0, 'a'}]; ok {
		t.Fatalf("transition survived RemoveTransition")
	}
	// Removing an already-absent transition is a no-op, not an error.
	b.RemoveTransition(s0, 'a', s0)
}

func TestBuilderIsCompleteDetectsGaps(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	b.AddSymbol('a')
	b.AddSymbol('b')
	_ = b.SetStart(s0)
	_ = b.AddTransition(s0, 'a', s0)
	d, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.IsComplete() {
		t.Fatalf("IsComplete() = true, want false (no transition for 'b')")
	}

	// 'b' is in the alphabet but this state has no recorded transition
	// for it: IncompleteAutomaton, not ErrSymbolNotInAlphabet.
	_, err = d.Run("b")
	var de *DFAError
	if !errors.As(err, &de) || de.Kind != IncompleteAutomaton {
		t.Fatalf("Run(\"b\") on incomplete DFA = %v, want IncompleteAutomaton", err)
	}

	// 'c' was never registered as a symbol at all: ErrSymbolNotInAlphabet.
	if _, err := d.Run("c"); !errors.Is(err, ErrSymbolNotInAlphabet) {
		t.Fatalf("Run(\"c\") = %v, want ErrSymbolNotInAlphabet", err)
	}
}
