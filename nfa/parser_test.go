package nfa

import (
	"errors"
	"reflect"
	"testing"
)

func TestFromPatternStructure(t *testing.T) {
	cases := []struct {
		pattern  string
		alphabet []Symbol
	}{
		{"a", []Symbol{'a'}},
		{"a*", []Symbol{'a'}},
		{"a|b", []Symbol{'a', 'b'}},
		{"ab", []Symbol{'a', 'b'}},
		{"(ab)*", []Symbol{'a', 'b'}},
		{"a|(ab|b)*", []Symbol{'a', 'b'}},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			n, err := FromPattern(c.pattern)
			if err != nil {
				t.Fatalf("FromPattern(%q) error = %v", c.pattern, err)
			}
			if n.NumStates() < 2 {
				t.Fatalf("FromPattern(%q) NumStates() = %d, want >= 2", c.pattern, n.NumStates())
			}
			if !reflect.DeepEqual(n.Alphabet(), c.alphabet) {
				t.Fatalf("FromPattern(%q) Alphabet() = %v, want %v", c.pattern, n.Alphabet(), c.alphabet)
			}
		})
	}
}

func TestFromPatternSingleSymbol(t *testing.T) {
	n, err := FromPattern("a")
	if err != nil {
		t.Fatalf("FromPattern: %v", err)
	}
	if n.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", n.NumStates())
	}
	if len(n.AcceptStates()) != 1 {
		t.Fatalf("AcceptStates() = %v, want exactly one", n.AcceptStates())
	}
	accept := n.AcceptStates()[0]
	if got := n.Transitions(n.Start(), 'a'); len(got) != 1 || got[0] != accept {
		t.Fatalf("Transitions(start, 'a') = %v, want [%v]", got, accept)
	}
}

func TestFromPatternStarAcceptsEmptyString(t *testing.T) {
	n, err := FromPattern("a*")
	if err != nil {
		t.Fatalf("FromPattern: %v", err)
	}
	closure := SetEpsilonClosure(n, []StateID{n.Start()})
	accepts := false
	for _, s := range closure {
		if n.IsAccept(s) {
			accepts = true
		}
	}
	if !accepts {
		t.Fatalf("start state's epsilon closure does not include an accept state for \"a*\"")
	}
}

func TestFromPatternErrors(t *testing.T) {
	cases := []string{
		"(*ab)",
		"(ab|)",
		"()",
		"|a",
		"a|",
		"(a",
	}
	for _, pattern := range cases {
		t.Run(pattern, func(t *testing.T) {
			_, err := FromPattern(pattern)
			if err == nil {
				t.Fatalf("FromPattern(%q) = nil error, want error", pattern)
			}
			var re *RegexError
			if !errors.As(err, &re) {
				t.Fatalf("FromPattern(%q) error is not *RegexError: %v", pattern, err)
			}
		})
	}
}
