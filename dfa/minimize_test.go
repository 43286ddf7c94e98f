package dfa

import (
	"reflect"
	"testing"

	"github.com/regexfsm/regexfsm/nfa"
)

func buildDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	n, err := nfa.FromPattern(pattern)
	if err != nil {
		t.Fatalf("FromPattern(%q): %v", pattern, err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatalf("FromNFA(%q): %v", pattern, err)
	}
	return d
}

func TestMinimizeAlternationStar(t *testing.T) {
	const pattern = "a|(ab|b)*"
	d := buildDFA(t, pattern)

	min, err := Minimize(d)
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if !min.IsComplete() {
		t.Fatalf("minimized DFA is not complete")
	}
	if !reflect.DeepEqual(min.Alphabet(), []Symbol{'a', 'b'}) {
		t.Fatalf("minimized Alphabet() = %v, want [a b]", min.Alphabet())
	}
	// The language of "a|(ab|b)*" has a canonical 5-state minimal DFA:
	// three accepting states (the start, after a lone 'a', and inside
	// (ab|b)*), one non-accepting state waiting for the 'b' that
	// completes an "ab" block, and the dead state.
	if min.NumStates() != 5 {
		t.Fatalf("minimized NumStates() = %d, want 5", min.NumStates())
	}

	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"a", true},
		{"b", true},
		{"ab", true},
		{"bb", true},
		{"abb", true},
		{"bab", true},
		{"ba", false},
		{"aa", false},
		{"aba", false},
	}
	for _, c := range cases {
		got, err := d.Run(c.input)
		if err != nil {
			t.Fatalf("Run(%q) on unminimized DFA: %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("unminimized Run(%q) = %v, want %v", c.input, got, c.want)
		}

		gotMin, err := min.Run(c.input)
		if err != nil {
			t.Fatalf("Run(%q) on minimized DFA: %v", c.input, err)
		}
		if gotMin != c.want {
			t.Fatalf("minimized Run(%q) = %v, want %v", c.input, gotMin, c.want)
		}
	}
}

func TestMinimizeRejectsIncompleteAutomaton(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	b.AddSymbol('a')
	_ = b.SetStart(s0)
	// No transition registered for 'a': the DFA is incomplete.
	d, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := Minimize(d); err == nil {
		t.Fatalf("Minimize(incomplete DFA) = nil error, want IncompleteAutomaton")
	}
}
