package dfa

import (
	"hash/fnv"

	"github.com/regexfsm/regexfsm/nfa"
)

// stateKey is a hash-based key for a set of NFA states, used to detect
// when the subset construction's BFS revisits a state set it has already
// assigned a DFA state to.
//
// The key must be consistent regardless of input order, so the state set
// is always sorted before hashing. nfa.SetEpsilonClosure already returns
// its result sorted, so ordinary callers get this for free.
type stateKey uint64

func computeStateKey(states []nfa.StateID) stateKey {
	if len(states) == 0 {
		return stateKey(0)
	}
	h := fnv.New64a()
	for _, sid := range states {
		_, _ = h.Write([]byte{
			byte(sid),
			byte(sid >> 8),
			byte(sid >> 16),
			byte(sid >> 24),
		})
	}
	return stateKey(h.Sum64())
}

// FromNFA performs the subset (powerset) construction: it builds a
// deterministic automaton that accepts the same language as n, starting
// from n's epsilon-closed start set and discovering reachable DFA states
// by breadth-first search over epsilon-closed symbol transitions. The
// result is not minimized; see Minimize.
//
// The resulting DFA is always complete: FromNFA adds an explicit dead
// state (always state 1, even when no transition ends up routed to it)
// and routes every otherwise-undefined (state, symbol) pair to it, so
// DFA.IsComplete always holds for its output.
func FromNFA(n *nfa.NFA) (*DFA, error) {
	builder := NewBuilder()
	alphabet := n.Alphabet()
	for _, sym := range alphabet {
		builder.AddSymbol(sym)
	}

	startSet := nfa.SetEpsilonClosure(n, []nfa.StateID{n.Start()})
	startKey := computeStateKey(startSet)

	seen := map[stateKey]StateID{}
	queue := [][]nfa.StateID{startSet}
	start := builder.AddState()
	seen[startKey] = start
	if err := builder.SetStart(start); err != nil {
		return nil, err
	}
	if containsAccept(n, startSet) {
		if err := builder.AddAcceptState(start); err != nil {
			return nil, err
		}
	}

	dead := builder.AddState()
	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		from := seen[computeStateKey(set)]

		for _, sym := range alphabet {
			target := nfa.SetTransitions(n, set, sym)
			if len(target) == 0 {
				if err := builder.AddTransition(from, sym, dead); err != nil {
					return nil, err
				}
				continue
			}
			key := computeStateKey(target)
			to, ok := seen[key]
			if !ok {
				to = builder.AddState()
				seen[key] = to
				if containsAccept(n, target) {
					if err := builder.AddAcceptState(to); err != nil {
						return nil, err
					}
				}
				queue = append(queue, target)
			}
			if err := builder.AddTransition(from, sym, to); err != nil {
				return nil, err
			}
		}
	}

	for _, sym := range alphabet {
		if err := builder.AddTransition(dead, sym, dead); err != nil {
			return nil, err
		}
	}

	return builder.Build()
}

func containsAccept(n *nfa.NFA, states []nfa.StateID) bool {
	for _, s := range states {
		if n.IsAccept(s) {
			return true
		}
	}
	return false
}
