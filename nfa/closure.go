package nfa

import (
	"sort"

	"github.com/regexfsm/regexfsm/internal/sparse"
)

// StateEpsilonClosure returns the epsilon closure of a single state: state
// itself plus every state reachable from it by following only epsilon
// transitions, in ascending order.
func StateEpsilonClosure(n *NFA, state StateID) []StateID {
	return SetEpsilonClosure(n, []StateID{state})
}

// SetEpsilonClosure returns the epsilon closure of a set of states: the
// states themselves plus every state reachable from any of them by
// following only epsilon transitions, in ascending order with no
// duplicates.
//
// A sparse.SparseSet tracks visited states so each state is expanded at
// most once regardless of how many distinct epsilon paths reach it.
func SetEpsilonClosure(n *NFA, states []StateID) []StateID {
	seen := sparse.NewSparseSet(uint32(n.numStates))
	stack := make([]StateID, 0, len(states))
	for _, s := range states {
		if !seen.Contains(uint32(s)) {
			seen.Insert(uint32(s))
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.Transitions(s, Epsilon) {
			if !seen.Contains(uint32(next)) {
				seen.Insert(uint32(next))
				stack = append(stack, next)
			}
		}
	}

	values := seen.Values()
	out := make([]StateID, len(values))
	for i, v := range values {
		out[i] = StateID(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetTransitions returns the epsilon-closed set of states reachable from
// any state in states by consuming exactly one occurrence of symbol.
// symbol must not be Epsilon; this function only models a DFA subset
// construction step, where symbols are always real alphabet members.
func SetTransitions(n *NFA, states []StateID, symbol Symbol) []StateID {
	var reached []StateID
	for _, s := range states {
		reached = append(reached, n.Transitions(s, symbol)...)
	}
	if len(reached) == 0 {
		return nil
	}
	return SetEpsilonClosure(n, reached)
}
