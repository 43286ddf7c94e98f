package dfa

// Minimize returns a DFA equivalent to d in which no two states are
// equivalent, computed by Moore-style partition refinement. States of d
// that are unreachable from the start state are not removed (each still
// lands in some block), so the result has the fewest possible states
// only when every state of d is reachable.
//
// d must be complete (see DFA.IsComplete); otherwise Minimize returns an
// IncompleteAutomaton error, since an incomplete transition function has
// no well-defined equivalence classes.
func Minimize(d *DFA) (*DFA, error) {
	if !d.IsComplete() {
		return nil, &DFAError{Kind: IncompleteAutomaton, Message: "Minimize: DFA is not complete"}
	}

	blockOf := make([]int, d.numStates)
	for s := 0; s < d.numStates; s++ {
		if d.IsAccept(StateID(s)) {
			blockOf[s] = 1
		}
	}
	numBlocks := 2
	if countBlock(blockOf, 0) == 0 || countBlock(blockOf, 1) == 0 {
		numBlocks = 1
		for i := range blockOf {
			blockOf[i] = 0
		}
	}

	alphabet := d.Alphabet()
	for {
		signatures := make(map[string]int, d.numStates)
		newBlockOf := make([]int, d.numStates)
		nextID := 0

		for s := 0; s < d.numStates; s++ {
			sig := signature(d, blockOf, StateID(s), alphabet)
			id, ok := signatures[sig]
			if !ok {
				id = nextID
				signatures[sig] = id
				nextID++
			}
			newBlockOf[s] = id
		}

		if nextID == numBlocks {
			blockOf = newBlockOf
			break
		}
		blockOf = newBlockOf
		numBlocks = nextID
	}

	builder := NewBuilder()
	for _, sym := range alphabet {
		builder.AddSymbol(sym)
	}
	for i := 0; i < numBlocks; i++ {
		builder.AddState()
	}

	representative := make([]StateID, numBlocks)
	found := make([]bool, numBlocks)
	for s := 0; s < d.numStates; s++ {
		b := blockOf[s]
		if !found[b] {
			representative[b] = StateID(s)
			found[b] = true
		}
	}

	if err := builder.SetStart(StateID(blockOf[d.start])); err != nil {
		return nil, err
	}
	for b := 0; b < numBlocks; b++ {
		if d.IsAccept(representative[b]) {
			if err := builder.AddAcceptState(StateID(b)); err != nil {
				return nil, err
			}
		}
		for _, sym := range alphabet {
			to, _ := d.Transition(representative[b], sym)
			if err := builder.AddTransition(StateID(b), sym, StateID(blockOf[to])); err != nil {
				return nil, err
			}
		}
	}

	return builder.Build()
}

func countBlock(blockOf []int, want int) int {
	n := 0
	for _, b := range blockOf {
		if b == want {
			n++
		}
	}
	return n
}

// signature renders a state's partition-refinement fingerprint: its
// current block plus, for every alphabet symbol in order, the block of
// the state it transitions to. Two states get split apart exactly when
// their signatures differ.
func signature(d *DFA, blockOf []int, state StateID, alphabet []Symbol) string {
	parts := make([]byte, 0, 4+4*len(alphabet))
	parts = appendInt(parts, blockOf[state])
	for _, sym := range alphabet {
		to, _ := d.Transition(state, sym)
		parts = appendInt(parts, blockOf[to])
	}
	return string(parts)
}

func appendInt(b []byte, v int) []byte {
	b = append(b, '|')
	if v == 0 {
		return append(b, '0')
	}
	digits := make([]byte, 0, 8)
	for v > 0 {
		digits = append(digits, byte('0'+v%10))
		v /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return append(b, digits...)
}
