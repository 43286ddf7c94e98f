package dfa

import (
	"sort"
	"strings"
)

// tokenKind classifies one symbol of a synthesized regular expression.
type tokenKind uint8

const (
	tokSymbol tokenKind = iota
	tokEmptyString
	tokEmptySet
	tokUnion
	tokKleeneStar
	tokOpenParen
	tokClosedParen
)

type token struct {
	kind tokenKind
	sym  Symbol
}

// equation is a regular expression under construction, represented as a
// flat token stream rather than a parse tree. This mirrors the way the
// elimination algorithm in ToRegex naturally produces expressions: by
// splicing token runs together and simplifying the splice points, never
// by building and re-walking a tree.
type equation struct {
	tokens []token
}

func newEquation(t ...token) *equation {
	return &equation{tokens: append([]token{}, t...)}
}

func (e *equation) clone() *equation {
	return &equation{tokens: append([]token{}, e.tokens...)}
}

func (e *equation) isEmptySet() bool {
	return len(e.tokens) == 1 && e.tokens[0].kind == tokEmptySet
}

// addParenthesis wraps a multi-token equation in parentheses, unless it
// is already wrapped or is a single token that needs none.
func (e *equation) addParenthesis() {
	if len(e.tokens) == 0 {
		return
	}
	if e.tokens[0].kind == tokOpenParen && e.tokens[len(e.tokens)-1].kind == tokClosedParen {
		// Only wrapped if the leading '(' is closed by the final ')', not
		// by an earlier one as in "(a)|(b)".
		depth := 0
		for i, t := range e.tokens {
			switch t.kind {
			case tokOpenParen:
				depth++
			case tokClosedParen:
				depth--
			}
			if depth == 0 {
				if i == len(e.tokens)-1 {
					return
				}
				break
			}
		}
	}
	if len(e.tokens) > 1 {
		wrapped := make([]token, 0, len(e.tokens)+2)
		wrapped = append(wrapped, token{kind: tokOpenParen})
		wrapped = append(wrapped, e.tokens...)
		wrapped = append(wrapped, token{kind: tokClosedParen})
		e.tokens = wrapped
	}
}

func indexOfKind(tokens []token, kind tokenKind) int {
	for i, t := range tokens {
		if t.kind == kind {
			return i
		}
	}
	return -1
}

func removeAt(tokens []token, i int) []token {
	return append(tokens[:i:i], tokens[i+1:]...)
}

// simplify removes redundant parentheses around a single token or an
// empty group, and drops an empty-string token that is immediately
// followed by a symbol, an open parenthesis or another empty-string token
// (concatenating ε with something leaves that something). Each pass looks
// only at the first ')' and the first ε of the equation; passes repeat
// until one makes no further change.
func (e *equation) simplify() {
	if len(e.tokens) == 1 {
		return
	}

	for {
		changed := false

		if idx := indexOfKind(e.tokens, tokClosedParen); idx >= 0 {
			if idx-2 >= 0 && e.tokens[idx-2].kind == tokOpenParen {
				e.tokens = removeAt(e.tokens, idx)
				e.tokens = removeAt(e.tokens, idx-2)
				changed = true
			} else if idx-1 >= 0 && e.tokens[idx-1].kind == tokOpenParen {
				e.tokens = removeAt(e.tokens, idx)
				e.tokens = removeAt(e.tokens, idx-1)
				changed = true
			}
		}

		if idx := indexOfKind(e.tokens, tokEmptyString); idx >= 0 && idx+1 < len(e.tokens) {
			next := e.tokens[idx+1]
			if next.kind == tokSymbol || next.kind == tokOpenParen || next.kind == tokEmptyString {
				e.tokens = removeAt(e.tokens, idx)
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	if len(e.tokens) == 1 {
		switch e.tokens[0].kind {
		case tokSymbol, tokEmptyString:
		default:
			e.tokens = e.tokens[:0]
		}
	}
}

// String renders the equation as a regular expression. EmptySet renders
// as the explicit sentinel "∅" rather than being silently dropped, so a
// DFA whose language is empty synthesizes into a meaningful string
// instead of "".
func (e *equation) String() string {
	var b strings.Builder
	for _, t := range e.tokens {
		switch t.kind {
		case tokSymbol:
			b.WriteRune(t.sym)
		case tokUnion:
			b.WriteByte('|')
		case tokKleeneStar:
			b.WriteByte('*')
		case tokOpenParen:
			b.WriteByte('(')
		case tokClosedParen:
			b.WriteByte(')')
		case tokEmptyString:
			b.WriteString("ε")
		case tokEmptySet:
			b.WriteString("∅")
		}
	}
	return b.String()
}

// tableKey indexes the elimination table by (from, to, round), where
// round 0 is the table of direct transitions and round r > 0 is the
// table after states 0..r-1 have been eliminated as intermediate hops.
type tableKey struct {
	i, j, round int
}

func initialEquation(d *DFA, i, j StateID) *equation {
	eq := newEquation()
	if i == j {
		eq.tokens = append(eq.tokens, token{kind: tokEmptyString}, token{kind: tokUnion})
	}

	var symbols []Symbol
	it := d.Iter()
	for it.HasNext() {
		from, sym, to := it.Next()
		if from == i && to == j {
			symbols = append(symbols, sym)
		}
	}
	sort.Slice(symbols, func(a, b int) bool { return symbols[a] < symbols[b] })
	for _, sym := range symbols {
		eq.tokens = append(eq.tokens, token{kind: tokSymbol, sym: sym}, token{kind: tokUnion})
	}

	if len(eq.tokens) > 0 && eq.tokens[len(eq.tokens)-1].kind == tokUnion {
		eq.tokens = eq.tokens[:len(eq.tokens)-1]
	}
	if len(eq.tokens) == 0 {
		eq.tokens = append(eq.tokens, token{kind: tokEmptySet})
	}
	return eq
}

// ToRegex synthesizes a regular expression whose language equals d's, via
// Kleene's state-elimination algorithm: states are eliminated one at a
// time from the "allowed intermediate hops" set, each round rewriting
// every remaining (i, j) equation in terms of paths that may additionally
// route through the just-eliminated state.
func ToRegex(d *DFA) string {
	num := d.NumStates()
	table := make(map[tableKey]*equation, num*num)
	for i := 0; i < num; i++ {
		for j := 0; j < num; j++ {
			table[tableKey{i, j, 0}] = initialEquation(d, StateID(i), StateID(j))
		}
	}

	for round := 1; round <= num; round++ {
		hop := round - 1
		next := make(map[tableKey]*equation, num*num)
		for i := 0; i < num; i++ {
			for j := 0; j < num; j++ {
				eq := newEquation()
				r1 := table[tableKey{i, j, round - 1}].clone()
				r2 := table[tableKey{i, hop, round - 1}].clone()
				r3 := table[tableKey{hop, hop, round - 1}].clone()
				r4 := table[tableKey{hop, j, round - 1}].clone()

				if !r1.isEmptySet() {
					r1.addParenthesis()
					r1.simplify()
					eq.tokens = append(eq.tokens, r1.tokens...)
					eq.tokens = append(eq.tokens, token{kind: tokUnion})
				}

				if !r2.isEmptySet() && !r4.isEmptySet() {
					r2.addParenthesis()
					r2.simplify()
					eq.tokens = append(eq.tokens, r2.tokens...)
					if r3.isEmptySet() {
						eq.tokens = append(eq.tokens, token{kind: tokEmptyString})
					} else {
						r3.addParenthesis()
						r3.tokens = append(r3.tokens, token{kind: tokKleeneStar})
						r3.simplify()
						eq.tokens = append(eq.tokens, r3.tokens...)
					}
					r4.addParenthesis()
					r4.simplify()
					eq.tokens = append(eq.tokens, r4.tokens...)
				} else if len(eq.tokens) > 0 && eq.tokens[len(eq.tokens)-1].kind == tokUnion {
					eq.tokens = eq.tokens[:len(eq.tokens)-1]
				}

				if len(eq.tokens) == 0 {
					eq.tokens = append(eq.tokens, token{kind: tokEmptySet})
				}
				next[tableKey{i, j, round}] = eq
			}
		}
		table = next
	}

	regex := newEquation()
	for _, acc := range d.AcceptStates() {
		cur := table[tableKey{int(d.start), int(acc), num}].clone()
		regex.tokens = append(regex.tokens, cur.tokens...)
		regex.tokens = append(regex.tokens, token{kind: tokUnion})
	}
	if len(regex.tokens) > 0 {
		regex.tokens = regex.tokens[:len(regex.tokens)-1]
	}
	if len(regex.tokens) == 0 {
		regex.tokens = append(regex.tokens, token{kind: tokEmptySet})
	}
	return regex.String()
}
