package nfa

import (
	"fmt"
	"strings"
)

// invalidAdjacent lists the forbidden adjacent token pairs. Any pattern
// containing one of these substrings is structurally broken regardless of
// parenthesis balance.
var invalidAdjacent = []string{"(|", "|)", "(*", "|*", "||", "**"}

// epsilonRune is the Unicode character 'ε' (U+03B5), the human-readable
// rendering Dfa.ToRegex uses for the reserved empty-string metasymbol
// (see Epsilon, which is the distinct internal sentinel rune(-1)).
//
// spec.md §3 reserves ε as an NFA-internal marker that "must not appear
// in source regexes." Validate enforces that literally: a pattern
// containing this character is rejected rather than silently treated as
// an ordinary literal symbol, which would otherwise require consuming an
// actual 'ε' input character to match what a synthesizer's ε branch
// intends as "no input required." This is also why Dfa.ToRegex's output
// is not guaranteed to be a valid re-compilable source pattern whenever
// it contains ε — a case spec.md's own round-trip invariant (§8) does
// not fully reconcile with its own §3 prohibition.
const epsilonRune = 'ε'

// Validate performs the cheap syntactic pre-check over a raw pattern: it
// checks parenthesis balance, rejects the reserved 'ε' character, and
// rejects forbidden adjacent token pairs. Everything else (e.g. an empty
// alternation branch such as "|a") is left to the parser.
//
// Unlike the reference implementation, which only checks the final
// parenthesis balance, Validate also rejects any prefix with negative
// depth (e.g. ")(" would otherwise pass validation and fail only once the
// parser ran). This strengthens the error boundary without changing which
// complete patterns are accepted.
func Validate(pattern string) error {
	depth := 0
	for _, r := range pattern {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &RegexError{
					Kind:    MalformedRegex,
					Message: "unmatched ')' with no preceding '('",
				}
			}
		case epsilonRune:
			return &RegexError{
				Kind:    MalformedRegex,
				Message: "pattern contains the reserved epsilon marker 'ε'",
			}
		}
	}
	if depth != 0 {
		return &RegexError{
			Kind:    MalformedRegex,
			Message: "unbalanced parentheses",
		}
	}

	for _, adj := range invalidAdjacent {
		if strings.Contains(pattern, adj) {
			return &RegexError{
				Kind:    MalformedRegex,
				Message: fmt.Sprintf("pattern contains the invalid adjacency %q", adj),
			}
		}
	}

	return nil
}
