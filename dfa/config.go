package dfa

// Config documents the resource bounds spec.md §5 calls out as
// "informational, not enforced": subset construction can in principle
// produce up to 2^|NFA states| DFA states, and regex synthesis is cubic
// in the DFA state count with exponential blow-up in the generated regex
// size. Config gives those bounds a documented home without turning them
// into enforced contracts — FromNFA and ToRegex never consult it, the
// same way the teacher's lazy.Config fields are tuning guidance rather
// than hard limits checked on every call.
type Config struct {
	// MaxStates is an advisory upper bound on the number of states a
	// subset-construction result is expected to stay under for the
	// patterns this package is meant to handle. It is never read by
	// FromNFA; callers who want an enforced cap should check
	// (*DFA).NumStates() against it themselves after construction.
	//
	// Default: 10,000 states. Patterns whose NFA has n states can in the
	// worst case determinize to 2^n DFA states (spec.md §5); this default
	// is sized for the small, hand-written patterns this engine targets,
	// not for adversarial worst cases.
	MaxStates int

	// MaxSynthesisStates is an advisory upper bound on the DFA state
	// count before ToRegex's output is expected to become impractically
	// large. Kleene elimination is O(n^3) in table size with exponential
	// blow-up in the rendered string (spec.md §5, §4.7); this field
	// exists purely to document that cost, not to enforce it.
	//
	// Default: 64 states.
	MaxSynthesisStates int
}

// DefaultConfig returns a Config with the advisory defaults described on
// each field.
func DefaultConfig() Config {
	return Config{
		MaxStates:          10_000,
		MaxSynthesisStates: 64,
	}
}

// Validate checks that c's fields are in their well-formed range (both
// positive). It never inspects a concrete DFA; Config carries advisory
// bounds only, so Validate exists solely to catch a caller's
// obviously-wrong Config value (e.g. a zero value constructed by mistake
// instead of via DefaultConfig), not to gate FromNFA or ToRegex.
func (c *Config) Validate() error {
	if c.MaxStates <= 0 {
		return &DFAError{Kind: InvalidConfig, Message: "Config.MaxStates must be > 0"}
	}
	if c.MaxSynthesisStates <= 0 {
		return &DFAError{Kind: InvalidConfig, Message: "Config.MaxSynthesisStates must be > 0"}
	}
	return nil
}
