// Package hmm: core types, sentinel errors and functional options for
// hidden Markov model decoding.
//
// This file declares State, Symbol, ModelConfig, the Arithmetic mode,
// Options/Option constructors, and the package's sentinel errors.
package hmm

import "errors"

// Sentinel errors returned by the hmm package.
//
// Every message is prefixed with "hmm: ..." for consistency and to allow
// easy grepping across logs. Algorithms return these sentinels and tests
// match them via errors.Is; where context is essential (position index,
// offending state or symbol) the sentinel is wrapped with
// fmt.Errorf("ctx: %w", ErrX), so errors.Is still matches.
var (
	// ErrBadModel indicates that a ModelConfig is incomplete or violates a
	// normalization invariant (a probability row not summing to 1, a
	// missing table entry, a duplicate label, a value outside [0,1]).
	ErrBadModel = errors.New("hmm: invalid model configuration")

	// ErrLengthMismatch indicates that Score was called with a path and a
	// sequence of differing lengths.
	ErrLengthMismatch = errors.New("hmm: path and sequence lengths differ")

	// ErrEmptySequence indicates that Viterbi was called with a
	// zero-length observation sequence.
	ErrEmptySequence = errors.New("hmm: observation sequence is empty")

	// ErrUnknownState indicates that a path references a state absent
	// from the model's declared state alphabet.
	ErrUnknownState = errors.New("hmm: state not present in model")

	// ErrUnknownSymbol indicates that an observation references a symbol
	// absent from the model's declared symbol alphabet.
	ErrUnknownSymbol = errors.New("hmm: symbol not present in model")
)

// State is an opaque hidden-state label drawn from a model's finite,
// fixed state alphabet (e.g. "E", "5", "I").
type State string

// Symbol is an opaque observation label drawn from a model's finite
// observation alphabet (e.g. "A", "C", "G", "T").
type Symbol string

// ModelConfig bundles the tables a Model is built from. It is consumed
// by New, which deep-copies every table; mutating a ModelConfig after
// New returns has no effect on the constructed Model.
//
// Fields:
//   - States       — the state alphabet, in the order used for
//     tie-breaking during decoding (see Viterbi).
//   - Symbols      — the observation alphabet.
//   - Start        — probability of starting in each state; must be
//     defined for every state and sum to 1.
//   - Transitions  — Transitions[from][to]; every row must be fully
//     defined over States and, together with End[from] (0 if absent),
//     sum to 1.
//   - Emissions    — Emissions[state][symbol]; every row must be fully
//     defined over Symbols and sum to 1.
//   - End          — probability of transitioning from a state to the
//     virtual End marker. Only states present in this map may
//     contribute an explicit termination term when a scored path ends
//     on them; states absent from the map simply have no End edge.
type ModelConfig struct {
	States      []State
	Symbols     []Symbol
	Start       map[State]float64
	Transitions map[State]map[State]float64
	Emissions   map[State]map[Symbol]float64
	End         map[State]float64
}

// Arithmetic selects how the Viterbi recursion accumulates probability.
//
//   - LogSpace — sum natural logarithms of start/transition/emission
//     probabilities. log(0) = -Inf is absorbing under addition, so a
//     zero-probability step poisons exactly the paths that cross it.
//     Robust against underflow on long sequences.
//
//   - Linear — multiply raw probabilities, exactly as the classic
//     textbook recursion does. Subject to underflow for long
//     sequences; retained for bit-for-bit agreement with the
//     reference arithmetic on short inputs.
//
// Both modes compare candidates identically, so they select the same
// path whenever the linear products stay representable.
type Arithmetic int

const (
	// LogSpace mode: accumulate log-probabilities (the default).
	LogSpace Arithmetic = iota

	// Linear mode: multiply raw probabilities, as in the classic
	// formulation of the recursion.
	Linear
)

// Options configures a single Viterbi invocation.
//
// Arithmetic – LogSpace (default) or Linear; see the Arithmetic docs.
type Options struct {
	Arithmetic Arithmetic
}

// Option represents a functional option for configuring Viterbi.
type Option func(*Options)

// WithArithmetic selects the accumulation mode for the DP recursion.
func WithArithmetic(mode Arithmetic) Option {
	return func(o *Options) {
		o.Arithmetic = mode
	}
}

// WithLinearProbability selects the raw-probability recursion,
// reproducing the classic arithmetic exactly. Suitable only for short
// sequences; prefer the LogSpace default otherwise.
func WithLinearProbability() Option {
	return func(o *Options) {
		o.Arithmetic = Linear
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults. Use this as a starting point for further
// functional-option overrides.
//
// Defaults:
//   - Arithmetic: LogSpace (underflow-safe accumulation).
func DefaultOptions() Options {
	return Options{
		Arithmetic: LogSpace,
	}
}
