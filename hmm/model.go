package hmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the non-negative tolerance used when checking that a
// probability row sums to 1. Hard-coded reference models sum exactly;
// the tolerance only absorbs decimal-literal rounding.
const DefaultEpsilon = 1e-9

// Model is an immutable hidden Markov model: a state alphabet, a symbol
// alphabet, and start/transition/emission/end probability tables.
//
// A Model is constructed once by New, deep-copies its configuration and
// is never mutated afterwards, so it may be shared freely across
// concurrent Score and Viterbi calls without locking.
//
// Tables are stored as flat row-major slices indexed by state/symbol
// position within the declared alphabets; natural logarithms of every
// entry are precomputed so that scoring and log-space decoding never
// call math.Log in their inner loops.
type Model struct {
	states  []State
	symbols []Symbol

	stateIdx  map[State]int
	symbolIdx map[Symbol]int

	start []float64 // by state index
	trans []float64 // row-major S×S, trans[from*S+to]
	emit  []float64 // row-major S×K, emit[state*K+symbol]

	// End-marker transitions. hasEnd distinguishes "no End edge" from an
	// explicit zero probability.
	end    []float64
	hasEnd []bool

	// Precomputed natural logs of the tables above (log(0) = -Inf).
	logStart []float64
	logTrans []float64
	logEmit  []float64
	logEnd   []float64
}

// New builds an immutable Model from cfg, validating every invariant up
// front so that Score and Viterbi can never hit a missing entry at
// decode time.
//
// Validation (in order, each failure wrapping ErrBadModel):
//  1. States and Symbols must be non-empty and free of duplicates.
//  2. Start must be defined for every state, with values in [0,1]
//     summing to 1 (within DefaultEpsilon).
//  3. Transitions must define a full row for every state; each row's
//     values lie in [0,1] and, together with End[from] (0 if absent),
//     sum to 1.
//  4. Emissions must define a full row for every state; each row's
//     values lie in [0,1] and sum to 1.
//  5. End keys must be declared states with values in [0,1].
func New(cfg ModelConfig) (*Model, error) {
	// 1) Alphabets: non-empty, duplicate-free.
	if len(cfg.States) == 0 {
		return nil, fmt.Errorf("empty state alphabet: %w", ErrBadModel)
	}
	if len(cfg.Symbols) == 0 {
		return nil, fmt.Errorf("empty symbol alphabet: %w", ErrBadModel)
	}
	nState, nSym := len(cfg.States), len(cfg.Symbols)

	stateIdx := make(map[State]int, nState)
	for i, s := range cfg.States {
		if _, dup := stateIdx[s]; dup {
			return nil, fmt.Errorf("duplicate state %q: %w", s, ErrBadModel)
		}
		stateIdx[s] = i
	}
	symbolIdx := make(map[Symbol]int, nSym)
	for i, v := range cfg.Symbols {
		if _, dup := symbolIdx[v]; dup {
			return nil, fmt.Errorf("duplicate symbol %q: %w", v, ErrBadModel)
		}
		symbolIdx[v] = i
	}

	m := &Model{
		states:    append([]State(nil), cfg.States...),
		symbols:   append([]Symbol(nil), cfg.Symbols...),
		stateIdx:  stateIdx,
		symbolIdx: symbolIdx,
		start:     make([]float64, nState),
		trans:     make([]float64, nState*nState),
		emit:      make([]float64, nState*nSym),
		end:       make([]float64, nState),
		hasEnd:    make([]bool, nState),
	}

	// 2) Start distribution: fully defined, normalized.
	for i, s := range m.states {
		p, ok := cfg.Start[s]
		if !ok {
			return nil, fmt.Errorf("start probability missing for state %q: %w", s, ErrBadModel)
		}
		if badProb(p) {
			return nil, fmt.Errorf("start probability %v for state %q outside [0,1]: %w", p, s, ErrBadModel)
		}
		m.start[i] = p
	}
	if sum := floats.Sum(m.start); math.Abs(sum-1) > DefaultEpsilon {
		return nil, fmt.Errorf("start probabilities sum to %v, want 1: %w", sum, ErrBadModel)
	}

	// 5) End edges first, so transition-row sums can include them.
	for s, p := range cfg.End {
		i, ok := stateIdx[s]
		if !ok {
			return nil, fmt.Errorf("end probability for undeclared state %q: %w", s, ErrBadModel)
		}
		if badProb(p) {
			return nil, fmt.Errorf("end probability %v for state %q outside [0,1]: %w", p, s, ErrBadModel)
		}
		m.end[i] = p
		m.hasEnd[i] = true
	}

	// 3) Transition rows: fully defined, normalized together with End.
	for i, from := range m.states {
		row, ok := cfg.Transitions[from]
		if !ok {
			return nil, fmt.Errorf("transition row missing for state %q: %w", from, ErrBadModel)
		}
		for j, to := range m.states {
			p, ok := row[to]
			if !ok {
				return nil, fmt.Errorf("transition %q->%q missing: %w", from, to, ErrBadModel)
			}
			if badProb(p) {
				return nil, fmt.Errorf("transition %q->%q probability %v outside [0,1]: %w", from, to, p, ErrBadModel)
			}
			m.trans[i*nState+j] = p
		}
		sum := floats.Sum(m.trans[i*nState:(i+1)*nState]) + m.end[i]
		if math.Abs(sum-1) > DefaultEpsilon {
			return nil, fmt.Errorf("outgoing probabilities of state %q sum to %v, want 1: %w", from, sum, ErrBadModel)
		}
	}

	// 4) Emission rows: fully defined, normalized.
	for i, s := range m.states {
		row, ok := cfg.Emissions[s]
		if !ok {
			return nil, fmt.Errorf("emission row missing for state %q: %w", s, ErrBadModel)
		}
		for j, v := range m.symbols {
			p, ok := row[v]
			if !ok {
				return nil, fmt.Errorf("emission %q(%q) missing: %w", s, v, ErrBadModel)
			}
			if badProb(p) {
				return nil, fmt.Errorf("emission %q(%q) probability %v outside [0,1]: %w", s, v, p, ErrBadModel)
			}
			m.emit[i*nSym+j] = p
		}
		sum := floats.Sum(m.emit[i*nSym : (i+1)*nSym])
		if math.Abs(sum-1) > DefaultEpsilon {
			return nil, fmt.Errorf("emission probabilities of state %q sum to %v, want 1: %w", s, sum, ErrBadModel)
		}
	}

	// Precompute logs once; math.Log(0) is -Inf, which is exactly the
	// absorbing value the scorer and log-space decoder rely on.
	m.logStart = logSlice(m.start)
	m.logTrans = logSlice(m.trans)
	m.logEmit = logSlice(m.emit)
	m.logEnd = logSlice(m.end)

	return m, nil
}

// States returns a copy of the declared state alphabet, in tie-break
// order.
func (m *Model) States() []State {
	return append([]State(nil), m.states...)
}

// Symbols returns a copy of the declared observation alphabet.
func (m *Model) Symbols() []Symbol {
	return append([]Symbol(nil), m.symbols...)
}

// badProb reports whether p is outside [0,1] (NaN included).
func badProb(p float64) bool {
	return !(p >= 0 && p <= 1)
}

// logSlice returns the element-wise natural log of src.
func logSlice(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = math.Log(v)
	}

	return dst
}
