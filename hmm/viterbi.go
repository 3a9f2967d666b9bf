package hmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Viterbi — most probable hidden-state path
//
// Description:
//
//	Viterbi finds the single state path of length N that maximizes the
//	joint probability of emitting seq and following that path, via
//	dynamic programming over a (position × state) trellis.
//
// Algorithm Outline:
//  1. Map every observation to its symbol index; fail fast on unknowns.
//  2. Initialize: V[0][s] = start[s] · emit[s][seq[0]].
//  3. Recur for i = 1..N-1:
//     V[i][c] = max over p of V[i-1][p] · trans[p][c] · emit[c][seq[i]]
//     Back[i][c] = the p achieving that maximum.
//  4. Terminate: final state = argmax over V[N-1][·].
//  5. Trace Back pointers from the final state to position 0.
//
// Arithmetic modes (Options.Arithmetic):
//   - LogSpace (default) — the products above become sums of logs,
//     immune to underflow on long sequences.
//   - Linear — raw-probability products, the classic formulation.
//
// Tie-break policy (fixed, documented for reproducibility):
//
//	Candidate predecessors are iterated in the declared state-alphabet
//	order and the first candidate STRICTLY greater than the running
//	best wins, so exact ties favor the earliest-declared state. The
//	running best starts at the arithmetic's zero (-Inf in log space,
//	0 in linear space); if no candidate strictly exceeds it — an
//	all-zero-probability column — the backpointer falls back to the
//	first declared state, keeping the returned path deterministic and
//	exactly N states long. The same first-wins rule applies to the
//	final argmax.
//
// Complexity:
//
//	Time   = O(N·S²)
//	Memory = O(N·S) backpointers + two trellis rows
//
// Errors:
//   - ErrEmptySequence — seq is empty (decoding nothing is a
//     configuration error, not a data condition).
//   - ErrUnknownSymbol — an observation is absent from the model's
//     symbol alphabet (wrapped with the offending position).
//
// The trellis and backpointer tables are owned by a single call and
// discarded afterwards; the model is never mutated, so one Model may
// serve concurrent Viterbi calls.
func (m *Model) Viterbi(seq []Symbol, opts ...Option) ([]State, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Resolve observations to symbol indices up front.
	obs := make([]int, len(seq))
	for i, v := range seq {
		oi, ok := m.symbolIdx[v]
		if !ok {
			return nil, fmt.Errorf("position %d: symbol %q: %w", i, v, ErrUnknownSymbol)
		}
		obs[i] = oi
	}

	// 3) Run the recursion in the selected arithmetic; both fill the
	//    same backpointer table and return the final row.
	var back []int
	var last []float64
	if cfg.Arithmetic == Linear {
		last, back = m.fillLinear(obs)
	} else {
		last, back = m.fillLog(obs)
	}

	// 4) Terminate and trace back.
	nState := len(m.states)
	final := floats.MaxIdx(last) // first index wins exact ties
	path := make([]State, len(obs))
	for i := len(obs) - 1; i >= 0; i-- {
		path[i] = m.states[final]
		if i > 0 {
			final = back[i*nState+final]
		}
	}

	return path, nil
}

// fillLog runs the trellis recursion in log space. It returns the final
// trellis row and the full backpointer table (row 0 unused).
func (m *Model) fillLog(obs []int) ([]float64, []int) {
	nState, nSym := len(m.states), len(m.symbols)
	prev := make([]float64, nState)
	curr := make([]float64, nState)
	back := make([]int, len(obs)*nState)

	for s := 0; s < nState; s++ {
		prev[s] = m.logStart[s] + m.logEmit[s*nSym+obs[0]]
	}
	for i := 1; i < len(obs); i++ {
		for c := 0; c < nState; c++ {
			le := m.logEmit[c*nSym+obs[i]]
			best, bestPrev := math.Inf(-1), 0
			for p := 0; p < nState; p++ {
				if cand := prev[p] + m.logTrans[p*nState+c] + le; cand > best {
					best, bestPrev = cand, p
				}
			}
			curr[c] = best
			back[i*nState+c] = bestPrev
		}
		prev, curr = curr, prev
	}

	return prev, back
}

// fillLinear runs the trellis recursion on raw probabilities, exactly
// reproducing the classic textbook arithmetic. Subject to underflow on
// long sequences; see Arithmetic.
func (m *Model) fillLinear(obs []int) ([]float64, []int) {
	nState, nSym := len(m.states), len(m.symbols)
	prev := make([]float64, nState)
	curr := make([]float64, nState)
	back := make([]int, len(obs)*nState)

	for s := 0; s < nState; s++ {
		prev[s] = m.start[s] * m.emit[s*nSym+obs[0]]
	}
	for i := 1; i < len(obs); i++ {
		for c := 0; c < nState; c++ {
			e := m.emit[c*nSym+obs[i]]
			best, bestPrev := 0.0, 0
			for p := 0; p < nState; p++ {
				if cand := prev[p] * m.trans[p*nState+c] * e; cand > best {
					best, bestPrev = cand, p
				}
			}
			curr[c] = best
			back[i*nState+c] = bestPrev
		}
		prev, curr = curr, prev
	}

	return prev, back
}
