package hmm

import "fmt"

// Score computes the natural-log joint probability of following path
// while emitting seq under the model.
//
// Algorithm:
//  1. Start the accumulator at 0 with the virtual Start marker as the
//     implicit predecessor.
//  2. For each position i: add log(transition(prev -> path[i])) — the
//     start probability when prev is the Start marker — plus
//     log(emission(path[i], seq[i])); advance prev.
//  3. If the final state carries an End edge (ModelConfig.End), add
//     log(End[final]). States without an End edge contribute no
//     termination term.
//
// Probability 0 maps to log 0 = -Inf, which is absorbing under
// addition: any path segment with zero probability renders the whole
// result -Inf.
//
// Returns a value in (-Inf, 0], or -Inf for an impossible path.
// Errors:
//   - ErrLengthMismatch if len(path) != len(seq).
//   - ErrUnknownState / ErrUnknownSymbol (wrapped with the offending
//     position and label) on a lookup miss.
//
// Score is a pure function of (Model, path, seq); the model is never
// mutated. An empty path scored against an empty sequence is a valid
// length match and yields 0.
//
// Complexity: O(N) time, O(1) extra memory.
func (m *Model) Score(path []State, seq []Symbol) (float64, error) {
	if len(path) != len(seq) {
		return 0, fmt.Errorf("path length %d vs sequence length %d: %w",
			len(path), len(seq), ErrLengthMismatch)
	}

	nState, nSym := len(m.states), len(m.symbols)
	logp := 0.0
	prev := -1 // virtual Start marker
	for i := range path {
		si, ok := m.stateIdx[path[i]]
		if !ok {
			return 0, fmt.Errorf("position %d: state %q: %w", i, path[i], ErrUnknownState)
		}
		oi, ok := m.symbolIdx[seq[i]]
		if !ok {
			return 0, fmt.Errorf("position %d: symbol %q: %w", i, seq[i], ErrUnknownSymbol)
		}
		if prev < 0 {
			logp += m.logStart[si]
		} else {
			logp += m.logTrans[prev*nState+si]
		}
		logp += m.logEmit[si*nSym+oi]
		prev = si
	}

	// Explicit termination term for states with an End edge.
	if prev >= 0 && m.hasEnd[prev] {
		logp += m.logEnd[prev]
	}

	return logp, nil
}
