// Package hmm implements scoring and Viterbi decoding over discrete
// hidden Markov models with an explicit, immutable model configuration.
//
// 🚀 What is an HMM?
//
//	A hidden Markov model pairs an unobservable state sequence with an
//	observed symbol sequence: each hidden state emits one symbol, and
//	the next state depends only on the current one.  Decoding answers
//	“which hidden path best explains these observations?”.  Classic
//	applications include:
//	  • Gene finding (exon / intron / splice-site labeling)
//	  • Speech recognition & part-of-speech tagging
//	  • Signal segmentation & anomaly detection
//
// ✨ Key features:
//   - explicit Model built once from a ModelConfig, read-only after New
//   - Score: exact natural-log probability of a given state path
//   - Viterbi: most probable path via dynamic programming
//   - log-space recursion by default; WithLinearProbability() reproduces
//     the classic raw-probability arithmetic for short sequences
//   - fixed, declared state-alphabet order with a documented tie-break
//   - explicit terminating-state set via ModelConfig.End
//
// ⚙️ Usage:
//
//	import "github.com/genomodel/splicehmm/hmm"
//
//	m, err := hmm.New(hmm.ModelConfig{
//	  States:      []hmm.State{"H", "L"},
//	  Symbols:     []hmm.Symbol{"A", "C", "G", "T"},
//	  Start:       map[hmm.State]float64{"H": 0.5, "L": 0.5},
//	  Transitions: ...,
//	  Emissions:   ...,
//	})
//
//	path, err := m.Viterbi(seq)          // most probable hidden path
//	logp, err := m.Score(path, seq)      // its natural-log probability
//
// Performance:
//
//   - Time:   O(N·S²) for Viterbi, O(N) for Score (N = sequence length,
//     S = number of states)
//   - Memory: O(N·S) for the per-call backpointer table; two rolling
//     trellis rows
//
// Errors:
//   - ErrBadModel        — ModelConfig incomplete or unnormalized.
//   - ErrLengthMismatch  — Score called with len(path) != len(seq).
//   - ErrEmptySequence   — Viterbi called with an empty sequence.
//   - ErrUnknownState    — a path state is absent from the model.
//   - ErrUnknownSymbol   — an observed symbol is absent from the model.
//
// See examples in example_test.go and the reference gene model in
// package splice.
package hmm
