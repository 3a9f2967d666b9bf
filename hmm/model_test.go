package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomodel/splicehmm/hmm"
)

// twoStateConfig returns a small, fully normalized two-state model
// configuration used across the package tests. States are declared in
// the order X, Y; X strongly prefers symbol "a", Y prefers "b".
func twoStateConfig() hmm.ModelConfig {
	return hmm.ModelConfig{
		States:  []hmm.State{"X", "Y"},
		Symbols: []hmm.Symbol{"a", "b"},
		Start:   map[hmm.State]float64{"X": 0.9, "Y": 0.1},
		Transitions: map[hmm.State]map[hmm.State]float64{
			"X": {"X": 0.8, "Y": 0.2},
			"Y": {"X": 0.2, "Y": 0.8},
		},
		Emissions: map[hmm.State]map[hmm.Symbol]float64{
			"X": {"a": 0.9, "b": 0.1},
			"Y": {"a": 0.1, "b": 0.9},
		},
	}
}

// symbols converts a string of single-letter observations into a
// Symbol slice.
func symbols(s string) []hmm.Symbol {
	out := make([]hmm.Symbol, len(s))
	for i := range s {
		out[i] = hmm.Symbol(s[i : i+1])
	}
	return out
}

// states converts a string of single-letter labels into a State slice.
func states(s string) []hmm.State {
	out := make([]hmm.State, len(s))
	for i := range s {
		out[i] = hmm.State(s[i : i+1])
	}
	return out
}

// TestNew_Valid verifies that a normalized configuration constructs and
// exposes its alphabets in declaration order.
func TestNew_Valid(t *testing.T) {
	m, err := hmm.New(twoStateConfig())
	require.NoError(t, err, "normalized config must construct")

	assert.Equal(t, []hmm.State{"X", "Y"}, m.States(), "state alphabet order must be preserved")
	assert.Equal(t, []hmm.Symbol{"a", "b"}, m.Symbols(), "symbol alphabet order must be preserved")
}

// TestNew_AlphabetsImmutable ensures New deep-copies the configuration:
// mutating the config (or an accessor's return value) after construction
// must not affect the model.
func TestNew_AlphabetsImmutable(t *testing.T) {
	cfg := twoStateConfig()
	m, err := hmm.New(cfg)
	require.NoError(t, err)

	cfg.States[0] = "Z"
	cfg.Start["X"] = 0.0
	got := m.States()
	got[1] = "Z"

	assert.Equal(t, []hmm.State{"X", "Y"}, m.States(), "model must not alias caller-owned tables")
}

// TestNew_EmptyAlphabets verifies ErrBadModel for empty state or symbol
// alphabets.
func TestNew_EmptyAlphabets(t *testing.T) {
	cfg := twoStateConfig()
	cfg.States = nil
	_, err := hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "empty state alphabet must error")

	cfg = twoStateConfig()
	cfg.Symbols = nil
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "empty symbol alphabet must error")
}

// TestNew_DuplicateLabels verifies ErrBadModel for duplicated state or
// symbol labels.
func TestNew_DuplicateLabels(t *testing.T) {
	cfg := twoStateConfig()
	cfg.States = []hmm.State{"X", "X"}
	_, err := hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "duplicate state must error")

	cfg = twoStateConfig()
	cfg.Symbols = []hmm.Symbol{"a", "a"}
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "duplicate symbol must error")
}

// TestNew_MissingEntries verifies that every table must be fully
// defined: a missing start value, transition cell or emission cell is a
// configuration error, not a runtime condition.
func TestNew_MissingEntries(t *testing.T) {
	cfg := twoStateConfig()
	delete(cfg.Start, "Y")
	_, err := hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "missing start entry must error")

	cfg = twoStateConfig()
	delete(cfg.Transitions["X"], "Y")
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "missing transition cell must error")

	cfg = twoStateConfig()
	delete(cfg.Transitions, "Y")
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "missing transition row must error")

	cfg = twoStateConfig()
	delete(cfg.Emissions["Y"], "b")
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "missing emission cell must error")
}

// TestNew_Unnormalized verifies that rows not summing to 1 are rejected.
func TestNew_Unnormalized(t *testing.T) {
	cfg := twoStateConfig()
	cfg.Start["X"] = 0.8 // 0.8 + 0.1 != 1
	_, err := hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "unnormalized start must error")

	cfg = twoStateConfig()
	cfg.Transitions["X"]["Y"] = 0.3 // 0.8 + 0.3 != 1
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "unnormalized transition row must error")

	cfg = twoStateConfig()
	cfg.Emissions["Y"]["a"] = 0.5 // 0.5 + 0.9 != 1
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "unnormalized emission row must error")
}

// TestNew_EndEdges verifies that End edges participate in row
// normalization and must reference declared states.
func TestNew_EndEdges(t *testing.T) {
	// A transition row summing to 0.9 is valid once End covers the rest.
	cfg := twoStateConfig()
	cfg.Transitions["Y"] = map[hmm.State]float64{"X": 0.2, "Y": 0.7}
	cfg.End = map[hmm.State]float64{"Y": 0.1}
	_, err := hmm.New(cfg)
	assert.NoError(t, err, "End edge must complete the row sum")

	// Without the End edge the same row is unnormalized.
	cfg = twoStateConfig()
	cfg.Transitions["Y"] = map[hmm.State]float64{"X": 0.2, "Y": 0.7}
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "short row without End edge must error")

	// End keys must be declared states.
	cfg = twoStateConfig()
	cfg.End = map[hmm.State]float64{"Q": 0.1}
	_, err = hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "End edge for undeclared state must error")
}

// TestNew_OutOfRangeProbability verifies rejection of negative values
// and values above 1.
func TestNew_OutOfRangeProbability(t *testing.T) {
	cfg := twoStateConfig()
	cfg.Emissions["X"]["a"] = -0.1
	cfg.Emissions["X"]["b"] = 1.1
	_, err := hmm.New(cfg)
	assert.ErrorIs(t, err, hmm.ErrBadModel, "probabilities outside [0,1] must error")
}
