package splice

import (
	"strings"

	"github.com/genomodel/splicehmm/hmm"
)

// Hidden states of the toy gene model.
const (
	// Exon is the coding-region state "E".
	Exon hmm.State = "E"

	// Site is the single 5' splice-site position "5" bridging exon
	// into intron.
	Site hmm.State = "5"

	// Intron is the intronic state "I", the only state with an End
	// edge.
	Intron hmm.State = "I"
)

// DNA nucleotide symbols observed by the model.
const (
	A hmm.Symbol = "A"
	C hmm.Symbol = "C"
	G hmm.Symbol = "G"
	T hmm.Symbol = "T"
)

// NewModel returns the fixed exon/5'-splice-site/intron model with the
// course's hard-coded probabilities. The returned model is immutable and
// safe to share; callers typically construct it once at startup.
//
// NewModel panics only if the package's own constants are inconsistent,
// which is a programmer error, not a runtime condition.
func NewModel() *hmm.Model {
	m, err := hmm.New(hmm.ModelConfig{
		States:  []hmm.State{Exon, Site, Intron},
		Symbols: []hmm.Symbol{A, C, G, T},
		Start: map[hmm.State]float64{
			Exon: 1.0, Site: 0.0, Intron: 0.0,
		},
		Transitions: map[hmm.State]map[hmm.State]float64{
			Exon:   {Exon: 0.9, Site: 0.1, Intron: 0.0},
			Site:   {Exon: 0.0, Site: 0.0, Intron: 1.0},
			Intron: {Exon: 0.0, Site: 0.0, Intron: 0.9},
		},
		Emissions: map[hmm.State]map[hmm.Symbol]float64{
			Exon:   {A: 0.25, C: 0.25, G: 0.25, T: 0.25},
			Site:   {A: 0.05, C: 0.0, G: 0.95, T: 0.0},
			Intron: {A: 0.4, C: 0.1, G: 0.1, T: 0.4},
		},
		// Only the intron may terminate the gene model.
		End: map[hmm.State]float64{
			Intron: 0.1,
		},
	})
	if err != nil {
		panic("splice: inconsistent built-in model: " + err.Error())
	}

	return m
}

// Symbols converts a DNA string into the model's observation alphabet,
// one symbol per byte. No validation happens here; a nucleotide outside
// A/C/G/T surfaces as hmm.ErrUnknownSymbol (with its position) from the
// decoder or scorer.
func Symbols(dna string) []hmm.Symbol {
	out := make([]hmm.Symbol, len(dna))
	for i := 0; i < len(dna); i++ {
		out[i] = hmm.Symbol(dna[i : i+1])
	}

	return out
}

// States converts a state-label string such as "EEE5III" into a path,
// one state per byte. The inverse of PathString.
func States(labels string) []hmm.State {
	out := make([]hmm.State, len(labels))
	for i := 0; i < len(labels); i++ {
		out[i] = hmm.State(labels[i : i+1])
	}

	return out
}

// PathString renders a decoded path as a compact label string, aligned
// position-for-position under the DNA sequence it was decoded from.
func PathString(path []hmm.State) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, s := range path {
		b.WriteString(string(s))
	}

	return b.String()
}
