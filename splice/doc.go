// Package splice provides the classic three-state toy gene model for
// labeling DNA positions as exon, 5' splice site, or intron, built on
// top of package hmm.
//
// 🚀 The model:
//
//	Start ──▶ E ──▶ 5 ──▶ I ──▶ End
//	          ⟲           ⟲
//
//	Every sequence begins in the exon state E (start probability 1).
//	E loops on itself (0.9) or crosses the single 5' splice-site
//	position (0.1), which deterministically enters the intron I.
//	I loops on itself (0.9) and is the only state that may terminate
//	the gene model (End probability 0.1).
//
//	Emissions: E is uniform over A/C/G/T; the splice site is nearly
//	always G (0.95, else A); introns are A/T rich (0.4 each).
//
// ⚙️ Usage:
//
//	m := splice.NewModel()
//	seq := splice.Symbols("CTTCATGTGAAAGCAGACGTAAGTCA")
//	path, err := m.Viterbi(seq)
//	fmt.Println(splice.PathString(path)) // "EEEEEEEEEEEEEEEEEEEEEEEEEE"
//
// The probabilities are hard-coded constants of the course material;
// there is no training or parameter estimation here. For custom models,
// construct hmm.ModelConfig directly.
package splice
