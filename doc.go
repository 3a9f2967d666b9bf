// Package splicehmm is a small toolkit for labeling DNA sequence
// positions with a hidden Markov model — from the core Viterbi decoder
// to the classic three-state exon/intron/splice-site toy gene model.
//
// 🚀 What is splicehmm?
//
//	A compact, dependency-light library that brings together:
//		• hmm: immutable HMM Model, path scoring and Viterbi decoding
//		• splice: the reference exon / 5' splice site / intron gene model
//		• fasta: FASTA parsing and a multi-line → single-line reformatter
//		• cmd/splicehmm: a thin CLI gluing the pieces together
//
// ✨ Why choose splicehmm?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed state-alphabet order, documented tie-breaks
//   - Pure Go – no cgo; the decoder itself performs no I/O
//   - Concurrency-safe – a Model is immutable and freely shared
//
// Under the hood, everything is organized under three subpackages:
//
//	hmm/    — Model, Score (log-probability of a path) and Viterbi
//	splice/ — the fixed three-state gene model and DNA helpers
//	fasta/  — FASTA records and the single-line reformatter
//
// Quick ASCII picture of the reference model:
//
//	Start ──▶ E ──▶ 5 ──▶ I ──▶ End
//	          ⟲           ⟲
//
//	exons loop on themselves, a single 5' splice-site position bridges
//	into the intron, and only the intron may terminate the gene model.
//
// Dive into DESIGN.md for the design notes and each package's doc.go
// for algorithm outlines, complexity and error contracts.
//
//	go get github.com/genomodel/splicehmm
package splicehmm
