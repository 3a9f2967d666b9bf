// Package fasta provides minimal FASTA parsing and a multi-line →
// single-line reformatter.
//
// FASTA interleaves header lines, marked by a leading '>', with one or
// more sequence lines:
//
//	>chr1 some description
//	CTTCATGTGA
//	AAGCAGACGT
//	AAGTCA
//
// Parse collects each record's sequence lines into a single string;
// Linearize streams the same collapse back out, producing exactly one
// sequence line per record:
//
//	>chr1 some description
//	CTTCATGTGAAAGCAGACGTAAGTCA
//
// Parsing is intentionally simple and conservative: blank lines are
// skipped, surrounding whitespace is trimmed, and sequence data before
// the first header is an error (ErrMissingHeader). Nucleotide content
// is not validated here.
//
// This package has no interaction with the hmm decoder; it is the
// stand-alone reformatting utility that ships alongside it.
package fasta
