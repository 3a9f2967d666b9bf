package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingHeader indicates sequence data appearing before the first
// '>' header line.
var ErrMissingHeader = errors.New("fasta: sequence data before first header")

// Record represents a single FASTA record: the header text (without the
// leading '>') and the concatenated sequence.
type Record struct {
	Header   string
	Sequence string
}

// Parse reads FASTA records from r. Lines beginning with '>' start a
// new record; subsequent sequence lines are concatenated. Blank lines
// are skipped and surrounding whitespace is trimmed.
//
// Errors:
//   - ErrMissingHeader (wrapped with the line number) if sequence data
//     precedes the first header.
//   - any read error from r.
func Parse(r io.Reader) ([]Record, error) {
	var (
		records []Record
		current *Record
	)
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ">"):
			if current != nil {
				records = append(records, *current)
			}
			current = &Record{Header: strings.TrimSpace(line[1:])}
		case current == nil:
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingHeader)
		default:
			current.Sequence += line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	if current != nil {
		records = append(records, *current)
	}

	return records, nil
}

// Linearize copies FASTA data from r to w, collapsing every record's
// sequence block into a single line. Header lines pass through
// unchanged (trimmed); blank lines are dropped. The output always ends
// with a trailing newline when any record was written.
//
// The transform is streaming: memory use is bounded by one record's
// sequence, never the whole input.
//
// Errors: ErrMissingHeader as in Parse, plus any read or write error.
func Linearize(r io.Reader, w io.Writer) error {
	var (
		seq     strings.Builder
		started bool
	)

	// flush writes the pending sequence line, if any.
	flush := func() error {
		if seq.Len() == 0 {
			return nil
		}
		if _, err := io.WriteString(w, seq.String()+"\n"); err != nil {
			return fmt.Errorf("fasta: write: %w", err)
		}
		seq.Reset()

		return nil
	}

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ">"):
			if err := flush(); err != nil {
				return err
			}
			started = true
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return fmt.Errorf("fasta: write: %w", err)
			}
		case !started:
			return fmt.Errorf("line %d: %w", lineNo, ErrMissingHeader)
		default:
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("fasta: read: %w", err)
	}

	return flush()
}
