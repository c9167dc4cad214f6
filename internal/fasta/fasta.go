// Package fasta parses FASTA-format text into typed records.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token of
// the header, Name the remainder, Sequence the concatenated body with all
// whitespace stripped. Records are plain values; parsing never aliases them.
type Record struct {
	ID       string
	Name     string
	Sequence string
}

// FormatError reports a structural violation of the FASTA shape.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fasta format error: %s", e.Message)
}

// Parse splits FASTA text into records. A record begins at a line whose
// first character is '>'; body lines up to the next header (or end of
// input) form the sequence. A header with no body parses as a record with
// an empty sequence; input with no header line at all is a format error.
func Parse(text string) ([]Record, error) {
	var records []Record

	var header string
	var seq strings.Builder
	open := false

	flush := func() {
		fields := strings.Fields(header)
		rec := Record{Sequence: seq.String()}
		if len(fields) > 0 {
			rec.ID = fields[0]
			rec.Name = strings.Join(fields[1:], " ")
		}
		records = append(records, rec)
		seq.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ">") {
			if open {
				flush()
			}
			header = strings.TrimSpace(line[1:])
			open = true
			continue
		}
		if !open {
			continue // leading junk before the first header
		}
		seq.WriteString(strings.Join(strings.Fields(line), ""))
	}
	if !open {
		return nil, &FormatError{Message: "no '>' header line found"}
	}
	flush()

	return records, nil
}

// ParseFile reads path in full and delegates to Parse.
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta file: %w", err)
	}
	return Parse(string(data))
}

// Write emits records as FASTA blocks.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		header := r.ID
		if r.Name != "" {
			header += " " + r.Name
		}
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", header, r.Sequence); err != nil {
			return fmt.Errorf("write fasta record %s: %w", r.ID, err)
		}
	}
	return bw.Flush()
}
