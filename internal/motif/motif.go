// Package motif finds motif occurrences in protein sequences. Patterns
// are regular expressions and matches are reported with overlapping
// semantics: every valid start position counts, even inside an earlier
// match.
package motif

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lignum-vitae/biobase/internal/alphabet"
)

// Span is a 0-based half-open match interval.
type Span struct {
	Start int
	End   int
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty motif pattern provided")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid motif pattern %q: %w", pattern, err)
	}
	return re, nil
}

// findOverlapping reports every match start position by restarting the
// scan one character past each match start.
func findOverlapping(re *regexp.Regexp, s string) []Span {
	spans := []Span{}
	pos := 0
	for pos <= len(s) {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		spans = append(spans, Span{Start: start, End: end})
		pos = start + 1
	}
	return spans
}

// Find validates seq against the amino-acid alphabet (extended when ext
// is set) and returns all overlapping matches of pattern, in order of
// start position. Empty or invalid sequences and empty or non-compiling
// patterns are errors.
func Find(seq, pattern string, ext bool) ([]Span, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	s, err := alphabet.ValidateAminoAcids(seq, ext)
	if err != nil {
		return nil, err
	}
	return findOverlapping(re, s), nil
}

// BatchResult partitions a batch search: entries with at least one match,
// entries that failed validation (with the reason), and entries that
// validated but matched nowhere. The three groups cover the input exactly,
// with no overlap.
type BatchResult struct {
	Matches map[string][]Span
	Invalid map[string]string
	NoMatch []string
}

// FindBatch runs Find over a mapping of id to sequence. Per-entry alphabet
// violations are collected into the Invalid group, never raised; only an
// empty batch or a bad pattern is an error.
func FindBatch(seqs map[string]string, pattern string, ext bool) (*BatchResult, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("empty batch provided")
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Matches: make(map[string][]Span),
		Invalid: make(map[string]string),
	}

	for id, seq := range seqs {
		s, err := alphabet.ValidateAminoAcids(seq, ext)
		if err != nil {
			result.Invalid[id] = err.Error()
			continue
		}
		spans := findOverlapping(re, s)
		if len(spans) == 0 {
			result.NoMatch = append(result.NoMatch, id)
			continue
		}
		result.Matches[id] = spans
	}
	sort.Strings(result.NoMatch)

	return result, nil
}
