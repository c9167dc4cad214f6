// Package cai computes the Codon Adaptation Index: the geometric mean of
// per-codon usage weights relative to a reference gene set.
package cai

import (
	"fmt"
	"math"
	"strings"

	"github.com/lignum-vitae/biobase/internal/alphabet"
	"github.com/lignum-vitae/biobase/internal/codon"
)

// TooShortError reports a sequence below the minimum length for codon
// segmentation.
type TooShortError struct {
	Length int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("sequence too short for CAI: length %d, need at least 3", e.Length)
}

// normalize upper-cases the sequence, strips whitespace and converts DNA
// T to RNA U.
func normalize(seq string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(seq), ""))
	return strings.ReplaceAll(s, "T", "U")
}

// splitCodons segments s into full triplets, silently dropping any
// trailing partial codon.
func splitCodons(s string) []string {
	n := len(s) - len(s)%3
	codons := make([]string, 0, n/3)
	for i := 0; i < n; i += 3 {
		codons = append(codons, s[i:i+3])
	}
	return codons
}

// normalizeRef re-keys reference counts to uppercase RNA codons and
// computes, per amino acid, the maximum reference count among its
// synonymous codons. Stop codons take no part in the maxima.
func normalizeRef(refCounts map[string]float64) (ref map[string]float64, familyMax map[string]float64) {
	ref = make(map[string]float64, len(refCounts))
	for c, v := range refCounts {
		ref[normalize(c)] = v
	}

	familyMax = make(map[string]float64)
	for c, aa := range codon.Table {
		if aa == codon.Stop {
			continue
		}
		if f := ref[c]; f > familyMax[aa] {
			familyMax[aa] = f
		}
	}
	return ref, familyMax
}

// CAI computes the Codon Adaptation Index of a coding sequence against
// reference codon usage counts (or frequencies). The result is in [0, 1];
// it is exactly 0.0 when no codon contributes (all stops, or no reference
// coverage). Sequences shorter than 3 characters are rejected; codons
// outside the genetic code are all collected into one validation error.
func CAI(seq string, refCounts map[string]float64) (float64, error) {
	if len(seq) < 3 {
		return 0, &TooShortError{Length: len(seq)}
	}

	codons := splitCodons(normalize(seq))

	var invalid []string
	for _, c := range codons {
		if _, ok := codon.Table[c]; !ok {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return 0, &alphabet.ValidationError{Kind: "codon", Invalid: invalid}
	}

	ref, familyMax := normalizeRef(refCounts)

	totalLog := 0.0
	contributing := 0
	for _, c := range codons {
		aa := codon.Table[c]
		if aa == codon.Stop {
			continue // stops are excluded from both the product and L
		}

		f := ref[c]
		max := familyMax[aa]
		if f <= 0 || max <= 0 {
			continue // no reference coverage for this codon or family
		}

		totalLog += math.Log(f / max)
		contributing++
	}

	if contributing == 0 {
		return 0.0, nil
	}
	return math.Exp(totalLog / float64(contributing)), nil
}

// RefCountsFromSequences tallies codon usage across coding sequences into
// a reference count table. Stop codons, trailing partial codons and
// triplets outside the genetic code are skipped.
func RefCountsFromSequences(seqs []string) map[string]float64 {
	counts := make(map[string]float64)
	for _, seq := range seqs {
		for _, c := range splitCodons(normalize(seq)) {
			aa, ok := codon.Table[c]
			if !ok || aa == codon.Stop {
				continue
			}
			counts[c]++
		}
	}
	return counts
}

// RefFreqsFromSequences normalizes RefCountsFromSequences to proportions
// summing to 1.0. An input with no countable codons yields an empty map.
func RefFreqsFromSequences(seqs []string) map[string]float64 {
	counts := RefCountsFromSequences(seqs)

	total := 0.0
	for _, v := range counts {
		total += v
	}
	if total == 0 {
		return map[string]float64{}
	}

	freqs := make(map[string]float64, len(counts))
	for c, v := range counts {
		freqs[c] = v / total
	}
	return freqs
}
