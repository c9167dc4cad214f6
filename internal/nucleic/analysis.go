package nucleic

import (
	"math"
	"regexp"
	"strings"

	"github.com/lignum-vitae/biobase/internal/alphabet"
)

// Span is a 0-based half-open interval into a sequence.
type Span struct {
	Start int
	End   int
}

// MolecularWeight returns the molecular weight of a single nucleotide.
func MolecularWeight(nuc string) (float64, error) {
	n, err := alphabet.ValidateNucleotide(nuc, true)
	if err != nil {
		return 0, err
	}
	return MolecularWeights[n], nil
}

// CumulativeMolecularWeight sums the molecular weights of every nucleotide
// in the sequence.
func CumulativeMolecularWeight(nucs string) (float64, error) {
	s, err := alphabet.ValidateNucleotide(nucs, false)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i := 0; i < len(s); i++ {
		total += MolecularWeights[string(s[i])]
	}
	return total, nil
}

// Transcribe converts a DNA sequence to RNA (T becomes U).
func Transcribe(dna string) (string, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(s, "T", "U"), nil
}

// Complement returns the base-paired complement of a DNA sequence.
func Complement(dna string) (string, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = DNAComplements[s[i]]
	}
	return string(out), nil
}

// ReverseComplement returns the complement read 3'→5'.
func ReverseComplement(dna string) (string, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return "", err
	}
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = DNAComplements[s[n-1-i]]
	}
	return string(out), nil
}

// GCContent returns the percentage of G and C bases in a DNA sequence.
func GCContent(dna string) (float64, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return 0, err
	}
	gc := strings.Count(s, "G") + strings.Count(s, "C")
	return float64(gc) / float64(len(s)) * 100, nil
}

// ATContent returns the percentage of A and T bases in a DNA sequence.
func ATContent(dna string) (float64, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return 0, err
	}
	at := strings.Count(s, "A") + strings.Count(s, "T")
	return float64(at) / float64(len(s)) * 100, nil
}

// Entropy computes the Shannon entropy (log2) of the base composition.
// 0 means a homopolymer; 2 means all four bases equally represented.
func Entropy(dna string) (float64, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return 0, err
	}
	total := float64(len(s))
	h := 0.0
	for _, base := range []string{"A", "T", "C", "G"} {
		count := strings.Count(s, base)
		if count == 0 {
			continue
		}
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h, nil
}

// orfPattern matches a start codon followed by whole codons up to the
// nearest stop codon. Non-greedy so each ORF ends at its first stop.
var orfPattern = regexp.MustCompile(`(?i)atg(?:[atgc]{3})*?(?:taa|tag|tga)`)

// FindORFs returns open reading frames as 0-based half-open spans, in
// left-to-right order. Matches do not overlap.
func FindORFs(dna string) ([]Span, error) {
	s, err := alphabet.ValidateDNA(dna)
	if err != nil {
		return nil, err
	}
	var spans []Span
	for _, loc := range orfPattern.FindAllStringIndex(s, -1) {
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}
	return spans, nil
}
