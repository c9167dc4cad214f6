// Package alphabet defines the sequence alphabets used across the toolkit
// and a single parametrized validator shared by every parser and algorithm.
package alphabet

import (
	"fmt"
	"sort"
	"strings"
)

// Alphabets as one-letter code sets.
const (
	DNA         = "ATCG"
	RNA         = "AUCG"
	Nucleotides = "ATCGU"

	// AminoAcids holds the 20 standard one-letter codes.
	AminoAcids = "ACDEFGHIKLMNPQRSTVWY"
	// AminoAcidsExt adds pyrrolysine (O) and selenocysteine (U).
	AminoAcidsExt = AminoAcids + "OU"
)

// EmptyError reports empty input, as distinct from invalid characters.
type EmptyError struct {
	Kind string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("empty %s sequence provided", e.Kind)
}

// ValidationError reports every character of the input that is not a member
// of the target alphabet. Offenders are collected, not reported one by one.
type ValidationError struct {
	Kind    string
	Invalid []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s characters found: [%s]", e.Kind, strings.Join(e.Invalid, " "))
}

// Validate upper-cases s and checks that every character is a member of
// alphabet. kind names the alphabet in error messages (e.g. "DNA",
// "amino acid"). When single is set the input must be exactly one character.
func Validate(s, alphabet, kind string, single bool) (string, error) {
	if s == "" {
		return "", &EmptyError{Kind: kind}
	}
	if single && len(s) != 1 {
		return "", fmt.Errorf("expected single %s character, got sequence of length %d", kind, len(s))
	}

	s = strings.ToUpper(s)

	var invalid map[rune]struct{}
	for _, ch := range s {
		if !strings.ContainsRune(alphabet, ch) {
			if invalid == nil {
				invalid = make(map[rune]struct{})
			}
			invalid[ch] = struct{}{}
		}
	}
	if invalid != nil {
		offenders := make([]string, 0, len(invalid))
		for ch := range invalid {
			offenders = append(offenders, string(ch))
		}
		sort.Strings(offenders)
		return "", &ValidationError{Kind: kind, Invalid: offenders}
	}

	return s, nil
}

// ValidateDNA validates a DNA sequence and returns it upper-cased.
func ValidateDNA(s string) (string, error) {
	return Validate(s, DNA, "DNA", false)
}

// ValidateNucleotide validates a nucleotide sequence (DNA or RNA bases).
// With single set, s must be exactly one nucleotide.
func ValidateNucleotide(s string, single bool) (string, error) {
	return Validate(s, Nucleotides, "nucleotide", single)
}

// ValidateAminoAcids validates a protein sequence against the standard
// one-letter codes, or the extended set (O, U) when ext is set.
func ValidateAminoAcids(s string, ext bool) (string, error) {
	codes := AminoAcids
	if ext {
		codes = AminoAcidsExt
	}
	return Validate(s, codes, "amino acid", false)
}
