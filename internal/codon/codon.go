// Package codon holds the standard genetic code and translation helpers.
// The table is process-wide immutable static data; callers treat it as a
// read-only lookup.
package codon

import "strings"

// Stop marks a translation-terminating codon in Table.
const Stop = "STOP"

// Table maps the 64 RNA triplets to one-letter amino acid codes, with
// Stop for UAA, UAG and UGA.
var Table = map[string]string{
	"UUU": "F", "UCU": "S", "UAU": "Y", "UGU": "C",
	"UUC": "F", "UCC": "S", "UAC": "Y", "UGC": "C",
	"UUA": "L", "UCA": "S", "UAA": Stop, "UGA": Stop,
	"UUG": "L", "UCG": "S", "UAG": Stop, "UGG": "W",

	"CUU": "L", "CCU": "P", "CAU": "H", "CGU": "R",
	"CUC": "L", "CCC": "P", "CAC": "H", "CGC": "R",
	"CUA": "L", "CCA": "P", "CAA": "Q", "CGA": "R",
	"CUG": "L", "CCG": "P", "CAG": "Q", "CGG": "R",

	"AUU": "I", "ACU": "T", "AAU": "N", "AGU": "S",
	"AUC": "I", "ACC": "T", "AAC": "N", "AGC": "S",
	"AUA": "I", "ACA": "T", "AAA": "K", "AGA": "R",
	"AUG": "M", "ACG": "T", "AAG": "K", "AGG": "R",

	"GUU": "V", "GCU": "A", "GAU": "D", "GGU": "G",
	"GUC": "V", "GCC": "A", "GAC": "D", "GGC": "G",
	"GUA": "V", "GCA": "A", "GAA": "E", "GGA": "G",
	"GUG": "V", "GCG": "A", "GAG": "E", "GGG": "G",
}

// PerAminoAcid counts the synonymous codons of each amino acid.
var PerAminoAcid = map[string]int{
	"A": 4, "C": 2, "D": 2, "E": 2, "F": 2, "G": 4, "H": 2, "I": 3,
	"K": 2, "L": 6, "M": 1, "N": 2, "P": 4, "Q": 2, "R": 6, "S": 6,
	"T": 4, "V": 4, "W": 1, "Y": 2, Stop: 3,
}

// StartCodons and StopCodons are the standard start/stop triplets (RNA).
var (
	StartCodons = map[string]bool{"AUG": true}
	StopCodons  = map[string]bool{"UAA": true, "UAG": true, "UGA": true}
)

// Codons returns all 64 RNA triplets in AUCG-product order.
func Codons() []string {
	const bases = "AUCG"
	out := make([]string, 0, 64)
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				out = append(out, string(a)+string(b)+string(c))
			}
		}
	}
	return out
}

// Translate maps one RNA codon to its amino acid, or Stop. The second
// return is false for triplets outside the genetic code.
func Translate(c string) (string, bool) {
	aa, ok := Table[strings.ToUpper(c)]
	return aa, ok
}

// IsStop reports whether c is a translation-terminating codon.
func IsStop(c string) bool {
	aa, ok := Translate(c)
	return ok && aa == Stop
}

// TranslateSequence translates an RNA sequence codon by codon, truncating
// any trailing partial codon. Stop codons render as '*'; unknown triplets
// as 'X'.
func TranslateSequence(rna string) string {
	s := strings.ToUpper(rna)
	n := len(s) - len(s)%3

	var b strings.Builder
	b.Grow(n / 3)
	for i := 0; i < n; i += 3 {
		aa, ok := Table[s[i:i+3]]
		switch {
		case !ok:
			b.WriteByte('X')
		case aa == Stop:
			b.WriteByte('*')
		default:
			b.WriteString(aa)
		}
	}
	return b.String()
}
