// Package nucleic provides DNA/RNA constant tables and sequence analysis:
// transcription, complements, composition statistics, entropy and ORF
// discovery.
package nucleic

// MolecularWeights holds per-nucleotide molecular weights in g/mol.
var MolecularWeights = map[string]float64{
	"A": 135.13,
	"T": 126.12,
	"C": 111.10,
	"G": 151.13,
	"U": 112.09,
}

// DNAComplements and RNAComplements map each base to its pairing partner.
var (
	DNAComplements = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	RNAComplements = map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}
)

// IUPACNucleotides maps ambiguity codes to the regexp character class of
// bases they stand for.
var IUPACNucleotides = map[string]string{
	"A": "A",
	"C": "C",
	"G": "G",
	"T": "T",
	"U": "U",
	"R": "[AG]",   // purine
	"Y": "[CT]",   // pyrimidine
	"M": "[AC]",   // amino
	"K": "[GT]",   // keto
	"S": "[CG]",   // strong
	"W": "[AT]",   // weak
	"H": "[ACT]",  // not G
	"B": "[CGT]",  // not A
	"V": "[ACG]",  // not T
	"D": "[AGT]",  // not C
	"N": "[ACGTU]",
}

const (
	PurineBases     = "AG"
	PyrimidineBases = "CTU"
)

// RestrictionSites maps common restriction enzymes to their recognition
// sequences.
var RestrictionSites = map[string]string{
	"EcoRI":   "GAATTC",
	"EcoRV":   "GATATC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"NotI":    "GCGGCCGC",
	"XhoI":    "CTCGAG",
	"XbaI":    "TCTAGA",
	"SalI":    "GTCGAC",
	"SpeI":    "ACTAGT",
	"NcoI":    "CCATGG",
	"NdeI":    "CATATG",
	"SacI":    "GAGCTC",
	"KpnI":    "GGTACC",
	"SmaI":    "CCCGGG",
	"PstI":    "CTGCAG",
	"SphI":    "GCATGC",
	"ApaI":    "GGGCCC",
	"ClaI":    "ATCGAT",
	"HaeIII":  "GGCC",
	"AluI":    "AGCT",
	"TaqI":    "TCGA",
	"MspI":    "CCGG",
	"BglII":   "AGATCT",
	"NheI":    "GCTAGC",
	"MluI":    "ACGCGT",
}
