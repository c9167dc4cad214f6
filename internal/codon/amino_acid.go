package codon

// AminoAcid groups the identity codes of one residue.
type AminoAcid struct {
	OneLetter   string
	ThreeLetter string
	FullName    string
}

// StandardAminoAcids lists the 20 canonical residues ordered by one-letter
// code. ExtendedAminoAcids adds the two rare, naturally occurring ones.
var StandardAminoAcids = []AminoAcid{
	{"A", "Ala", "Alanine"},
	{"C", "Cys", "Cysteine"},
	{"D", "Asp", "Aspartic acid"},
	{"E", "Glu", "Glutamic acid"},
	{"F", "Phe", "Phenylalanine"},
	{"G", "Gly", "Glycine"},
	{"H", "His", "Histidine"},
	{"I", "Ile", "Isoleucine"},
	{"K", "Lys", "Lysine"},
	{"L", "Leu", "Leucine"},
	{"M", "Met", "Methionine"},
	{"N", "Asn", "Asparagine"},
	{"P", "Pro", "Proline"},
	{"Q", "Gln", "Glutamine"},
	{"R", "Arg", "Arginine"},
	{"S", "Ser", "Serine"},
	{"T", "Thr", "Threonine"},
	{"V", "Val", "Valine"},
	{"W", "Trp", "Tryptophan"},
	{"Y", "Tyr", "Tyrosine"},
}

var ExtendedAminoAcids = []AminoAcid{
	{"O", "Pyl", "Pyrrolysine"},
	{"U", "Sec", "Selenocysteine"},
}

// OneToThree and ThreeToOne convert between one- and three-letter codes,
// including the extended residues.
var (
	OneToThree = map[string]string{}
	ThreeToOne = map[string]string{}
	OneToName  = map[string]string{}
)

func init() {
	all := append(append([]AminoAcid{}, StandardAminoAcids...), ExtendedAminoAcids...)
	for _, aa := range all {
		OneToThree[aa.OneLetter] = aa.ThreeLetter
		ThreeToOne[aa.ThreeLetter] = aa.OneLetter
		OneToName[aa.OneLetter] = aa.FullName
	}
}

// MonoMass holds monoisotopic residue masses for the standard amino acids.
var MonoMass = map[string]float64{
	"A": 71.037113805,
	"C": 103.009184505,
	"D": 115.026943065,
	"E": 129.042593135,
	"F": 147.068413945,
	"G": 57.021463735,
	"H": 137.058911875,
	"I": 113.084064015,
	"K": 128.094963050,
	"L": 113.084064015,
	"M": 131.040484645,
	"N": 114.042927470,
	"P": 97.052763875,
	"Q": 128.058577540,
	"R": 156.101111050,
	"S": 87.032028435,
	"T": 101.047678505,
	"V": 99.068413945,
	"W": 186.079312980,
	"Y": 163.063328575,
}

// MonoMassExt extends MonoMass with pyrrolysine and selenocysteine.
var MonoMassExt = map[string]float64{
	"O": 237.147726925,
	"U": 150.953633405,
}

func init() {
	for k, v := range MonoMass {
		MonoMassExt[k] = v
	}
}
