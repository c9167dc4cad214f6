// Package genbank parses GenBank flat-file records into a typed model.
//
// The format has no grammar: records are framed by a bare "//" line,
// sections by uppercase keywords in column 0, and features by a fixed
// 21-column indentation convention. Parsing is two nested line-walks over
// those heuristics.
package genbank

import (
	"strconv"
	"strings"
	"unicode"
)

// Section is one parsed GenBank section. Recognized keywords parse to a
// typed section (Locus, Definition, Accession, Version, Features, Origin);
// everything else is retained as Raw block text.
type Section interface {
	isSection()
}

// Raw is the trimmed text of a section with no dedicated parser.
type Raw string

func (Raw) isSection() {}

// sectionConstructors dispatches recognized section keywords to their
// parsers. Keys absent here stay Raw.
var sectionConstructors = map[string]func(block string) Section{
	"LOCUS":      func(b string) Section { return parseLocus(b) },
	"DEFINITION": func(b string) Section { return parseDefinition(b) },
	"ACCESSION":  func(b string) Section { return parseAccession(b) },
	"VERSION":    func(b string) Section { return parseVersion(b) },
	"FEATURES":   func(b string) Section { return parseFeatures(b) },
	"ORIGIN":     func(b string) Section { return &Origin{raw: b} },
}

// Record is one GenBank entry. Entries maps each section keyword to its
// parsed value exactly once; duplicate raw sections (e.g. two REFERENCE
// blocks) are concatenated, never split into multiple entries. Keys
// preserves first-seen order. ID, Name and Sequence are convenience copies
// derived at construction from ACCESSION, DEFINITION and ORIGIN.
type Record struct {
	Entries map[string]Section
	Keys    []string

	ID       string
	Name     string
	Sequence string
}

// newRecord parses one "//"-terminated record block.
func newRecord(block string) *Record {
	r := &Record{Entries: make(map[string]Section)}

	for _, b := range splitBlocks(block) {
		r.addSection(b.key, b.text)
	}

	if acc, ok := r.Entries["ACCESSION"].(*Accession); ok {
		r.ID = acc.Value
	}
	if def, ok := r.Entries["DEFINITION"].(*Definition); ok {
		r.Name = def.Value
	}
	if origin, ok := r.Entries["ORIGIN"].(*Origin); ok {
		r.Sequence = origin.Sequence()
	}

	return r
}

// addSection constructs the section value for one (key, block) pair and
// merges it into Entries. A repeated key whose existing and new values are
// both raw text concatenates them with a newline; any other repeat
// overwrites (not observed in real files, flagged as a policy choice).
func (r *Record) addSection(key, block string) {
	var value Section = Raw(block)
	if ctor, ok := sectionConstructors[key]; ok {
		value = ctor(block)
	}

	existing, ok := r.Entries[key]
	if !ok {
		r.Entries[key] = value
		r.Keys = append(r.Keys, key)
		return
	}

	if prev, prevRaw := existing.(Raw); prevRaw {
		if next, nextRaw := value.(Raw); nextRaw {
			r.Entries[key] = Raw(string(prev) + "\n" + string(next))
			return
		}
	}
	r.Entries[key] = value
}

// Locus is the parsed summary header line. Fields absent from the line
// stay zero-valued. Token heuristics, not fixed columns: the line layout
// drifts across GenBank revisions.
type Locus struct {
	Name         string
	Length       int
	MoleculeType string // DNA, RNA or PROTEIN
	Topology     string // linear or circular
	Date         string
}

func (*Locus) isSection() {}

var moleculeTypes = map[string]bool{"DNA": true, "RNA": true, "PROTEIN": true}

func parseLocus(block string) *Locus {
	l := &Locus{}
	fields := strings.Fields(block)
	if len(fields) == 0 {
		return l
	}

	if len(fields) > 1 {
		l.Name = fields[1]
	}
	for _, tok := range fields {
		if isDigits(tok) {
			l.Length, _ = strconv.Atoi(tok)
			break
		}
	}
	for _, tok := range fields {
		if moleculeTypes[strings.ToUpper(tok)] {
			l.MoleculeType = strings.ToUpper(tok)
			break
		}
	}
	for _, tok := range fields {
		if low := strings.ToLower(tok); low == "linear" || low == "circular" {
			l.Topology = low
			break
		}
	}
	if len(fields) > 2 {
		l.Date = fields[len(fields)-1]
	}
	return l
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// Definition is the record description with the keyword stripped.
type Definition struct {
	Value string
}

func (*Definition) isSection() {}

func parseDefinition(block string) *Definition {
	return &Definition{Value: strings.TrimSpace(strings.Replace(block, "DEFINITION", "", 1))}
}

// Accession is the primary accession number(s).
type Accession struct {
	Value string
}

func (*Accession) isSection() {}

func parseAccession(block string) *Accession {
	fields := strings.Fields(block)
	if len(fields) < 2 {
		return &Accession{}
	}
	return &Accession{Value: strings.Join(fields[1:], " ")}
}

// Version holds the versioned accession and, when present, the legacy GI
// number.
type Version struct {
	Version string
	GI      string
}

func (*Version) isSection() {}

func parseVersion(block string) *Version {
	v := &Version{}
	fields := strings.Fields(block)
	if len(fields) > 1 {
		v.Version = fields[1]
	}
	for _, tok := range fields {
		if strings.HasPrefix(tok, "GI:") {
			v.GI = strings.TrimPrefix(tok, "GI:")
			break
		}
	}
	return v
}

// Origin holds the raw ORIGIN block. The sequence is derived on demand.
type Origin struct {
	raw string
}

func (*Origin) isSection() {}

// Raw returns the unparsed block text.
func (o *Origin) Raw() string { return o.raw }

// Sequence extracts the lower-cased sequence from the block: every line
// except the ORIGIN header and the "//" terminator contributes its
// alphabetic characters, discarding the position ruler and spacing.
func (o *Origin) Sequence() string {
	var b strings.Builder
	for _, line := range strings.Split(o.raw, "\n") {
		if strings.HasPrefix(line, "ORIGIN") || strings.HasPrefix(line, "//") {
			continue
		}
		for _, ch := range line {
			if unicode.IsLetter(ch) {
				b.WriteRune(unicode.ToLower(ch))
			}
		}
	}
	return b.String()
}
