package genbank

import "strings"

// featureIndent is the fixed indentation window of the FEATURES table:
// a line opening a new feature has its key somewhere in the first 21
// columns, while qualifiers and continuations are indented past it.
const featureIndent = 21

// Qualifiers is an ordered string-to-string mapping. Keys are unique and
// keep their first insertion position; setting an existing key replaces
// its value (last write wins).
type Qualifiers struct {
	keys   []string
	values map[string]string
}

// Set inserts or replaces a qualifier value.
func (q *Qualifiers) Set(key, value string) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

// Get returns the value for key.
func (q *Qualifiers) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Keys returns the qualifier names in insertion order.
func (q *Qualifiers) Keys() []string {
	return append([]string(nil), q.keys...)
}

// Len returns the number of qualifiers.
func (q *Qualifiers) Len() int { return len(q.keys) }

// appendToLast extends the value of the most recently inserted qualifier.
// Used for wrapped qualifier values and for malformed lines, which are
// absorbed as continuations rather than rejected.
func (q *Qualifiers) appendToLast(s string) {
	if len(q.keys) == 0 {
		return
	}
	last := q.keys[len(q.keys)-1]
	q.values[last] += s
}

// SingleFeature is one entry of the FEATURES table: a key such as "gene"
// or "CDS", its raw location string, and its qualifiers.
type SingleFeature struct {
	Key        string
	Location   string
	Qualifiers Qualifiers
}

// Features holds the ordered feature entries of a FEATURES block.
type Features struct {
	Entries []SingleFeature
}

func (*Features) isSection() {}

// parseFeatures walks the block line by line, skipping the block's own
// header. A line opens a new feature when its indentation window holds
// non-whitespace and the trimmed line does not start with '/'. A trimmed
// line starting with '/' is a qualifier. Anything else continues the
// previous qualifier's value.
func parseFeatures(block string) *Features {
	f := &Features{}

	var current *SingleFeature
	flush := func() {
		if current != nil {
			f.Entries = append(f.Entries, *current)
			current = nil
		}
	}

	lines := strings.Split(block, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // skip the FEATURES header line
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		window := line
		if len(window) > featureIndent {
			window = window[:featureIndent]
		}
		opensFeature := strings.TrimSpace(window) != "" && !strings.HasPrefix(trimmed, "/")

		switch {
		case opensFeature:
			flush()
			current = &SingleFeature{}
			fields := strings.Fields(trimmed)
			current.Key = fields[0]
			current.Location = strings.TrimSpace(trimmed[len(fields[0]):])

		case strings.HasPrefix(trimmed, "/"):
			if current == nil {
				continue
			}
			qualifier := trimmed[1:]
			if name, value, found := strings.Cut(qualifier, "="); found {
				current.Qualifiers.Set(name, strings.Trim(value, `"`))
			} else {
				current.Qualifiers.Set(qualifier, "")
			}

		default:
			if current != nil {
				current.Qualifiers.appendToLast(" " + trimmed)
			}
		}
	}
	flush()

	return f
}
