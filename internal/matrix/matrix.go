// Package matrix loads amino-acid substitution matrices from a folder
// of JSON files and converts the flat text distributions into that
// format. Files are named {NAME}{VERSION}.json, e.g. BLOSUM62.json.
package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// versions lists the supported version numbers per matrix family.
var versions = map[string][]int{
	"BLOSUM": {45, 50, 62, 80, 90},
	"PAM":    {30, 70, 250},
}

// families fixes the display order of Available.
var families = []string{"BLOSUM", "PAM"}

// NotFoundError reports a matrix file missing from the store folder.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("matrix file not found: %s", e.Path)
}

// Matrix is a loaded substitution matrix. Score lookups are keyed by
// one-letter amino acid codes.
type Matrix struct {
	Name    string
	Version int
	scores  map[string]map[string]int
}

// Score returns the substitution score for the pair (a, b). The second
// return is false when either residue is not in the matrix.
func (m *Matrix) Score(a, b string) (int, bool) {
	row, ok := m.scores[a]
	if !ok {
		return 0, false
	}
	score, ok := row[b]
	return score, ok
}

// Row returns the full score row for one residue.
func (m *Matrix) Row(a string) (map[string]int, bool) {
	row, ok := m.scores[a]
	return row, ok
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%s%d Matrix", m.Name, m.Version)
}

// Store reads matrices from a single folder.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Available lists every supported matrix in NAME{VERSION} form.
func Available() []string {
	var out []string
	for _, name := range families {
		for _, v := range versions[name] {
			out = append(out, fmt.Sprintf("%s%d", name, v))
		}
	}
	return out
}

// Select loads the matrix for the given family name and version. The name
// is case-insensitive. An unsupported name/version combination is an
// error naming the full supported set; a supported combination whose file
// is missing from the store is a NotFoundError.
func (s *Store) Select(name string, version int) (*Matrix, error) {
	name = strings.ToUpper(name)
	if !supported(name, version) {
		available := Available()
		return nil, fmt.Errorf("only %s, and %s are currently supported matrices",
			strings.Join(available[:len(available)-1], ", "), available[len(available)-1])
	}

	path := filepath.Join(s.Dir, fmt.Sprintf("%s%d.json", name, version))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading matrix file %s: %w", path, err)
	}

	scores := make(map[string]map[string]int)
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parsing matrix file %s: %w", path, err)
	}

	return &Matrix{Name: name, Version: version, scores: scores}, nil
}

func supported(name string, version int) bool {
	for _, v := range versions[name] {
		if v == version {
			return true
		}
	}
	return false
}

// TextToJSON converts a whitespace-delimited text matrix (the NCBI
// distribution format) into the store's JSON layout. Lines starting with
// '#' are comments; the first data line holds the column labels and each
// following line starts with its row label.
func TextToJSON(inPath, outPath string) error {
	if inPath == "" {
		return fmt.Errorf("empty matrix file path provided")
	}
	data, err := os.ReadFile(inPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: inPath}
		}
		return fmt.Errorf("reading matrix file %s: %w", inPath, err)
	}

	var rows [][]string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if len(rows) < 2 {
		return fmt.Errorf("matrix file %s has no score rows", inPath)
	}

	labels := rows[0]
	scores := make(map[string]map[string]int, len(rows)-1)
	for _, row := range rows[1:] {
		rowLabel := row[0]
		rowScores := make(map[string]int, len(labels))
		for i, cell := range row[1:] {
			if i >= len(labels) {
				break
			}
			score, err := strconv.Atoi(cell)
			if err != nil {
				return fmt.Errorf("matrix file %s: row %s has non-integer score %q", inPath, rowLabel, cell)
			}
			rowScores[labels[i]] = score
		}
		scores[rowLabel] = rowScores
	}

	out, err := json.MarshalIndent(scores, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding matrix: %w", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing matrix file %s: %w", outPath, err)
	}
	return nil
}
