package matrix

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blosum62Sample = `{
    "A": {"A": 4, "R": -1, "W": -3},
    "R": {"A": -1, "R": 5, "W": -3},
    "W": {"A": -3, "R": -3, "W": 11}
}`

func writeMatrix(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestAvailable(t *testing.T) {
	want := []string{
		"BLOSUM45", "BLOSUM50", "BLOSUM62", "BLOSUM80", "BLOSUM90",
		"PAM30", "PAM70", "PAM250",
	}
	assert.Equal(t, want, Available())
}

func TestSelectLoadsMatrix(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "BLOSUM62.json", blosum62Sample)

	store := NewStore(dir)
	m, err := store.Select("BLOSUM", 62)
	require.NoError(t, err)

	assert.Equal(t, "BLOSUM62 Matrix", m.String())

	score, ok := m.Score("A", "A")
	assert.True(t, ok)
	assert.Equal(t, 4, score)

	score, ok = m.Score("W", "A")
	assert.True(t, ok)
	assert.Equal(t, -3, score)

	_, ok = m.Score("Z", "A")
	assert.False(t, ok)
	_, ok = m.Score("A", "Z")
	assert.False(t, ok)
}

func TestSelectIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "BLOSUM62.json", blosum62Sample)

	store := NewStore(dir)
	m, err := store.Select("blosum", 62)
	require.NoError(t, err)
	assert.Equal(t, "BLOSUM", m.Name)
}

func TestSelectUnsupportedCombination(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, tt := range []struct {
		name    string
		version int
	}{
		{"BLOSUM", 63},
		{"PAM", 999},
		{"KOALA", 62},
	} {
		_, err := store.Select(tt.name, tt.version)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BLOSUM45")
		assert.Contains(t, err.Error(), "and PAM250")
	}
}

func TestSelectMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Select("PAM", 250)
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, nf.Path, "PAM250.json")
}

func TestSelectRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "PAM30.json", "{not json")

	store := NewStore(dir)
	_, err := store.Select("PAM", 30)
	assert.Error(t, err)
}

func TestTextToJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "BLOSUM62.txt")
	out := filepath.Join(dir, "BLOSUM62.json")

	text := `# Sample scores, comment lines are skipped
#  A  R  W
   A  R  W
A  4 -1 -3
R -1  5 -3
W -3 -3 11
`
	require.NoError(t, os.WriteFile(in, []byte(text), 0o644))
	require.NoError(t, TextToJSON(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var scores map[string]map[string]int
	require.NoError(t, json.Unmarshal(data, &scores))
	assert.Equal(t, 4, scores["A"]["A"])
	assert.Equal(t, -1, scores["R"]["A"])
	assert.Equal(t, 11, scores["W"]["W"])

	// The converted file round-trips through the store.
	m, err := NewStore(dir).Select("BLOSUM", 62)
	require.NoError(t, err)
	score, ok := m.Score("R", "R")
	assert.True(t, ok)
	assert.Equal(t, 5, score)
}

func TestTextToJSONErrors(t *testing.T) {
	dir := t.TempDir()

	err := TextToJSON("", filepath.Join(dir, "out.json"))
	assert.Error(t, err, "empty input path")

	err = TextToJSON(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.json"))
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("A R W\nA x y z\n"), 0o644))
	err = TextToJSON(bad, filepath.Join(dir, "out.json"))
	assert.Error(t, err, "non-integer score")

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# only comments\n"), 0o644))
	err = TextToJSON(empty, filepath.Join(dir, "out.json"))
	assert.Error(t, err, "no score rows")
}
