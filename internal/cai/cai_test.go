package cai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lignum-vitae/biobase/internal/alphabet"
)

func TestBasicExample(t *testing.T) {
	refCounts := map[string]float64{
		"AAA": 80, // Lysine (K)
		"AAG": 20,
		"GCC": 50, // Alanine (A)
		"GCU": 10,
		"GCA": 20,
		"GCG": 20,
	}
	// AAA AAG GCC GCU = K K A A
	// Expected CAI = (1.0 * 0.25 * 1.0 * 0.2) ** (1/4) ≈ 0.4729
	got, err := CAI("AAA AAG GCC GCU", refCounts)
	require.NoError(t, err)
	assert.InDelta(t, 0.4729, got, 1e-4)
}

func TestDNAInputIsConverted(t *testing.T) {
	refCounts := map[string]float64{"AAA": 10, "AAG": 5, "UUU": 8}
	got, err := CAI("AAATTTAAA", refCounts) // becomes AAA UUU AAA
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func TestStopOnlySequenceIsZeroNotError(t *testing.T) {
	refCounts := map[string]float64{"AAA": 10}

	// UAA is exactly 3 characters, so the length gate passes; its only
	// codon is a stop, so nothing contributes.
	got, err := CAI("UAA", refCounts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// Stop plus a trailing partial codon behaves the same.
	got, err = CAI("UAAU", refCounts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestTooShortSequences(t *testing.T) {
	refCounts := map[string]float64{"AAA": 10}

	for _, seq := range []string{"", "A", "AA"} {
		_, err := CAI(seq, refCounts)
		var terr *TooShortError
		require.True(t, errors.As(err, &terr), "CAI(%q) expected TooShortError, got %v", seq, err)
	}
}

func TestTrailingPartialCodonIsDropped(t *testing.T) {
	refCounts := map[string]float64{"AAA": 10}
	got, err := CAI("AAAAA", refCounts) // AAA + dangling AA
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
}

func TestInvalidCodonsAreAllCollected(t *testing.T) {
	refCounts := map[string]float64{"AAA": 10}
	_, err := CAI("XYZ AAA ABU", refCounts)

	var verr *alphabet.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.ElementsMatch(t, []string{"XYZ", "ABU"}, verr.Invalid)
}

func TestCaseAndWhitespaceNormalization(t *testing.T) {
	refCounts := map[string]float64{"AAA": 10, "AAG": 5}
	a, err := CAI("aAa \n aAg", refCounts)
	require.NoError(t, err)
	b, err := CAI("AAA AAG", refCounts)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestUncoveredCodonIsSkippedNotError(t *testing.T) {
	// Only AAA has reference coverage; AAG contributes nothing.
	refCounts := map[string]float64{"AAA": 100}
	got, err := CAI("AAA AAG AAA", refCounts)
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func TestStopCodonsIgnoredWhenMixed(t *testing.T) {
	refCounts := map[string]float64{"AAA": 50, "AAG": 50}
	got, err := CAI("AAA UAA AAG", refCounts)
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func TestDNAKeyedReferenceIsNormalized(t *testing.T) {
	// Reference keyed by DNA codons must behave like its RNA equivalent.
	dnaRef := map[string]float64{"TTT": 8, "TTC": 2}
	rnaRef := map[string]float64{"UUU": 8, "UUC": 2}

	a, err := CAI("UUC UUU", dnaRef)
	require.NoError(t, err)
	b, err := CAI("UUC UUU", rnaRef)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestRefCountsFromSequences(t *testing.T) {
	counts := RefCountsFromSequences([]string{
		"AAA AAG AAA", // two AAA, one AAG
		"UAA GCC",     // stop skipped, GCC counted
		"GC",          // partial codon only, nothing counted
	})

	assert.Equal(t, map[string]float64{"AAA": 2, "AAG": 1, "GCC": 1}, counts)
}

func TestRefFreqsFromSequences(t *testing.T) {
	freqs := RefFreqsFromSequences([]string{"AAA AAG AAA AAG"})
	assert.InDelta(t, 0.5, freqs["AAA"], 1e-12)
	assert.InDelta(t, 0.5, freqs["AAG"], 1e-12)

	total := 0.0
	for _, v := range freqs {
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-12)

	assert.Empty(t, RefFreqsFromSequences(nil))
	assert.Empty(t, RefFreqsFromSequences([]string{"UAA"}))
}
