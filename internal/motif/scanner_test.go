package motif

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lignum-vitae/biobase/internal/fasta"
)

func TestScanRecordsMatchesFindBatch(t *testing.T) {
	fixture := batchFixture()
	ids := make([]string, 0, len(fixture))
	for id := range fixture {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	records := make([]fasta.Record, 0, len(fixture))
	for _, id := range ids {
		records = append(records, fasta.Record{ID: id, Name: id, Sequence: fixture[id]})
	}

	want, err := FindBatch(fixture, "CDE", false)
	require.NoError(t, err)

	scanner, err := NewScanner("CDE", false)
	require.NoError(t, err)
	for _, workers := range []int{1, 4} {
		scanner.SetWorkers(workers)
		got := scanner.ScanRecords(records)
		assert.Equal(t, want.Matches, got.Matches, "workers=%d", workers)
		assert.Equal(t, want.NoMatch, got.NoMatch, "workers=%d", workers)
		assert.Len(t, got.Invalid, len(want.Invalid), "workers=%d", workers)
	}
}

func TestScanRecordsPreservesInputOrder(t *testing.T) {
	var records []fasta.Record
	for i := range 50 {
		records = append(records, fasta.Record{
			ID:       fmt.Sprintf("seq%02d", i),
			Sequence: "GGGGGGGGGG",
		})
	}

	scanner, err := NewScanner("CDE", false)
	require.NoError(t, err)
	scanner.SetWorkers(8)

	result := scanner.ScanRecords(records)
	require.Len(t, result.NoMatch, 50)
	for i, id := range result.NoMatch {
		assert.Equal(t, fmt.Sprintf("seq%02d", i), id)
	}
}

func TestScanRecordsEmptyInput(t *testing.T) {
	scanner, err := NewScanner("CDE", false)
	require.NoError(t, err)

	result := scanner.ScanRecords(nil)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.Invalid)
	assert.Empty(t, result.NoMatch)
}

func TestNewScannerRejectsBadPattern(t *testing.T) {
	_, err := NewScanner("", false)
	assert.Error(t, err)

	_, err = NewScanner("(", false)
	assert.Error(t, err)
}
