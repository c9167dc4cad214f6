package fastq

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFastq = `@2fa9ee19-5c51-4281-abdd-eac8663f9b49 runid=f53ee40429765e7817081d4bcdee6c1199c2f91d sampleid=18S_amplicon read=109831 ch=33 start_time=2019-09-12T12:05:03Z
CGGTAGCCAGCTGCGTTCAGTATGGAAGATTTGATTTGTTTAGCGATCGCCATACTACCGTGACAAGAAAGTTGTCAGTCTTTGTGACTTGCCTGTCGCTCTATCTTCCAGACTCCTTGGTCCGTGTTCAATCCCGGTAGTAGCGACGGGCGGTGTATGTATTATCAGCGCAACAGAAACAAAGACACC
+
+&&-&%$%%$$$#)33&0$&%$''*''%$#%$%#+-5/---*&&%$%&())(&$#&,'))5769*+..*&(+28./#&1228956:7674';:;80.8>;91;>?B=%.**==?(/'($$$$*'&'**%&/));807;3A=;88>=?9498++0%"%%%%'#&5/($0.$2%&0'))*'%**&)(.%&&
@1f9ca490-2f25-484a-8972-d60922b41f6f runid=f53ee40429765e7817081d4bcdee6c1199c2f91d sampleid=18S_amplicon read=106343 ch=28 start_time=2019-09-12T12:05:07Z
GATGCATACTTCGTTCGATTTCGTTTCAACTGGACAACCTACCGTGACAAAGAAAGTTGTCGATGCTTTGTGACTTGCTGTCCTCTATCTTCAGACTCCTTGGTCCATTTCAAGACCAAACAATCAGTAGTAGCGACGGGCGGTGTGGCAATATCGCTTTCAACGAAACACAAAGAAT
+
&%&%''&'+,005<./'%*-)%(#$'$#$%&&'('$$..74483=.0412$*/,)9/194/+('%%(+1+'')+,-&,>;%%.*@@D>>?)3%%296070717%%16;<'<236800%(,734(0$7769879@;?8)09:+/4'1+**7<<4.4,%%(.)##%&'(&&%*++'&#%$
`

func TestParserMultiRecord(t *testing.T) {
	p := NewParserFromString(sampleFastq)
	records, err := p.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	r1 := records[0]
	assert.True(t, strings.HasPrefix(r1.ID, "2fa9ee19-5c51"))
	assert.Contains(t, r1.ID, "runid=")
	assert.True(t, strings.HasPrefix(r1.Sequence, "CGGTAGCCAGCTGCG"))
	assert.Equal(t, len(r1.Sequence), len(r1.Quality))

	scores := r1.PhredScores()
	require.Len(t, scores, len(r1.Quality))
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, 100)
	}

	r2 := records[1]
	assert.True(t, strings.HasPrefix(r2.ID, "1f9ca490-2f25"))
	assert.True(t, strings.HasPrefix(r2.Sequence, "GATGCATACTTCGTT"))
	assert.Equal(t, len(r2.Sequence), len(r2.Quality))
}

func TestParserIsLazy(t *testing.T) {
	p := NewParserFromString(sampleFastq)

	r1, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, r1)

	r2, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, r2)
	assert.NotEqual(t, r1.ID, r2.ID)

	r3, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, r3, "expected end of input")
}

func TestPhredScores(t *testing.T) {
	r := &Record{ID: "x", Sequence: "ACGT", Quality: "!I5+"}
	// '!' = 33 -> 0, 'I' = 73 -> 40, '5' = 53 -> 20, '+' = 43 -> 10
	assert.Equal(t, []int{0, 40, 20, 10}, r.PhredScores())
}

func TestSingleRecord(t *testing.T) {
	single := "@2fa9ee19-5c51-4281-abdd-eac86\nCGGTAGCCAGCTGCGTTCAGTATG\n+\n%%%+++'''@@@???<<<??????"
	records, err := NewParserFromString(single).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2fa9ee19-5c51-4281-abdd-eac86", records[0].ID)
	assert.Equal(t, "CGGTAGCCAGCTGCGTTCAGTATG", records[0].Sequence)
}

func TestBadHeaderIsFormatError(t *testing.T) {
	_, err := NewParserFromString("This is a bad fastq").ReadAll()
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr), "expected FormatError, got %v", err)
}

func TestQualityLengthMismatchIsFormatError(t *testing.T) {
	bad := "@id\nACGT\n+\n!!"
	_, err := NewParserFromString(bad).ReadAll()
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr), "expected FormatError, got %v", err)
	assert.Contains(t, ferr.Message, "quality length")
}

func TestToFastaPreservesIDAndSequence(t *testing.T) {
	records, err := NewParserFromString(sampleFastq).ReadAll()
	require.NoError(t, err)

	fr := records[0].ToFasta()
	assert.Equal(t, "2fa9ee19-5c51-4281-abdd-eac8663f9b49", fr.ID)
	assert.Equal(t, records[0].Sequence, fr.Sequence)
}

func TestWriteFasta(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewParserFromString(sampleFastq).WriteFasta(&sb))

	out := sb.String()
	assert.Contains(t, out, ">2fa9ee19-5c51")
	assert.Contains(t, out, ">1f9ca490-2f25")
	assert.Contains(t, out, "CGGTA")
	assert.Contains(t, out, "GATGC")
}

func TestParserFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fastq")
	require.NoError(t, os.WriteFile(path, []byte(sampleFastq), 0o644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	records, err := p.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
