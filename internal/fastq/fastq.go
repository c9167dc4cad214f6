// Package fastq parses FASTQ 4-line read blocks into typed records,
// one record at a time.
package fastq

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lignum-vitae/biobase/internal/fasta"
)

// Record is one FASTQ read. Quality always has the same length as Sequence.
type Record struct {
	ID       string
	Sequence string
	Quality  string
}

// PhredScores decodes the quality string into per-base Phred scores
// (ASCII offset 33).
func (r *Record) PhredScores() []int {
	scores := make([]int, len(r.Quality))
	for i := 0; i < len(r.Quality); i++ {
		scores[i] = int(r.Quality[i]) - 33
	}
	return scores
}

// ToFasta narrows the read to a FASTA record, dropping quality.
func (r *Record) ToFasta() fasta.Record {
	fields := strings.Fields(r.ID)
	rec := fasta.Record{Sequence: r.Sequence}
	if len(fields) > 0 {
		rec.ID = fields[0]
		rec.Name = strings.Join(fields[1:], " ")
	}
	return rec
}

// FormatError reports a structural violation of the 4-line block shape,
// with the line number where it was detected.
type FormatError struct {
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fastq format error at line %d: %s", e.Line, e.Message)
}

// Parser reads FASTQ records lazily. It is single-pass: restart by creating
// a new parser over the source.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a FASTQ parser for the given file. Plain and gzipped
// (.fastq.gz) files are both supported.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fastq file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read fastq header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek fastq file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader.
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// NewParserFromString creates a parser over in-memory FASTQ text.
func NewParserFromString(text string) *Parser {
	return NewParserFromReader(strings.NewReader(text))
}

// readLine returns the next line without its terminator, skipping blank
// lines. ok is false at end of input.
func (p *Parser) readLine() (line string, ok bool, err error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", false, fmt.Errorf("read fastq line: %w", err)
		}
		if line == "" && err == io.EOF {
			return "", false, nil
		}
		p.lineNumber++
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err == io.EOF {
				return "", false, nil
			}
			continue
		}
		return line, true, nil
	}
}

// Next reads the next 4-line block. Returns nil, nil when there are no
// more reads.
func (p *Parser) Next() (*Record, error) {
	header, ok, err := p.readLine()
	if err != nil || !ok {
		return nil, err
	}

	if !strings.HasPrefix(header, "@") {
		return nil, &FormatError{Line: p.lineNumber, Message: fmt.Sprintf("read header must start with '@', got %q", header)}
	}

	seq, ok, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &FormatError{Line: p.lineNumber, Message: "unexpected end of input after read header"}
	}

	sep, ok, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if !ok || !strings.HasPrefix(sep, "+") {
		return nil, &FormatError{Line: p.lineNumber, Message: "expected '+' separator line"}
	}

	quality, ok, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &FormatError{Line: p.lineNumber, Message: "unexpected end of input before quality line"}
	}
	if len(quality) != len(seq) {
		return nil, &FormatError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("quality length %d does not match sequence length %d", len(quality), len(seq)),
		}
	}

	return &Record{
		ID:       strings.TrimPrefix(header, "@"),
		Sequence: seq,
		Quality:  quality,
	}, nil
}

// ReadAll collects every remaining record in order.
func (p *Parser) ReadAll() ([]Record, error) {
	var records []Record
	for {
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return records, nil
		}
		records = append(records, *r)
	}
}

// WriteFasta converts every remaining record and writes it to w as FASTA.
func (p *Parser) WriteFasta(w io.Writer) error {
	records, err := p.ReadAll()
	if err != nil {
		return err
	}
	out := make([]fasta.Record, len(records))
	for i := range records {
		out[i] = records[i].ToFasta()
	}
	return fasta.Write(w, out)
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
