package genbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// recordTerminator frames records: a line consisting solely of "//".
const recordTerminator = "//"

// sectionHeader matches a new-section header line: one or more uppercase
// letters at the start of the line, followed by whitespace or end of line.
var sectionHeader = regexp.MustCompile(`^[A-Z]+(\s|$)`)

// Parser reads GenBank records lazily, one "//"-terminated block at a
// time. It is single-pass: restart by creating a new parser over the
// source. Record construction itself never performs I/O.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	lineNumber int
}

// NewParser creates a GenBank parser for the given file.
func NewParser(path string) (*Parser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genbank file: %w", err)
	}
	return &Parser{reader: bufio.NewReader(file), file: file}, nil
}

// NewParserFromReader creates a parser from an io.Reader.
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// NewParserFromString creates a parser over in-memory GenBank text.
func NewParserFromString(text string) *Parser {
	return NewParserFromReader(strings.NewReader(text))
}

// Next reads lines up to and including the next record terminator and
// parses them into a Record. Chunks that are empty apart from the
// terminator are skipped. Returns nil, nil when there are no more records.
func (p *Parser) Next() (*Record, error) {
	for {
		block, err := p.nextBlock()
		if err != nil {
			return nil, err
		}
		if block == "" {
			return nil, nil
		}
		if strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(block), recordTerminator)) == "" {
			continue // stray terminator with no record body
		}
		return newRecord(block), nil
	}
}

// nextBlock accumulates raw lines until a terminator line or end of input.
// Returns "" at end of input once nothing is buffered.
func (p *Parser) nextBlock() (string, error) {
	var lines []string
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read genbank line: %w", err)
		}
		if line == "" && err == io.EOF {
			if len(lines) == 0 {
				return "", nil
			}
			// Unterminated trailing chunk: treat it as a record and
			// re-append the terminator the splitter would have eaten.
			lines = append(lines, recordTerminator)
			return strings.Join(lines, "\n"), nil
		}
		p.lineNumber++
		line = strings.TrimRight(line, "\r\n")
		lines = append(lines, line)
		if strings.TrimSpace(line) == recordTerminator {
			return strings.Join(lines, "\n"), nil
		}
		if err == io.EOF {
			lines = append(lines, recordTerminator)
			return strings.Join(lines, "\n"), nil
		}
	}
}

// ReadAll collects every remaining record in order.
func (p *Parser) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return records, nil
		}
		records = append(records, r)
	}
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the underlying file, if any.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// blockPair is one (section keyword, block text) produced by the section
// splitter. Duplicate keywords yield separate pairs; merging happens later
// in Record.addSection.
type blockPair struct {
	key  string
	text string
}

// splitBlocks walks a record's lines with a two-state machine: no section
// open, or a section open with a keyed buffer. A header line flushes the
// open section and starts a new buffer (header line included); any other
// line continues the open buffer. Lines before the first header are
// dropped. The final buffer is flushed at end of input.
func splitBlocks(record string) []blockPair {
	var blocks []blockPair
	var key string
	var buffer []string

	flush := func() {
		if key != "" {
			blocks = append(blocks, blockPair{key: key, text: strings.TrimSpace(strings.Join(buffer, "\n"))})
			buffer = buffer[:0]
		}
	}

	for _, line := range strings.Split(record, "\n") {
		if sectionHeader.MatchString(line) {
			flush()
			key = strings.Fields(line)[0]
			buffer = append(buffer, line)
			continue
		}
		if key != "" {
			buffer = append(buffer, line)
		}
	}
	flush()

	return blocks
}
