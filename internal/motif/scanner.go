package motif

import (
	"regexp"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/lignum-vitae/biobase/internal/alphabet"
	"github.com/lignum-vitae/biobase/internal/fasta"
)

// Scanner searches a motif pattern across many FASTA records using a pool
// of workers. Each worker owns its inputs; the compiled pattern is the
// only shared value and regexp matching is safe for concurrent use.
type Scanner struct {
	re      *regexp.Regexp
	ext     bool
	workers int
	logger  *zap.Logger
}

// NewScanner compiles the pattern once for the whole batch.
func NewScanner(pattern string, ext bool) (*Scanner, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &Scanner{re: re, ext: ext, logger: zap.NewNop()}, nil
}

// SetLogger sets the logger for per-record diagnostics.
func (s *Scanner) SetLogger(l *zap.Logger) {
	s.logger = l
}

// SetWorkers overrides the worker count. Zero or negative selects
// runtime.NumCPU().
func (s *Scanner) SetWorkers(n int) {
	s.workers = n
}

// workItem and workResult carry one record through the pool with its
// sequence number, so results can be re-ordered on collection.
type workItem struct {
	seq    int
	record fasta.Record
}

type workResult struct {
	seq    int
	record fasta.Record
	spans  []Span
	err    error
}

// ScanRecords partitions records the same way FindBatch does, fanning the
// per-record searches out over the worker pool and folding results back
// in input order.
func (s *Scanner) ScanRecords(records []fasta.Record) *BatchResult {
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	items := make(chan workItem, 2*workers)
	go func() {
		defer close(items)
		for i, r := range records {
			items <- workItem{seq: i, record: r}
		}
	}()

	results := make(chan workResult, 2*workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				seq, err := alphabet.ValidateAminoAcids(item.record.Sequence, s.ext)
				res := workResult{seq: item.seq, record: item.record, err: err}
				if err == nil {
					res.spans = findOverlapping(s.re, seq)
				}
				results <- res
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	out := &BatchResult{
		Matches: make(map[string][]Span),
		Invalid: make(map[string]string),
	}
	s.orderedCollect(results, out)
	return out
}

// orderedCollect buffers out-of-order results in a pending map and folds
// them into the batch result as soon as the next expected sequence number
// arrives.
func (s *Scanner) orderedCollect(results <-chan workResult, out *BatchResult) {
	pending := make(map[int]workResult)
	next := 0

	fold := func(r workResult) {
		switch {
		case r.err != nil:
			s.logger.Warn("sequence failed validation",
				zap.String("id", r.record.ID),
				zap.Error(r.err))
			out.Invalid[r.record.ID] = r.err.Error()
		case len(r.spans) == 0:
			out.NoMatch = append(out.NoMatch, r.record.ID)
		default:
			out.Matches[r.record.ID] = r.spans
		}
	}

	for r := range results {
		pending[r.seq] = r
		for {
			rr, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			fold(rr)
		}
	}
}
