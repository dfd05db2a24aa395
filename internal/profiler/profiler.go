package profiler

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyHeader is returned when a profiler is created with no header
	// columns, which means the input had no usable header row.
	ErrEmptyHeader = errors.New("profiler: no header columns")

	// ErrDuplicateHeader is returned when two columns share a name. Accepting
	// duplicates would silently merge their statistics.
	ErrDuplicateHeader = errors.New("profiler: duplicate header name")

	// ErrFinalized is returned by IngestRow once a report has been built from
	// the profiler. Aggregates are immutable after reporting.
	ErrFinalized = errors.New("profiler: profile already finalized")
)

// TableProfiler routes rows to per-column accumulators. It owns one
// ColumnStats per header, in header order, and tracks how many rows were seen
// and how many were malformed. Only well-formed rows (field count matching
// the header) contribute to column statistics; malformed rows are counted and
// skipped whole.
type TableProfiler struct {
	headers       []string
	columns       []*ColumnStats
	rowCount      int
	malformedRows int
	finalized     bool
}

func NewTableProfiler(headers []string) (*TableProfiler, error) {
	if len(headers) == 0 {
		return nil, ErrEmptyHeader
	}

	seen := make(map[string]struct{}, len(headers))
	columns := make([]*ColumnStats, len(headers))
	for i, name := range headers {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHeader, name)
		}
		seen[name] = struct{}{}
		columns[i] = NewColumnStats(name)
	}

	return &TableProfiler{
		headers: headers,
		columns: columns,
	}, nil
}

// IngestRow consumes one data row. The row count always advances; a row whose
// field count differs from the header count is recorded as malformed and
// dispatched to no accumulator.
func (p *TableProfiler) IngestRow(fields []string) error {
	if p.finalized {
		return ErrFinalized
	}

	p.rowCount++
	if len(fields) != len(p.headers) {
		p.malformedRows++
		return nil
	}

	for i, value := range fields {
		p.columns[i].Observe(value)
	}
	return nil
}

func (p *TableProfiler) Headers() []string { return p.headers }

func (p *TableProfiler) Rows() int { return p.rowCount }

func (p *TableProfiler) MalformedRows() int { return p.malformedRows }

// Columns returns the accumulators in header order.
func (p *TableProfiler) Columns() []*ColumnStats { return p.columns }

func (p *TableProfiler) finalize() { p.finalized = true }
