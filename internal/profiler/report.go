package profiler

// DefaultTopValues is how many ranked values a report carries per column.
const DefaultTopValues = 5

// ColumnSummary is the presentation-ready profile of one column.
type ColumnSummary struct {
	Name            string       `json:"name"`
	TotalCount      int          `json:"total_count"`
	EmptyCount      int          `json:"empty_count"`
	NonEmptyCount   int          `json:"non_empty_count"`
	DistinctCount   int          `json:"distinct_count"`
	AllEmpty        bool         `json:"all_empty"`
	PredominantType DataType     `json:"predominant_type,omitempty"`
	TopValues       []ValueCount `json:"top_values,omitempty"`
}

// Report is the finished profile of a whole table.
type Report struct {
	Rows          int             `json:"rows"`
	MalformedRows int             `json:"malformed_rows"`
	Columns       []ColumnSummary `json:"columns"`
}

// BuildReport turns a profiler's accumulators into an ordered list of column
// summaries, one per header in original order. A column with no non-empty
// values is flagged AllEmpty and carries neither a predominant type nor a
// ranking. Building a report freezes the profiler; further IngestRow calls
// fail with ErrFinalized.
func BuildReport(p *TableProfiler, topN int) *Report {
	p.finalize()

	report := &Report{
		Rows:          p.Rows(),
		MalformedRows: p.MalformedRows(),
		Columns:       make([]ColumnSummary, 0, len(p.Columns())),
	}

	for _, col := range p.Columns() {
		summary := ColumnSummary{
			Name:          col.Name,
			TotalCount:    col.TotalCount(),
			EmptyCount:    col.EmptyCount(),
			NonEmptyCount: col.NonEmptyCount(),
			DistinctCount: col.DistinctCount(),
		}

		if t, ok := col.PredominantType(); ok {
			summary.PredominantType = t
			summary.TopValues = col.TopN(topN)
		} else {
			summary.AllEmpty = true
		}

		report.Columns = append(report.Columns, summary)
	}

	return report
}
