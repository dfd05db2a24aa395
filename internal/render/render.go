// Package render formats finished profiles for human or machine consumption.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Alexandre-Santos-Lima/csvprof/internal/profiler"
	"github.com/dustin/go-humanize"
)

// FileProfile pairs a finished report with the file it came from.
type FileProfile struct {
	Path      string           `json:"path"`
	SizeBytes int64            `json:"size_bytes"`
	Report    *profiler.Report `json:"report"`
}

// Text writes the report as a human-readable console block: file banner,
// overall totals, then one block per column in original column order.
func Text(w io.Writer, fp FileProfile) {
	rep := fp.Report

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "  File profile: '%s' (%s)\n", filepath.Base(fp.Path), humanize.IBytes(uint64(fp.SizeBytes)))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  - Data rows: %d\n", rep.Rows)
	fmt.Fprintf(w, "  - Columns: %d\n", len(rep.Columns))
	if rep.MalformedRows > 0 {
		fmt.Fprintf(w, "  - Malformed rows skipped: %d\n", rep.MalformedRows)
	}

	fmt.Fprintf(w, "\nColumn breakdown:\n")
	for _, col := range rep.Columns {
		fmt.Fprintln(w, strings.Repeat("-", 50))
		fmt.Fprintf(w, "  Column: '%s'\n", col.Name)
		fmt.Fprintln(w, strings.Repeat("-", 50))

		if col.AllEmpty {
			fmt.Fprintf(w, "  -> All values in this column are empty.\n")
			continue
		}

		fmt.Fprintf(w, "  - Non-empty values: %d of %d\n", col.NonEmptyCount, col.TotalCount)
		fmt.Fprintf(w, "  - Empty values: %d\n", col.EmptyCount)
		fmt.Fprintf(w, "  - Distinct values: %d\n", col.DistinctCount)
		fmt.Fprintf(w, "  - Predominant type: %s\n", strings.ToUpper(col.PredominantType.String()))
		fmt.Fprintf(w, "  - Top %d values:\n", len(col.TopValues))
		for _, v := range col.TopValues {
			fmt.Fprintf(w, "    - \"%s\" (appears %d times, ~%.1f%%)\n", v.Value, v.Count, v.Percent)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "  Profile complete")
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, fp FileProfile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fp)
}
