// Package rowsource turns delimited data files into a lazy stream of
// already-split rows. The first row of every source is the header; the
// profiler consumes the rest one at a time.
package rowsource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoHeader is returned when a file yields no rows at all, so there is no
// header to profile against.
var ErrNoHeader = errors.New("rowsource: file has no header row")

// RowSource is a finite, non-restartable sequence of rows. Next returns
// io.EOF once the input is exhausted.
type RowSource interface {
	Headers() []string
	Next() ([]string, error)
	Close() error
}

// Open picks a source by file extension: .csv and .tsv open as delimited
// text, .xlsx as a spreadsheet. The delimiter only applies to .csv files;
// .tsv is always tab-separated.
func Open(path string, delimiter rune) (RowSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return OpenCSV(path, delimiter)
	case ".tsv":
		return OpenCSV(path, '\t')
	case ".xlsx":
		return OpenXLSX(path)
	default:
		return nil, fmt.Errorf("rowsource: unsupported file type: %s", path)
	}
}

func trimHeaders(headers []string) []string {
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}
