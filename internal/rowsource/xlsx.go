package rowsource

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSource streams rows from the first sheet of a spreadsheet.
type XLSXSource struct {
	file    *excelize.File
	rows    *excelize.Rows
	headers []string
}

func OpenXLSX(path string) (*XLSXSource, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		file.Close()
		return nil, ErrNoHeader
	}

	rows, err := file.Rows(sheets[0])
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	if !rows.Next() {
		err := rows.Error()
		rows.Close()
		file.Close()
		if err != nil {
			return nil, err
		}
		return nil, ErrNoHeader
	}

	headers, err := rows.Columns()
	if err != nil {
		rows.Close()
		file.Close()
		return nil, err
	}
	if len(headers) == 0 {
		rows.Close()
		file.Close()
		return nil, ErrNoHeader
	}

	return &XLSXSource{
		file:    file,
		rows:    rows,
		headers: trimHeaders(headers),
	}, nil
}

func (s *XLSXSource) Headers() []string { return s.headers }

// Next returns the next row's cells. Trailing empty cells are not padded to
// the header width; short rows surface as-is so the profiler's malformed-row
// accounting applies the same way it does for delimited text.
func (s *XLSXSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns()
}

func (s *XLSXSource) Close() error {
	s.rows.Close()
	return s.file.Close()
}
