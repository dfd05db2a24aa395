package rowsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVSource streams records from a delimited text file.
type CSVSource struct {
	file    *os.File
	reader  *csv.Reader
	headers []string
}

// OpenCSV opens a delimited text file and reads its header row. A zero
// delimiter means comma. The reader allows variable field counts per record;
// malformed-row accounting is the profiler's job, not the parser's.
func OpenCSV(path string, delimiter rune) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(file)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	headers, err := reader.Read()
	if err == io.EOF {
		file.Close()
		return nil, ErrNoHeader
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("reading header: %w", err)
	}

	return &CSVSource{
		file:    file,
		reader:  reader,
		headers: trimHeaders(headers),
	}, nil
}

func (s *CSVSource) Headers() []string { return s.headers }

// Next returns the next record, or io.EOF at end of input. Parse errors
// propagate unchanged.
func (s *CSVSource) Next() ([]string, error) {
	return s.reader.Read()
}

func (s *CSVSource) Close() error {
	return s.file.Close()
}
