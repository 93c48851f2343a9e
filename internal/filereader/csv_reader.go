// Copyright (C) 2025 TheLionCoder
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package filereader reads delimited text files one record at a time.
package filereader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// DefaultBufferSize is the read buffer used when the caller does not
// configure one.
const DefaultBufferSize = 16 * 1024 * 1024

// CSVReader reads rows from a delimited file. The header row is consumed at
// construction; every Next call returns one data record. Records whose field
// count differs from the header width are an error, which ends the read.
type CSVReader struct {
	reader    *csv.Reader
	header    []string
	closer    io.Closer
	closed    bool
	rowIndex  int
	totalRows int64
}

// NewCSVReader opens the file at path and reads its header row. The reader
// owns the file handle and releases it on Close.
func NewCSVReader(path string, delimiter byte, bufferSize int) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}

	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	csvReader := csv.NewReader(bufio.NewReaderSize(file, bufferSize))
	csvReader.Comma = rune(delimiter)
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	// FieldsPerRecord is left at zero so the header row pins the expected
	// field count for every record after it.
	header, err := csvReader.Read()
	if err != nil {
		_ = file.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("input file %s has no header row", path)
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(header) == 0 {
		_ = file.Close()
		return nil, fmt.Errorf("input file %s has no columns", path)
	}

	return &CSVReader{
		reader: csvReader,
		header: header,
		closer: file,
	}, nil
}

// Header returns the column names from the first row of the file.
func (r *CSVReader) Header() []string {
	return r.header
}

// Next returns the next data record. It returns io.EOF when the file is
// exhausted and a wrapped parse error, including the 1-based line number,
// for malformed records.
func (r *CSVReader) Next() ([]string, error) {
	if r.closed {
		return nil, io.EOF
	}

	record, err := r.reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read record at line %d: %w", r.rowIndex+2, err)
	}

	r.rowIndex++
	r.totalRows++
	return record, nil
}

// TotalRowsReturned returns the number of data records returned by Next.
func (r *CSVReader) TotalRowsReturned() int64 {
	return r.totalRows
}

// Close closes the reader and the underlying file.
func (r *CSVReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.closer != nil {
		err = r.closer.Close()
		r.closer = nil
	}
	r.reader = nil
	return err
}
