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

package splitter

import "fmt"

const (
	// DefaultWriterBufferSize is the per-output-file write buffer used when
	// the caller does not configure one.
	DefaultWriterBufferSize = 1024 * 1024

	// OutputDelimiter is the field separator used for every output file.
	// It is fixed and not user-configurable.
	OutputDelimiter = byte('|')
)

// Config describes one split run. It is constructed once, validated, and
// never mutated afterwards.
type Config struct {
	// InputPath is the delimited file to read.
	InputPath string

	// InputDelimiter separates fields in the input file.
	InputDelimiter byte

	// OutputDelimiter separates fields in the output files. Zero means
	// OutputDelimiter, the only value the tool produces.
	OutputDelimiter byte

	// GroupColumn is the header name of the column rows are grouped by.
	// Matching is exact and case-sensitive.
	GroupColumn string

	// OutputDir receives the per-group files.
	OutputDir string

	// SplitIntoSubdirs places each group's file in its own directory named
	// after the group key: dir/<key>/<key>.csv instead of dir/<key>.csv.
	SplitIntoSubdirs bool

	// ReaderBufferSize is the input read buffer in bytes. Zero selects the
	// filereader default.
	ReaderBufferSize int

	// WriterBufferSize is the per-group write buffer in bytes. Zero selects
	// DefaultWriterBufferSize.
	WriterBufferSize int
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("splitter config: %s %s", e.Field, e.Message)
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return &ConfigError{Field: "InputPath", Message: "cannot be empty"}
	}
	if c.GroupColumn == "" {
		return &ConfigError{Field: "GroupColumn", Message: "cannot be empty"}
	}
	if c.OutputDir == "" {
		return &ConfigError{Field: "OutputDir", Message: "cannot be empty"}
	}
	if c.InputDelimiter == 0 {
		return &ConfigError{Field: "InputDelimiter", Message: "cannot be empty"}
	}
	return nil
}

// outputDelimiter returns the effective output delimiter.
func (c *Config) outputDelimiter() byte {
	if c.OutputDelimiter == 0 {
		return OutputDelimiter
	}
	return c.OutputDelimiter
}

// writerBufferSize returns the effective per-group write buffer size.
func (c *Config) writerBufferSize() int {
	if c.WriterBufferSize <= 0 {
		return DefaultWriterBufferSize
	}
	return c.WriterBufferSize
}
