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

// Package splitter routes delimited records into one output file per
// distinct value of a designated column.
package splitter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// UnknownGroup is the group key substituted for rows whose group column is
// empty or whitespace.
const UnknownGroup = "unknown"

// Common errors returned by the splitter.
var (
	ErrSplitterClosed = errors.New("splitter: splitter is already closed")
	ErrColumnNotFound = errors.New("splitter: group column not found in header")
	ErrUnsafeGroupKey = errors.New("splitter: group key is not a safe path segment")
)

// Result contains metadata about a single output file.
type Result struct {
	// FileName is the path of the created output file.
	FileName string

	// GroupKey is the group value whose rows the file holds.
	GroupKey string

	// RecordCount is the number of data rows written, excluding the header.
	RecordCount int64
}

// Splitter routes records to per-group output files. It owns every open
// handle for the duration of a run: at most one writer exists per group key,
// created lazily on the key's first row and held open until Close. Not safe
// for concurrent use.
type Splitter struct {
	config   Config
	header   []string
	groupIdx int
	writers  map[string]*groupWriter
	closed   bool
}

// New validates the configuration, resolves the group column against the
// header, and returns a splitter ready to route records. A missing group
// column fails here, before any output file exists.
func New(config Config, header []string) (*Splitter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	groupIdx, err := resolveColumnIndex(header, config.GroupColumn)
	if err != nil {
		return nil, err
	}

	return &Splitter{
		config:   config,
		header:   slices.Clone(header),
		groupIdx: groupIdx,
		writers:  make(map[string]*groupWriter),
	}, nil
}

// resolveColumnIndex finds name in header by exact, case-sensitive match.
func resolveColumnIndex(header []string, name string) (int, error) {
	idx := slices.Index(header, name)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q (header columns: %s)",
			ErrColumnNotFound, name, strings.Join(header, ", "))
	}
	return idx, nil
}

// groupKey derives the routing key for a record. A value that is empty after
// trimming becomes UnknownGroup. A record too short to hold the group column
// is a programming error given strict parsing upstream, so it is surfaced
// rather than substituted.
func (s *Splitter) groupKey(record []string) (string, error) {
	if s.groupIdx >= len(record) {
		return "", fmt.Errorf("splitter: record has %d fields, group column is index %d",
			len(record), s.groupIdx)
	}
	value := record[s.groupIdx]
	if strings.TrimSpace(value) == "" {
		return UnknownGroup, nil
	}
	return value, nil
}

// validateGroupKey rejects keys that would escape the output directory when
// used as a path segment.
func validateGroupKey(key string) error {
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrUnsafeGroupKey, key)
	}
	return nil
}

// outputPath returns the destination file for a group key:
// dir/<key>.csv, or dir/<key>/<key>.csv in subdirectory mode.
func (s *Splitter) outputPath(key string) string {
	if s.config.SplitIntoSubdirs {
		return filepath.Join(s.config.OutputDir, key, key+".csv")
	}
	return filepath.Join(s.config.OutputDir, key+".csv")
}

// Route writes one record to the output file for its group key, opening the
// file and writing the header row first if this is the key's first record.
func (s *Splitter) Route(ctx context.Context, record []string) error {
	if s.closed {
		return ErrSplitterClosed
	}

	key, err := s.groupKey(record)
	if err != nil {
		return err
	}

	writer, err := s.getWriter(ctx, key)
	if err != nil {
		return err
	}

	return writer.write(record)
}

// Close flushes and closes every open writer and returns metadata for each
// output file, ordered by group key. Close failures are aggregated so every
// handle is released even when one of them fails.
func (s *Splitter) Close(ctx context.Context) ([]Result, error) {
	if s.closed {
		return nil, ErrSplitterClosed
	}
	s.closed = true

	var errs *multierror.Error
	results := make([]Result, 0, len(s.writers))
	for key, writer := range s.writers {
		if err := writer.close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("close output for group %q: %w", key, err))
			continue
		}
		results = append(results, Result{
			FileName:    writer.path,
			GroupKey:    key,
			RecordCount: writer.rows,
		})
	}
	s.writers = nil

	sort.Slice(results, func(i, j int) bool {
		return results[i].GroupKey < results[j].GroupKey
	})
	return results, errs.ErrorOrNil()
}

// Abort releases all open handles without reporting results. Rows already
// flushed to disk are left as-is; there is no rollback. Safe to call more
// than once.
func (s *Splitter) Abort() {
	if s.closed {
		return
	}
	s.closed = true

	for _, writer := range s.writers {
		_ = writer.close()
	}
	s.writers = nil
}
