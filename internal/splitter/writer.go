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

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thelioncoder/csvsplit/internal/logctx"
)

// groupWriter is one open output file. Writes are buffered; the buffer is
// flushed at close, not per row.
type groupWriter struct {
	key  string
	path string
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows int64
}

// getWriter returns the open writer for key, creating it on the key's first
// row. Creation makes the group directory in subdirectory mode, truncates
// any file left from a previous run, and writes the header row.
func (s *Splitter) getWriter(ctx context.Context, key string) (*groupWriter, error) {
	if writer, ok := s.writers[key]; ok {
		return writer, nil
	}

	if err := validateGroupKey(key); err != nil {
		return nil, err
	}

	path := s.outputPath(key)
	if s.config.SplitIntoSubdirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create group directory for %q: %w", key, err)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create output file for group %q: %w", key, err)
	}

	buf := bufio.NewWriterSize(file, s.config.writerBufferSize())
	csvWriter := csv.NewWriter(buf)
	csvWriter.Comma = rune(s.config.outputDelimiter())

	writer := &groupWriter{
		key:  key,
		path: path,
		file: file,
		buf:  buf,
		csv:  csvWriter,
	}

	if err := csvWriter.Write(s.header); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("write header for group %q: %w", key, err)
	}

	s.writers[key] = writer
	logctx.FromContext(ctx).Debug("opened group file",
		slog.String("group", key),
		slog.String("path", path))
	return writer, nil
}

// write appends one record. csv.Writer defers write errors to Flush, so
// failures here usually surface at close.
func (w *groupWriter) write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("write record for group %q: %w", w.key, err)
	}
	w.rows++
	return nil
}

// close flushes buffered rows and releases the file handle. The handle is
// closed even when a flush fails so no descriptor leaks.
func (w *groupWriter) close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return err
	}
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
