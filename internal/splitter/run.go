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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/thelioncoder/csvsplit/internal/filereader"
	"github.com/thelioncoder/csvsplit/internal/logctx"
)

// Run performs one complete split: a single forward pass over the input,
// routing every data row to its group's output file. All failures are fatal;
// rows already flushed to disk before a failure are left in place.
func Run(ctx context.Context, config Config) ([]Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ctx = logctx.With(ctx, slog.String("file", config.InputPath))
	ll := logctx.FromContext(ctx)
	startTime := time.Now()

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	reader, err := filereader.NewCSVReader(config.InputPath, config.InputDelimiter, config.ReaderBufferSize)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	s, err := New(config, reader.Header())
	if err != nil {
		return nil, err
	}

	ll.Info("splitting file", slog.String("column", config.GroupColumn))

	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.Abort()
			return nil, err
		}
		if err := s.Route(ctx, record); err != nil {
			s.Abort()
			return nil, err
		}
	}

	results, err := s.Close(ctx)
	if err != nil {
		return nil, err
	}

	ll.Info("finished splitting file",
		slog.Int64("rows", reader.TotalRowsReturned()),
		slog.Int("files", len(results)),
		slog.Duration("elapsed", time.Since(startTime)))
	return results, nil
}
