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

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thelioncoder/csvsplit/config"
	"github.com/thelioncoder/csvsplit/internal/logctx"
	"github.com/thelioncoder/csvsplit/internal/splitter"
)

func init() {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a delimited file by the values of one column",
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := c.Flags().GetString("path")
			if err != nil {
				return fmt.Errorf("failed to get path flag: %w", err)
			}
			delimiter, err := c.Flags().GetString("delimiter")
			if err != nil {
				return fmt.Errorf("failed to get delimiter flag: %w", err)
			}
			column, err := c.Flags().GetString("column")
			if err != nil {
				return fmt.Errorf("failed to get column flag: %w", err)
			}
			outputDir, err := c.Flags().GetString("dir")
			if err != nil {
				return fmt.Errorf("failed to get dir flag: %w", err)
			}
			createDir, err := c.Flags().GetBool("create-dir")
			if err != nil {
				return fmt.Errorf("failed to get create-dir flag: %w", err)
			}

			return runSplit(c.Context(), path, delimiter, column, outputDir, createDir)
		},
	}

	rootCmd.AddCommand(cmd)

	cmd.Flags().StringP("path", "p", "", "Path to the delimited file to split")
	cmd.Flags().StringP("delimiter", "d", ",", "Field delimiter used in the input file (',' ';' '|' or tab)")
	cmd.Flags().StringP("column", "c", "", "Column to split the file by")
	cmd.Flags().StringP("dir", "o", "", "Output directory for the split files")
	cmd.Flags().BoolP("create-dir", "r", false, "Place each group's file in a directory named after the column value")

	for _, flag := range []string{"path", "column", "dir"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required: %w", flag, err))
		}
	}
}

func runSplit(ctx context.Context, path, delimiter, column, outputDir string, createDir bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	inputDelimiter, err := splitter.ParseDelimiter(delimiter)
	if err != nil {
		return err
	}

	logger := setupLogging(cfg.Logging.Debug)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logctx.WithLogger(ctx, logger)

	_, err = splitter.Run(ctx, splitter.Config{
		InputPath:        path,
		InputDelimiter:   inputDelimiter,
		GroupColumn:      column,
		OutputDir:        outputDir,
		SplitIntoSubdirs: createDir,
		ReaderBufferSize: cfg.Reader.BufferSize,
		WriterBufferSize: cfg.Writer.BufferSize,
	})
	return err
}
