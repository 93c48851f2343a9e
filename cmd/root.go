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
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thelioncoder/csvsplit/internal/idgen"
)

const serviceName = "csvsplit"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "csvsplit",
	Short: "Split a delimited text file into multiple files by column value",
	Long:  `Split a delimited text file into one pipe-delimited output file per distinct value of a chosen column.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging installs the process logger: text on stderr, debug level when
// requested by config or the DEBUG / CSVSPLIT_DEBUG environment variables,
// tagged with the service name and a run id.
func setupLogging(debug bool) *slog.Logger {
	var opts *slog.HandlerOptions
	if debug || os.Getenv("DEBUG") != "" || os.Getenv("CSVSPLIT_DEBUG") != "" {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, opts)).With(
		slog.String("service", serviceName),
		slog.String("runID", idgen.NewULIDGenerator().Make(time.Now())),
	)
	slog.SetDefault(logger)
	return logger
}
