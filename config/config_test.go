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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelioncoder/csvsplit/internal/filereader"
	"github.com/thelioncoder/csvsplit/internal/splitter"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filereader.DefaultBufferSize, cfg.Reader.BufferSize)
	assert.Equal(t, splitter.DefaultWriterBufferSize, cfg.Writer.BufferSize)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CSVSPLIT_WRITER_BUFFER_SIZE", "4096")
	t.Setenv("CSVSPLIT_LOGGING_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.Writer.BufferSize)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, filereader.DefaultBufferSize, cfg.Reader.BufferSize)
}
