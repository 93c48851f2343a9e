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

package filereader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCSVReader_ReadsHeader(t *testing.T) {
	path := writeTestFile(t, "id,State\n1,CA\n")

	r, err := NewCSVReader(path, ',', 0)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	assert.Equal(t, []string{"id", "State"}, r.Header())
}

func TestNewCSVReader_MissingFile(t *testing.T) {
	_, err := NewCSVReader(filepath.Join(t.TempDir(), "nope.csv"), ',', 0)
	require.Error(t, err)
}

func TestNewCSVReader_EmptyFile(t *testing.T) {
	path := writeTestFile(t, "")

	_, err := NewCSVReader(path, ',', 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestNext_IteratesRecords(t *testing.T) {
	path := writeTestFile(t, "id,State\n1,CA\n2,NY\n")

	r, err := NewCSVReader(path, ',', 0)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "CA"}, first)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "NY"}, second)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, int64(2), r.TotalRowsReturned())
}

func TestNext_AlternateDelimiter(t *testing.T) {
	path := writeTestFile(t, "id;State\n1;CA\n")

	r, err := NewCSVReader(path, ';', 0)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	record, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "CA"}, record)
}

func TestNext_FieldCountMismatch(t *testing.T) {
	path := writeTestFile(t, "id,State\n1,CA\n2\n")

	r, err := NewCSVReader(path, ',', 0)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestNext_AfterClose(t *testing.T) {
	path := writeTestFile(t, "id,State\n1,CA\n")

	r, err := NewCSVReader(path, ',', 0)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)

	// Close is idempotent.
	assert.NoError(t, r.Close())
}
