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

// Input delimiters the tool accepts.
const (
	DelimiterComma     = byte(',')
	DelimiterPipe      = byte('|')
	DelimiterTab       = byte('\t')
	DelimiterSemicolon = byte(';')
)

// ParseDelimiter maps a delimiter flag value to its byte. Only comma,
// semicolon, pipe, and tab are valid; the literal string "\t" is accepted
// for tab since shells rarely pass a raw tab through.
func ParseDelimiter(s string) (byte, error) {
	switch s {
	case ",":
		return DelimiterComma, nil
	case "|":
		return DelimiterPipe, nil
	case ";":
		return DelimiterSemicolon, nil
	case "\t", `\t`:
		return DelimiterTab, nil
	default:
		return 0, fmt.Errorf("invalid delimiter %q: must be one of ',' ';' '|' or tab", s)
	}
}
