// This file is part of nestestlog.
//
// nestestlog is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nestestlog is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nestestlog.  If not, see <https://www.gnu.org/licenses/>.

// Package tracelog reads execution trace logs into memory. There are two
// formats of log.
//
// The reference (or ideal) log is the fixed-width nestest log. Fields are
// taken from each line with the offsets in a columns.Set.
//
// The candidate (or check) log is produced by the emulator under test. Each
// line is a list of tab separated fields in the same order as the
// columns.Set used for the reference log.
//
// Lines are separated by "\n" only. A file that ends with a newline has an
// empty last line and that line is kept as a row of the log.
package tracelog

import (
	"strings"

	"github.com/flynes/nestestlog/columns"
)

// Row is a single parsed line of a log.
type Row struct {
	// trimmed field values
	Fields []string

	// the original line. for the reference log this is exactly as it
	// appeared in the file. for the candidate log the line is trimmed
	Raw string
}

// Field returns the numbered field. A field that is not present in the row
// is returned as the empty string.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Log is the parsed content of a log file.
type Log struct {
	// the name of the log. usually the filename
	Name string

	Rows []Row
}

// Len returns the number of rows in the log.
func (lg Log) Len() int {
	return len(lg.Rows)
}

// NumFields returns the number of fields in the first row of the log. An
// empty log has zero fields.
func (lg Log) NumFields() int {
	if len(lg.Rows) == 0 {
		return 0
	}
	return len(lg.Rows[0].Fields)
}

// ParseReference parses the text of a fixed-width reference log. Every row of
// the log has exactly one field for every entry in the columns.Set.
func ParseReference(name string, text string, set columns.Set) Log {
	lines := strings.Split(text, "\n")

	lg := Log{
		Name: name,
		Rows: make([]Row, 0, len(lines)),
	}

	for _, l := range lines {
		lg.Rows = append(lg.Rows, Row{
			Fields: set.Extract(l),
			Raw:    l,
		})
	}

	return lg
}

// ParseCandidate parses the text of a tab separated candidate log.
func ParseCandidate(name string, text string) Log {
	lines := strings.Split(text, "\n")

	lg := Log{
		Name: name,
		Rows: make([]Row, 0, len(lines)),
	}

	for _, l := range lines {
		l = strings.TrimSpace(l)

		f := strings.Split(l, "\t")
		for i := range f {
			f[i] = strings.TrimSpace(f[i])
		}

		lg.Rows = append(lg.Rows, Row{
			Fields: f,
			Raw:    l,
		})
	}

	return lg
}
