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

package comparison

import (
	"fmt"
	"io"
)

// Result of a call to Compare().
type Result struct {
	// number of row pairs compared
	Scanned int

	// number of fields that did not match
	Fails int

	// number of rows in each log
	IdealRows int
	CheckRows int

	// the comparison stopped early because the number of fails exceeded the
	// tolerance
	Stopped bool
}

// Failed returns true if any field did not match.
func (r Result) Failed() bool {
	return r.Fails > 0
}

// Partial returns true if the candidate log has fewer rows than the
// reference log.
func (r Result) Partial() bool {
	return r.CheckRows < r.IdealRows
}

// Summary returns the one line summary of the result. A failure takes
// precedence over a partial validation.
func (r Result) Summary() string {
	if r.Failed() {
		return fmt.Sprintf("LOG VALIDATION FAILED for %d rows", r.Fails)
	}
	if r.Partial() {
		return fmt.Sprintf("LOG PARTIALLY VALIDATED. SCANNED %d rows from %d", r.Scanned, r.IdealRows)
	}
	return fmt.Sprintf("LOG VALIDATED. SCANNED %d rows", r.Scanned)
}

// Summarise writes the summary line to output.
func (r Result) Summarise(output io.Writer) {
	io.WriteString(output, r.Summary())
	io.WriteString(output, "\n")
}
