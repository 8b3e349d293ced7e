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
	"strings"

	"github.com/flynes/nestestlog/columns"
	"github.com/flynes/nestestlog/curated"
	"github.com/flynes/nestestlog/easyterm/ansi"
	"github.com/flynes/nestestlog/logger"
	"github.com/flynes/nestestlog/tracelog"
)

// DefaultTolerance is the number of fails allowed before a comparison stops.
const DefaultTolerance = 10

// ColumnCountMismatch is the curated error pattern returned by Compare() when
// the two logs do not have the same number of fields.
const ColumnCountMismatch = "number of columns is different (ideal %d, check %d)"

// NilOutput is the curated error pattern returned by Compare() when the
// io.Writer is nil.
const NilOutput = "comparison: io.Writer should not be nil"

const divider = "===================="

// Comparison type compares a reference log and a candidate log.
type Comparison struct {
	// the fields being compared
	Columns columns.Set

	// number of fails allowed before the comparison stops. the row that
	// causes the number of fails to exceed the tolerance is still checked
	// completely
	Tolerance int

	// colour the expected and actual values in diagnostic blocks
	Color bool
}

// NewComparison is the preferred method of initialisation for the Comparison
// type.
func NewComparison(set columns.Set) *Comparison {
	return &Comparison{
		Columns:   set,
		Tolerance: DefaultTolerance,
	}
}

// Compare the ideal (reference) log with the check (candidate) log.
// Diagnostic blocks for every fail are written to output. The summary line is
// not written. Use Result.Summarise() for that.
//
// Returns a ColumnCountMismatch error if the first row of each log does not
// have the same number of fields. Nothing is written to output in that case.
func (cmp *Comparison) Compare(output io.Writer, ideal tracelog.Log, check tracelog.Log) (Result, error) {
	if output == nil {
		return Result{}, curated.Errorf(NilOutput)
	}

	if ideal.NumFields() != check.NumFields() {
		return Result{}, curated.Errorf(ColumnCountMismatch, ideal.NumFields(), check.NumFields())
	}

	res := Result{
		IdealRows: ideal.Len(),
		CheckRows: check.Len(),
	}

	n := min(ideal.Len(), check.Len())

	for i := 0; i < n; i++ {
		idealRow := ideal.Rows[i]
		checkRow := check.Rows[i]

		for c, spec := range cmp.Columns {
			expected := idealRow.Field(c)
			got := checkRow.Field(c)
			if !spec.Equal(expected, got) {
				res.Fails++
				cmp.diagnostic(output, i+1, spec, expected, got, idealRow.Raw, checkRow.Raw)
			}
		}

		res.Scanned++

		if res.Fails > cmp.Tolerance {
			res.Stopped = true
			logger.Logf(logger.Allow, "comparison", "stopped at row %d: %d fails is more than the tolerance of %d", i+1, res.Fails, cmp.Tolerance)
			break // for loop
		}
	}

	logger.Logf(logger.Allow, "comparison", "compared %d of %d rows: %d fails", res.Scanned, res.IdealRows, res.Fails)

	return res, nil
}

// diagnostic writes the block describing a single fail
func (cmp *Comparison) diagnostic(output io.Writer, row int, spec columns.Spec, expected string, got string, idealRaw string, checkRaw string) {
	var expectedPen, gotPen string
	if cmp.Color {
		expectedPen = ansi.Pens["green"]
		gotPen = ansi.Pens["red"]
	}

	s := strings.Builder{}
	s.WriteString(divider)
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("ROW %d FAIL (%s)\n", row, spec.Name))
	s.WriteString(fmt.Sprintf("VALUE MISMATCH: expected - '%s', got - '%s'\n",
		ansi.Paint(expectedPen, expected), ansi.Paint(gotPen, got)))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Ideal log str: %s\n", idealRaw))
	s.WriteString(fmt.Sprintf("Got log str: %s\n", checkRaw))
	s.WriteString(divider)
	s.WriteString("\n\n")

	io.WriteString(output, s.String())
}
