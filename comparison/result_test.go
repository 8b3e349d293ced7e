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

package comparison_test

import (
	"testing"

	"github.com/flynes/nestestlog/comparison"
	"github.com/flynes/nestestlog/test"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		res     comparison.Result
		summary string
	}{
		{comparison.Result{Scanned: 8991, IdealRows: 8991, CheckRows: 8991}, "LOG VALIDATED. SCANNED 8991 rows"},
		{comparison.Result{Scanned: 100, IdealRows: 8991, CheckRows: 100}, "LOG PARTIALLY VALIDATED. SCANNED 100 rows from 8991"},
		{comparison.Result{Scanned: 12, Fails: 11, IdealRows: 8991, CheckRows: 8991, Stopped: true}, "LOG VALIDATION FAILED for 11 rows"},
		{comparison.Result{Scanned: 50, Fails: 3, IdealRows: 8991, CheckRows: 50}, "LOG VALIDATION FAILED for 3 rows"},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, tt.res.Summary(), tt.summary)

		tw := &test.CompareWriter{}
		tt.res.Summarise(tw)
		test.ExpectSuccess(t, tw.Compare(tt.summary+"\n"))
	}
}
