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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/flynes/nestestlog/statsview"
	"github.com/flynes/nestestlog/test"
)

func TestNotAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	test.ExpectFailure(t, statsview.Available())

	// launching an unavailable statsview writes nothing and stopping it is
	// harmless
	statsview.Launch(tw)
	statsview.Stop()
	test.ExpectSuccess(t, tw.Compare(""))
}
