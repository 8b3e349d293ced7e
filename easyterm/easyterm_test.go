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

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flynes/nestestlog/easyterm"
	"github.com/flynes/nestestlog/easyterm/ansi"
	"github.com/flynes/nestestlog/test"
)

func TestParseColorMode(t *testing.T) {
	m, ok := easyterm.ParseColorMode("auto")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, easyterm.ColorAuto)

	m, ok = easyterm.ParseColorMode(" On ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, easyterm.ColorOn)

	_, ok = easyterm.ParseColorMode("sometimes")
	test.ExpectFailure(t, ok)
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, easyterm.IsTerminal(f))
	test.ExpectFailure(t, easyterm.IsTerminal(nil))

	// only ColorOn forces colour for a regular file
	test.ExpectFailure(t, easyterm.UseColor(easyterm.ColorAuto, f))
	test.ExpectFailure(t, easyterm.UseColor(easyterm.ColorOff, f))
	test.ExpectSuccess(t, easyterm.UseColor(easyterm.ColorOn, f))
}

func TestColorBuild(t *testing.T) {
	test.ExpectEquality(t, ansi.ColorBuild("red", true, false), "\033[91m")
	test.ExpectEquality(t, ansi.ColorBuild("green", false, false), "\033[32m")
	test.ExpectEquality(t, ansi.ColorBuild("", false, true), "\033[1m")
	test.ExpectEquality(t, ansi.ColorBuild("cyan", false, true), "\033[36;1m")
	test.ExpectEquality(t, ansi.Pens["red"], "\033[91m")
	test.ExpectEquality(t, ansi.Paint("", "A:00"), "A:00")
	test.ExpectEquality(t, ansi.Paint(ansi.Pens["red"], "A:00"), "\033[91mA:00\033[0m")
}
