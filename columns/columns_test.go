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

package columns_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flynes/nestestlog/columns"
	"github.com/flynes/nestestlog/curated"
	"github.com/flynes/nestestlog/test"
)

const nestestLine = "C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7"

func TestExtractAll(t *testing.T) {
	got := columns.All.Extract(nestestLine)
	want := []string{"C000", "4C F5 C5", "JMP $C5F5", "A:00", "X:00", "Y:00", "P:24", "SP:FD", "PPU:  0, 21", "CYC:7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected fields (-want +got):\n%s", diff)
	}
}

func TestExtractClamping(t *testing.T) {
	// empty line produces empty fields
	for _, s := range columns.All {
		test.ExpectEquality(t, s.Extract(""), "", s.Name)
	}

	// line ends part way through the accumulator field
	short := nestestLine[:50]
	test.ExpectEquality(t, columns.RegA.Extract(short), "A:")
	test.ExpectEquality(t, columns.RegX.Extract(short), "")
	test.ExpectEquality(t, columns.PC.Extract(short), "C000")

	// cycle count runs past the end of the line
	test.ExpectEquality(t, columns.Cycles.Extract(nestestLine+"   "), "CYC:7")

	// a spec with a nonsense length
	s := columns.Spec{Name: "bad", Offset: 10, Length: -5}
	test.ExpectEquality(t, s.Extract(nestestLine), "")
}

func TestSpecString(t *testing.T) {
	test.ExpectEquality(t, columns.StackPointer.String(), "stack pointer [68:73]")
}

func TestVersionOne(t *testing.T) {
	v, err := columns.ForVersion(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v.ID, 1)
	test.ExpectEquality(t, v.CheckLog, "./nestest_v1.log")

	want := columns.Set{
		columns.PC, columns.FetchedBytes, columns.RegA, columns.RegX,
		columns.RegY, columns.Status, columns.StackPointer,
	}
	if diff := cmp.Diff(want, v.Columns); diff != "" {
		t.Errorf("unexpected column set (-want +got):\n%s", diff)
	}

	// changing the returned set does not change the definition
	v.Columns[0] = columns.Cycles
	w, err := columns.ForVersion(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.Columns[0], columns.PC)
}

func TestUnsupportedVersion(t *testing.T) {
	for _, id := range []int{0, 2, -1} {
		_, err := columns.ForVersion(id)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, curated.Is(err, columns.UnsupportedVersion))
	}

	_, err := columns.ForVersion(2)
	test.ExpectEquality(t, err.Error(), "unsupported version: 2")
}

func TestVersions(t *testing.T) {
	if diff := cmp.Diff([]int{1}, columns.Versions()); diff != "" {
		t.Errorf("unexpected versions (-want +got):\n%s", diff)
	}
}

func TestNormalise(t *testing.T) {
	test.ExpectEquality(t, columns.RegA.Normalise("A:00"), "00")
	test.ExpectEquality(t, columns.RegA.Normalise(" 00 "), "00")
	test.ExpectEquality(t, columns.StackPointer.Normalise("SP:FD"), "FD")
	test.ExpectEquality(t, columns.PC.Normalise("C000"), "C000")

	// the label of one field is not removed from another
	test.ExpectEquality(t, columns.RegA.Normalise("X:00"), "X:00")
}

func TestEqual(t *testing.T) {
	test.ExpectSuccess(t, columns.RegA.Equal("A:00", "00"))
	test.ExpectSuccess(t, columns.RegA.Equal("A:00", "A:00"))
	test.ExpectSuccess(t, columns.FetchedBytes.Equal("4C F5 C5", "4C F5 C5"))

	// comparison is case-sensitive and does not interpret numbers
	test.ExpectFailure(t, columns.RegA.Equal("A:FF", "ff"))
	test.ExpectFailure(t, columns.RegA.Equal("A:0", "00"))
	test.ExpectFailure(t, columns.RegA.Equal("A:00", "X:00"))
}
