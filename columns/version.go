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

package columns

import (
	"fmt"
	"sort"

	"github.com/flynes/nestestlog/curated"
)

// UnsupportedVersion is the curated error pattern returned by ForVersion()
// when the version number has no definition.
const UnsupportedVersion = "unsupported version: %d"

// Version of the candidate log format.
type Version struct {
	ID int

	// path to the candidate log produced for this version
	CheckLog string

	// fields present in the candidate log, in the order they appear
	Columns Set
}

func (v Version) String() string {
	return fmt.Sprintf("v%d %s (%s)", v.ID, v.CheckLog, v.Columns)
}

// the version 1 candidate log does not include the opcode assembly, the PPU
// state or the cycle count
var versions = map[int]Version{
	1: {
		ID:       1,
		CheckLog: "./nestest_v1.log",
		Columns:  Set{PC, FetchedBytes, RegA, RegX, RegY, Status, StackPointer},
	},
}

// ForVersion returns the Version definition for the version number. Returns
// an UnsupportedVersion error if no definition exists.
func ForVersion(id int) (Version, error) {
	v, ok := versions[id]
	if !ok {
		return Version{}, curated.Errorf(UnsupportedVersion, id)
	}

	// copy column set so that the caller cannot change the definition
	v.Columns = append(Set(nil), v.Columns...)

	return v, nil
}

// Versions returns the list of defined version numbers in ascending order.
func Versions() []int {
	ids := make([]int, 0, len(versions))
	for id := range versions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
