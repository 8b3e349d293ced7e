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
	"strings"
)

// Spec names a single field of a fixed-width line.
type Spec struct {
	Name   string
	Offset int
	Length int

	// the label that prefixes the value in the reference log. for example,
	// the accumulator field reads "A:00" and the label is "A:"
	Label string
}

func (s Spec) String() string {
	return fmt.Sprintf("%s [%d:%d]", s.Name, s.Offset, s.Offset+s.Length)
}

// Extract returns the field from the line with surrounding white space
// removed. The bounds of the field are clamped to the length of the line so a
// short line results in a shorter or empty field and never a panic.
func (s Spec) Extract(line string) string {
	start := min(max(s.Offset, 0), len(line))
	end := min(max(s.Offset+s.Length, start), len(line))
	return strings.TrimSpace(line[start:end])
}

// Normalise returns the field value without the Spec's label and without
// surrounding white space. Both "A:00" and "00" normalise to "00" for the
// accumulator. Letter-case is not changed.
func (s Spec) Normalise(field string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(field), s.Label))
}

// Equal compares two values of the field after normalisation.
func (s Spec) Equal(a, b string) bool {
	return s.Normalise(a) == s.Normalise(b)
}

// The fields of a nestest reference log line. The comment shows the last
// column (inclusive) of each field.
var (
	PC           = Spec{Name: "program counter", Offset: 0, Length: 4}
	FetchedBytes = Spec{Name: "fetched bytes", Offset: 6, Length: 8}                // 13
	OpAssembly   = Spec{Name: "op assembly", Offset: 15, Length: 32}                // 46
	RegA         = Spec{Name: "accumulator", Offset: 48, Length: 4, Label: "A:"}    // 51
	RegX         = Spec{Name: "x register", Offset: 53, Length: 4, Label: "X:"}     // 56
	RegY         = Spec{Name: "y register", Offset: 58, Length: 4, Label: "Y:"}     // 61
	Status       = Spec{Name: "status", Offset: 63, Length: 4, Label: "P:"}         // 66
	StackPointer = Spec{Name: "stack pointer", Offset: 68, Length: 5, Label: "SP:"} // 72
	PPU          = Spec{Name: "ppu", Offset: 74, Length: 11, Label: "PPU:"}         // 84
	Cycles       = Spec{Name: "cycles", Offset: 86, Length: 9, Label: "CYC:"}       // 94
)

// All is every field of the reference log in line order.
var All = Set{PC, FetchedBytes, OpAssembly, RegA, RegX, RegY, Status, StackPointer, PPU, Cycles}

// Set is an ordered list of fields.
type Set []Spec

// Extract returns every field of the Set from the line, in Set order.
func (set Set) Extract(line string) []string {
	f := make([]string, len(set))
	for i, s := range set {
		f[i] = s.Extract(line)
	}
	return f
}

// Names returns the name of every field in the Set.
func (set Set) Names() []string {
	n := make([]string, len(set))
	for i, s := range set {
		n[i] = s.Name
	}
	return n
}

func (set Set) String() string {
	return strings.Join(set.Names(), ", ")
}
