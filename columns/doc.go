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

// Package columns describes the fixed-width layout of the nestest reference
// log. A line of the reference log looks like this:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
//
// Every field of the line is found at a fixed offset. A Spec names one field
// and gives the offset and length of that field. The Spec values for the
// reference log are declared as package level variables (PC, FetchedBytes,
// etc.) and should be treated as constants.
//
// A Set is an ordered list of Spec values. The Set selects which fields take
// part in a comparison and the order in which those fields appear in the
// candidate log.
//
// Which Set to use, and where the candidate log is to be found, depends on
// the version of the candidate log format. ForVersion() returns the Version
// for a version number.
package columns
