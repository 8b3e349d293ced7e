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

// Package comparison walks a reference log and a candidate log in lockstep
// and reports the fields that differ.
//
// The two logs are compared row by row, up to the length of the shorter log.
// Rows beyond the end of the shorter log are not compared and do not count as
// failures. Instead the result is said to be partial.
//
// Every field that differs counts as one fail and is reported with a
// diagnostic block written to the output. For example:
//
//	====================
//	ROW 3 FAIL (accumulator)
//	VALUE MISMATCH: expected - 'A:00', got - '01'
//
//	Ideal log str: C5F7  86 00     STX $00 = 00                    A:00 X:00 Y:00 P:26 SP:FD PPU:  0, 36 CYC:12
//	Got log str: C5F7	86 00	01	00	00	26	FD
//	====================
//
// All the fields of a row are checked before the number of fails is tested
// against the tolerance. If the number of fails is greater than the tolerance
// then the comparison stops.
//
// Once the comparison has finished, the Result.Summarise() function writes a
// single line saying whether the candidate log failed, was partially
// validated, or was fully validated.
package comparison
