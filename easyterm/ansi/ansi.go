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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colCyan    = 6
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold = 1
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// Bold is the CSI sequence for bold text.
var Bold string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	for _, c := range []string{"red", "green", "yellow", "cyan"} {
		Pens[c] = ColorBuild(c, true, false)
		DimPens[c] = ColorBuild(c, false, false)
	}

	Bold = ColorBuild("", false, true)
}

// ColorBuild creates the ANSI sequence for the pen. Unknown pen names result
// in the sequence for the default pen colour.
func ColorBuild(pen string, brightPen bool, bold bool) string {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}

		col := colDefault
		switch strings.ToUpper(pen) {
		case "RED":
			col = colRed
		case "GREEN":
			col = colGreen
		case "YELLOW":
			col = colYellow
		case "CYAN":
			col = colCyan
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, col))
	}

	if bold {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", attrBold))
	}

	s.WriteString("m")

	return s.String()
}

// Paint wraps the string in the pen and the normal pen. An empty pen leaves
// the string as it is.
func Paint(pen string, s string) string {
	if pen == "" {
		return s
	}
	return pen + s + NormalPen
}
