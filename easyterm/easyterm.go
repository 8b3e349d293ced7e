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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it answers
// questions about the terminal that output is being written to
package easyterm

import (
	"os"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsTerminal returns true if the file is connected to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// ColorMode is the user preference for coloured output
type ColorMode string

// List of valid ColorMode values
const (
	ColorAuto ColorMode = "AUTO"
	ColorOn   ColorMode = "ON"
	ColorOff  ColorMode = "OFF"
)

// ParseColorMode converts a string to a ColorMode. letter-case is ignored.
// the second return value is false if the string is not a valid ColorMode
func ParseColorMode(s string) (ColorMode, bool) {
	switch m := ColorMode(strings.ToUpper(strings.TrimSpace(s))); m {
	case ColorAuto, ColorOn, ColorOff:
		return m, true
	}
	return ColorOff, false
}

// UseColor decides whether output to the file should be coloured. ColorAuto
// uses colour only if the file is a terminal
func UseColor(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorAuto:
		return IsTerminal(f)
	}
	return false
}
