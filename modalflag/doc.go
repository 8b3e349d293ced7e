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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VALIDATE", "COLUMNS", "VERSIONS")
//	p, err := md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own flags. The first sub-mode
// given to AddSubModes() is the default and is selected when no mode is named
// on the command line. Sub-mode comparisons are case insensitive.
//
// Once the mode is known, NewMode() prepares for the flags of that mode and
// Parse() is called again:
//
//	switch md.Mode() {
//	case "VALIDATE":
//		md.NewMode()
//		version := md.AddInt("version", 1, "candidate log version")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		validate(*version, md.RemainingArgs())
//	}
//
// Help messages for the flags and sub-modes of the current mode are printed
// to the Output field automatically when -help is given. Parse() returns
// ParseHelp in that case.
package modalflag
