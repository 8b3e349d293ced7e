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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error and the Is() function checks for it.
// Patterns that callers need to test for are exported as string constants by
// the package that raises them. For example, the columns package exports:
//
//	const UnsupportedVersion = "unsupported version: %d"
//
// and a caller tests for it with:
//
//	_, err := columns.ForVersion(2)
//	if curated.Is(err, columns.UnsupportedVersion) {
//		fmt.Println("no such version")
//	}
//
// The Has() function is similar but searches the entire chain of curated
// errors. A chain is formed by passing a curated error as one of the values
// to Errorf().
//
//	e := curated.Errorf(columns.UnsupportedVersion, 2)
//	f := curated.Errorf("validate: %v", e)
//
//	curated.Is(f, columns.UnsupportedVersion)  // false
//	curated.Has(f, columns.UnsupportedVersion) // true
//
// Errors from outside the package (an *fs.PathError from os.Open for
// example) can also be placed in the chain. The first value that is an error
// is returned by Unwrap(), which means that the functions in the standard
// errors package will find it:
//
//	_, err := tracelog.LoadCandidate("missing.log")
//	errors.Is(err, fs.ErrNotExist) // true
//
// The Error() function normalises the message so that a chain does not
// contain duplicate adjacent parts. Parts are separated by the sub-string
// ": ". This means that wrapping an error with the same prefix twice does not
// produce a stuttering message:
//
//	e := curated.Errorf("tracelog: %v", curated.Errorf("tracelog: no such file"))
//	e.Error() // "tracelog: no such file"
package curated
