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

package tracelog

import (
	"io"
	"os"

	"github.com/flynes/nestestlog/columns"
	"github.com/flynes/nestestlog/curated"
	"github.com/flynes/nestestlog/logger"
)

// LoadError is the curated error pattern for a log file that cannot be
// opened or read. The underlying error is available with errors.Unwrap().
const LoadError = "tracelog: %s: %v"

// readFile reads the entire file into memory. the file is closed before the
// function returns
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", curated.Errorf(LoadError, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", curated.Errorf(LoadError, path, err)
	}

	return string(b), nil
}

// LoadReference reads and parses the reference log at path.
func LoadReference(path string, set columns.Set) (Log, error) {
	text, err := readFile(path)
	if err != nil {
		return Log{}, err
	}

	lg := ParseReference(path, text, set)
	logger.Logf(logger.Allow, "tracelog", "reference log %s: %d rows, %d fields", path, lg.Len(), lg.NumFields())

	return lg, nil
}

// LoadCandidate reads and parses the candidate log at path.
func LoadCandidate(path string) (Log, error) {
	text, err := readFile(path)
	if err != nil {
		return Log{}, err
	}

	lg := ParseCandidate(path, text)
	logger.Logf(logger.Allow, "tracelog", "candidate log %s: %d rows, %d fields", path, lg.Len(), lg.NumFields())

	return lg, nil
}
