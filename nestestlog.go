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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"

	"github.com/flynes/nestestlog/columns"
	"github.com/flynes/nestestlog/comparison"
	"github.com/flynes/nestestlog/curated"
	"github.com/flynes/nestestlog/easyterm"
	"github.com/flynes/nestestlog/logger"
	"github.com/flynes/nestestlog/modalflag"
	"github.com/flynes/nestestlog/statsview"
	"github.com/flynes/nestestlog/tracelog"
	"github.com/flynes/nestestlog/version"
)

const (
	defaultIdealLog = "./nestest_full.log"
	defaultVersion  = 1
)

// values for os.Exit(). a failed validation is only reported with
// exitValidation if the -failexit flag has been given
const (
	exitSuccess    = 0
	exitValidation = 1
	exitArgs       = 10
	exitMode       = 20
)

const logTag = "nestestlog"

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("VALIDATE", "COLUMNS", "VERSIONS")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	exitVal := exitSuccess

	switch md.Mode() {
	case "VALIDATE":
		exitVal, err = validate(md, output)

	case "COLUMNS":
		err = listColumns(md, output)

	case "VERSIONS":
		err = listVersions(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitVal
}

func validate(md *modalflag.Modes, output io.Writer) (int, error) {
	md.NewMode()

	versionID := md.AddInt("version", defaultVersion, "candidate log version")
	idealPath := md.AddString("ideal", defaultIdealLog, "path to the reference log")
	checkPath := md.AddString("check", "", "path to the candidate log (default is the path for the version)")
	tolerance := md.AddInt("tolerance", comparison.DefaultTolerance, "number of fails allowed before validation stops")
	failExit := md.AddBool("failexit", false, "exit with a non-zero status if validation fails")
	color := md.AddString("color", string(easyterm.ColorAuto), "colour diagnostic output: AUTO, ON, OFF")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitSuccess, err
	}

	if len(md.RemainingArgs()) > 0 {
		return exitSuccess, curated.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}
	logger.Log(logger.Allow, logTag, version.String())

	colorMode, ok := easyterm.ParseColorMode(*color)
	if !ok {
		return exitSuccess, curated.Errorf("unknown color mode: %s", *color)
	}

	if *tolerance < 0 {
		return exitSuccess, curated.Errorf("tolerance cannot be negative: %d", *tolerance)
	}

	// the version must be known before any file is opened
	v, err := columns.ForVersion(*versionID)
	if err != nil {
		return exitSuccess, err
	}
	logger.Logf(logger.Allow, logTag, "version %d: %s", v.ID, v.Columns)

	if *checkPath == "" {
		*checkPath = v.CheckLog
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
			defer statsview.Stop()
		} else {
			logger.Log(logger.Allow, logTag, "statsview not available in this build")
		}
	}

	ideal, err := tracelog.LoadReference(*idealPath, v.Columns)
	if err != nil {
		return exitSuccess, err
	}

	check, err := tracelog.LoadCandidate(*checkPath)
	if err != nil {
		return exitSuccess, err
	}

	cmp := comparison.NewComparison(v.Columns)
	cmp.Tolerance = *tolerance
	cmp.Color = useColor(colorMode, output)

	res, err := cmp.Compare(output, ideal, check)
	if err != nil {
		return exitSuccess, err
	}
	res.Summarise(output)

	// the run is over quickly so keep the stats server alive until the user
	// has finished with it
	if *stats && statsview.Available() {
		fmt.Fprintln(output, "stats server running. press ctrl-c to quit")
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		<-intChan
		signal.Reset(os.Interrupt)
	}

	if *failExit && res.Failed() {
		return exitValidation, nil
	}

	return exitSuccess, nil
}

// useColor decides whether the comparison report should be coloured
func useColor(mode easyterm.ColorMode, output io.Writer) bool {
	if f, ok := output.(*os.File); ok {
		return easyterm.UseColor(mode, f)
	}
	return mode == easyterm.ColorOn
}

func listColumns(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	versionID := md.AddInt("version", defaultVersion, "candidate log version")
	all := md.AddBool("all", false, "list every column of the reference log")
	dot := md.AddString("dot", "", "write a graphviz description of the column set to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	v, err := columns.ForVersion(*versionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", v)

	list := v.Columns
	if *all {
		list = columns.All
	}

	for _, s := range list {
		// when listing every column, mark those that are compared
		marker := " "
		if *all {
			for _, c := range v.Columns {
				if c == s {
					marker = "*"
					break // for loop
				}
			}
		}
		fmt.Fprintf(output, "%s %-16s offset %2d  length %2d\n", marker, s.Name, s.Offset, s.Length)
	}

	if *dot != "" {
		err = writeDot(*dot, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "column set written to %s\n", *dot)
	}

	return nil
}

// writeDot writes a graphviz description of the version
func writeDot(path string, v columns.Version) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("dot: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	memviz.Map(f, &v)
	logger.Logf(logger.Allow, logTag, "graphviz description of version %d written to %s", v.ID, path)

	return nil
}

func listVersions(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	for _, id := range columns.Versions() {
		v, err := columns.ForVersion(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "%s\n", v)
	}

	return nil
}
