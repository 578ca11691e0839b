// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package render formats diagnostics for human consumption.
//
// It is a convenience for hosts without their own diagnostic pipeline; the
// checks themselves only ever talk to a [lint.Reporter] and never render.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/okmatch/lint"
	"fillmore-labs.com/okmatch/source"
)

// Opts configures rendering.
type Opts struct {
	// Color enables ANSI colors regardless of terminal detection.
	Color bool
}

const indent = "    "

// Pretty writes diagnostics in a human-readable form:
//
//	main.sg:1:1: style [okmatch] Matching on `Some` with `ok()` is redundant
//	    if let Some(value) = input.parse().ok() { vec.push(value) }
//	    ^~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
//	    help: Consider matching on `Ok(value)` and removing the call to `ok` instead: `if let Ok(value) = input.parse()`
//
// Suggestions that are not machine-applicable get an extra note line.
// Diagnostics are written in the given order; sort the bag first for a
// deterministic listing.
func Pretty(w io.Writer, fs *source.FileSet, diags []lint.Diagnostic, opts Opts) {
	for _, d := range diags {
		prettyOne(w, fs, d, opts)
	}
}

func prettyOne(w io.Writer, fs *source.FileSet, d lint.Diagnostic, opts Opts) {
	f := fs.Get(d.Span.File)
	if f == nil {
		fmt.Fprintf(w, "<unknown>: %s [%s] %s\n", d.Severity, d.Check, d.Message)

		return
	}

	start, end := fs.Resolve(d.Span)

	c := severityColor(d.Severity, opts)
	fmt.Fprintf(w, "%s:%d:%d: %s [%s] %s\n", f.Name, start.Line, start.Col, c.Sprint(d.Severity), d.Check, d.Message)

	line := f.Line(start.Line)
	if line != "" && int(start.Col) <= len(line)+1 {
		fmt.Fprintf(w, "%s%s\n", indent, line)
		fmt.Fprintf(w, "%s%s\n", indent, c.Sprint(underline(line, start, end)))
	}

	for _, fix := range d.Fixes {
		fmt.Fprintf(w, "%shelp: %s: `%s`\n", indent, fix.Message, fix.Replacement)

		if fix.Applicability != lint.MachineApplicable {
			fmt.Fprintf(w, "%snote: suggestion is %s and requires human review\n", indent, fix.Applicability)
		}
	}
}

// underline builds the `^~~~` indicator under the first line of the span.
// Columns are byte offsets into the line; widths are display widths.
func underline(line string, start, end source.LineCol) string {
	head := line[:start.Col-1]

	covered := line[start.Col-1:]
	if end.Line == start.Line && int(end.Col-1) <= len(line) {
		covered = line[start.Col-1 : end.Col-1]
	}

	width := runewidth.StringWidth(covered)
	if width < 1 {
		width = 1
	}

	return strings.Repeat(" ", runewidth.StringWidth(head)) + "^" + strings.Repeat("~", width-1)
}

// severityColor picks the indicator color. The color handle is forced on or
// off by the options, never by terminal detection.
func severityColor(s lint.Severity, opts Opts) *color.Color {
	var c *color.Color

	switch s {
	case lint.SeverityCorrectness:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgYellow, color.Bold)
	}

	if opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}
