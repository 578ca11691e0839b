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

package lint_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"fillmore-labs.com/okmatch/hir"
	"fillmore-labs.com/okmatch/lint"
	"fillmore-labs.com/okmatch/source"
)

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "style", lint.SeverityStyle.String())
	assert.Equal(t, "correctness", lint.SeverityCorrectness.String())
	assert.Equal(t, "complexity", lint.SeverityComplexity.String())
	assert.Equal(t, "performance", lint.SeverityPerformance.String())
	assert.Equal(t, "unknown", lint.Severity(9).String())
}

func TestApplicabilityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "machine-applicable", lint.MachineApplicable.String())
	assert.Equal(t, "maybe-incorrect", lint.MaybeIncorrect.String())
	assert.Equal(t, "has-placeholders", lint.HasPlaceholders.String())
	assert.Equal(t, "unspecified", lint.Unspecified.String())
	assert.Equal(t, "unknown", lint.Applicability(9).String())
}

// The registry tests stay sequential: Register is init-time-only and the
// registry map is deliberately unsynchronized.
func TestRegistry(t *testing.T) {
	m := lint.Metadata{Name: "test-registry-check", Severity: lint.SeverityStyle, Doc: "a test check"}
	lint.Register(m)

	got, ok := lint.Lookup("test-registry-check")
	assert.True(t, ok)
	assert.Equal(t, m, got)

	_, ok = lint.Lookup("never-registered")
	assert.False(t, ok)

	all := lint.All()
	found := false

	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Name < all[i].Name)
	}

	for _, e := range all {
		if e == m {
			found = true
		}
	}

	assert.True(t, found)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	m := lint.Metadata{Name: "test-duplicate-check", Severity: lint.SeverityStyle}
	lint.Register(m)

	defer func() {
		assert.NotZero(t, recover())
	}()

	lint.Register(m)
}

func TestRegisterEmptyNamePanics(t *testing.T) {
	defer func() {
		assert.NotZero(t, recover())
	}()

	lint.Register(lint.Metadata{})
}

func TestSnippetDowngrade(t *testing.T) {
	t.Parallel()

	fs := source.NewFileSet()
	id := fs.Add("main.sg", []byte("input.parse().ok()"))

	ctx := &lint.Context{Source: fs}

	app := lint.MachineApplicable
	got := ctx.Snippet(source.Span{File: id, Start: 0, End: 13}, "..", &app)
	assert.Equal(t, "input.parse()", got)
	assert.Equal(t, lint.MachineApplicable, app)

	// Unretrievable text falls back and downgrades the applicability.
	got = ctx.Snippet(source.Span{File: id, Start: 0, End: 99}, "..", &app)
	assert.Equal(t, "..", got)
	assert.Equal(t, lint.HasPlaceholders, app)

	// An already lower applicability is left alone.
	app = lint.MaybeIncorrect
	_ = ctx.Snippet(source.Span{File: id, Start: 0, End: 99}, "..", &app)
	assert.Equal(t, lint.MaybeIncorrect, app)
}

func TestSnippetWithoutSource(t *testing.T) {
	t.Parallel()

	ctx := &lint.Context{}

	app := lint.MachineApplicable
	got := ctx.Snippet(source.Span{Start: 0, End: 4}, "", &app)
	assert.Equal(t, "", got)
	assert.Equal(t, lint.HasPlaceholders, app)
}

func TestReportWithFix(t *testing.T) {
	t.Parallel()

	var bag lint.Bag

	ctx := &lint.Context{Reporter: &bag}
	m := lint.Metadata{Name: "some-check", Severity: lint.SeverityStyle}
	sp := source.Span{Start: 2, End: 10}

	ctx.ReportWithFix(m, sp, "message", "fix message", "replacement", lint.MachineApplicable)

	assert.Equal(t, 1, bag.Len())

	d := bag.Diagnostics()[0]
	assert.Equal(t, "some-check", d.Check)
	assert.Equal(t, lint.SeverityStyle, d.Severity)
	assert.Equal(t, sp, d.Span)
	assert.Equal(t, "message", d.Message)
	assert.Equal(t, 1, len(d.Fixes))
	assert.Equal(t, "fix message", d.Fixes[0].Message)
	assert.Equal(t, sp, d.Fixes[0].Span)
	assert.Equal(t, "replacement", d.Fixes[0].Replacement)
	assert.Equal(t, lint.MachineApplicable, d.Fixes[0].Applicability)
}

func TestReportWithoutReporter(t *testing.T) {
	t.Parallel()

	ctx := &lint.Context{}

	// Must not panic.
	ctx.ReportWithFix(lint.Metadata{Name: "x"}, source.Span{}, "m", "f", "r", lint.Unspecified)
}

func TestBagSort(t *testing.T) {
	t.Parallel()

	var bag lint.Bag

	bag.Report(lint.Diagnostic{Check: "b", Span: source.Span{File: 0, Start: 10, End: 12}})
	bag.Report(lint.Diagnostic{Check: "a", Span: source.Span{File: 0, Start: 10, End: 12}})
	bag.Report(lint.Diagnostic{Check: "c", Span: source.Span{File: 0, Start: 2, End: 4}})

	bag.Sort()

	got := bag.Diagnostics()
	assert.Equal(t, "c", got[0].Check)
	assert.Equal(t, "a", got[1].Check)
	assert.Equal(t, "b", got[2].Check)
}

// countingCheck counts node visits and flags literal expressions.
type countingCheck struct {
	visits int
}

func (c *countingCheck) Metadata() lint.Metadata {
	return lint.Metadata{Name: "counting-check", Severity: lint.SeverityStyle}
}

func (c *countingCheck) CheckExpr(ctx *lint.Context, e hir.Expr) {
	c.visits++

	if _, ok := e.(*hir.LitExpr); ok {
		ctx.ReportWithFix(c.Metadata(), e.Span(), "literal", "", "", lint.Unspecified)
	}
}

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	lit := &hir.LitExpr{Value: "1"}
	root := &hir.BlockExpr{Exprs: []hir.Expr{
		lit,
		&hir.PathExpr{Path: hir.Path{Segments: []string{"x"}}},
	}}

	var bag lint.Bag

	check := &countingCheck{}
	lint.Run(&lint.Context{Reporter: &bag}, root, check, nil)

	assert.Equal(t, 3, check.visits)
	assert.Equal(t, 1, bag.Len())

	// Nil context and nil root are no-ops.
	lint.Run(nil, root, check)
	lint.Run(&lint.Context{Reporter: &bag}, nil, check)
	assert.Equal(t, 3, check.visits)
}
