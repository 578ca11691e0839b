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

package analyzer

import (
	"fmt"

	"fillmore-labs.com/okmatch/hir"
	"fillmore-labs.com/okmatch/internal/match"
	"fillmore-labs.com/okmatch/internal/suggest"
	"fillmore-labs.com/okmatch/lint"
	"fillmore-labs.com/okmatch/oracle"
)

// Public API constants for the okmatch check.
const (
	name = "okmatch"
	doc  = "usage of `ok()` in `if let Some(pat)` bindings is unnecessary, match on `Ok(pat)` instead"
)

// message is the fixed diagnostic text attached to every finding.
const message = "Matching on `Some` with `ok()` is redundant"

// Meta is the okmatch registration record, consumed once at startup by
// hosts listing their rule set.
var Meta = lint.Metadata{
	Name:     name,
	Severity: lint.SeverityStyle,
	Doc:      doc,
}

func init() { lint.Register(Meta) }

// New creates a new instance of the okmatch check. It allows for
// programmatic configuration using [Option]; for typical hosts the
// zero-option form is sufficient.
func New(opts ...Option) lint.Check {
	c := &check{resultPaths: oracle.ResultPaths()}
	Options(opts).apply(c)

	return c
}

// check holds the configured catalogue of canonical result paths.
// It keeps no other state; every visitation is independent.
type check struct {
	resultPaths []string
}

// Metadata implements [lint.Check].
func (*check) Metadata() lint.Metadata { return Meta }

// CheckExpr implements [lint.Check]. It inspects one expression node and
// reports at most one diagnostic: the redundant binding with a rewrite that
// matches on `Ok` directly. Nodes of any other shape are skipped silently.
func (c *check) CheckExpr(ctx *lint.Context, e hir.Expr) {
	rec, ok := match.Match(ctx.Types, e, c.resultPaths)
	if !ok {
		return
	}

	s := suggest.Build(ctx, rec)
	help := fmt.Sprintf("Consider matching on `Ok(%s)` and removing the call to `ok` instead", s.Inner)

	ctx.ReportWithFix(Meta, rec.Primary, message, help, s.Text, s.Applicability)
}
