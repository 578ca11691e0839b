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

package lint

import (
	"fillmore-labs.com/okmatch/oracle"
	"fillmore-labs.com/okmatch/source"
)

// Context carries the host collaborators a check needs during one traversal.
// All fields are optional: a missing oracle means types never resolve, a
// missing snippet source means every extraction falls back, and a missing
// reporter silently drops findings. Checks degrade; they never fail.
type Context struct {
	// Types resolves expression types; nil when resolution is unavailable.
	Types oracle.Oracle

	// Source retrieves literal source text; nil when unavailable.
	Source source.SnippetSource

	// Reporter receives the diagnostics.
	Reporter Reporter
}

// Snippet returns the literal source text covered by sp. When the text
// cannot be retrieved exactly it returns fallback instead and downgrades
// *app from [MachineApplicable] to [HasPlaceholders], so suggestions built
// from the result are flagged for human review.
func (c *Context) Snippet(sp source.Span, fallback string, app *Applicability) string {
	if c.Source != nil {
		if s, ok := c.Source.Snippet(sp); ok {
			return s
		}
	}

	if app != nil && *app == MachineApplicable {
		*app = HasPlaceholders
	}

	return fallback
}

// ReportWithFix emits a diagnostic for m carrying a single suggested
// replacement of the text at sp.
func (c *Context) ReportWithFix(m Metadata, sp source.Span, msg, fixMsg, replacement string, app Applicability) {
	if c.Reporter == nil {
		return
	}

	c.Reporter.Report(Diagnostic{
		Check:    m.Name,
		Severity: m.Severity,
		Span:     sp,
		Message:  msg,
		Fixes: []SuggestedFix{{
			Message:       fixMsg,
			Span:          sp,
			Replacement:   replacement,
			Applicability: app,
		}},
	})
}
