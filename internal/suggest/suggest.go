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

// Package suggest derives the literal replacement text for a matched
// `if let Some(pat) = expr.ok()` binding.
package suggest

import (
	"fmt"
	"strings"

	"fillmore-labs.com/okmatch/internal/match"
	"fillmore-labs.com/okmatch/lint"
)

// Suggestion is the textual rewrite derived from a match record.
type Suggestion struct {
	// Text is the full replacement, `if let Ok(<inner>) = <prefix>`.
	Text string

	// Inner is the verbatim sub-pattern text, for use in messages.
	Inner string

	// Applicability is [lint.MachineApplicable] unless a snippet fell back.
	Applicability lint.Applicability
}

// Build derives the replacement for rec. It trusts the matcher completely
// and performs no re-validation.
//
// The sub-pattern is copied byte-for-byte so the original formatting
// survives the rewrite. The prefix keeps its text up to the `ok` segment,
// with surrounding whitespace and the trailing `.` separator trimmed. When
// either snippet cannot be retrieved, the suggestion is still produced but
// downgraded to [lint.HasPlaceholders].
func Build(ctx *lint.Context, rec match.Record) Suggestion {
	app := lint.MachineApplicable

	inner := ctx.Snippet(rec.Inner, "", &app)
	prefix := ctx.Snippet(rec.Prefix, "", &app)
	prefix = strings.TrimRight(strings.TrimSpace(prefix), ". \t\r\n")

	return Suggestion{
		Text:          fmt.Sprintf("if let Ok(%s) = %s", inner, prefix),
		Inner:         inner,
		Applicability: app,
	}
}
