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

// Package match decides whether an expression node has the exact shape of
// the redundant `if let Some(pat) = expr.ok()` idiom.
package match

import (
	"fillmore-labs.com/okmatch/hir"
	"fillmore-labs.com/okmatch/oracle"
)

const (
	// presentVariant is compared against the pattern path's rendered text,
	// not against a resolved definition. A user-defined variant that happens
	// to be named Some is indistinguishable at this level.
	presentVariant = "Some"

	// okMethod is the conversion that turns a result into an optional value.
	okMethod = "ok"
)

// Match reports whether e is an `if let Some(<pat>) = <recv>.ok()` binding
// with <recv> of the canonical success/error sum type, and returns the spans
// the rewrite is built from.
//
// The conditions run in short-circuit order, cheapest first, and the first
// failure decides: matching is a best-effort heuristic where every ambiguity
// resolves to no-match. The oracle is only consulted once all structural
// conditions hold.
func Match(types oracle.Oracle, e hir.Expr, resultPaths []string) (Record, bool) {
	// Only the concise `if let` surface form qualifies; an explicit match
	// with the same arms is excluded, as is `while let`.
	m, ok := e.(*hir.MatchExpr)
	if !ok || m.Source != hir.MatchIfLet {
		return Record{}, false
	}

	call, ok := m.Scrutinee.(*hir.MethodCallExpr)
	if !ok {
		return Record{}, false
	}

	if len(m.Arms) == 0 {
		return Record{}, false
	}

	// The success arm must destructure exactly one value out of `Some`.
	// Arm bodies are never inspected.
	pat, ok := m.Arms[0].Pat.(*hir.TupleStructPat)
	if !ok || len(pat.Elems) != 1 || pat.Path.String() != presentVariant {
		return Record{}, false
	}

	// The conversion must be the outermost call of the chain: `ok` with no
	// arguments, applied directly to the scrutinee's receiver.
	if call.Method != okMethod || len(call.Args) != 0 || call.Receiver == nil {
		return Record{}, false
	}

	if !receiverIsResult(types, call.Receiver, resultPaths) {
		return Record{}, false
	}

	opSpan := call.Span()

	return Record{
		Primary: m.Span().WithEnd(opSpan.End),
		Prefix:  opSpan.Until(call.MethodSpan),
		OkCall:  call.MethodSpan,
		Inner:   pat.Elems[0].Span(),
	}, true
}
