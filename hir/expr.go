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

package hir

import (
	"strings"

	"fillmore-labs.com/okmatch/source"
)

// MatchSource records the surface syntax a [MatchExpr] was lowered from.
// Structurally similar trees are distinguished by this flag: an explicit
// match with `Some`/`None` arms and a desugared `if let` produce the same
// node shape but different sources.
type MatchSource uint8

const (
	// MatchNormal is an explicit match expression with user-written arms.
	MatchNormal MatchSource = iota

	// MatchIfLet is the desugaring of a concise `if let` binding.
	MatchIfLet

	// MatchWhileLet is the desugaring of a `while let` loop binding.
	MatchWhileLet
)

// String returns a human-readable name for the match source.
func (s MatchSource) String() string {
	switch s {
	case MatchNormal:
		return "match"
	case MatchIfLet:
		return "if let"
	case MatchWhileLet:
		return "while let"
	}

	return "unknown"
}

// Expr is a node in the expression tree. The set of implementations is
// closed; consumers dispatch with a type switch.
type Expr interface {
	Span() source.Span
	isExpr()
}

// Path is a possibly qualified name, e.g. `Some` or `std::result::Result`.
type Path struct {
	Segments []string
}

// String renders the path as written, with `::` separators.
func (p Path) String() string {
	return strings.Join(p.Segments, "::")
}

// PathExpr is a reference to a named item or binding.
type PathExpr struct {
	Path     Path
	ExprSpan source.Span
}

// LitExpr is a literal value, kept as its source text.
type LitExpr struct {
	Value    string
	ExprSpan source.Span
}

// CallExpr is a free function call `fn(args...)`.
type CallExpr struct {
	Fn       Expr
	Args     []Expr
	ExprSpan source.Span
}

// MethodCallExpr is a method call `receiver.method(args...)`.
type MethodCallExpr struct {
	Receiver Expr
	Method   string
	Args     []Expr // excludes the receiver

	ExprSpan   source.Span // the whole call, starting at the receiver
	MethodSpan source.Span // the method name segment only
}

// Arm is one arm of a [MatchExpr]. Checks may inspect the pattern; arm
// bodies are opaque and never rewritten.
type Arm struct {
	Pat  Pat
	Body Expr
}

// MatchExpr is a match over a scrutinee, including lowered `if let` and
// `while let` forms.
type MatchExpr struct {
	Scrutinee Expr
	Arms      []Arm
	Source    MatchSource
	ExprSpan  source.Span
}

// BlockExpr is a brace-delimited sequence of expressions.
type BlockExpr struct {
	Exprs    []Expr
	ExprSpan source.Span
}

func (e *PathExpr) Span() source.Span       { return e.ExprSpan }
func (e *LitExpr) Span() source.Span        { return e.ExprSpan }
func (e *CallExpr) Span() source.Span       { return e.ExprSpan }
func (e *MethodCallExpr) Span() source.Span { return e.ExprSpan }
func (e *MatchExpr) Span() source.Span      { return e.ExprSpan }
func (e *BlockExpr) Span() source.Span      { return e.ExprSpan }

func (*PathExpr) isExpr()       {}
func (*LitExpr) isExpr()        {}
func (*CallExpr) isExpr()       {}
func (*MethodCallExpr) isExpr() {}
func (*MatchExpr) isExpr()      {}
func (*BlockExpr) isExpr()      {}
