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

import "fillmore-labs.com/okmatch/hir"

// Severity categorizes a check.
type Severity uint8

const (
	// SeverityStyle flags code that works but should be written more directly.
	SeverityStyle Severity = iota

	// SeverityCorrectness flags code that is outright wrong or useless.
	SeverityCorrectness

	// SeverityComplexity flags code that does something simple in a complex way.
	SeverityComplexity

	// SeverityPerformance flags code that can be written to run faster.
	SeverityPerformance
)

// String returns the lowercase category name.
func (s Severity) String() string {
	switch s {
	case SeverityStyle:
		return "style"
	case SeverityCorrectness:
		return "correctness"
	case SeverityComplexity:
		return "complexity"
	case SeverityPerformance:
		return "performance"
	}

	return "unknown"
}

// Metadata is the static registration record of a check.
type Metadata struct {
	// Name is the unique check identifier, in kebab-case.
	Name string

	// Severity is the check's category.
	Severity Severity

	// Doc is the rationale shown to users asking why the check exists.
	Doc string
}

// Check inspects expression nodes and reports findings through the [Context].
//
// Implementations must be silent on nodes that do not match, must never
// panic the host traversal, and must resolve any ambiguity to no-match:
// a missed detection is always preferred over a wrong one.
type Check interface {
	Metadata() Metadata

	// CheckExpr inspects a single expression node.
	CheckExpr(ctx *Context, e hir.Expr)
}
