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

// Package oracle defines the type-resolution contract consumed by checks.
//
// The oracle is provided by the host frontend after type inference has run.
// Checks only ever ask two things: the resolved type of an expression, and
// whether that type's nominal path matches a canonical path. Resolution can
// legitimately be unavailable; checks must treat that as "unknown type" and
// never assume a match.
package oracle

import "fillmore-labs.com/okmatch/hir"

// Type is an opaque descriptor for a resolved expression type.
type Type interface {
	// Matches reports whether the type's nominal path, ignoring any generic
	// arguments, equals the given canonical path.
	Matches(path string) bool
}

// Oracle resolves the types of expression nodes.
type Oracle interface {
	// TypeOf returns the resolved type of e. The second result is false when
	// the expression's type is unknown or resolution is unavailable.
	TypeOf(e hir.Expr) (Type, bool)
}
