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

package oracle

import (
	"strings"

	"fillmore-labs.com/okmatch/hir"
)

// PathType is a [Type] described by its printed nominal path, possibly
// carrying generic arguments, e.g. `std::result::Result<i32, ParseError>`.
type PathType string

// Matches compares the nominal path with generic arguments stripped.
func (t PathType) Matches(path string) bool {
	s := string(t)
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s) == path
}

// Map is an [Oracle] backed by per-node bindings keyed by node identity.
// Frontends that record inference results per tree node can use it directly;
// it is also convenient for tests.
type Map struct {
	types map[hir.Expr]Type
}

// NewMap creates an empty map-backed oracle.
func NewMap() *Map {
	return &Map{types: make(map[hir.Expr]Type)}
}

// Bind records the resolved type of e, replacing any previous binding.
func (m *Map) Bind(e hir.Expr, t Type) {
	m.types[e] = t
}

// TypeOf implements [Oracle]. Unbound expressions resolve to unknown.
func (m *Map) TypeOf(e hir.Expr) (Type, bool) {
	t, ok := m.types[e]
	if !ok || t == nil {
		return nil, false
	}

	return t, true
}
