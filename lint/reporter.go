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
	"cmp"
	"slices"
)

// Reporter is the sink for diagnostics produced by checks. Implementations
// decide what rendering, batching or deduplication happens downstream; the
// checks themselves forward each finding exactly once, in traversal order.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag is a [Reporter] that collects diagnostics in memory.
type Bag struct {
	diags []Diagnostic
}

// Report implements [Reporter].
func (b *Bag) Report(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int {
	return len(b.diags)
}

// Diagnostics returns the collected diagnostics in report order.
// The returned slice aliases the bag's storage.
func (b *Bag) Diagnostics() []Diagnostic {
	return b.diags
}

// Sort orders the collected diagnostics by position, then by check name,
// giving hosts a deterministic output order.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.diags, func(x, y Diagnostic) int {
		if c := cmp.Compare(x.Span.File, y.Span.File); c != 0 {
			return c
		}

		if c := cmp.Compare(x.Span.Start, y.Span.Start); c != 0 {
			return c
		}

		if c := cmp.Compare(x.Span.End, y.Span.End); c != 0 {
			return c
		}

		return cmp.Compare(x.Check, y.Check)
	})
}
