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

package match

import "fillmore-labs.com/okmatch/source"

// Record captures the spans of a successful match, everything the
// suggestion builder needs to derive the rewrite text.
type Record struct {
	// Primary is the match expression's span truncated to end at the
	// scrutinee, so a rendered indicator highlights the condition only.
	Primary source.Span

	// Prefix spans from the scrutinee's start up to, but excluding, the `ok`
	// segment. Its text still carries the trailing separator.
	Prefix source.Span

	// OkCall is the span of the `ok` method name segment.
	OkCall source.Span

	// Inner is the span of the single sub-pattern inside `Some(...)`.
	Inner source.Span
}
