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

import "fillmore-labs.com/okmatch/source"

// Applicability is the confidence tag on a suggested fix.
type Applicability uint8

const (
	// MachineApplicable marks a suggestion that is safe to apply automatically.
	MachineApplicable Applicability = iota

	// MaybeIncorrect marks a suggestion that may not preserve behavior.
	MaybeIncorrect

	// HasPlaceholders marks a suggestion containing fallback text that
	// requires human review before applying.
	HasPlaceholders

	// Unspecified marks a suggestion whose confidence was not assessed.
	Unspecified
)

// String returns a human-readable name for the applicability.
func (a Applicability) String() string {
	switch a {
	case MachineApplicable:
		return "machine-applicable"
	case MaybeIncorrect:
		return "maybe-incorrect"
	case HasPlaceholders:
		return "has-placeholders"
	case Unspecified:
		return "unspecified"
	}

	return "unknown"
}

// SuggestedFix is a textual replacement proposed alongside a diagnostic.
type SuggestedFix struct {
	// Message labels the fix, e.g. "Consider matching on `Ok(value)` ...".
	Message string

	// Span is the source range whose text the replacement substitutes.
	Span source.Span

	// Replacement is the new source text, copied verbatim into place.
	Replacement string

	// Applicability tags how safe the replacement is to auto-apply.
	Applicability Applicability
}

// Diagnostic is one finding of one check at one location.
type Diagnostic struct {
	Check    string
	Severity Severity
	Span     source.Span
	Message  string
	Fixes    []SuggestedFix
}
