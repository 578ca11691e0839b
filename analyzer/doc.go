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

// Package analyzer implements the okmatch lint check.
//
// # Overview
//
// Okmatch detects bindings that convert a result into an optional value with
// a trailing `ok()` call, only to destructure it against `Some` again.
// Matching on `Ok` directly says the same thing without the conversion.
//
// # Example
//
// Before:
//
//	for i in iter {
//	    if let Some(value) = i.parse().ok() {
//	        vec.push(value)
//	    }
//	}
//
// After applying okmatch's suggested fix:
//
//	for i in iter {
//	    if let Ok(value) = i.parse() {
//	        vec.push(value)
//	    }
//	}
//
// # Limits
//
// Only the concise `if let` surface form is flagged; an explicit match over
// the same scrutinee is left alone, as is `while let`. The receiver of the
// `ok()` call must resolve to the canonical success/error sum type, so the
// check never fires on unrelated types that merely define a method named
// `ok`. Missed detections are accepted; wrong ones are not.
package analyzer
