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

// Canonical paths of well-known prelude types.
const (
	// ResultPath is the defining path of the success/error sum type.
	ResultPath = "core::result::Result"

	// ResultPathStd is the re-export most programs name the type by.
	ResultPathStd = "std::result::Result"

	// OptionPath is the defining path of the optional-value type.
	OptionPath = "core::option::Option"

	// OptionPathStd is the re-export most programs name the type by.
	OptionPathStd = "std::option::Option"
)

// ResultPaths returns the canonical paths of the success/error sum type.
// The slice is freshly allocated; callers may append to it.
func ResultPaths() []string {
	return []string{ResultPath, ResultPathStd}
}
