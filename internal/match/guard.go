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

import (
	"fillmore-labs.com/okmatch/hir"
	"fillmore-labs.com/okmatch/oracle"
)

// receiverIsResult asks the oracle for recv's resolved type and tests it
// against the canonical success/error sum type paths.
//
// `ok` is not a reserved name; without this gate the check would misfire on
// unrelated receivers and propose rewrites that do not compile. An
// unresolved type therefore never matches.
func receiverIsResult(types oracle.Oracle, recv hir.Expr, resultPaths []string) bool {
	if types == nil {
		return false
	}

	t, ok := types.TypeOf(recv)
	if !ok || t == nil {
		return false
	}

	for _, path := range resultPaths {
		if t.Matches(path) {
			return true
		}
	}

	return false
}
