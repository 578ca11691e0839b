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

// Run walks the tree rooted at root once in preorder and hands every
// expression node to each check in turn. The walk itself never fails; a
// check that finds nothing stays silent.
func Run(ctx *Context, root hir.Expr, checks ...Check) {
	if ctx == nil || root == nil {
		return
	}

	hir.Walk(root, func(e hir.Expr) bool {
		for _, c := range checks {
			if c != nil {
				c.CheckExpr(ctx, e)
			}
		}

		return true
	})
}
