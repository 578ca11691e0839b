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

package hir

// Walk traverses the expression tree rooted at e in preorder, calling visit
// for every node. Children are visited only when visit returns true.
// Patterns contain no expressions and are not part of the traversal.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil || !visit(e) {
		return
	}

	switch n := e.(type) {
	case *CallExpr:
		Walk(n.Fn, visit)

		for _, arg := range n.Args {
			Walk(arg, visit)
		}

	case *MethodCallExpr:
		Walk(n.Receiver, visit)

		for _, arg := range n.Args {
			Walk(arg, visit)
		}

	case *MatchExpr:
		Walk(n.Scrutinee, visit)

		for _, arm := range n.Arms {
			Walk(arm.Body, visit)
		}

	case *BlockExpr:
		for _, sub := range n.Exprs {
			Walk(sub, visit)
		}

	default: // leaf node
	}
}
