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

// Package hir defines the expression and pattern tree handed to lint checks.
//
// The tree is produced and owned by the host frontend; checks treat it as
// immutable for the duration of one visitation. Concise binding forms such as
// `if let` and `while let` are lowered to [MatchExpr] nodes, with
// [MatchExpr.Source] recording the surface syntax they came from.
package hir
