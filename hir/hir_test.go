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

package hir_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"fillmore-labs.com/okmatch/hir"
)

func TestPathString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path hir.Path
		want string
	}{
		{name: "Unqualified", path: hir.Path{Segments: []string{"Some"}}, want: "Some"},
		{name: "Qualified", path: hir.Path{Segments: []string{"std", "result", "Result"}}, want: "std::result::Result"},
		{name: "Empty", path: hir.Path{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestMatchSourceString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "match", hir.MatchNormal.String())
	assert.Equal(t, "if let", hir.MatchIfLet.String())
	assert.Equal(t, "while let", hir.MatchWhileLet.String())
	assert.Equal(t, "unknown", hir.MatchSource(9).String())
}

func TestWalkPreorder(t *testing.T) {
	t.Parallel()

	receiver := &hir.PathExpr{Path: hir.Path{Segments: []string{"input"}}}
	parse := &hir.MethodCallExpr{Receiver: receiver, Method: "parse"}
	body := &hir.BlockExpr{Exprs: []hir.Expr{&hir.LitExpr{Value: "1"}}}
	m := &hir.MatchExpr{
		Scrutinee: parse,
		Arms:      []hir.Arm{{Pat: &hir.WildcardPat{}, Body: body}},
		Source:    hir.MatchIfLet,
	}

	var order []hir.Expr

	hir.Walk(m, func(e hir.Expr) bool {
		order = append(order, e)

		return true
	})

	want := []hir.Expr{m, parse, receiver, body, body.Exprs[0]}
	assert.Equal(t, len(want), len(order))

	for i, e := range want {
		assert.True(t, order[i] == e)
	}
}

func TestWalkPrune(t *testing.T) {
	t.Parallel()

	inner := &hir.PathExpr{Path: hir.Path{Segments: []string{"x"}}}
	call := &hir.CallExpr{Fn: &hir.PathExpr{Path: hir.Path{Segments: []string{"f"}}}, Args: []hir.Expr{inner}}

	visited := 0

	hir.Walk(call, func(e hir.Expr) bool {
		visited++

		return false // do not descend
	})

	assert.Equal(t, 1, visited)
}

func TestWalkNil(t *testing.T) {
	t.Parallel()

	hir.Walk(nil, func(hir.Expr) bool {
		t.Fatal("visited nil expression")

		return false
	})
}
