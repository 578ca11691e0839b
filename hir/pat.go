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

import "fillmore-labs.com/okmatch/source"

// Pat is a binding pattern. The set of implementations is closed.
type Pat interface {
	Span() source.Span
	isPat()
}

// BindingPat binds the matched value to a name.
type BindingPat struct {
	Name    string
	PatSpan source.Span
}

// WildcardPat matches anything without binding, written `_`.
type WildcardPat struct {
	PatSpan source.Span
}

// TuplePat destructures a tuple, e.g. `(a, b)`.
type TuplePat struct {
	Elems   []Pat
	PatSpan source.Span
}

// TupleStructPat destructures a named variant with positional fields,
// e.g. `Some(value)` or `Ok((a, b))`.
type TupleStructPat struct {
	Path    Path
	Elems   []Pat
	PatSpan source.Span
}

func (p *BindingPat) Span() source.Span     { return p.PatSpan }
func (p *WildcardPat) Span() source.Span    { return p.PatSpan }
func (p *TuplePat) Span() source.Span       { return p.PatSpan }
func (p *TupleStructPat) Span() source.Span { return p.PatSpan }

func (*BindingPat) isPat()     {}
func (*WildcardPat) isPat()    {}
func (*TuplePat) isPat()       {}
func (*TupleStructPat) isPat() {}
