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

package source

// SnippetSource retrieves the literal source text covered by a span.
// The second result is false when the text cannot be retrieved exactly,
// for example when the span does not map back to written source; callers
// are expected to substitute a placeholder in that case.
type SnippetSource interface {
	Snippet(span Span) (string, bool)
}

// Snippet implements [SnippetSource] over the files of the set.
func (fs *FileSet) Snippet(span Span) (string, bool) {
	f := fs.Get(span.File)
	if f == nil {
		return "", false
	}

	if span.Start > span.End || int(span.End) > len(f.Content) {
		return "", false
	}

	return string(f.Content[span.Start:span.End]), true
}
