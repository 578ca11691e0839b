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

import "fmt"

// FileID identifies a file within a [FileSet].
type FileID uint32

// Span is a half-open byte range [Start, End) within a single file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start >= s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}

	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Until returns the part of s that ends where other begins.
// Both spans must belong to the same file; otherwise s is returned unchanged.
func (s Span) Until(other Span) Span {
	if s.File != other.File {
		return s
	}

	return Span{File: s.File, Start: s.Start, End: other.Start}
}

// WithEnd returns a copy of s truncated or extended to end at the given offset.
func (s Span) WithEnd(end uint32) Span {
	return Span{File: s.File, Start: s.Start, End: end}
}
