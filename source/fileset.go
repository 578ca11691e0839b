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

import (
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// File holds the content of one source file together with its line index.
type File struct {
	ID      FileID
	Name    string
	Content []byte

	lineIdx []uint32 // byte offsets of line starts, always starting with 0
}

// FileSet manages a collection of source files and resolves spans to
// line and column positions.
type FileSet struct {
	files []File
	index map[string]FileID // name -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]FileID)}
}

// Add stores a file, computes its line index and returns a new FileID.
func (fs *FileSet) Add(name string, content []byte) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}

	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Name:    name,
		Content: content,
		lineIdx: buildLineIndex(content),
	})
	fs.index[name] = id

	return id
}

// Get returns the file metadata for the given ID, or nil for unknown IDs.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}

	return &fs.files[id]
}

// GetByName returns the file with the given name, if it was added.
func (fs *FileSet) GetByName(name string) (*File, bool) {
	id, ok := fs.index[name]
	if !ok {
		return nil, false
	}

	return &fs.files[id], true
}

// LineCol is a 1-based line and column position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Resolve converts a span into start and end positions.
// Spans of unknown files resolve to the zero position.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}

	return f.toLineCol(span.Start), f.toLineCol(span.End)
}

// Line returns the text of the given 1-based line, without the trailing
// newline. Out-of-range lines yield an empty string.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.lineIdx) {
		return ""
	}

	start := f.lineIdx[lineNum-1]

	end := uint32(len(f.Content))
	if int(lineNum) < len(f.lineIdx) {
		end = f.lineIdx[lineNum] - 1 // exclude the newline
	}

	return strings.TrimSuffix(string(f.Content[start:end]), "\r")
}

// LineStart returns the byte offset of the given 1-based line.
func (f *File) LineStart(lineNum uint32) uint32 {
	if lineNum == 0 || int(lineNum) > len(f.lineIdx) {
		return 0
	}

	return f.lineIdx[lineNum-1]
}

func (f *File) toLineCol(offset uint32) LineCol {
	if offset > uint32(len(f.Content)) {
		offset = uint32(len(f.Content))
	}

	// First line starting after offset; the position is on the line before it.
	line := sort.Search(len(f.lineIdx), func(i int) bool { return f.lineIdx[i] > offset })

	lineNum, err := safecast.Conv[uint32](line)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}

	return LineCol{Line: lineNum, Col: offset - f.lineIdx[line-1] + 1}
}

func buildLineIndex(content []byte) []uint32 {
	idx := []uint32{0}
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i)+1)
		}
	}

	return idx
}
