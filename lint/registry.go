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

import (
	"fmt"
	"slices"
)

// registry holds the metadata of all known checks, keyed by name.
// It is populated from init functions and read-only afterwards.
var registry = map[string]Metadata{}

// Register records check metadata under its name. It panics on an empty name
// or a duplicate registration; both are programming errors caught at
// process initialization.
func Register(m Metadata) {
	if m.Name == "" {
		panic("lint: registration without a name")
	}

	if _, ok := registry[m.Name]; ok {
		panic(fmt.Sprintf("lint: duplicate registration of check %q", m.Name))
	}

	registry[m.Name] = m
}

// Lookup returns the metadata registered under name.
func Lookup(name string) (Metadata, bool) {
	m, ok := registry[name]

	return m, ok
}

// All returns the metadata of every registered check, sorted by name.
func All() []Metadata {
	all := make([]Metadata, 0, len(registry))
	for _, m := range registry {
		all = append(all, m)
	}

	slices.SortFunc(all, func(x, y Metadata) int {
		switch {
		case x.Name < y.Name:
			return -1
		case x.Name > y.Name:
			return 1
		default:
			return 0
		}
	})

	return all
}
