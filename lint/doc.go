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

// Package lint defines the contract between lint checks and their host.
//
// A host runs checks over a [fillmore-labs.com/okmatch/hir] tree it owns,
// after type inference has completed. Each check is invoked once per
// expression node during a single traversal pass and either stays silent or
// reports a diagnostic through the [Reporter] sink. Checks keep no state
// between invocations, so hosts are free to run independent traversals in
// parallel, one [Context] each.
//
// Check metadata is recorded in a read-only registry populated during
// package initialization; see [Register].
package lint
