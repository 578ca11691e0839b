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

package analyzer

import "log/slog"

// Option configures specific behavior of a [New] okmatch check.
type Option interface {
	apply(c *check)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(c *check) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(c)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithResultPaths is an [Option] to extend the catalogue of canonical
// success/error sum type paths, for hosts whose prelude re-exports the type
// under additional names.
func WithResultPaths(paths ...string) Option { return resultPathsOption{paths: paths} }

type resultPathsOption struct{ paths []string }

func (o resultPathsOption) apply(c *check) {
	c.resultPaths = append(c.resultPaths, o.paths...)
}

func (o resultPathsOption) LogAttr() slog.Attr {
	return slog.Any("result-paths", o.paths)
}
