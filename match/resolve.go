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

package match

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/namematch/syntax"
)

// Resolve determines, for each location, the syntactic construct
// enclosing it and returns its name and label ranges.
//
// The result always has exactly one element per location, in input
// order; locations need not be sorted or unique. A location with no
// matchable construct, or outside the buffer, yields a null match with
// [LabelNone] instead of an error. Resolve is a pure function of the
// file and the locations and retains no reference to the tree.
func Resolve(file *syntax.File, locs []int, opts ...Option) []ResolvedLoc {
	ro := defaultRunOptions()
	Options(opts).apply(ro)

	r := &resolver{file: file, logger: ro.logger}

	out := make([]ResolvedLoc, len(locs))
	if ro.concurrency > 1 && len(locs) > 1 {
		// Resolutions are independent and the tree is read-only, so the
		// batch shards freely; writes go to disjoint indices.
		var g errgroup.Group
		g.SetLimit(ro.concurrency)

		for i, off := range locs {
			g.Go(func() error {
				out[i] = r.resolveOne(off)

				return nil
			})
		}

		_ = g.Wait() // resolutions never fail
	} else {
		for i, off := range locs {
			out[i] = r.resolveOne(off)
		}
	}

	return out
}

type resolver struct {
	file   *syntax.File
	logger *slog.Logger
}

func (r *resolver) resolveOne(off int) ResolvedLoc {
	src := r.file.Source()
	if off < 0 || off >= len(src) {
		r.debug("location out of bounds", off)

		return nullLoc(SourceRange{}, ContextDefault, true)
	}

	path := descend(r.file, off)
	active := activeAt(path)

	// Comments are matchable wherever they appear, including inside a
	// call's argument list.
	if _, ok := commentAt(r.file, off); ok {
		return nullLoc(wordAt(src, off), ContextComment, active)
	}

	for i := len(path) - 1; i >= 0; i-- {
		loc, ok := r.claim(path[i], off, active)
		if !ok {
			continue
		}

		if loc.Context == ContextDefault {
			loc.Context = contextAt(path, i-1)
		}

		return loc
	}

	r.debug("no matchable construct", off)

	return nullLoc(SourceRange{}, contextAt(path, len(path)-1), active)
}

func (r *resolver) debug(msg string, off int) {
	if r.logger == nil {
		return
	}

	r.logger.Debug(msg, slog.Int("offset", off))
}
