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

// Package testsource provides utilities for building source fixtures in
// tests.
//
// Test sources mark the locations to resolve with [Marker] runes, which
// are stripped before parsing, so that byte offsets never have to be
// counted by hand.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/namematch/syntax"
)

// Marker marks a location of interest in a test source.
const Marker = '¶'

// Markers strips every [Marker] from src and returns the cleaned source
// together with the byte offsets the markers occupied.
func Markers(tb testing.TB, src string) (string, []int) {
	tb.Helper()

	var (
		clean strings.Builder
		offs  []int
	)

	for _, r := range src {
		if r == Marker {
			offs = append(offs, clean.Len())

			continue
		}
		clean.WriteRune(r)
	}

	if len(offs) == 0 {
		tb.Fatalf("No %q markers in source %q", Marker, src)
	}

	return clean.String(), offs
}

// ParseFile parses src, failing the test on error.
func ParseFile(tb testing.TB, src string, defines ...string) *syntax.File {
	tb.Helper()

	f, err := syntax.Parse([]byte(src), defines...)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}
