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

package match_test

import (
	"reflect"
	"testing"

	"fillmore-labs.com/namematch/internal/testsource"
	. "fillmore-labs.com/namematch/match"
)

func rng(start, end int) SourceRange {
	return SourceRange{Start: start, End: end}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string // contains exactly one ¶ marker
		defines []string
		want    ResolvedLoc
	}{
		{
			name: "call_label",
			src:  "foo(¶a: 2, 3)",
			want: ResolvedLoc{
				Range:       rng(0, 3),
				LabelRanges: []SourceRange{rng(4, 7), rng(10, 10)},
				LabelType:   LabelCallArg,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "call_base_name",
			src:  "fo¶o(a: 2, 3)",
			want: ResolvedLoc{
				Range:       rng(0, 3),
				LabelRanges: []SourceRange{rng(4, 7), rng(10, 10)},
				LabelType:   LabelCallArg,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "call_unlabeled_slot",
			src:  "foo(a: 2, ¶3)",
			want: ResolvedLoc{
				Range:       rng(0, 3),
				LabelRanges: []SourceRange{rng(4, 7), rng(10, 10)},
				LabelType:   LabelCallArg,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "call_argument_value_not_claimed",
			src:  "foo(a: ¶2)",
			want: ResolvedLoc{
				LabelType: LabelNone,
				IsActive:  true,
				Context:   ContextDefault,
			},
		},
		{
			name: "member_call",
			src:  "a.b.fo¶o(x: 2)",
			want: ResolvedLoc{
				Range:       rng(4, 7),
				LabelRanges: []SourceRange{rng(8, 11)},
				LabelType:   LabelCallArg,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "nested_call",
			src:  "outer(inner(¶x: 1))",
			want: ResolvedLoc{
				Range:       rng(6, 11),
				LabelRanges: []SourceRange{rng(12, 15)},
				LabelType:   LabelCallArg,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "bare_trailing_closure",
			src:  "foo ¶{ x in x }",
			want: ResolvedLoc{
				Range:              rng(0, 3),
				LabelRanges:        []SourceRange{rng(4, 4)},
				FirstTrailingLabel: TrailingAt(0),
				LabelType:          LabelCallArg,
				IsActive:           true,
				Context:            ContextDefault,
			},
		},
		{
			name: "labeled_trailing_closure",
			src:  "foo(a: 1) { } ¶more: { }",
			want: ResolvedLoc{
				Range:              rng(0, 3),
				LabelRanges:        []SourceRange{rng(4, 7), rng(10, 10), rng(14, 20)},
				FirstTrailingLabel: TrailingAt(1),
				LabelType:          LabelCallArg,
				IsActive:           true,
				Context:            ContextDefault,
			},
		},
		{
			name: "func_decl_second_name",
			src:  "func bar(a ¶b: Int)",
			want: ResolvedLoc{
				Range:       rng(5, 8),
				LabelRanges: []SourceRange{rng(9, 12)},
				LabelType:   LabelParam,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "func_decl_name",
			src:  "func b¶ar(a b: Int)",
			want: ResolvedLoc{
				Range:       rng(5, 8),
				LabelRanges: []SourceRange{rng(9, 12)},
				LabelType:   LabelParam,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "initializer",
			src:  "in¶it(x y: Int)",
			want: ResolvedLoc{
				Range:       rng(0, 4),
				LabelRanges: []SourceRange{rng(5, 8)},
				LabelType:   LabelParam,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "subscript",
			src:  "subscript(¶a a: Int) -> Int { }",
			want: ResolvedLoc{
				Range:       rng(0, 9),
				LabelRanges: []SourceRange{rng(10, 13)},
				LabelType:   LabelNoncollapsibleParam,
				IsActive:    true,
				Context:     ContextDefault,
			},
		},
		{
			name: "selector",
			src:  "#selector(MyType.doThing(wi¶th:and:))",
			want: ResolvedLoc{
				Range:       rng(17, 24),
				LabelRanges: []SourceRange{rng(25, 29), rng(30, 33)},
				LabelType:   LabelSelector,
				IsActive:    true,
				Context:     ContextSelector,
			},
		},
		{
			name: "selector_base_not_claimed",
			src:  "#selector(My¶Type.doThing(with:and:))",
			want: ResolvedLoc{
				LabelType: LabelNone,
				IsActive:  true,
				Context:   ContextSelector,
			},
		},
		{
			name: "inactive_region",
			src:  "#if false\n¶foo()\n#endif",
			want: ResolvedLoc{
				Range:     rng(10, 13),
				LabelType: LabelCallArg,
				IsActive:  false,
				Context:   ContextDefault,
			},
		},
		{
			name:    "active_region_with_define",
			src:     "#if DEBUG\nfo¶o()\n#endif",
			defines: []string{"DEBUG"},
			want: ResolvedLoc{
				Range:     rng(10, 13),
				LabelType: LabelCallArg,
				IsActive:  true,
				Context:   ContextDefault,
			},
		},
		{
			name: "else_branch_active",
			src:  "#if false\nx()\n#else\nfo¶o()\n#endif",
			want: ResolvedLoc{
				Range:     rng(20, 23),
				LabelType: LabelCallArg,
				IsActive:  true,
				Context:   ContextDefault,
			},
		},
		{
			name: "line_comment",
			src:  "foo() // rename ¶target\n",
			want: ResolvedLoc{
				Range:     rng(16, 22),
				LabelType: LabelNone,
				IsActive:  true,
				Context:   ContextComment,
			},
		},
		{
			name: "comment_inside_call",
			src:  "foo(a: 2 /* no¶te */, 3)",
			want: ResolvedLoc{
				Range:     rng(12, 16),
				LabelType: LabelNone,
				IsActive:  true,
				Context:   ContextComment,
			},
		},
		{
			name: "string_text",
			src:  `foo("hello ¶world")`,
			want: ResolvedLoc{
				Range:     rng(11, 16),
				LabelType: LabelNone,
				IsActive:  true,
				Context:   ContextStringLiteral,
			},
		},
		{
			name: "call_inside_interpolation",
			src:  `"n: \(fo¶o(x: 1))"`,
			want: ResolvedLoc{
				Range:       rng(6, 9),
				LabelRanges: []SourceRange{rng(10, 13)},
				LabelType:   LabelCallArg,
				IsActive:    true,
				Context:     ContextStringLiteral,
			},
		},
		{
			name: "whitespace_unmatched",
			src:  "foo(a: 2)\n¶\n",
			want: ResolvedLoc{
				LabelType: LabelNone,
				IsActive:  true,
				Context:   ContextDefault,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clean, offs := testsource.Markers(t, tt.src)
			f := testsource.ParseFile(t, clean, tt.defines...)

			got := Resolve(f, offs)
			if len(got) != 1 {
				t.Fatalf("Got %d results, want 1", len(got))
			}

			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("Resolve(%q)[0] =\n%+v, want\n%+v", clean, got[0], tt.want)
			}
		})
	}
}

func TestResolveOrderAndCardinality(t *testing.T) {
	t.Parallel()

	const src = "foo(a: 2, 3)"
	f := testsource.ParseFile(t, src)

	// Unsorted, duplicated and out-of-bounds locations are all legal.
	locs := []int{10, 4, 4, -1, 1_000_000, 0}

	got := Resolve(f, locs)
	if len(got) != len(locs) {
		t.Fatalf("Got %d results, want %d", len(got), len(locs))
	}

	if !reflect.DeepEqual(got[1], got[2]) {
		t.Errorf("Duplicate locations resolved differently: %+v vs %+v", got[1], got[2])
	}

	for _, i := range []int{3, 4} {
		if got[i].LabelType != LabelNone || len(got[i].LabelRanges) != 0 {
			t.Errorf("Out-of-bounds location %d = %+v, want null match", locs[i], got[i])
		}
	}

	// Element i answers locs[i]: the base-name location comes last.
	if got[5].Range != rng(0, 3) || got[5].LabelType != LabelCallArg {
		t.Errorf("got[5] = %+v, want match for offset 0", got[5])
	}
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()

	const src = "func bar(a b: Int) { foo(x: a) }"
	f := testsource.ParseFile(t, src)

	locs := make([]int, len(src))
	for i := range locs {
		locs[i] = i
	}

	first := Resolve(f, locs)
	second := Resolve(f, locs)

	if !reflect.DeepEqual(first, second) {
		t.Error("Repeated resolution differs")
	}
}

func TestResolveParallel(t *testing.T) {
	t.Parallel()

	const src = "#if DEBUG\nfunc bar(a b: Int) { }\n#endif\nfoo(a: 2) { x in x }\n// see bar\n"
	f := testsource.ParseFile(t, src)

	locs := make([]int, len(src)+2)
	for i := range locs {
		locs[i] = i - 1 // includes -1 and len(src)
	}

	sequential := Resolve(f, locs)
	parallel := Resolve(f, locs, WithConcurrency(4))

	if !reflect.DeepEqual(sequential, parallel) {
		t.Error("Parallel resolution differs from sequential")
	}
}

func TestResolveRangeContainment(t *testing.T) {
	t.Parallel()

	const src = `func bar(a b: Int) { foo(x: a, 2) { y in y } } // bar`
	f := testsource.ParseFile(t, src)

	locs := make([]int, len(src))
	for i := range locs {
		locs[i] = i
	}

	for i, loc := range Resolve(f, locs) {
		check := func(r SourceRange) {
			if r.Start < 0 || r.End > len(src) || r.Start > r.End {
				t.Errorf("Location %d: range %v outside [0,%d)", i, r, len(src))
			}
		}

		check(loc.Range)
		for _, lr := range loc.LabelRanges {
			check(lr)
		}

		if idx, ok := loc.FirstTrailingLabel.Index(); ok && idx >= len(loc.LabelRanges) {
			t.Errorf("Location %d: trailing index %d out of %d labels", i, idx, len(loc.LabelRanges))
		}

		if loc.LabelType == LabelNone && len(loc.LabelRanges) != 0 {
			t.Errorf("Location %d: null match with %d labels", i, len(loc.LabelRanges))
		}
	}
}
