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

package syntax_test

import (
	"testing"

	. "fillmore-labs.com/namematch/syntax"
)

func parseFile(t *testing.T, src string, defines ...string) *File {
	t.Helper()

	f, err := Parse([]byte(src), defines...)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}

	return f
}

func firstItem[N Node](t *testing.T, f *File) N {
	t.Helper()

	if len(f.Items) == 0 {
		t.Fatal("File has no items")
	}

	n, ok := f.Items[0].(N)
	if !ok {
		t.Fatalf("Items[0] is %T", f.Items[0])
	}

	return n
}

func TestParseBareName(t *testing.T) {
	t.Parallel()

	f := parseFile(t, "foo")
	id := firstItem[*IdentExpr](t, f)

	if id.Tok.Kind != Ident {
		t.Errorf("Tok.Kind = %v, want %v", id.Tok.Kind, Ident)
	}
	if id.Tok.Text != "foo" {
		t.Errorf("Tok.Text = %q, want foo", id.Tok.Text)
	}
}

func TestParseCall(t *testing.T) {
	t.Parallel()

	f := parseFile(t, "foo(a: 2, 3) { x in x } more: { y() }")
	call := firstItem[*Call](t, f)

	if len(call.Args) != 2 {
		t.Fatalf("Got %d args, want 2", len(call.Args))
	}
	if call.Args[0].Label == nil || call.Args[0].Label.Text != "a" {
		t.Errorf("Args[0].Label = %v, want a", call.Args[0].Label)
	}
	if call.Args[1].Label != nil {
		t.Errorf("Args[1].Label = %v, want none", call.Args[1].Label)
	}

	if len(call.Trailing) != 2 {
		t.Fatalf("Got %d trailing closures, want 2", len(call.Trailing))
	}
	if call.Trailing[0].Label != nil {
		t.Errorf("Trailing[0] is labeled %q", call.Trailing[0].Label.Text)
	}
	if call.Trailing[1].Label == nil || call.Trailing[1].Label.Text != "more" {
		t.Errorf("Trailing[1].Label = %v, want more", call.Trailing[1].Label)
	}

	closure := call.Trailing[0].Closure
	if closure.In == nil || len(closure.Params) != 1 || closure.Params[0].Text != "x" {
		t.Errorf("Trailing[0] closure params = %v, want [x]", closure.Params)
	}
}

func TestParseBareTrailingClosure(t *testing.T) {
	t.Parallel()

	f := parseFile(t, "foo { x in x }")
	call := firstItem[*Call](t, f)

	if call.LParen != nil || len(call.Args) != 0 {
		t.Errorf("Got parenthesized arguments, want none")
	}
	if len(call.Trailing) != 1 {
		t.Fatalf("Got %d trailing closures, want 1", len(call.Trailing))
	}
	if got, want := call.Span(), (Range{Start: 0, End: 14}); got != want {
		t.Errorf("Span() = %v, want %v", got, want)
	}
}

func TestParseFuncDecl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        string
		declName   string
		subscript  bool
		paramCount int
		secondName string
	}{
		{
			name:       "two_names",
			src:        "func bar(a b: Int) -> Int { return a }",
			declName:   "bar",
			paramCount: 1,
			secondName: "b",
		},
		{
			name:       "initializer",
			src:        "init(x: Int, y: Int)",
			declName:   "init",
			paramCount: 2,
		},
		{
			name:       "subscript",
			src:        "subscript(index i: Int) -> Element { }",
			declName:   "subscript",
			subscript:  true,
			paramCount: 1,
			secondName: "i",
		},
		{
			name:     "no_params",
			src:      "func run() { }",
			declName: "run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parseFile(t, tt.src)
			decl := firstItem[*FuncDecl](t, f)

			if decl.Name.Text != tt.declName {
				t.Errorf("Name = %q, want %q", decl.Name.Text, tt.declName)
			}
			if decl.Subscript() != tt.subscript {
				t.Errorf("Subscript() = %v, want %v", decl.Subscript(), tt.subscript)
			}
			if len(decl.Params) != tt.paramCount {
				t.Fatalf("Got %d params, want %d", len(decl.Params), tt.paramCount)
			}

			if tt.secondName != "" {
				if decl.Params[0].Second == nil || decl.Params[0].Second.Text != tt.secondName {
					t.Errorf("Params[0].Second = %v, want %q", decl.Params[0].Second, tt.secondName)
				}
			}
		})
	}
}

func TestParseIfConfig(t *testing.T) {
	t.Parallel()

	const src = "#if DEBUG\nfoo()\n#elseif TRACE\nbar()\n#else\nbaz()\n#endif"

	tests := []struct {
		name    string
		defines []string
		want    []bool
	}{
		{name: "none", want: []bool{false, false, true}},
		{name: "first", defines: []string{"DEBUG"}, want: []bool{true, false, false}},
		{name: "second", defines: []string{"TRACE"}, want: []bool{false, true, false}},
		{name: "both", defines: []string{"DEBUG", "TRACE"}, want: []bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parseFile(t, src, tt.defines...)
			ic := firstItem[*IfConfig](t, f)

			if len(ic.Clauses) != len(tt.want) {
				t.Fatalf("Got %d clauses, want %d", len(ic.Clauses), len(tt.want))
			}
			for i, active := range tt.want {
				if ic.Clauses[i].Active != active {
					t.Errorf("Clauses[%d].Active = %v, want %v", i, ic.Clauses[i].Active, active)
				}
			}
		})
	}
}

func TestParseIfConfigNegation(t *testing.T) {
	t.Parallel()

	f := parseFile(t, "#if !DEBUG\nfoo()\n#endif")
	ic := firstItem[*IfConfig](t, f)

	if !ic.Clauses[0].Active {
		t.Error("Clause with !DEBUG is inactive without the define")
	}

	f = parseFile(t, "#if !DEBUG\nfoo()\n#endif", "DEBUG")
	ic = firstItem[*IfConfig](t, f)

	if ic.Clauses[0].Active {
		t.Error("Clause with !DEBUG is active with the define")
	}
}

func TestParseSelector(t *testing.T) {
	t.Parallel()

	f := parseFile(t, "#selector(MyType.doThing(with:and:))")
	sel := firstItem[*Selector](t, f)

	m, ok := sel.Base.(*Member)
	if !ok {
		t.Fatalf("Base is %T, want *Member", sel.Base)
	}
	if m.Name.Text != "doThing" {
		t.Errorf("Base name = %q, want doThing", m.Name.Text)
	}

	if len(sel.Labels) != 2 {
		t.Fatalf("Got %d labels, want 2", len(sel.Labels))
	}
	for i, want := range []string{"with", "and"} {
		if sel.Labels[i].Name.Text != want {
			t.Errorf("Labels[%d] = %q, want %q", i, sel.Labels[i].Name.Text, want)
		}
	}
}

func TestParseStringLit(t *testing.T) {
	t.Parallel()

	f := parseFile(t, `let s = "count: \(items.count), done"`)
	b := firstItem[*Binding](t, f)

	lit, ok := b.Value.(*StringLit)
	if !ok {
		t.Fatalf("Value is %T, want *StringLit", b.Value)
	}

	if len(lit.Parts) != 3 {
		t.Fatalf("Got %d parts, want 3", len(lit.Parts))
	}
	if _, ok := lit.Parts[0].(*TextSegment); !ok {
		t.Errorf("Parts[0] is %T, want *TextSegment", lit.Parts[0])
	}
	if _, ok := lit.Parts[1].(*Interp); !ok {
		t.Errorf("Parts[1] is %T, want *Interp", lit.Parts[1])
	}
	if _, ok := lit.Parts[2].(*TextSegment); !ok {
		t.Errorf("Parts[2] is %T, want *TextSegment", lit.Parts[2])
	}
}

func TestParseSpans(t *testing.T) {
	t.Parallel()

	src := "  foo(a: 2)  "
	f := parseFile(t, src)
	call := firstItem[*Call](t, f)

	if got, want := call.Span(), (Range{Start: 2, End: 11}); got != want {
		t.Errorf("Span() = %v, want %v", got, want)
	}
	if got, want := call.FullSpan(), (Range{Start: 0, End: 11}); got != want {
		t.Errorf("FullSpan() = %v, want %v", got, want)
	}

	arg := call.Args[0]
	if got, want := arg.Span(), (Range{Start: 6, End: 10}); got != want {
		t.Errorf("Args[0].Span() = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "unclosed_call", src: "foo(a: 2"},
		{name: "missing_name", src: "func (a: Int)"},
		{name: "missing_condition", src: "#if\n#endif"},
		{name: "missing_endif", src: "#if DEBUG\nfoo()"},
		{name: "bad_selector", src: "#selector(1)"},
		{name: "stray_rbrace", src: "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.src)
			}
		})
	}
}
