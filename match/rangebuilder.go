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

import "fillmore-labs.com/namematch/syntax"

// claim builds the ResolvedLoc for a matchable node when the offset falls
// on its base name or one of its label slots. Offsets elsewhere inside
// the node, e.g. in an argument value, are not claimed and continue the
// ancestor walk.
func (r *resolver) claim(n syntax.Node, off int, active bool) (ResolvedLoc, bool) {
	switch n := n.(type) {
	case *syntax.Call:
		return buildCall(n, off, active)
	case *syntax.FuncDecl:
		return buildDecl(n, off, active)
	case *syntax.Selector:
		return buildSelector(n, off, active)
	case *syntax.StringLit:
		return r.buildStringLit(n, off, active)
	default:
		return ResolvedLoc{}, false
	}
}

// claims reports whether off falls on the base name, inside a label
// range, or exactly at an empty slot's position.
func claims(loc ResolvedLoc, off int) bool {
	if loc.Range.Contains(off) {
		return true
	}

	for _, lr := range loc.LabelRanges {
		if lr.Contains(off) || lr.Empty() && off == lr.Start {
			return true
		}
	}

	return false
}

func buildCall(c *syntax.Call, off int, active bool) (ResolvedLoc, bool) {
	loc := ResolvedLoc{
		Range:     baseName(c.Fn),
		LabelType: LabelCallArg,
		IsActive:  active,
	}

	for _, a := range c.Args {
		if a.Label != nil {
			// The label range runs through the end of the trivia
			// following the colon, so a rewrite can consume the colon.
			loc.LabelRanges = append(loc.LabelRanges, SourceRange{
				Start: a.Label.Range.Start,
				End:   a.Value.Span().Start,
			})
		} else {
			loc.LabelRanges = append(loc.LabelRanges, syntax.At(a.Value.Span().Start))
		}
	}

	if len(c.Trailing) > 0 {
		loc.FirstTrailingLabel = TrailingAt(len(c.Args))
	}

	for _, t := range c.Trailing {
		if t.Label != nil {
			loc.LabelRanges = append(loc.LabelRanges, SourceRange{
				Start: t.Label.Range.Start,
				End:   t.Closure.Span().Start,
			})
		} else {
			loc.LabelRanges = append(loc.LabelRanges, syntax.At(t.Closure.Span().Start))
		}
	}

	if !claims(loc, off) {
		return ResolvedLoc{}, false
	}

	return loc, true
}

func buildDecl(d *syntax.FuncDecl, off int, active bool) (ResolvedLoc, bool) {
	labelType := LabelParam
	if d.Subscript() {
		labelType = LabelNoncollapsibleParam
	}

	loc := ResolvedLoc{
		Range:     d.Name.Range,
		LabelType: labelType,
		IsActive:  active,
	}

	for _, prm := range d.Params {
		lr := prm.First.Range
		if prm.Second != nil {
			lr.End = prm.Second.Range.End
		}
		loc.LabelRanges = append(loc.LabelRanges, lr)
	}

	if !claims(loc, off) {
		return ResolvedLoc{}, false
	}

	return loc, true
}

func buildSelector(s *syntax.Selector, off int, active bool) (ResolvedLoc, bool) {
	loc := ResolvedLoc{
		Range:     baseName(s.Base),
		LabelType: LabelSelector,
		IsActive:  active,
		Context:   ContextSelector,
	}

	for _, l := range s.Labels {
		loc.LabelRanges = append(loc.LabelRanges, l.Name.Range)
	}

	if !claims(loc, off) {
		return ResolvedLoc{}, false
	}

	return loc, true
}

// buildStringLit claims offsets inside the quoted text of a string
// literal. Offsets inside interpolation code are left to the nodes of
// that code.
func (r *resolver) buildStringLit(s *syntax.StringLit, off int, active bool) (ResolvedLoc, bool) {
	in := s.Open.Range.Contains(off) || s.Close.Range.Contains(off)

	if !in {
		for _, part := range s.Parts {
			if seg, ok := part.(*syntax.TextSegment); ok && seg.Tok.Range.Contains(off) {
				in = true

				break
			}
		}
	}

	if !in {
		return ResolvedLoc{}, false
	}

	return nullLoc(wordAt(r.file.Source(), off), ContextStringLiteral, active), true
}

// baseName returns the range of a callee's base name: the final name of a
// dotted reference, or an empty range when the callee has no simple name.
func baseName(n syntax.Node) SourceRange {
	switch n := n.(type) {
	case *syntax.IdentExpr:
		return n.Tok.Range
	case *syntax.Member:
		return n.Name.Range
	default:
		return syntax.At(n.Span().Start)
	}
}

// nullLoc is the "no matchable construct" result.
func nullLoc(rng SourceRange, ctx Context, active bool) ResolvedLoc {
	return ResolvedLoc{
		Range:     rng,
		LabelType: LabelNone,
		IsActive:  active,
		Context:   ctx,
	}
}
