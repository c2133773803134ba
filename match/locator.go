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
	"sort"

	"fillmore-labs.com/namematch/syntax"
)

// descend returns the chain of nodes from the file root down to the
// innermost node whose full span contains off. Full spans include leading
// trivia, so an offset sitting in trivia descends to the token owning it.
func descend(file *syntax.File, off int) []syntax.Node {
	path := []syntax.Node{file}

	cur := syntax.Node(file)
	for {
		var next syntax.Node

		for _, c := range cur.Children() {
			if c.FullSpan().Contains(off) {
				next = c

				break
			}
		}

		if next == nil {
			return path
		}

		path = append(path, next)
		cur = next
	}
}

// activeAt reports whether the innermost node of the path lies in an
// active conditional-compilation region.
func activeAt(path []syntax.Node) bool {
	for _, n := range path {
		if cl, ok := n.(*syntax.IfConfigClause); ok && !cl.Active {
			return false
		}
	}

	return true
}

// contextAt returns the lexical environment of path[from], looking
// outward. The innermost environment wins.
func contextAt(path []syntax.Node, from int) Context {
	for i := from; i >= 0; i-- {
		switch path[i].(type) {
		case *syntax.Selector:
			return ContextSelector
		case *syntax.StringLit:
			return ContextStringLiteral
		}
	}

	return ContextDefault
}

// commentAt returns the comment trivia piece containing off, if any.
// The flat token list is used so that trivia attached to separator
// tokens without a tree node of their own is found too.
func commentAt(file *syntax.File, off int) (syntax.Piece, bool) {
	toks := file.Tokens

	i := sort.Search(len(toks), func(i int) bool {
		return toks[i].FullRange().End > off
	})
	if i == len(toks) {
		return syntax.Piece{}, false
	}

	tok := toks[i]
	if !tok.FullRange().Contains(off) || off >= tok.Range.Start {
		return syntax.Piece{}, false
	}

	for _, p := range tok.Leading {
		if p.Range.Contains(off) {
			return p, p.Kind.Comment()
		}
	}

	return syntax.Piece{}, false
}

// wordAt returns the identifier-like word at off, or an empty range at
// off when the byte there is not part of a word. Used for matches inside
// comments and string text, where no token carries the name.
func wordAt(src []byte, off int) syntax.Range {
	if off < 0 || off >= len(src) || !isWord(src[off]) {
		return syntax.At(off)
	}

	start, end := off, off+1
	for start > 0 && isWord(src[start-1]) {
		start--
	}
	for end < len(src) && isWord(src[end]) {
		end++
	}

	return syntax.Range{Start: start, End: end}
}

func isWord(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
