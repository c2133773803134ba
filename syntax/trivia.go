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

package syntax

// TriviaKind classifies a single piece of non-semantic source text.
type TriviaKind uint8

//go:generate go tool stringer -type TriviaKind -linecomment
const (
	// Whitespace is a run of spaces, tabs and line breaks.
	Whitespace TriviaKind = iota // whitespace
	// LineComment is a // comment up to, but not including, the line break.
	LineComment // line-comment
	// BlockComment is a /* */ comment, including nested ones.
	BlockComment // block-comment
)

// Comment reports whether the piece is a line or block comment.
func (k TriviaKind) Comment() bool { return k != Whitespace }

// Piece is one contiguous run of trivia of a single kind.
type Piece struct {
	Kind  TriviaKind
	Range Range
}

// Trivia is the ordered trivia attached to a token's leading edge.
//
// Every byte between two tokens belongs to exactly one piece of the
// following token's leading trivia, so trivia and token text together
// tile the source buffer.
type Trivia []Piece

// Span returns the range covered by the trivia, or an empty range when
// there is none.
func (t Trivia) Span() Range {
	if len(t) == 0 {
		return Range{}
	}

	return Range{Start: t[0].Range.Start, End: t[len(t)-1].Range.End}
}
