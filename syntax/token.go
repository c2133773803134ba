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

// TokenKind classifies a scanned token.
type TokenKind uint8

//go:generate go tool stringer -type TokenKind -linecomment
const (
	EOF      TokenKind = iota // eof
	Ident                     // identifier
	Keyword                   // keyword
	Number                    // number
	Operator                  // operator
	LParen                    // (
	RParen                    // )
	LBrace                    // {
	RBrace                    // }
	LBracket                  // [
	RBracket                  // ]
	Colon                     // :
	Comma                     // ,
	Dot                       // .
	Arrow                     // ->

	// String literals are scanned structurally so that interpolations
	// contain ordinary tokens.
	StringOpen  // string-open
	StringText  // string-text
	StringClose // string-close
	InterpOpen  // interp-open
	InterpClose // interp-close

	PoundIf       // #if
	PoundElseif   // #elseif
	PoundElse     // #else
	PoundEndif    // #endif
	PoundSelector // #selector
)

// Token is a single lexeme with its leading trivia.
//
// Trivia between two tokens always attaches to the following token:
// an offset inside trivia therefore belongs to the token after it.
type Token struct {
	Kind    TokenKind
	Text    string
	Range   Range // the token text, excluding trivia
	Leading Trivia
}

// FullRange covers the token text plus its leading trivia.
func (t *Token) FullRange() Range {
	if len(t.Leading) > 0 {
		return Range{Start: t.Leading[0].Range.Start, End: t.Range.End}
	}

	return t.Range
}

// Span implements [Node].
func (t *Token) Span() Range { return t.Range }

// FullSpan implements [Node].
func (t *Token) FullSpan() Range { return t.FullRange() }

// Children implements [Node]. Tokens are leaves.
func (t *Token) Children() []Node { return nil }
