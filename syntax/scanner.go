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

import "fmt"

var keywords = map[string]bool{
	"func":      true,
	"init":      true,
	"subscript": true,
	"in":        true,
	"let":       true,
	"var":       true,
	"return":    true,
}

type scanMode uint8

const (
	modeCode scanMode = iota
	modeString
	modeInterp
)

type scanState struct {
	mode  scanMode
	depth int // open parens inside an interpolation
}

type scanner struct {
	src   []byte
	off   int
	toks  []*Token
	stack []scanState
}

// Scan tokenizes src, attaching every piece of trivia to the leading edge
// of the following token. Trivia at the end of the buffer hangs off the
// final EOF token, so trivia and token text together cover src exactly.
func Scan(src []byte) ([]*Token, error) {
	s := &scanner{src: src, stack: []scanState{{mode: modeCode}}}

	for {
		if s.state().mode == modeString {
			if err := s.scanInString(); err != nil {
				return nil, err
			}

			continue
		}

		done, err := s.scanCode()
		if err != nil {
			return nil, err
		}

		if done {
			return s.toks, nil
		}
	}
}

func (s *scanner) state() *scanState { return &s.stack[len(s.stack)-1] }

func (s *scanner) push(mode scanMode) {
	s.stack = append(s.stack, scanState{mode: mode})
}

func (s *scanner) pop() { s.stack = s.stack[:len(s.stack)-1] }

func (s *scanner) peek(i int) byte {
	if s.off+i < len(s.src) {
		return s.src[s.off+i]
	}

	return 0
}

func (s *scanner) emit(kind TokenKind, start int, lead Trivia) {
	s.toks = append(s.toks, &Token{
		Kind:    kind,
		Text:    string(s.src[start:s.off]),
		Range:   Range{Start: start, End: s.off},
		Leading: lead,
	})
}

// scanCode emits a single token in code context, or the final EOF.
func (s *scanner) scanCode() (bool, error) {
	lead, err := s.trivia()
	if err != nil {
		return false, err
	}

	start := s.off
	if s.off >= len(s.src) {
		if len(s.stack) > 1 {
			return false, fmt.Errorf("offset %d: unterminated string literal", start)
		}

		s.emit(EOF, start, lead)

		return true, nil
	}

	switch c := s.src[s.off]; {
	case isIdentStart(c):
		s.off++
		for s.off < len(s.src) && isIdentPart(s.src[s.off]) {
			s.off++
		}

		kind := Ident
		if keywords[string(s.src[start:s.off])] {
			kind = Keyword
		}
		s.emit(kind, start, lead)

	case isDigit(c):
		s.off++
		for s.off < len(s.src) && (isDigit(s.src[s.off]) ||
			s.src[s.off] == '.' && isDigit(s.peek(1))) {
			s.off++
		}
		s.emit(Number, start, lead)

	case c == '"':
		s.off++
		s.emit(StringOpen, start, lead)
		s.push(modeString)

	case c == '#':
		if err := s.directive(start, lead); err != nil {
			return false, err
		}

	case c == '(':
		s.off++
		s.emit(LParen, start, lead)
		if st := s.state(); st.mode == modeInterp {
			st.depth++
		}

	case c == ')':
		s.off++
		if st := s.state(); st.mode == modeInterp && st.depth == 0 {
			s.emit(InterpClose, start, lead)
			s.pop() // back inside the string literal
		} else {
			if st.mode == modeInterp {
				st.depth--
			}
			s.emit(RParen, start, lead)
		}

	case c == '{':
		s.off++
		s.emit(LBrace, start, lead)

	case c == '}':
		s.off++
		s.emit(RBrace, start, lead)

	case c == '[':
		s.off++
		s.emit(LBracket, start, lead)

	case c == ']':
		s.off++
		s.emit(RBracket, start, lead)

	case c == ':':
		s.off++
		s.emit(Colon, start, lead)

	case c == ',':
		s.off++
		s.emit(Comma, start, lead)

	case c == '.':
		s.off++
		s.emit(Dot, start, lead)

	case c == '-' && s.peek(1) == '>':
		s.off += 2
		s.emit(Arrow, start, lead)

	case isOperator(c):
		s.off++
		for s.off < len(s.src) && isOperator(s.src[s.off]) &&
			!(s.src[s.off] == '-' && s.peek(1) == '>') {
			s.off++
		}
		s.emit(Operator, start, lead)

	default:
		return false, fmt.Errorf("offset %d: unexpected character %q", start, c)
	}

	return false, nil
}

// trivia consumes whitespace and comments up to the next token.
func (s *scanner) trivia() (Trivia, error) {
	var tr Trivia

	for s.off < len(s.src) {
		start := s.off

		switch c := s.src[s.off]; {
		case isSpace(c):
			for s.off < len(s.src) && isSpace(s.src[s.off]) {
				s.off++
			}
			tr = append(tr, Piece{Kind: Whitespace, Range: Range{Start: start, End: s.off}})

		case c == '/' && s.peek(1) == '/':
			s.off += 2
			for s.off < len(s.src) && s.src[s.off] != '\n' {
				s.off++
			}
			tr = append(tr, Piece{Kind: LineComment, Range: Range{Start: start, End: s.off}})

		case c == '/' && s.peek(1) == '*':
			s.off += 2

			for depth := 1; depth > 0; {
				switch {
				case s.off >= len(s.src):
					return nil, fmt.Errorf("offset %d: unterminated block comment", start)

				case s.src[s.off] == '/' && s.peek(1) == '*':
					depth++
					s.off += 2

				case s.src[s.off] == '*' && s.peek(1) == '/':
					depth--
					s.off += 2

				default:
					s.off++
				}
			}
			tr = append(tr, Piece{Kind: BlockComment, Range: Range{Start: start, End: s.off}})

		default:
			return tr, nil
		}
	}

	return tr, nil
}

func (s *scanner) directive(start int, lead Trivia) error {
	s.off++ // '#'
	word := s.off
	for s.off < len(s.src) && isIdentPart(s.src[s.off]) {
		s.off++
	}

	switch string(s.src[word:s.off]) {
	case "if":
		s.emit(PoundIf, start, lead)
	case "elseif":
		s.emit(PoundElseif, start, lead)
	case "else":
		s.emit(PoundElse, start, lead)
	case "endif":
		s.emit(PoundEndif, start, lead)
	case "selector":
		s.emit(PoundSelector, start, lead)
	default:
		return fmt.Errorf("offset %d: unknown directive %q", start, s.src[start:s.off])
	}

	return nil
}

// scanInString emits string text until the literal closes or an
// interpolation opens. Escape sequences stay part of the text.
func (s *scanner) scanInString() error {
	start := s.off

	flush := func(end int) {
		if end > start {
			s.toks = append(s.toks, &Token{
				Kind:  StringText,
				Text:  string(s.src[start:end]),
				Range: Range{Start: start, End: end},
			})
		}
	}

	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '"':
			flush(s.off)
			s.toks = append(s.toks, &Token{
				Kind:  StringClose,
				Text:  `"`,
				Range: Range{Start: s.off, End: s.off + 1},
			})
			s.off++
			s.pop()

			return nil

		case '\\':
			if s.peek(1) == '(' {
				flush(s.off)
				s.toks = append(s.toks, &Token{
					Kind:  InterpOpen,
					Text:  `\(`,
					Range: Range{Start: s.off, End: s.off + 2},
				})
				s.off += 2
				s.push(modeInterp)

				return nil
			}
			s.off += 2

		default:
			s.off++
		}
	}

	return fmt.Errorf("offset %d: unterminated string literal", start)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>', '!', '&', '|', '%', '^', '~', '?':
		return true
	default:
		return false
	}
}
