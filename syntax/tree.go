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

// Node is a syntax tree node. Child spans are contained in their parent's
// span and do not overlap.
type Node interface {
	// Span covers the node's text, excluding surrounding trivia.
	Span() Range
	// FullSpan additionally covers the leading trivia of the node's
	// first token.
	FullSpan() Range
	// Children returns the node's direct children in source order.
	Children() []Node
}

// span implements the range part of [Node] and is embedded in every
// non-token node.
type span struct {
	text Range
	full Range
}

func (s span) Span() Range     { return s.text }
func (s span) FullSpan() Range { return s.full }

// newSpan derives a node span from its first and last constituents.
func newSpan(from, to Node) span {
	return span{
		text: Range{Start: from.Span().Start, End: to.Span().End},
		full: Range{Start: from.FullSpan().Start, End: to.Span().End},
	}
}

// File is the root of a parsed source buffer.
type File struct {
	span
	Items []Node
	// Tokens is the flat token sequence the tree was built from,
	// including separators that have no tree node of their own.
	Tokens []*Token
	EOF    *Token

	src []byte
}

// Source returns the buffer the file was parsed from.
func (f *File) Source() []byte { return f.src }

// Text returns the source text covered by r, clamped to the buffer.
func (f *File) Text(r Range) string {
	start := min(max(r.Start, 0), len(f.src))
	end := min(max(r.End, start), len(f.src))

	return string(f.src[start:end])
}

func (f *File) Children() []Node {
	ns := make([]Node, 0, len(f.Items)+1)
	for _, it := range f.Items {
		ns = append(ns, it)
	}

	return append(ns, f.EOF)
}

// FuncDecl is a function, initializer or subscript declaration.
type FuncDecl struct {
	span
	Keyword *Token
	// Name is the declared name. For init and subscript declarations it
	// is the keyword token itself.
	Name   *Token
	LParen *Token
	Params []*Param
	RParen *Token
	Arrow  *Token
	Result []*Token
	Body   *Closure
}

// Subscript reports whether the declaration is a subscript, whose labels
// cannot be collapsed into a single name at the call site.
func (d *FuncDecl) Subscript() bool { return d.Keyword.Text == "subscript" }

func (d *FuncDecl) Children() []Node {
	var ns []Node
	ns = append(ns, Node(d.Keyword))
	if d.Name != d.Keyword {
		ns = append(ns, d.Name)
	}
	if d.LParen != nil {
		ns = append(ns, d.LParen)
	}
	for _, p := range d.Params {
		ns = append(ns, p)
	}
	if d.RParen != nil {
		ns = append(ns, d.RParen)
	}
	if d.Arrow != nil {
		ns = append(ns, d.Arrow)
	}
	for _, t := range d.Result {
		ns = append(ns, t)
	}
	if d.Body != nil {
		ns = append(ns, d.Body)
	}

	return ns
}

// Param is a single parameter with an optional second name.
type Param struct {
	span
	First  *Token
	Second *Token
	Colon  *Token
	Type   []*Token
}

func (p *Param) Children() []Node {
	var ns []Node
	ns = append(ns, Node(p.First))
	if p.Second != nil {
		ns = append(ns, p.Second)
	}
	if p.Colon != nil {
		ns = append(ns, p.Colon)
	}
	for _, t := range p.Type {
		ns = append(ns, t)
	}

	return ns
}

// Binding is a let or var declaration.
type Binding struct {
	span
	Keyword *Token
	Name    *Token
	Colon   *Token
	Type    []*Token
	Eq      *Token
	Value   Node
}

func (b *Binding) Children() []Node {
	ns := []Node{b.Keyword, b.Name}
	if b.Colon != nil {
		ns = append(ns, b.Colon)
	}
	for _, t := range b.Type {
		ns = append(ns, t)
	}
	if b.Eq != nil {
		ns = append(ns, b.Eq)
	}
	if b.Value != nil {
		ns = append(ns, b.Value)
	}

	return ns
}

// Return is a return statement.
type Return struct {
	span
	Keyword *Token
	Value   Node
}

func (r *Return) Children() []Node {
	ns := []Node{r.Keyword}
	if r.Value != nil {
		ns = append(ns, r.Value)
	}

	return ns
}

// IdentExpr is a bare name.
type IdentExpr struct {
	span
	Tok *Token
}

func (i *IdentExpr) Children() []Node { return []Node{i.Tok} }

// BasicLit is a numeric literal.
type BasicLit struct {
	span
	Tok *Token
}

func (l *BasicLit) Children() []Node { return []Node{l.Tok} }

// Member is a dotted access like base.name.
type Member struct {
	span
	Base Node
	Dot  *Token
	Name *Token
}

func (m *Member) Children() []Node { return []Node{m.Base, m.Dot, m.Name} }

// UnaryExpr is a prefix operator expression.
type UnaryExpr struct {
	span
	Op *Token
	X  Node
}

func (u *UnaryExpr) Children() []Node { return []Node{u.Op, u.X} }

// BinaryExpr is a left-associative infix expression. Operator precedence
// is irrelevant for range computation, so none is applied.
type BinaryExpr struct {
	span
	X  Node
	Op *Token
	Y  Node
}

func (b *BinaryExpr) Children() []Node { return []Node{b.X, b.Op, b.Y} }

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	span
	LParen *Token
	X      Node
	RParen *Token
}

func (p *ParenExpr) Children() []Node { return []Node{p.LParen, p.X, p.RParen} }

// Call is a function call. A call written without parentheses, solely
// with trailing closures, has nil LParen and RParen.
type Call struct {
	span
	Fn       Node
	LParen   *Token
	Args     []*Arg
	RParen   *Token
	Trailing []*TrailingClosure
}

func (c *Call) Children() []Node {
	ns := []Node{c.Fn}
	if c.LParen != nil {
		ns = append(ns, c.LParen)
	}
	for _, a := range c.Args {
		ns = append(ns, a)
	}
	if c.RParen != nil {
		ns = append(ns, c.RParen)
	}
	for _, t := range c.Trailing {
		ns = append(ns, t)
	}

	return ns
}

// Arg is a single parenthesized call argument with an optional label.
type Arg struct {
	span
	Label *Token
	Colon *Token
	Value Node
}

func (a *Arg) Children() []Node {
	var ns []Node
	if a.Label != nil {
		ns = append(ns, Node(a.Label), Node(a.Colon))
	}

	return append(ns, a.Value)
}

// TrailingClosure is a closure argument written after the argument list.
// The first trailing closure has no label.
type TrailingClosure struct {
	span
	Label   *Token
	Colon   *Token
	Closure *Closure
}

func (t *TrailingClosure) Children() []Node {
	var ns []Node
	if t.Label != nil {
		ns = append(ns, Node(t.Label), Node(t.Colon))
	}

	return append(ns, t.Closure)
}

// Closure is a braced closure literal or declaration body.
type Closure struct {
	span
	LBrace *Token
	// Params holds the tokens of the parameter clause before In,
	// including separators.
	Params []*Token
	In     *Token
	Items  []Node
	RBrace *Token
}

func (c *Closure) Children() []Node {
	ns := []Node{c.LBrace}
	for _, t := range c.Params {
		ns = append(ns, t)
	}
	if c.In != nil {
		ns = append(ns, c.In)
	}
	ns = append(ns, c.Items...)

	return append(ns, c.RBrace)
}

// StringLit is a string literal composed of text segments and
// interpolations.
type StringLit struct {
	span
	Open  *Token
	Parts []Node
	Close *Token
}

func (s *StringLit) Children() []Node {
	ns := []Node{s.Open}
	ns = append(ns, s.Parts...)

	return append(ns, s.Close)
}

// TextSegment is a run of literal string text.
type TextSegment struct {
	span
	Tok *Token
}

func (s *TextSegment) Children() []Node { return []Node{s.Tok} }

// Interp is a string interpolation segment.
type Interp struct {
	span
	Open  *Token
	X     Node
	Close *Token
}

func (i *Interp) Children() []Node { return []Node{i.Open, i.X, i.Close} }

// Selector is a #selector reference to a method, optionally with an
// argument-label signature like #selector(foo(a:b:)).
type Selector struct {
	span
	Pound     *Token
	LParen    *Token
	Base      Node
	SigLParen *Token
	Labels    []*SelectorLabel
	SigRParen *Token
	RParen    *Token
}

func (s *Selector) Children() []Node {
	ns := []Node{s.Pound, s.LParen, s.Base}
	if s.SigLParen != nil {
		ns = append(ns, s.SigLParen)
	}
	for _, l := range s.Labels {
		ns = append(ns, l)
	}
	if s.SigRParen != nil {
		ns = append(ns, s.SigRParen)
	}

	return append(ns, s.RParen)
}

// SelectorLabel is one argument label inside a selector signature.
type SelectorLabel struct {
	span
	Name  *Token
	Colon *Token
}

func (l *SelectorLabel) Children() []Node { return []Node{l.Name, l.Colon} }

// IfConfig is a #if/#elseif/#else/#endif block.
type IfConfig struct {
	span
	Clauses []*IfConfigClause
	Endif   *Token
}

func (c *IfConfig) Children() []Node {
	ns := make([]Node, 0, len(c.Clauses)+1)
	for _, cl := range c.Clauses {
		ns = append(ns, cl)
	}

	return append(ns, c.Endif)
}

// IfConfigClause is one branch of an [IfConfig]. At most one clause of a
// block is active; code in the other clauses is parsed but not compiled.
type IfConfigClause struct {
	span
	Pound *Token
	Not   *Token
	Cond  *Token
	Items []Node

	// Active reports whether this clause is selected by the build
	// configuration the file was parsed with.
	Active bool
}

func (c *IfConfigClause) Children() []Node {
	ns := []Node{c.Pound}
	if c.Not != nil {
		ns = append(ns, c.Not)
	}
	if c.Cond != nil {
		ns = append(ns, c.Cond)
	}

	return append(ns, c.Items...)
}
