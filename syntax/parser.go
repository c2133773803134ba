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

type parser struct {
	toks    []*Token
	pos     int
	defines map[string]bool
}

// Parse scans and parses src into a [File]. Conditional-compilation
// conditions are evaluated against the given defines; branches that are
// not selected are still parsed, with their clauses marked inactive.
func Parse(src []byte, defines ...string) (*File, error) {
	toks, err := Scan(src)
	if err != nil {
		return nil, err
	}

	def := make(map[string]bool, len(defines))
	for _, d := range defines {
		def[d] = true
	}

	p := &parser{toks: toks, defines: def}

	items, err := p.items()
	if err != nil {
		return nil, err
	}

	if p.tok().Kind != EOF {
		return nil, p.errorf("unexpected %s", p.tok().Kind)
	}

	f := &File{Items: items, Tokens: toks, EOF: p.tok(), src: src}
	f.span = span{
		text: Range{Start: 0, End: len(src)},
		full: Range{Start: 0, End: len(src)},
	}

	return f, nil
}

func (p *parser) tok() *Token { return p.toks[p.pos] }

func (p *parser) peek(i int) *Token {
	if p.pos+i < len(p.toks) {
		return p.toks[p.pos+i]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) next() *Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}

	return t
}

func (p *parser) expect(kind TokenKind) (*Token, error) {
	if p.tok().Kind != kind {
		return nil, p.errorf("expected %s, found %s", kind, p.tok().Kind)
	}

	return p.next(), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.tok().Range.Start, fmt.Sprintf(format, args...))
}

// items parses until EOF, a closing brace or a directive continuation.
func (p *parser) items() ([]Node, error) {
	var items []Node

	for {
		switch p.tok().Kind {
		case EOF, RBrace, PoundElseif, PoundElse, PoundEndif:
			return items, nil
		default:
			item, err := p.item()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

func (p *parser) item() (Node, error) {
	switch t := p.tok(); {
	case t.Kind == PoundIf:
		return p.ifConfig()
	case t.Kind == Keyword && (t.Text == "func" || t.Text == "init" || t.Text == "subscript"):
		return p.funcDecl()
	case t.Kind == Keyword && (t.Text == "let" || t.Text == "var"):
		return p.binding()
	case t.Kind == Keyword && t.Text == "return":
		return p.returnStmt()
	default:
		return p.expr()
	}
}

func (p *parser) funcDecl() (Node, error) {
	kw := p.next()

	d := &FuncDecl{Keyword: kw, Name: kw}
	if kw.Text == "func" {
		name, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		d.Name = name
	}

	lp, err := p.expect(LParen)
	if err != nil {
		return nil, err
	}
	d.LParen = lp

	for p.tok().Kind != RParen && p.tok().Kind != EOF {
		prm, err := p.param()
		if err != nil {
			return nil, err
		}
		d.Params = append(d.Params, prm)

		if p.tok().Kind != Comma {
			break
		}
		p.next()
	}

	rp, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	d.RParen = rp

	end := Node(rp)
	if p.tok().Kind == Arrow {
		d.Arrow = p.next()
		d.Result = p.typeTokens()
		end = d.Arrow
		if n := len(d.Result); n > 0 {
			end = d.Result[n-1]
		}
	}

	if p.tok().Kind == LBrace {
		body, err := p.closure()
		if err != nil {
			return nil, err
		}
		d.Body = body
		end = body
	}

	d.span = newSpan(kw, end)

	return d, nil
}

func (p *parser) param() (*Param, error) {
	first, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}

	prm := &Param{First: first}
	if p.tok().Kind == Ident {
		prm.Second = p.next()
	}

	colon, err := p.expect(Colon)
	if err != nil {
		return nil, err
	}
	prm.Colon = colon
	prm.Type = p.typeTokens()

	end := Node(colon)
	if n := len(prm.Type); n > 0 {
		end = prm.Type[n-1]
	}
	prm.span = newSpan(first, end)

	return prm, nil
}

// typeTokens consumes a type as a raw token run, stopping at a comma or
// closing bracket at nesting depth zero.
func (p *parser) typeTokens() []*Token {
	var (
		toks  []*Token
		depth int
	)

	for {
		switch t := p.tok(); t.Kind {
		case LParen, LBracket:
			depth++
		case RParen, RBracket:
			if depth == 0 {
				return toks
			}
			depth--
		case Comma:
			if depth == 0 {
				return toks
			}
		case LBrace, RBrace, EOF, PoundElseif, PoundElse, PoundEndif:
			return toks
		case Ident, Keyword, Number, Operator, Colon, Dot, Arrow,
			StringOpen, StringText, StringClose, InterpOpen, InterpClose,
			PoundIf, PoundSelector:
			// part of the type
		}
		toks = append(toks, p.next())
	}
}

func (p *parser) binding() (Node, error) {
	kw := p.next()

	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}

	b := &Binding{Keyword: kw, Name: name}
	end := Node(name)

	if p.tok().Kind == Colon {
		b.Colon = p.next()
		b.Type = p.typeTokens()
		end = b.Colon
		if n := len(b.Type); n > 0 {
			end = b.Type[n-1]
		}
	}

	if t := p.tok(); t.Kind == Operator && t.Text == "=" {
		b.Eq = p.next()

		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		b.Value = v
		end = v
	}

	b.span = newSpan(kw, end)

	return b, nil
}

func (p *parser) returnStmt() (Node, error) {
	kw := p.next()

	r := &Return{Keyword: kw}
	end := Node(kw)

	switch p.tok().Kind {
	case Ident, Number, StringOpen, PoundSelector, LParen, LBrace, Operator:
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		r.Value = v
		end = v
	case EOF, Keyword, RParen, RBrace, LBracket, RBracket, Colon, Comma, Dot, Arrow,
		StringText, StringClose, InterpOpen, InterpClose,
		PoundIf, PoundElseif, PoundElse, PoundEndif:
		// bare return
	}

	r.span = newSpan(kw, end)

	return r, nil
}

func (p *parser) expr() (Node, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.tok().Kind == Operator {
		op := p.next()

		y, err := p.unary()
		if err != nil {
			return nil, err
		}

		b := &BinaryExpr{X: x, Op: op, Y: y}
		b.span = newSpan(x, y)
		x = b
	}

	return x, nil
}

func (p *parser) unary() (Node, error) {
	if p.tok().Kind == Operator {
		op := p.next()

		x, err := p.unary()
		if err != nil {
			return nil, err
		}

		u := &UnaryExpr{Op: op, X: x}
		u.span = newSpan(op, x)

		return u, nil
	}

	return p.postfix()
}

func (p *parser) postfix() (Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.tok().Kind {
		case Dot:
			dot := p.next()

			name := p.tok()
			if name.Kind != Ident && name.Kind != Keyword {
				return nil, p.errorf("expected member name, found %s", name.Kind)
			}
			p.next()

			m := &Member{Base: x, Dot: dot, Name: name}
			m.span = newSpan(x, name)
			x = m

		case LParen:
			x, err = p.call(x)
			if err != nil {
				return nil, err
			}

		case LBrace:
			// A brace after an expression is always a trailing closure
			// in this grammar.
			c := &Call{Fn: x}
			if err := p.trailingClosures(c); err != nil {
				return nil, err
			}
			c.span = newSpan(x, c.Trailing[len(c.Trailing)-1])
			x = c

		case EOF, Ident, Keyword, Number, Operator, RParen, RBrace, LBracket, RBracket,
			Colon, Comma, Arrow, StringOpen, StringText, StringClose, InterpOpen, InterpClose,
			PoundIf, PoundElseif, PoundElse, PoundEndif, PoundSelector:
			return x, nil
		}
	}
}

func (p *parser) primary() (Node, error) {
	switch t := p.tok(); t.Kind {
	case Ident, Keyword:
		tok := p.next()
		id := &IdentExpr{Tok: tok}
		id.span = newSpan(tok, tok)

		return id, nil

	case Number:
		tok := p.next()
		lit := &BasicLit{Tok: tok}
		lit.span = newSpan(tok, tok)

		return lit, nil

	case StringOpen:
		return p.stringLit()

	case PoundSelector:
		return p.selector()

	case LParen:
		lp := p.next()

		x, err := p.expr()
		if err != nil {
			return nil, err
		}

		rp, err := p.expect(RParen)
		if err != nil {
			return nil, err
		}

		pe := &ParenExpr{LParen: lp, X: x, RParen: rp}
		pe.span = newSpan(lp, rp)

		return pe, nil

	case LBrace:
		return p.closure()

	case EOF, Operator, RParen, RBrace, LBracket, RBracket, Colon, Comma, Dot, Arrow,
		StringText, StringClose, InterpOpen, InterpClose,
		PoundIf, PoundElseif, PoundElse, PoundEndif:
		return nil, p.errorf("expected expression, found %s", t.Kind)
	}

	return nil, p.errorf("expected expression, found %s", p.tok().Kind)
}

func (p *parser) call(fn Node) (Node, error) {
	c := &Call{Fn: fn, LParen: p.next()}

	for p.tok().Kind != RParen && p.tok().Kind != EOF {
		a := &Arg{}
		if t := p.tok(); (t.Kind == Ident || t.Kind == Keyword) && p.peek(1).Kind == Colon {
			a.Label = p.next()
			a.Colon = p.next()
		}

		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		a.Value = v

		if a.Label != nil {
			a.span = newSpan(a.Label, v)
		} else {
			a.span = newSpan(v, v)
		}
		c.Args = append(c.Args, a)

		if p.tok().Kind != Comma {
			break
		}
		p.next()
	}

	rp, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	c.RParen = rp

	if err := p.trailingClosures(c); err != nil {
		return nil, err
	}

	end := Node(rp)
	if n := len(c.Trailing); n > 0 {
		end = c.Trailing[n-1]
	}
	c.span = newSpan(fn, end)

	return c, nil
}

// trailingClosures parses an optional unlabeled trailing closure followed
// by any number of labeled ones.
func (p *parser) trailingClosures(c *Call) error {
	if p.tok().Kind != LBrace {
		return nil
	}

	cl, err := p.closure()
	if err != nil {
		return err
	}

	t := &TrailingClosure{Closure: cl}
	t.span = newSpan(cl, cl)
	c.Trailing = append(c.Trailing, t)

	for p.tok().Kind == Ident && p.peek(1).Kind == Colon && p.peek(2).Kind == LBrace {
		label, colon := p.next(), p.next()

		cl, err := p.closure()
		if err != nil {
			return err
		}

		t := &TrailingClosure{Label: label, Colon: colon, Closure: cl}
		t.span = newSpan(label, cl)
		c.Trailing = append(c.Trailing, t)
	}

	return nil
}

func (p *parser) closure() (*Closure, error) {
	lb, err := p.expect(LBrace)
	if err != nil {
		return nil, err
	}

	cl := &Closure{LBrace: lb}

	// Parameter clause: idents and commas directly followed by `in`.
	if p.tok().Kind == Ident {
		i := 0
		for p.peek(i).Kind == Ident || p.peek(i).Kind == Comma {
			i++
		}

		if t := p.peek(i); t.Kind == Keyword && t.Text == "in" {
			for p.tok().Kind == Ident || p.tok().Kind == Comma {
				cl.Params = append(cl.Params, p.next())
			}
			cl.In = p.next()
		}
	}

	items, err := p.items()
	if err != nil {
		return nil, err
	}
	cl.Items = items

	rb, err := p.expect(RBrace)
	if err != nil {
		return nil, err
	}
	cl.RBrace = rb
	cl.span = newSpan(lb, rb)

	return cl, nil
}

func (p *parser) stringLit() (Node, error) {
	lit := &StringLit{Open: p.next()}

	for {
		switch p.tok().Kind {
		case StringText:
			tok := p.next()
			seg := &TextSegment{Tok: tok}
			seg.span = newSpan(tok, tok)
			lit.Parts = append(lit.Parts, seg)

		case InterpOpen:
			open := p.next()

			x, err := p.expr()
			if err != nil {
				return nil, err
			}

			closeTok, err := p.expect(InterpClose)
			if err != nil {
				return nil, err
			}

			in := &Interp{Open: open, X: x, Close: closeTok}
			in.span = newSpan(open, closeTok)
			lit.Parts = append(lit.Parts, in)

		case StringClose:
			lit.Close = p.next()
			lit.span = newSpan(lit.Open, lit.Close)

			return lit, nil

		case EOF, Ident, Keyword, Number, Operator, LParen, RParen, LBrace, RBrace,
			LBracket, RBracket, Colon, Comma, Dot, Arrow, StringOpen,
			PoundIf, PoundElseif, PoundElse, PoundEndif, PoundSelector:
			return nil, p.errorf("malformed string literal")
		}
	}
}

func (p *parser) selector() (Node, error) {
	pound := p.next()

	lp, err := p.expect(LParen)
	if err != nil {
		return nil, err
	}

	sel := &Selector{Pound: pound, LParen: lp}

	base, err := p.selectorBase()
	if err != nil {
		return nil, err
	}
	sel.Base = base

	if p.tok().Kind == LParen {
		sel.SigLParen = p.next()

		for p.tok().Kind == Ident || p.tok().Kind == Keyword {
			name := p.next()

			colon, err := p.expect(Colon)
			if err != nil {
				return nil, err
			}

			l := &SelectorLabel{Name: name, Colon: colon}
			l.span = newSpan(name, colon)
			sel.Labels = append(sel.Labels, l)
		}

		rp, err := p.expect(RParen)
		if err != nil {
			return nil, err
		}
		sel.SigRParen = rp
	}

	rp, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	sel.RParen = rp
	sel.span = newSpan(pound, rp)

	return sel, nil
}

// selectorBase parses the dotted method reference inside a selector.
func (p *parser) selectorBase() (Node, error) {
	tok, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}

	id := &IdentExpr{Tok: tok}
	id.span = newSpan(tok, tok)
	x := Node(id)

	for p.tok().Kind == Dot {
		dot := p.next()

		name := p.tok()
		if name.Kind != Ident && name.Kind != Keyword {
			return nil, p.errorf("expected member name, found %s", name.Kind)
		}
		p.next()

		m := &Member{Base: x, Dot: dot, Name: name}
		m.span = newSpan(x, name)
		x = m
	}

	return x, nil
}

func (p *parser) ifConfig() (Node, error) {
	ic := &IfConfig{}

	cl, err := p.ifConfigClause()
	if err != nil {
		return nil, err
	}
	ic.Clauses = append(ic.Clauses, cl)

	for p.tok().Kind == PoundElseif {
		cl, err := p.ifConfigClause()
		if err != nil {
			return nil, err
		}
		ic.Clauses = append(ic.Clauses, cl)
	}

	if p.tok().Kind == PoundElse {
		cl := &IfConfigClause{Pound: p.next()}

		items, err := p.items()
		if err != nil {
			return nil, err
		}
		cl.Items = items
		cl.span = clauseSpan(cl)
		ic.Clauses = append(ic.Clauses, cl)
	}

	endif, err := p.expect(PoundEndif)
	if err != nil {
		return nil, err
	}
	ic.Endif = endif
	ic.span = newSpan(ic.Clauses[0], endif)

	p.evalActivity(ic)

	return ic, nil
}

func (p *parser) ifConfigClause() (*IfConfigClause, error) {
	cl := &IfConfigClause{Pound: p.next()}

	if t := p.tok(); t.Kind == Operator && t.Text == "!" {
		cl.Not = p.next()
	}

	cond, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	cl.Cond = cond

	items, err := p.items()
	if err != nil {
		return nil, err
	}
	cl.Items = items
	cl.span = clauseSpan(cl)

	return cl, nil
}

func clauseSpan(cl *IfConfigClause) span {
	end := Node(cl.Pound)
	switch {
	case len(cl.Items) > 0:
		end = cl.Items[len(cl.Items)-1]
	case cl.Cond != nil:
		end = cl.Cond
	}

	return newSpan(cl.Pound, end)
}

// evalActivity marks the first clause whose condition holds as active.
// A trailing #else is active when no earlier clause was taken.
func (p *parser) evalActivity(ic *IfConfig) {
	taken := false

	for _, cl := range ic.Clauses {
		switch {
		case taken:
			cl.Active = false
		case cl.Cond == nil: // #else
			cl.Active = true
		default:
			v := p.condValue(cl.Cond.Text)
			if cl.Not != nil {
				v = !v
			}
			cl.Active = v
			taken = v
		}
	}
}

func (p *parser) condValue(name string) bool {
	switch name {
	case "true":
		return true
	case "false":
		return false
	default:
		return p.defines[name]
	}
}
