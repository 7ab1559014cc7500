// Package constraint implements the tiny recursive-descent expression
// engine (C6) that evaluates `only_if(...)` predicates over keyword
// values.
//
//	expr := or
//	or   := and ('||' and)*
//	and  := cmp ('&&' cmp)*
//	cmp  := primary (('==' | '!=') primary)?
//	primary := IDENT | NUMBER | 'true'|'false' | '(' expr ')'
package constraint

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/vserr"
)

// ValueContext maps each keyword name to both its declaration and its
// current numeric value, the lookup table identifier resolution uses
// (spec §4.3). Order lists the declarations in their original declaration
// order, so that "first match wins" enumerant-name resolution is
// deterministic instead of depending on Go's randomised map iteration; if
// empty, Decls is walked in sorted-key order instead.
type ValueContext struct {
	Decls  map[string]*keyword.Decl
	Values map[string]int
	Order  []string
}

// Eval parses and evaluates constraint, which may be wrapped as
// `only_if(<expr>)` or bare. An empty constraint evaluates to true.
func Eval(src string, ctx ValueContext) (bool, error) {
	src = unwrap(src)
	if strings.TrimSpace(src) == "" {
		return true, nil
	}
	p := &parser{toks: tokenize(src), ctx: ctx}
	v, err := p.expr()
	if err != nil {
		return false, err
	}
	if p.pos != len(p.toks) {
		return false, vserr.New(vserr.ParseError, "constraint: trailing tokens after %q", src)
	}
	return toBool(v), nil
}

func unwrap(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "only_if(") && strings.HasSuffix(s, ")") {
		return s[len("only_if(") : len(s)-1]
	}
	return s
}

// value is either a number or a boolean; booleans compare/combine as 0/1.
type value float64

func toBool(v value) bool { return v != 0 }

func boolValue(b bool) value {
	if b {
		return 1
	}
	return 0
}

type parser struct {
	toks []token
	pos  int
	ctx  ValueContext
}

func (p *parser) peek() token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token{kind: tokEOF}
}

func (p *parser) next() token {
	t := p.peek()
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (value, error) { return p.or() }

func (p *parser) or() (value, error) {
	lhs, err := p.and()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokOr {
		p.next()
		rhs, err := p.and()
		if err != nil {
			return 0, err
		}
		lhs = boolValue(toBool(lhs) || toBool(rhs))
	}
	return lhs, nil
}

func (p *parser) and() (value, error) {
	lhs, err := p.cmp()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		rhs, err := p.cmp()
		if err != nil {
			return 0, err
		}
		lhs = boolValue(toBool(lhs) && toBool(rhs))
	}
	return lhs, nil
}

func (p *parser) cmp() (value, error) {
	lhs, err := p.primary()
	if err != nil {
		return 0, err
	}
	switch p.peek().kind {
	case tokEq:
		p.next()
		rhs, err := p.primary()
		if err != nil {
			return 0, err
		}
		return boolValue(lhs == rhs), nil
	case tokNe:
		p.next()
		rhs, err := p.primary()
		if err != nil {
			return 0, err
		}
		return boolValue(lhs != rhs), nil
	default:
		return lhs, nil
	}
}

func (p *parser) primary() (value, error) {
	t := p.next()
	switch t.kind {
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek().kind != tokRParen {
			return 0, vserr.New(vserr.ParseError, "constraint: expected ')'")
		}
		p.next()
		return v, nil
	case tokNumber:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return 0, vserr.New(vserr.ParseError, "constraint: invalid number %q", t.text)
		}
		return value(f), nil
	case tokIdent:
		return p.resolveIdent(t.text)
	default:
		return 0, vserr.New(vserr.ParseError, "constraint: unexpected token %q", t.text)
	}
}

// resolveIdent resolves an identifier in order: reserved true/false
// (case-insensitive), then current keyword value by name, then
// enumerant-name lookup across all enum-kind declarations (first match
// wins) — spec §4.3.
func (p *parser) resolveIdent(name string) (value, error) {
	switch strings.ToLower(name) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}

	if v, ok := p.ctx.Values[name]; ok {
		return value(v), nil
	}

	order := p.ctx.Order
	if len(order) == 0 {
		for k := range p.ctx.Decls {
			order = append(order, k)
		}
		sort.Strings(order)
	}
	for _, key := range order {
		d := p.ctx.Decls[key]
		if d == nil || d.ValueKind != keyword.ValueEnum {
			continue
		}
		if idx := d.EnumerantIndex(name); idx >= 0 {
			return value(idx), nil
		}
	}

	return 0, vserr.New(vserr.ParseError, "constraint: unresolved identifier %q", name)
}
