/*
 * parser.go, part of goff.
 *
 * Copyright 2023 Ernesto Molina <emolina{at}ciqDOTuchileDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goff is developed at the Departamento de Quimica,
 * Universidad de Chile, Santiago, Chile.
 *
 */

package smarts

import (
	"fmt"

	"github.com/emolina/goff"
)

//SyntaxError reports a malformed pattern: the byte position where parsing
//stopped and what was expected there. It implements goff.Error.
type SyntaxError struct {
	Pos      int
	Expected string
	deco     []string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("smarts: syntax error at position %d: expected %s", err.Pos, err.Expected)
}

//Decorate adds the string given to the decoration slice of the error, and
//returns the resulting slice. If given an empty string, it just returns the
//current slice.
func (err *SyntaxError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Parse parses a structural pattern into its syntax tree. It returns a
//*SyntaxError if the text is malformed: unbalanced brackets or parentheses,
//an unknown token, an empty atom expression, or trailing garbage. No
//validation beyond the grammar happens here; primitives that can't be
//matched yet (ring size, sub-pattern) parse successfully.
func Parse(text string) (*Chain, error) {
	p := &parser{text: text}
	ch, err := p.pattern()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.text) {
		return nil, p.fail("end of pattern")
	}
	return ch, nil
}

type parser struct {
	text string
	pos  int
}

func (p *parser) fail(expected string) *SyntaxError {
	return &SyntaxError{Pos: p.pos, Expected: expected}
}

//peek returns the byte at the current position, or 0 at the end of the text.
func (p *parser) peek() byte {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

//peekAt is peek, n bytes ahead.
func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.text) {
		return 0
	}
	return p.text[p.pos+n]
}

func (p *parser) expect(c byte) *SyntaxError {
	if p.peek() != c {
		return p.fail(fmt.Sprintf("'%c'", c))
	}
	p.pos++
	return nil
}

//pattern := atom branch* pattern?
//Branches and the continuation both hang off the atom they follow, so the
//continuations of each atom are directly its Branches plus its Next.
func (p *parser) pattern() (*Chain, error) {
	node, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.peek() == '(' {
		p.pos++
		br, err := p.pattern()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		node.Branches = append(node.Branches, br)
	}
	if startsAtom(p.peek()) {
		next, err := p.pattern()
		if err != nil {
			return nil, err
		}
		node.Next = next
	}
	return node, nil
}

//startsAtom tells whether the byte can begin an atom position: a bracketed
//expression, or the bare shorthand for "any atom" or an element symbol.
func startsAtom(c byte) bool {
	return c == '[' || c == '*' || (c >= 'A' && c <= 'Z')
}

//atom := '[' orExpr ']' label? | '*' | SYMBOL
//The bare forms are the usual SMARTS shorthand for a single unqualified
//primitive.
func (p *parser) atom() (*Chain, error) {
	if c := p.peek(); c == '*' {
		p.pos++
		return &Chain{Expr: &AtomExpr{Prim: PrimAny}}, nil
	} else if c >= 'A' && c <= 'Z' {
		expr, err := p.element()
		if err != nil {
			return nil, err
		}
		return &Chain{Expr: expr}, nil
	}
	if err := p.expect('['); err != nil {
		return nil, err
	}
	expr, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	node := &Chain{Expr: expr}
	if isDigit(p.peek()) {
		node.Label = p.number()
		node.Labeled = true
	}
	return node, nil
}

//orExpr := andExpr (',' andExpr)*. The OR binds looser than the AND.
func (p *parser) orExpr() (*AtomExpr, error) {
	left, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.peek() == ',' {
		p.pos++
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		left = &AtomExpr{Op: OpOr, Left: left, Right: right}
	}
	return left, nil
}

//andExpr := primitive ((';'|'&') primitive)*
func (p *parser) andExpr() (*AtomExpr, error) {
	left, err := p.primitive()
	if err != nil {
		return nil, err
	}
	for p.peek() == ';' || p.peek() == '&' {
		p.pos++
		right, err := p.primitive()
		if err != nil {
			return nil, err
		}
		left = &AtomExpr{Op: OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) primitive() (*AtomExpr, error) {
	c := p.peek()
	switch {
	case c == '*':
		p.pos++
		return &AtomExpr{Prim: PrimAny}, nil
	case c == '#':
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.fail("an atomic number after '#'")
		}
		return &AtomExpr{Prim: PrimAtomicNum, Num: p.number()}, nil
	case c == '$':
		p.pos++
		if err := p.expect('('); err != nil {
			return nil, err
		}
		sub, err := p.pattern()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return &AtomExpr{Prim: PrimSubPattern, Sub: sub}, nil
	case c == '%':
		p.pos++
		name := p.labelName()
		if name == "" {
			return nil, p.fail("a label name after '%'")
		}
		return &AtomExpr{Prim: PrimHasLabel, Name: name}, nil
	case c == 'D' && isDigit(p.peekAt(1)):
		p.pos++
		return &AtomExpr{Prim: PrimNeighborCount, Num: p.number()}, nil
	case c == 'R' && isDigit(p.peekAt(1)):
		p.pos++
		return &AtomExpr{Prim: PrimRingSize, Num: p.number()}, nil
	case c >= 'A' && c <= 'Z':
		return p.element()
	}
	return nil, p.fail("an atom primitive")
}

//element lexes an element symbol against the periodic table, preferring the
//2-letter reading over the 1-letter one ("Cl" is chlorine, not carbon
//followed by garbage).
func (p *parser) element() (*AtomExpr, error) {
	c2 := p.peekAt(1)
	if c2 >= 'a' && c2 <= 'z' {
		sym := p.text[p.pos : p.pos+2]
		if goff.IsElement(sym) {
			p.pos += 2
			return &AtomExpr{Prim: PrimSymbol, Name: sym}, nil
		}
	}
	sym := p.text[p.pos : p.pos+1]
	if goff.IsElement(sym) {
		p.pos++
		return &AtomExpr{Prim: PrimSymbol, Name: sym}, nil
	}
	return nil, p.fail("an element symbol")
}

//number lexes a decimal integer. The caller must have checked that the
//current byte is a digit.
func (p *parser) number() int {
	n := 0
	for isDigit(p.peek()) {
		n = n*10 + int(p.text[p.pos]-'0')
		p.pos++
	}
	return n
}

//labelName lexes an atom-type label: a lowercase letter or underscore
//followed by lowercase letters, digits and underscores.
func (p *parser) labelName() string {
	start := p.pos
	c := p.peek()
	if !(c >= 'a' && c <= 'z') && c != '_' {
		return ""
	}
	p.pos++
	for {
		c = p.peek()
		if (c >= 'a' && c <= 'z') || c == '_' || isDigit(c) {
			p.pos++
			continue
		}
		break
	}
	return p.text[start:p.pos]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
