/*
 * ast.go, part of goff.
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
	"strings"
)

//Op is the kind of a node in an atom-expression tree.
type Op int

const (
	OpLeaf Op = iota //a primitive
	OpAnd
	OpOr
)

//Prim is the kind of a primitive (leaf) atom constraint.
type Prim int

const (
	PrimAny           Prim = iota //'*'
	PrimAtomicNum                 //'#n'
	PrimSymbol                    //an element symbol
	PrimHasLabel                  //'%name'
	PrimNeighborCount             //'Dn'
	PrimRingSize                  //'Rn'. Parses, but can't be matched yet.
	PrimSubPattern                //'$(...)'. Parses, but can't be matched yet.
)

//AtomExpr is one node of the Boolean constraint tree inside a bracketed atom
//expression. For OpAnd/OpOr nodes only Left and Right are meaningful; for
//OpLeaf nodes, Prim selects which of Num, Name and Sub carries the payload.
type AtomExpr struct {
	Op          Op
	Left, Right *AtomExpr
	Prim        Prim
	Num         int    //PrimAtomicNum, PrimNeighborCount, PrimRingSize
	Name        string //PrimSymbol, PrimHasLabel
	Sub         *Chain //PrimSubPattern
}

//Chain is one atom position of a pattern. Its neighbor continuations are the
//first atoms of each branch plus, if present, the next atom of the chain; the
//Continuations method returns them in that order. A chain node owns its whole
//subtree; there are no parent or sibling pointers.
type Chain struct {
	Expr     *AtomExpr
	Label    int //trailing integer label, unused by matching.
	Labeled  bool
	Branches []*Chain
	Next     *Chain
}

//Continuations returns the pattern chains that must each be assigned to a
//distinct bonded neighbor of the atom matching C: every branch, then the chain
//continuation, if any. A nil return means the pattern poses no further
//constraint past this atom.
func (C *Chain) Continuations() []*Chain {
	if len(C.Branches) == 0 && C.Next == nil {
		return nil
	}
	ret := make([]*Chain, 0, len(C.Branches)+1)
	ret = append(ret, C.Branches...)
	if C.Next != nil {
		ret = append(ret, C.Next)
	}
	return ret
}

//String returns the expression in pattern syntax. OR members are printed
//with ',' and AND members with ';', regardless of which AND spelling was
//parsed.
func (E *AtomExpr) String() string {
	switch E.Op {
	case OpAnd:
		return fmt.Sprintf("%s;%s", E.Left.String(), E.Right.String())
	case OpOr:
		return fmt.Sprintf("%s,%s", E.Left.String(), E.Right.String())
	}
	switch E.Prim {
	case PrimAny:
		return "*"
	case PrimAtomicNum:
		return fmt.Sprintf("#%d", E.Num)
	case PrimSymbol:
		return E.Name
	case PrimHasLabel:
		return "%" + E.Name
	case PrimNeighborCount:
		return fmt.Sprintf("D%d", E.Num)
	case PrimRingSize:
		return fmt.Sprintf("R%d", E.Num)
	case PrimSubPattern:
		return fmt.Sprintf("$(%s)", E.Sub.String())
	}
	return "?" //can't happen with a parser-built tree.
}

//String returns the chain, with its branches and continuation, in pattern
//syntax.
func (C *Chain) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(C.Expr.String())
	b.WriteString("]")
	if C.Labeled {
		fmt.Fprintf(&b, "%d", C.Label)
	}
	for _, v := range C.Branches {
		fmt.Fprintf(&b, "(%s)", v.String())
	}
	if C.Next != nil {
		b.WriteString(C.Next.String())
	}
	return b.String()
}
