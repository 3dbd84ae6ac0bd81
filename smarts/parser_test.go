/*
 * parser_test.go, part of goff.
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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSingleAtom(Te *testing.T) {
	ch, err := Parse("[#6]")
	require.NoError(Te, err)
	require.Nil(Te, ch.Continuations())
	require.Equal(Te, OpLeaf, ch.Expr.Op)
	require.Equal(Te, PrimAtomicNum, ch.Expr.Prim)
	require.Equal(Te, 6, ch.Expr.Num)
}

func TestParseChainAndBranches(Te *testing.T) {
	ch, err := Parse("[#6;D4]([H])([H])([H])[#6]")
	require.NoError(Te, err)
	conts := ch.Continuations()
	require.Len(Te, conts, 4) //3 branches plus the chain continuation.
	require.Equal(Te, 3, len(ch.Branches))
	require.NotNil(Te, ch.Next)
	require.Same(Te, ch.Next, conts[3]) //branches come first, the continuation last.
	//the head expression is the AND of two primitives.
	require.Equal(Te, OpAnd, ch.Expr.Op)
	require.Equal(Te, PrimAtomicNum, ch.Expr.Left.Prim)
	require.Equal(Te, PrimNeighborCount, ch.Expr.Right.Prim)
	require.Equal(Te, 4, ch.Expr.Right.Num)
}

func TestParseBareAtoms(Te *testing.T) {
	ch, err := Parse("[#6;D4](*)(*)(*)*")
	require.NoError(Te, err)
	require.Len(Te, ch.Continuations(), 4)
	for _, c := range ch.Continuations() {
		require.Equal(Te, PrimAny, c.Expr.Prim)
	}
	ch, err = Parse("[C;D4](H)(H)(H)C")
	require.NoError(Te, err)
	require.Len(Te, ch.Continuations(), 4)
	require.Equal(Te, "H", ch.Branches[0].Expr.Name)
	require.Equal(Te, "C", ch.Next.Expr.Name)
}

//TestParsePrecedence checks that ',' (OR) binds looser than ';'/'&' (AND):
//[#1;#2,#3] is (1 AND 2) OR 3, and [#1,#2;#3] is 1 OR (2 AND 3).
func TestParsePrecedence(Te *testing.T) {
	ch, err := Parse("[#1;#2,#3]")
	require.NoError(Te, err)
	require.Equal(Te, OpOr, ch.Expr.Op)
	require.Equal(Te, OpAnd, ch.Expr.Left.Op)
	require.Equal(Te, 3, ch.Expr.Right.Num)

	ch, err = Parse("[#1,#2&#3]")
	require.NoError(Te, err)
	require.Equal(Te, OpOr, ch.Expr.Op)
	require.Equal(Te, 1, ch.Expr.Left.Num)
	require.Equal(Te, OpAnd, ch.Expr.Right.Op)
}

func TestParseTwoLetterElements(Te *testing.T) {
	ch, err := Parse("[Cl]")
	require.NoError(Te, err)
	require.Equal(Te, PrimSymbol, ch.Expr.Prim)
	require.Equal(Te, "Cl", ch.Expr.Name)
	//Dy and Rb must not be mistaken for degree/ring-size primitives...
	ch, err = Parse("[Dy,Rb]")
	require.NoError(Te, err)
	require.Equal(Te, "Dy", ch.Expr.Left.Name)
	require.Equal(Te, "Rb", ch.Expr.Right.Name)
	//...while D4 and R5 are exactly those.
	ch, err = Parse("[D4,R5]")
	require.NoError(Te, err)
	require.Equal(Te, PrimNeighborCount, ch.Expr.Left.Prim)
	require.Equal(Te, PrimRingSize, ch.Expr.Right.Prim)
	require.Equal(Te, 5, ch.Expr.Right.Num)
}

func TestParseLabelAndSubPattern(Te *testing.T) {
	ch, err := Parse("[#6;%opls_135]1")
	require.NoError(Te, err)
	require.True(Te, ch.Labeled)
	require.Equal(Te, 1, ch.Label)
	require.Equal(Te, PrimHasLabel, ch.Expr.Right.Prim)
	require.Equal(Te, "opls_135", ch.Expr.Right.Name)

	ch, err = Parse("[$([C][O])]")
	require.NoError(Te, err)
	require.Equal(Te, PrimSubPattern, ch.Expr.Prim)
	require.NotNil(Te, ch.Expr.Sub.Next)
}

func TestParseErrors(Te *testing.T) {
	for _, bad := range []struct {
		pattern  string
		pos      int
		expected string
	}{
		{"", 0, "'['"},
		{"[#6", 3, "']'"},
		{"[]", 1, "an atom primitive"},
		{"[#6](*", 6, "')'"},
		{"[#6])", 4, "end of pattern"},
		{"[Qq]", 1, "an element symbol"},
		{"[#x]", 2, "an atomic number after '#'"},
		{"[%9]", 2, "a label name after '%'"},
		{"([H])[C]", 0, "'['"}, //a pattern can't begin with a branch.
	} {
		_, err := Parse(bad.pattern)
		require.Error(Te, err, "pattern %q", bad.pattern)
		serr, ok := err.(*SyntaxError)
		require.True(Te, ok, "pattern %q", bad.pattern)
		require.Equal(Te, bad.pos, serr.Pos, "pattern %q", bad.pattern)
		require.Equal(Te, bad.expected, serr.Expected, "pattern %q", bad.pattern)
	}
}

func TestString(Te *testing.T) {
	for _, s := range []string{
		"[#6;D4]([H])([H])([H])[#6]",
		"[C,N;D3]2",
		"[$([C][O])]",
		"[%opls_140]",
		"[R5]",
	} {
		ch, err := Parse(s)
		require.NoError(Te, err)
		require.Equal(Te, s, ch.String())
	}
	//the '&' AND spelling prints as ';'.
	ch, err := Parse("[#1&#2]")
	require.NoError(Te, err)
	require.Equal(Te, "[#1;#2]", ch.String())
}
