/*
 * match.go, part of goff.
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

package atomtype

import (
	"fmt"

	"github.com/emolina/goff"
	"github.com/emolina/goff/smarts"
	"gonum.org/v1/gonum/stat/combin"
)

//UnsupportedError reports a pattern primitive that parses but can't be
//matched yet (ring size, recursive sub-pattern). It is a hard error, never a
//silent non-match: treating it as a non-match would misclassify atoms. It
//implements goff.Error.
type UnsupportedError struct {
	Feature string
	deco    []string
}

func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("atomtype: matching of %s is not implemented", err.Feature)
}

//Decorate adds the string given to the decoration slice of the error, and
//returns the resulting slice. If given an empty string, it just returns the
//current slice.
func (err *UnsupportedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Matches reports whether the rule's pattern matches the bonding environment
//of the atom given. The %label primitive reads the atom's current Whitelist,
//so the answer may change as a typing run progresses. The only possible error
//is an UnsupportedError from a ring-size or sub-pattern primitive anywhere in
//the pattern.
func (R *Rule) Matches(at *goff.Atom) (bool, error) {
	ok, err := matches(at, R.AST)
	if err != nil {
		return false, errDecorate(err, "Matches "+R.Name)
	}
	return ok, nil
}

/*matches is a bounded local subgraph-isomorphism search: the atom must
satisfy the node's own constraint, and then every neighbor continuation of the
node (branches plus chain continuation) must be assigned to a distinct bonded
neighbor of the atom, each pair matching recursively. Continuations are
unordered with respect to the physical neighbors, so all injective assignments
are tried and the first fully successful one is accepted; no successful
assignment is preferred over another. The direction the recursion arrived from
is never revisited because a chain node only owns its own subtree, but the
arrival atom stays in the neighbor pool, as remaining continuations may
constrain it again. Molecular graphs keep the branching factor small (4 or
less, usually), so the factorial assignment search stays cheap.*/
func matches(at *goff.Atom, node *smarts.Chain) (bool, error) {
	ok, err := exprMatches(node.Expr, at)
	if err != nil || !ok {
		return false, err
	}
	conts := node.Continuations()
	if len(conts) == 0 {
		return true, nil //no further constraint on the remaining physical neighbors.
	}
	neighbors := at.Neighbors()
	if len(neighbors) < len(conts) {
		return false, nil //the pattern demands more structure than exists.
	}
	for _, perm := range combin.Permutations(len(neighbors), len(conts)) {
		all := true
		for i, pi := range perm {
			ok, err := matches(neighbors[pi], conts[i])
			if err != nil {
				return false, err
			}
			if !ok {
				all = false
				break
			}
		}
		if all {
			return true, nil
		}
	}
	return false, nil
}

//exprMatches evaluates the Boolean constraint tree of one pattern atom
//against the candidate atom.
func exprMatches(e *smarts.AtomExpr, at *goff.Atom) (bool, error) {
	switch e.Op {
	case smarts.OpAnd:
		ok, err := exprMatches(e.Left, at)
		if err != nil || !ok {
			return false, err
		}
		return exprMatches(e.Right, at)
	case smarts.OpOr:
		ok, err := exprMatches(e.Left, at)
		if err != nil || ok {
			return ok, err
		}
		return exprMatches(e.Right, at)
	}
	switch e.Prim {
	case smarts.PrimAny:
		return true, nil
	case smarts.PrimAtomicNum:
		return at.AtomicNum == e.Num, nil
	case smarts.PrimSymbol:
		z, err := goff.AtomicNum(e.Name)
		if err != nil {
			return false, errDecorate(err, "exprMatches") //can't happen with a parser-built tree.
		}
		return at.AtomicNum == z, nil
	case smarts.PrimHasLabel:
		return at.Whitelist[e.Name], nil
	case smarts.PrimNeighborCount:
		return len(at.Bonds) == e.Num, nil
	case smarts.PrimRingSize:
		return false, &UnsupportedError{Feature: "the ring-size primitive (R)"}
	case smarts.PrimSubPattern:
		return false, &UnsupportedError{Feature: "the recursive sub-pattern primitive ($(...))"}
	}
	return false, nil //can't happen with a parser-built tree.
}
