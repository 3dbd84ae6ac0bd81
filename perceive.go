/*
 * perceive.go, part of goff.
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

package goff

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//return a new *Bond slice with the bond of index id removed
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//RemoveBond removes the bond given from the bond lists of both its atoms and
//from the topology's own list. It returns an error if the bond was not found
//in either atom.
func RemoveBond(b *Bond, mol *Topology) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
	mol.Bonds = takefromslice(mol.Bonds, b.Index)
	err := new(CError)
	err.msg = fmt.Sprintf("Failed to remove bond Index:%d", b.Index)
	errs := 0
	if len(b.At1.Bonds) == lenb1 {
		err.msg = err.msg + fmt.Sprintf(" from atom. Index:%d", b.At1.Index)
		err.Decorate("RemoveBond")
		errs++
	}
	if len(b.At2.Bonds) == lenb2 {
		if errs > 0 {
			err.msg = err.msg + " and"
		}
		err.msg = err.msg + fmt.Sprintf(" from atom. Index:%d", b.At2.Index)
		err.Decorate("RemoveBond")
		errs++
	}
	if errs > 0 {
		return err
	}
	return nil
}

//PerceiveBonds assigns bonds to a molecule based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
//coord must have one row per atom, with 3 columns (x, y, z, in A).
//It might get slow for large systems; it's really not thought for proteins
//or macromolecules.
func PerceiveBonds(coord *mat.Dense, mol *Topology) error {
	mol.FillIndexes()
	r, c := coord.Dims()
	if c != 3 || r != mol.Len() {
		return CError{fmt.Sprintf("Coordinate matrix dimensions (%d,%d) don't match the topology (%d atoms)", r, c, mol.Len()), []string{"PerceiveBonds"}}
	}
	var at1, at2 *Atom
	tot := mol.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		at1 = mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("Couldn't find the covalent radii for %s %d", at1.Symbol, i)
			err.Decorate("PerceiveBonds")
			return err
		}
		for j := i + 1; j < tot; j++ {
			at2 = mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				err := new(CError)
				err.msg = fmt.Sprintf("Couldn't find the covalent radii for %s %d", at2.Symbol, j)
				err.Decorate("PerceiveBonds")
				return err
			}
			d := distance(coord, i, j)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				mol.Bonds = append(mol.Bonds, b)
				nextIndex++
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max { //remove the longest bonds until we are within max.
			err := RemoveBond(at.Bonds[len(at.Bonds)-1], mol)
			if err != nil {
				return errDecorate(err, "PerceiveBonds")
			}
		}
	}
	return nil
}

//distance between the atoms in rows i and j of coord.
func distance(coord *mat.Dense, i, j int) float64 {
	vi := coord.RowView(i)
	vj := coord.RowView(j)
	d := mat.NewVecDense(3, nil)
	d.SubVec(vj, vi)
	return mat.Norm(d, 2)
}
