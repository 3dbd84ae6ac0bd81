/*
 * bonded.go, part of goff.
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

/*Package bonded derives every angle, torsion, improper and 1-4 pair implied
by the bond graph of a molecule. Generation is purely topological: it reads
nothing but connectivity and never fails on a well-formed bond graph.*/
package bonded

import (
	"github.com/emolina/goff"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/stat/combin"
)

//Options selects which bonded terms Generate emits. DihedralTypes and
//RBTorsionTypes tell which torsion class(es) the active parameter set has
//parameters for: each generated torsion geometry is recorded as a proper
//dihedral, a Ryckaert-Bellemans torsion, or both, accordingly. 1-4 pairs
//follow the generated torsion geometries, not the torsion class, so they are
//emitted even when neither class is recorded.
type Options struct {
	Angles         bool
	Dihedrals      bool
	Impropers      bool
	Pairs          bool
	DihedralTypes  bool
	RBTorsionTypes bool
}

//DefaultOptions returns the usual generation set: angles, proper dihedrals
//and 1-4 pairs, no impropers.
func DefaultOptions() Options {
	return Options{Angles: true, Dihedrals: true, Pairs: true, DihedralTypes: true}
}

/*Generate walks the bond graph of mol once and appends to the topology's term
slices:

  - one angle (n1, at, n2) per unordered pair of neighbors of each atom of
    degree 2 or more;
  - one torsion (a, at1, at2, b) per bond at1-at2, with both ends of degree 2
    or more, for every a neighbor of at1 and b neighbor of at2 outside the
    bond, skipping a == b (3-rings); each bond is visited once, in the
    direction of growing atom index, which is the whole of the deduplication;
  - one 1-4 pair (a, b) per generated torsion geometry, when Pairs is set;
  - one improper (at, n1, n2, n3) per unordered triple of neighbors of each
    atom of degree 3 or more.

Output order is deterministic: central atoms in index order, neighbors in
bond-list order. A topology with no bonds just generates nothing; whether
that deserves a warning is the caller's business.*/
func Generate(mol *goff.Topology, o Options) {
	if !o.Angles && !o.Dihedrals && !o.Impropers {
		return
	}
	g := NewGraph(mol)
	for i := 0; i < mol.Len(); i++ {
		at1 := mol.Atom(i)
		neigh1 := neighbors(g, at1)
		if len(neigh1) < 2 {
			continue
		}
		if o.Angles {
			angles(mol, at1, neigh1)
		}
		if o.Dihedrals {
			for _, at2 := range neigh1 {
				if at2.Index > at1.Index {
					neigh2 := neighbors(g, at2)
					if len(neigh2) > 1 {
						dihedrals(mol, at1, neigh1, at2, neigh2, o)
					}
				}
			}
		}
		if o.Impropers && len(neigh1) >= 3 {
			impropers(mol, at1, neigh1)
		}
	}
}

//neighbors returns the bonded neighbors of at through the graph adaptor.
func neighbors(g *Graph, at *goff.Atom) []*goff.Atom {
	nodes := graph.NodesOf(g.From(int64(at.Index)))
	ret := make([]*goff.Atom, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, n.(Node).Atom)
	}
	return ret
}

//angles appends all angles centered on at.
func angles(mol *goff.Topology, at *goff.Atom, neigh []*goff.Atom) {
	for _, pair := range combin.Combinations(len(neigh), 2) {
		mol.Angles = append(mol.Angles, &goff.Angle{At1: neigh[pair[0]], At2: at, At3: neigh[pair[1]]})
	}
}

//dihedrals appends all torsions and, if requested, 1-4 pairs over the bond
//at1-at2.
func dihedrals(mol *goff.Topology, at1 *goff.Atom, neigh1 []*goff.Atom, at2 *goff.Atom, neigh2 []*goff.Atom, o Options) {
	for _, a := range neigh1 {
		if a.Index == at2.Index {
			continue
		}
		for _, b := range neigh2 {
			if b.Index == at1.Index || b.Index == a.Index {
				continue
			}
			d := &goff.Dihedral{At1: a, At2: at1, At3: at2, At4: b}
			if o.DihedralTypes {
				mol.Dihedrals = append(mol.Dihedrals, d)
			}
			if o.RBTorsionTypes {
				mol.RBTorsions = append(mol.RBTorsions, d)
			}
			if o.Pairs {
				mol.Pairs = append(mol.Pairs, &goff.Pair{At1: a, At2: b})
			}
		}
	}
}

//impropers appends all impropers centered on at.
func impropers(mol *goff.Topology, at *goff.Atom, neigh []*goff.Atom) {
	for _, t := range combin.Combinations(len(neigh), 3) {
		mol.Impropers = append(mol.Impropers, &goff.Improper{At1: at, At2: neigh[t[0]], At3: neigh[t[1]], At4: neigh[t[2]]})
	}
}
