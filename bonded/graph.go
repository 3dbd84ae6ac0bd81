/*
 * graph.go, part of goff.
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

package bonded

import (
	"sort"

	"github.com/emolina/goff"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

//Node is an atom seen as a gonum graph node. The node ID is the atom's index
//in its topology.
type Node struct {
	*goff.Atom
}

func (N Node) ID() int64 {
	return int64(N.Atom.Index)
}

//Edge is a bond seen as a gonum graph edge. Bonds are not directional; the
//From/To orientation is only there to satisfy the interface.
type Edge struct {
	b        *goff.Bond
	reversed bool
}

func (E Edge) From() graph.Node {
	if E.reversed {
		return Node{E.b.At2}
	}
	return Node{E.b.At1}
}

func (E Edge) To() graph.Node {
	if E.reversed {
		return Node{E.b.At1}
	}
	return Node{E.b.At2}
}

func (E Edge) ReversedEdge() graph.Edge {
	return Edge{E.b, !E.reversed}
}

//Bond returns the underlying bond.
func (E Edge) Bond() *goff.Bond {
	return E.b
}

//Graph adapts a topology to the gonum graph.Undirected interface, so gonum's
//graph algorithms can run on the bond graph. It holds no state of its own;
//it reads the topology it was built from.
type Graph struct {
	mol goff.Bonder
}

//NewGraph returns a bond graph over the topology given. Atom indexes must be
//consistent with their positions (see Topology.FillIndexes).
func NewGraph(mol goff.Bonder) *Graph {
	return &Graph{mol: mol}
}

func (G *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(G.mol.Len()) {
		return nil
	}
	return Node{G.mol.Atom(int(id))}
}

func (G *Graph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, 0, G.mol.Len())
	for i := 0; i < G.mol.Len(); i++ {
		nodes = append(nodes, Node{G.mol.Atom(i)})
	}
	return iterator.NewOrderedNodes(nodes)
}

//From returns the bonded neighbors of the atom with the index given, in the
//order of the atom's bond list.
func (G *Graph) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(G.mol.Len()) {
		return graph.Empty
	}
	at := G.mol.Atom(int(id))
	nodes := make([]graph.Node, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		nodes = append(nodes, Node{b.Cross(at)})
	}
	return iterator.NewOrderedNodes(nodes)
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.Edge(xid, yid) != nil
}

//Edge returns the bond between the two atom indexes given, in either
//direction, or nil if they are not bonded.
func (G *Graph) Edge(uid, vid int64) graph.Edge {
	for _, b := range G.mol.BondList() {
		if (int64(b.At1.Index) == uid && int64(b.At2.Index) == vid) || (int64(b.At1.Index) == vid && int64(b.At2.Index) == uid) {
			return Edge{b: b}
		}
	}
	return nil
}

func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	return G.Edge(xid, yid)
}

//Fragments returns the connected components of the bond graph, each sorted by
//atom index, with the fragments themselves ordered by their lowest index.
//Isolated atoms count as fragments of one atom.
func (G *Graph) Fragments() [][]*goff.Atom {
	comps := topo.ConnectedComponents(G)
	ret := make([][]*goff.Atom, 0, len(comps))
	for _, comp := range comps {
		frag := make([]*goff.Atom, 0, len(comp))
		for _, n := range comp {
			frag = append(frag, n.(Node).Atom)
		}
		sort.Slice(frag, func(i, j int) bool { return frag[i].Index < frag[j].Index })
		ret = append(ret, frag)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0].Index < ret[j][0].Index })
	return ret
}
