/*
 * goff.go, part of goff.
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

import "fmt"

/**Note: Some functions here panic instead of returning errors. Those are "fundamental"
 * functions whose failure means the program itself is wrong (a nil atom, a bond crossed
 * from an atom it doesn't contain), so crashing is the reasonable thing to do.**/

//Atom contains one atom of a molecule: its identity, element information and
//its bonded neighbors. Whitelist and Blacklist belong to the typing machinery
//(package atomtype): they accumulate, respectively, the names of the pattern
//rules the atom matched and the names revoked by an overriding match. Both are
//reset at the start of each typing run; nothing else should write to them.
type Atom struct {
	Name      string
	Index     int //0-based index of the atom in its Topology. Must be kept consistent with the Atoms slice.
	AtomicNum int
	Symbol    string
	Molname   string
	Molid     int
	Mass      float64
	Charge    float64
	Type      string //the assigned force-field atom type, empty until assignment.
	Bonds     []*Bond
	Whitelist map[string]bool
	Blacklist map[string]bool
}

//Copy returns a copy of the Atom object. The bonded-neighbor list and the
//typing sets are NOT copied; the new atom starts unbonded and untyped.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.Index = A.Index
	Newat.AtomicNum = A.AtomicNum
	Newat.Symbol = A.Symbol
	Newat.Molname = A.Molname
	Newat.Molid = A.Molid
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Type = A.Type
	return Newat
}

//Neighbors returns the atoms bonded to A, in the order of A's bond list.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.Bonds))
	for _, v := range A.Bonds {
		ret = append(ret, v.Cross(A))
	}
	return ret
}

//Bond represents a covalent bond between 2 atoms.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
	K     float64 //force constant, zero until parametrized.
	Eq    float64 //equilibrium length, zero until parametrized.
}

//Cross returns the atom of the bond that is not the origin atom given.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //Got to be a programming error, so a panic is warranted.
}

//Angle is a 3-atom bonded term centered on At2. K and Eq are zero until
//parametrized.
type Angle struct {
	At1, At2, At3 *Atom
	K             float64
	Eq            float64
}

//Dihedral is a 4-atom torsion term over the central bond At2-At3. Depending on
//the force field it holds either periodic parameters (K, Eq, Mult) or
//Ryckaert-Bellemans coefficients (RB). The same type serves both classes; the
//Topology keeps them in separate slices.
type Dihedral struct {
	At1, At2, At3, At4 *Atom
	K                  float64
	Eq                 float64
	Mult               int
	RB                 []float64
}

//Improper is a 4-atom out-of-plane term centered on At1.
type Improper struct {
	At1, At2, At3, At4 *Atom
	K                  float64
	Eq                 float64
}

//Pair is a 1-4 nonbonded exception between the outer atoms of a torsion.
type Pair struct {
	At1, At2 *Atom
}

//Topology contains the time-independent information of a molecule: atoms,
//bonds, and, once generated, the bonded interaction terms. The term slices are
//appended to by package bonded and belong to the caller afterwards.
type Topology struct {
	Atoms      []*Atom
	Bonds      []*Bond
	Box        []float64 //periodic box vectors, nil if not periodic.
	Angles     []*Angle
	Dihedrals  []*Dihedral
	RBTorsions []*Dihedral
	Impropers  []*Improper
	Pairs      []*Pair
}

//NewTopology makes a topology with the atoms given. It returns an error if the
//slice is nil. Atom indexes are (re)filled to match positions in the slice.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil atom slice", []string{"NewTopology"}}
	}
	top := new(Topology)
	top.Atoms = ats
	top.FillIndexes()
	return top, nil
}

//Atom returns the Atom corresponding to the index i of the Atom slice in the
//Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic(PanicMsg(fmt.Sprintf("goff: Requested atom (%d) out of range (%d)", i, T.Len())))
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//FillIndexes sets the Index field of each atom to its position in the Atoms
//slice.
func (T *Topology) FillIndexes() {
	for i, v := range T.Atoms {
		v.Index = i
	}
}

//AddBond bonds the atoms at1 and at2, with the bond order given, appending the
//new bond to the topology and to both atoms' bond lists.
func (T *Topology) AddBond(at1, at2 *Atom, order float64) *Bond {
	b := &Bond{Index: len(T.Bonds), At1: at1, At2: at2, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	T.Bonds = append(T.Bonds, b)
	return b
}

//SomeAtoms returns a new Topology with the atoms of T whose indexes are in the
//list given, in that order. Bonds are not carried over.
func (T *Topology) SomeAtoms(indexes []int) (*Topology, error) {
	ats := make([]*Atom, 0, len(indexes))
	for _, v := range indexes {
		if v >= T.Len() || v < 0 {
			return nil, CError{fmt.Sprintf("Atom index %d out of range", v), []string{"SomeAtoms"}}
		}
		ats = append(ats, T.Atoms[v].Copy())
	}
	return NewTopology(ats)
}
