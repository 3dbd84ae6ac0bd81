/*
 * params.go, part of goff.
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

package forcefield

//Wildcard is the class name matching any class at the outer positions of a
//torsion key.
const Wildcard = "X"

//BondParam holds harmonic bond parameters.
type BondParam struct {
	K  float64
	Eq float64
}

//AngleParam holds harmonic angle parameters.
type AngleParam struct {
	K  float64
	Eq float64
}

//TorsionParam holds periodic ("proper") torsion parameters.
type TorsionParam struct {
	K    float64
	Eq   float64
	Mult int
}

//RBParam holds the 6 Ryckaert-Bellemans coefficients.
type RBParam struct {
	C []float64
}

//ImproperParam holds improper torsion parameters.
type ImproperParam struct {
	K  float64
	Eq float64
}

//ParameterSet keeps the numeric parameter tables of a force field, keyed by
//atom-class tuples. Keys are stored in a canonical orientation, so lookups
//are direction-insensitive. A table left empty just means the force field
//doesn't use that term class.
type ParameterSet struct {
	BondTypes      map[[2]string]*BondParam
	AngleTypes     map[[3]string]*AngleParam
	DihedralTypes  map[[4]string]*TorsionParam
	RBTorsionTypes map[[4]string]*RBParam
	ImproperTypes  map[[4]string]*ImproperParam
}

//NewParameterSet returns a parameter set with all tables empty.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{
		BondTypes:      make(map[[2]string]*BondParam),
		AngleTypes:     make(map[[3]string]*AngleParam),
		DihedralTypes:  make(map[[4]string]*TorsionParam),
		RBTorsionTypes: make(map[[4]string]*RBParam),
		ImproperTypes:  make(map[[4]string]*ImproperParam),
	}
}

//canonical orientations: a key and its reverse are the same parameter.

func bondKey(c1, c2 string) [2]string {
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return [2]string{c1, c2}
}

func angleKey(c1, c2, c3 string) [3]string {
	if c3 < c1 {
		c1, c3 = c3, c1
	}
	return [3]string{c1, c2, c3}
}

func torsionKey(c1, c2, c3, c4 string) [4]string {
	k := [4]string{c1, c2, c3, c4}
	r := [4]string{c4, c3, c2, c1}
	for i := range k {
		if r[i] != k[i] {
			if r[i] < k[i] {
				return r
			}
			return k
		}
	}
	return k
}

//improper keys are centered on the first class; the outer three are
//interchangeable, so they are sorted.
func improperKey(center, c2, c3, c4 string) [4]string {
	if c3 < c2 {
		c2, c3 = c3, c2
	}
	if c4 < c2 {
		c2, c4 = c4, c2
	}
	if c4 < c3 {
		c3, c4 = c4, c3
	}
	return [4]string{center, c2, c3, c4}
}

//AddBond registers harmonic bond parameters for the class pair given.
func (P *ParameterSet) AddBond(c1, c2 string, k, eq float64) {
	P.BondTypes[bondKey(c1, c2)] = &BondParam{K: k, Eq: eq}
}

//AddAngle registers harmonic angle parameters for the class triple given.
func (P *ParameterSet) AddAngle(c1, c2, c3 string, k, eq float64) {
	P.AngleTypes[angleKey(c1, c2, c3)] = &AngleParam{K: k, Eq: eq}
}

//AddDihedral registers periodic torsion parameters. Wildcard ("X") is allowed
//at the outer positions.
func (P *ParameterSet) AddDihedral(c1, c2, c3, c4 string, k, eq float64, mult int) {
	P.DihedralTypes[torsionKey(c1, c2, c3, c4)] = &TorsionParam{K: k, Eq: eq, Mult: mult}
}

//AddRBTorsion registers Ryckaert-Bellemans coefficients. Wildcard ("X") is
//allowed at the outer positions.
func (P *ParameterSet) AddRBTorsion(c1, c2, c3, c4 string, c []float64) {
	P.RBTorsionTypes[torsionKey(c1, c2, c3, c4)] = &RBParam{C: append([]float64(nil), c...)}
}

//AddImproper registers improper parameters; the first class is the central
//atom's.
func (P *ParameterSet) AddImproper(center, c2, c3, c4 string, k, eq float64) {
	P.ImproperTypes[improperKey(center, c2, c3, c4)] = &ImproperParam{K: k, Eq: eq}
}

//Bond looks up bond parameters for a class pair, in either direction.
func (P *ParameterSet) Bond(c1, c2 string) (*BondParam, bool) {
	p, ok := P.BondTypes[bondKey(c1, c2)]
	return p, ok
}

//Angle looks up angle parameters for a class triple, in either direction.
func (P *ParameterSet) Angle(c1, c2, c3 string) (*AngleParam, bool) {
	p, ok := P.AngleTypes[angleKey(c1, c2, c3)]
	return p, ok
}

//Dihedral looks up periodic torsion parameters: first the exact classes, then
//with wildcards at the outer positions.
func (P *ParameterSet) Dihedral(c1, c2, c3, c4 string) (*TorsionParam, bool) {
	for _, k := range torsionLookupKeys(c1, c2, c3, c4) {
		if p, ok := P.DihedralTypes[k]; ok {
			return p, true
		}
	}
	return nil, false
}

//RBTorsion looks up Ryckaert-Bellemans coefficients the same way Dihedral
//does.
func (P *ParameterSet) RBTorsion(c1, c2, c3, c4 string) (*RBParam, bool) {
	for _, k := range torsionLookupKeys(c1, c2, c3, c4) {
		if p, ok := P.RBTorsionTypes[k]; ok {
			return p, true
		}
	}
	return nil, false
}

//Improper looks up improper parameters for the central class and its three
//neighbors, also trying the all-wildcard-neighbors form.
func (P *ParameterSet) Improper(center, c2, c3, c4 string) (*ImproperParam, bool) {
	if p, ok := P.ImproperTypes[improperKey(center, c2, c3, c4)]; ok {
		return p, true
	}
	p, ok := P.ImproperTypes[improperKey(center, Wildcard, Wildcard, Wildcard)]
	return p, ok
}

//torsionLookupKeys returns, most specific first, the canonical keys a torsion
//lookup should try: exact, one outer wildcard (either end), both outer
//wildcards.
func torsionLookupKeys(c1, c2, c3, c4 string) [][4]string {
	return [][4]string{
		torsionKey(c1, c2, c3, c4),
		torsionKey(Wildcard, c2, c3, c4),
		torsionKey(c1, c2, c3, Wildcard),
		torsionKey(Wildcard, c2, c3, Wildcard),
	}
}

//HasDihedrals tells whether the periodic-torsion table is populated, which is
//what decides if generated torsions are recorded as proper dihedrals.
func (P *ParameterSet) HasDihedrals() bool {
	return len(P.DihedralTypes) > 0
}

//HasRBTorsions tells whether the Ryckaert-Bellemans table is populated.
func (P *ParameterSet) HasRBTorsions() bool {
	return len(P.RBTorsionTypes) > 0
}

//HasImpropers tells whether the improper table is populated.
func (P *ParameterSet) HasImpropers() bool {
	return len(P.ImproperTypes) > 0
}
