/*
 * forcefield_test.go, part of goff.
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

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emolina/goff"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

//a miniature OPLS-flavored force field, enough for ethane.
const ethaneXML = `<ForceField name="oplsaa">
 <AtomTypes>
  <Type name="opls_135" class="CT" element="C" mass="12.011" def="[C;D4]([C])([H])([H])[H]" desc="alkane CH3"/>
  <Type name="opls_140" class="HC" element="H" mass="1.008" def="[H][C;D4]" desc="alkane H"/>
 </AtomTypes>
 <HarmonicBondForce>
  <Bond class1="CT" class2="CT" length="0.1529" k="224262.4"/>
  <Bond class1="CT" class2="HC" length="0.109" k="284512.0"/>
 </HarmonicBondForce>
 <HarmonicAngleForce>
  <Angle class1="CT" class2="CT" class3="HC" angle="1.932079" k="313.8"/>
  <Angle class1="HC" class2="CT" class3="HC" angle="1.881465" k="276.144"/>
 </HarmonicAngleForce>
 <PeriodicTorsionForce>
  <Proper class1="HC" class2="CT" class3="CT" class4="HC" periodicity1="3" phase1="0.0" k1="0.6276"/>
 </PeriodicTorsionForce>
</ForceField>
`

func molecule(Te *testing.T, symbols []string, bonds [][2]int) *goff.Topology {
	ats := make([]*goff.Atom, 0, len(symbols))
	for _, s := range symbols {
		at, err := goff.NewAtom(s)
		require.NoError(Te, err)
		ats = append(ats, at)
	}
	mol, err := goff.NewTopology(ats)
	require.NoError(Te, err)
	for _, b := range bonds {
		mol.AddBond(mol.Atom(b[0]), mol.Atom(b[1]), 1)
	}
	return mol
}

func ethane(Te *testing.T) *goff.Topology {
	return molecule(Te,
		[]string{"C", "C", "H", "H", "H", "H", "H", "H"},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 5}, {1, 6}, {1, 7}})
}

func TestRegisterAtomType(Te *testing.T) {
	F := New()
	err := F.RegisterAtomType(AtomType{Name: "opls_135", Class: "CT", Mass: 12.011, Element: "C", Def: "[C;D4]"})
	require.NoError(Te, err)
	err = F.RegisterAtomType(AtomType{Name: "opls_140", Class: "HC", Mass: 1.008, Element: "H", Def: "[H]"})
	require.NoError(Te, err)
	err = F.RegisterAtomType(AtomType{Name: "opls_135", Class: "CT"})
	require.Error(Te, err) //duplicate name.
	require.Contains(Te, err.Error(), "multiple definitions")

	require.Equal(Te, []string{"opls_135"}, F.TypesOfClass("CT"))
	require.Equal(Te, []string{"opls_135", "opls_140"}, F.TypesOfClass(""))
	require.Nil(Te, F.AtomType("opls_999"))
	require.Equal(Te, 12.011, F.AtomType("opls_135").Mass)

	rules, err := F.Rules()
	require.NoError(Te, err)
	require.Len(Te, rules, 2)
	require.Equal(Te, "opls_135", rules[0].Name) //name order.
}

func TestRulesBadDef(Te *testing.T) {
	F := New()
	require.NoError(Te, F.RegisterAtomType(AtomType{Name: "broken", Class: "CT", Def: "[C"}))
	_, err := F.Rules()
	require.Error(Te, err)
}

func TestAliases(Te *testing.T) {
	a := OPLSAliases()
	require.Equal(Te, "oplsaa", a.Resolve("OPLS-AA"))
	require.Equal(Te, "oplsaa", a.Resolve("opls"))
	require.Equal(Te, "oplsaa", a.Resolve("oplsaa.ff/forcefield.itp"))
	require.Equal(Te, "trappeua", a.Resolve("TraPPEUA"))
	require.Equal(Te, "charmm36", a.Resolve("charmm36")) //unknown names pass through.
}

func TestParameterSetLookups(Te *testing.T) {
	P := NewParameterSet()
	P.AddBond("CT", "HC", 284512.0, 0.109)
	p, ok := P.Bond("HC", "CT") //either direction.
	require.True(Te, ok)
	require.Equal(Te, 0.109, p.Eq)
	_, ok = P.Bond("CT", "CT")
	require.False(Te, ok)

	P.AddAngle("CT", "CT", "HC", 313.8, 1.932079)
	a, ok := P.Angle("HC", "CT", "CT")
	require.True(Te, ok)
	require.Equal(Te, 313.8, a.K)

	P.AddDihedral("X", "CT", "CT", "X", 0.6276, 0, 3)
	d, ok := P.Dihedral("HC", "CT", "CT", "HC") //found through the wildcard.
	require.True(Te, ok)
	require.Equal(Te, 3, d.Mult)
	_, ok = P.Dihedral("HC", "CT", "OS", "HC")
	require.False(Te, ok)
	require.True(Te, P.HasDihedrals())
	require.False(Te, P.HasRBTorsions())

	P.AddImproper("CM", "X", "X", "X", 43.932, 3.14159)
	im, ok := P.Improper("CM", "CT", "HC", "HC")
	require.True(Te, ok)
	require.Equal(Te, 43.932, im.K)
}

func TestReadXML(Te *testing.T) {
	F, err := ReadXML(strings.NewReader(ethaneXML))
	require.NoError(Te, err)
	require.Equal(Te, "oplsaa", F.Name)
	require.Equal(Te, "alkane CH3", F.AtomType("opls_135").Desc)
	require.Equal(Te, []string{"opls_140"}, F.TypesOfClass("HC"))
	_, ok := F.Params.Bond("CT", "HC")
	require.True(Te, ok)
	_, ok = F.Params.Angle("HC", "CT", "HC")
	require.True(Te, ok)
	require.True(Te, F.Params.HasDihedrals())
	require.False(Te, F.Params.HasRBTorsions())

	_, err = ReadXML(strings.NewReader("<ForceField><AtomTypes>"))
	require.Error(Te, err)
}

func TestReadXMLOverrides(Te *testing.T) {
	const two = `<ForceField>
	 <AtomTypes>
	  <Type name="a" class="A" def="[C]"/>
	  <Type name="b" class="B" def="[C;%a]" overrides="a, c"/>
	 </AtomTypes>
	</ForceField>`
	F, err := ReadXML(strings.NewReader(two))
	require.NoError(Te, err)
	require.Equal(Te, []string{"a", "c"}, F.AtomType("b").Overrides)
}

//TestLoadXMLGz writes the fixture gzipped and reads it back through the
//transparent decompression path.
func TestLoadXMLGz(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "oplsaa.xml.gz")
	f, err := os.Create(path)
	require.NoError(Te, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(ethaneXML))
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())

	F, err := LoadXML(path)
	require.NoError(Te, err)
	require.Equal(Te, "oplsaa", F.Name)
	require.NotNil(Te, F.AtomType("opls_140"))

	_, err = LoadXML(filepath.Join(dir, "nosuch.xml"))
	require.Error(Te, err)
}

//TestApplyEthane runs the whole pipeline: typing, term generation and
//parameter assignment on ethane with the miniature OPLS tables.
func TestApplyEthane(Te *testing.T) {
	F, err := ReadXML(strings.NewReader(ethaneXML))
	require.NoError(Te, err)
	mol := ethane(Te)
	require.NoError(Te, F.Apply(mol))

	require.Equal(Te, "opls_135", mol.Atom(0).Type)
	require.Equal(Te, "opls_135", mol.Atom(1).Type)
	require.Equal(Te, 12.011, mol.Atom(0).Mass)
	for i := 2; i < mol.Len(); i++ {
		require.Equal(Te, "opls_140", mol.Atom(i).Type, "atom %d", i)
	}

	require.Len(Te, mol.Angles, 12)
	require.Len(Te, mol.Dihedrals, 9)
	require.Empty(Te, mol.RBTorsions) //no RB table in this force field.
	require.Len(Te, mol.Pairs, 9)
	require.Empty(Te, mol.Impropers)

	for _, b := range mol.Bonds {
		require.NotZero(Te, b.K, "bond %d", b.Index)
	}
	for _, a := range mol.Angles {
		require.NotZero(Te, a.K)
	}
	for _, d := range mol.Dihedrals {
		require.Equal(Te, 0.6276, d.K)
		require.Equal(Te, 3, d.Mult)
	}
}

//TestApplyNoBonds: a bondless structure still gets typed, and the complaint
//comes back as the recognizable non-fatal error.
func TestApplyNoBonds(Te *testing.T) {
	F := New()
	require.NoError(Te, F.RegisterAtomType(AtomType{Name: "ar", Class: "Ar", Mass: 39.948, Element: "Ar", Def: "[Ar]"}))
	mol := molecule(Te, []string{"Ar"}, nil)
	err := F.Apply(mol)
	require.Error(Te, err)
	var nb *NoBondsError
	require.True(Te, errors.As(err, &nb))
	require.Equal(Te, "ar", mol.Atom(0).Type) //typing happened anyway.
	require.Empty(Te, mol.Angles)
}

func TestApplyUntypeable(Te *testing.T) {
	F, err := ReadXML(strings.NewReader(ethaneXML))
	require.NoError(Te, err)
	mol := molecule(Te, []string{"N", "H", "H", "H"},
		[][2]int{{0, 1}, {0, 2}, {0, 3}}) //no rule matches the nitrogen.
	err = F.Apply(mol)
	require.Error(Te, err)
	require.Contains(Te, err.Error(), "Could not find atom type")
}

func TestApplyAmbiguous(Te *testing.T) {
	F := New()
	require.NoError(Te, F.RegisterAtomType(AtomType{Name: "c_a", Class: "CA", Def: "[C]"}))
	require.NoError(Te, F.RegisterAtomType(AtomType{Name: "c_b", Class: "CB", Def: "[#6]"}))
	mol := molecule(Te, []string{"C"}, nil)
	err := F.Apply(mol)
	require.Error(Te, err)
	require.Contains(Te, err.Error(), "multiple atom types")
}

//TestApplyMissingParameters: a populated table that lacks an entry the
//molecule needs is a hard error naming the class tuple.
func TestApplyMissingParameters(Te *testing.T) {
	trimmed := strings.Replace(ethaneXML,
		`<Angle class1="HC" class2="CT" class3="HC" angle="1.881465" k="276.144"/>`, "", 1)
	F, err := ReadXML(strings.NewReader(trimmed))
	require.NoError(Te, err)
	err = F.Apply(ethane(Te))
	require.Error(Te, err)
	require.Contains(Te, err.Error(), "Missing angle parameters")
	require.Contains(Te, err.Error(), "HC-CT-HC")
}
