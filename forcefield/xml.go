/*
 * xml.go, part of goff.
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
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

/*The XML layout read here is the OpenMM-style one:

	<ForceField name="oplsaa">
	 <AtomTypes>
	  <Type name="opls_135" class="CT" element="C" mass="12.011"
	        def="[C;D4]([C])([H])([H])[H]" desc="alkane CH3"/>
	  <Type name="opls_136" class="CT" element="C" mass="12.011"
	        def="[C;D4]([C])([C])([H])[H]" overrides="opls_135"/>
	 </AtomTypes>
	 <HarmonicBondForce>
	  <Bond class1="CT" class2="CT" length="0.1529" k="224262.4"/>
	 </HarmonicBondForce>
	 <HarmonicAngleForce>
	  <Angle class1="CT" class2="CT" class3="CT" angle="1.966986" k="488.273"/>
	 </HarmonicAngleForce>
	 <PeriodicTorsionForce>
	  <Proper class1="HC" class2="CT" class3="CT" class4="HC"
	          periodicity1="3" phase1="0.0" k1="0.6276"/>
	  <Improper class1="CM" class2="" class3="" class4="" k="43.932" angle="3.14159"/>
	 </PeriodicTorsionForce>
	 <RBTorsionForce>
	  <Proper class1="HC" class2="CT" class3="CT" class4="HC"
	          c0="0.6276" c1="1.8828" c2="0.0" c3="-2.5104" c4="0.0" c5="0.0"/>
	 </RBTorsionForce>
	</ForceField>

An empty class attribute in a torsion stands for the wildcard class. def,
overrides and desc are the extensions carrying the typing rules; overrides is
a comma-separated list of type names.*/

type xmlForceField struct {
	XMLName   xml.Name      `xml:"ForceField"`
	Name      string        `xml:"name,attr"`
	Types     []xmlType     `xml:"AtomTypes>Type"`
	Bonds     []xmlBond     `xml:"HarmonicBondForce>Bond"`
	Angles    []xmlAngle    `xml:"HarmonicAngleForce>Angle"`
	Propers   []xmlProper   `xml:"PeriodicTorsionForce>Proper"`
	Impropers []xmlImproper `xml:"PeriodicTorsionForce>Improper"`
	RBs       []xmlRB       `xml:"RBTorsionForce>Proper"`
}

type xmlType struct {
	Name      string  `xml:"name,attr"`
	Class     string  `xml:"class,attr"`
	Element   string  `xml:"element,attr"`
	Mass      float64 `xml:"mass,attr"`
	Def       string  `xml:"def,attr"`
	Overrides string  `xml:"overrides,attr"`
	Desc      string  `xml:"desc,attr"`
}

type xmlBond struct {
	Class1 string  `xml:"class1,attr"`
	Class2 string  `xml:"class2,attr"`
	Length float64 `xml:"length,attr"`
	K      float64 `xml:"k,attr"`
}

type xmlAngle struct {
	Class1 string  `xml:"class1,attr"`
	Class2 string  `xml:"class2,attr"`
	Class3 string  `xml:"class3,attr"`
	Angle  float64 `xml:"angle,attr"`
	K      float64 `xml:"k,attr"`
}

type xmlProper struct {
	Class1       string  `xml:"class1,attr"`
	Class2       string  `xml:"class2,attr"`
	Class3       string  `xml:"class3,attr"`
	Class4       string  `xml:"class4,attr"`
	Periodicity1 int     `xml:"periodicity1,attr"`
	Phase1       float64 `xml:"phase1,attr"`
	K1           float64 `xml:"k1,attr"`
}

type xmlImproper struct {
	Class1 string  `xml:"class1,attr"`
	Class2 string  `xml:"class2,attr"`
	Class3 string  `xml:"class3,attr"`
	Class4 string  `xml:"class4,attr"`
	K      float64 `xml:"k,attr"`
	Angle  float64 `xml:"angle,attr"`
}

type xmlRB struct {
	Class1 string  `xml:"class1,attr"`
	Class2 string  `xml:"class2,attr"`
	Class3 string  `xml:"class3,attr"`
	Class4 string  `xml:"class4,attr"`
	C0     float64 `xml:"c0,attr"`
	C1     float64 `xml:"c1,attr"`
	C2     float64 `xml:"c2,attr"`
	C3     float64 `xml:"c3,attr"`
	C4     float64 `xml:"c4,attr"`
	C5     float64 `xml:"c5,attr"`
}

//wild maps the empty class attribute to the wildcard class.
func wild(class string) string {
	if class == "" {
		return Wildcard
	}
	return class
}

//ReadXML reads a force field, in the XML layout documented above, from r.
func ReadXML(r io.Reader) (*ForceField, error) {
	data := new(xmlForceField)
	if err := xml.NewDecoder(r).Decode(data); err != nil {
		return nil, &Error{message: fmt.Sprintf("Couldn't parse the force-field XML: %v", err), deco: []string{"ReadXML"}}
	}
	F := New()
	F.Name = data.Name
	for _, t := range data.Types {
		var overrides []string
		if t.Overrides != "" {
			overrides = strings.Split(t.Overrides, ",")
			for i := range overrides {
				overrides[i] = strings.TrimSpace(overrides[i])
			}
		}
		err := F.RegisterAtomType(AtomType{
			Name:      t.Name,
			Class:     t.Class,
			Mass:      t.Mass,
			Element:   t.Element,
			Def:       t.Def,
			Overrides: overrides,
			Desc:      t.Desc,
		})
		if err != nil {
			return nil, errDecorate(err, "ReadXML")
		}
	}
	for _, b := range data.Bonds {
		F.Params.AddBond(b.Class1, b.Class2, b.K, b.Length)
	}
	for _, a := range data.Angles {
		F.Params.AddAngle(a.Class1, a.Class2, a.Class3, a.K, a.Angle)
	}
	for _, p := range data.Propers {
		F.Params.AddDihedral(wild(p.Class1), p.Class2, p.Class3, wild(p.Class4), p.K1, p.Phase1, p.Periodicity1)
	}
	for _, p := range data.RBs {
		F.Params.AddRBTorsion(wild(p.Class1), p.Class2, p.Class3, wild(p.Class4), []float64{p.C0, p.C1, p.C2, p.C3, p.C4, p.C5})
	}
	for _, im := range data.Impropers {
		F.Params.AddImproper(im.Class1, wild(im.Class2), wild(im.Class3), wild(im.Class4), im.K, im.Angle)
	}
	return F, nil
}

//LoadXML reads a force field from the file named. Files ending in ".gz" are
//transparently decompressed.
func LoadXML(path string) (*ForceField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{message: fmt.Sprintf("Couldn't open the force-field file: %v", err), deco: []string{"LoadXML"}}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, &Error{message: fmt.Sprintf("Couldn't decompress the force-field file: %v", err), deco: []string{"LoadXML"}}
		}
		defer gz.Close()
		r = gz
	}
	F, err := ReadXML(r)
	if err != nil {
		return nil, errDecorate(err, "LoadXML "+path)
	}
	return F, nil
}
