/*
 * apply.go, part of goff.
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
	"fmt"
	"sort"

	"github.com/emolina/goff"
	"github.com/emolina/goff/atomtype"
	"github.com/emolina/goff/bonded"
)

//NoBondsError is the non-fatal complaint Apply returns after successfully
//typing a structure that has no bonds: typing went through, but no bonded
//term could be generated. Callers check for it with errors.As and decide how
//serious it is. It implements goff.Error.
type NoBondsError struct {
	deco []string
}

func (err *NoBondsError) Error() string {
	return "forcefield: structure contains no bonds"
}

//Decorate adds the string given to the decoration slice of the error, and
//returns the resulting slice. If given an empty string, it just returns the
//current slice.
func (err *NoBondsError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

/*Apply applies the force field to the molecule: it types every atom with the
compiled rules, resolves each atom's final type (exactly one whitelisted,
non-blacklisted rule must remain per atom), generates the bonded terms the
parameter set has tables for, and fills in their parameters. Everything is
mutated in place. With no options given, the generated terms are angles,
torsions (recorded as proper and/or Ryckaert-Bellemans according to which
tables are populated), 1-4 pairs, and impropers only if the improper table is
populated; pass a bonded.Options to choose otherwise.

A molecule without bonds is typed anyway and Apply returns a *NoBondsError
after finishing, so the caller decides how loud the complaint should be.*/
func (F *ForceField) Apply(mol *goff.Topology, opts ...bonded.Options) error {
	var warn error
	if len(mol.Bonds) == 0 {
		warn = new(NoBondsError)
	}
	rules, err := F.Rules()
	if err != nil {
		return errDecorate(err, "Apply")
	}
	if err := atomtype.AssignTypes(mol.Atoms, rules); err != nil {
		return errDecorate(err, "Apply")
	}
	if err := F.resolveTypes(mol); err != nil {
		return err
	}
	var o bonded.Options
	if len(opts) > 0 {
		o = opts[0]
	} else {
		o = bonded.DefaultOptions()
		o.DihedralTypes = F.Params.HasDihedrals()
		o.RBTorsionTypes = F.Params.HasRBTorsions()
		o.Impropers = F.Params.HasImpropers()
	}
	bonded.Generate(mol, o)
	if err := F.Parametrize(mol); err != nil {
		return err
	}
	return warn
}

//resolveTypes turns each atom's whitelist/blacklist into a final atom type,
//and sets the atom's mass from the registry. Zero surviving candidates, or
//more than one, is an error.
func (F *ForceField) resolveTypes(mol *goff.Topology) error {
	for _, at := range mol.Atoms {
		candidates := make([]string, 0, 1)
		for name := range at.Whitelist {
			if !at.Blacklist[name] {
				candidates = append(candidates, name)
			}
		}
		sort.Strings(candidates)
		if len(candidates) == 0 {
			return &Error{message: fmt.Sprintf("Could not find atom type for atom %d (%s)", at.Index, at.Symbol), deco: []string{"resolveTypes"}}
		}
		if len(candidates) > 1 {
			return &Error{message: fmt.Sprintf("Found multiple atom types for atom %d (%s): %v", at.Index, at.Symbol, candidates), deco: []string{"resolveTypes"}}
		}
		at.Type = candidates[0]
		t := F.atomTypes[at.Type]
		if t.Mass != 0 {
			at.Mass = t.Mass
		}
	}
	return nil
}

//classOf returns the parameter class of the atom's assigned type.
func (F *ForceField) classOf(at *goff.Atom) (string, error) {
	t := F.atomTypes[at.Type]
	if t == nil {
		return "", &Error{message: fmt.Sprintf("Atom %d carries unknown or unassigned type %q", at.Index, at.Type), deco: []string{"classOf"}}
	}
	return t.Class, nil
}

//Parametrize fills the numeric parameters of every bonded term of the
//molecule from the parameter tables, by the atom classes of the assigned
//types. A table that is empty is skipped wholesale (the force field doesn't
//use that term class); a populated table missing an entry for a term that
//exists in the molecule is an error naming the class tuple.
func (F *ForceField) Parametrize(mol *goff.Topology) error {
	classes := make([]string, mol.Len())
	for i, at := range mol.Atoms {
		c, err := F.classOf(at)
		if err != nil {
			return errDecorate(err, "Parametrize")
		}
		classes[i] = c
	}
	if len(F.Params.BondTypes) > 0 {
		for _, b := range mol.Bonds {
			p, ok := F.Params.Bond(classes[b.At1.Index], classes[b.At2.Index])
			if !ok {
				return &Error{message: fmt.Sprintf("Missing bond parameters for %s-%s", classes[b.At1.Index], classes[b.At2.Index]), deco: []string{"Parametrize"}}
			}
			b.K = p.K
			b.Eq = p.Eq
		}
	}
	if len(F.Params.AngleTypes) > 0 {
		for _, a := range mol.Angles {
			c1, c2, c3 := classes[a.At1.Index], classes[a.At2.Index], classes[a.At3.Index]
			p, ok := F.Params.Angle(c1, c2, c3)
			if !ok {
				return &Error{message: fmt.Sprintf("Missing angle parameters for %s-%s-%s", c1, c2, c3), deco: []string{"Parametrize"}}
			}
			a.K = p.K
			a.Eq = p.Eq
		}
	}
	for _, d := range mol.Dihedrals {
		c1, c2, c3, c4 := classes[d.At1.Index], classes[d.At2.Index], classes[d.At3.Index], classes[d.At4.Index]
		p, ok := F.Params.Dihedral(c1, c2, c3, c4)
		if !ok {
			return &Error{message: fmt.Sprintf("Missing dihedral parameters for %s-%s-%s-%s", c1, c2, c3, c4), deco: []string{"Parametrize"}}
		}
		d.K = p.K
		d.Eq = p.Eq
		d.Mult = p.Mult
	}
	for _, d := range mol.RBTorsions {
		c1, c2, c3, c4 := classes[d.At1.Index], classes[d.At2.Index], classes[d.At3.Index], classes[d.At4.Index]
		p, ok := F.Params.RBTorsion(c1, c2, c3, c4)
		if !ok {
			return &Error{message: fmt.Sprintf("Missing RB-torsion parameters for %s-%s-%s-%s", c1, c2, c3, c4), deco: []string{"Parametrize"}}
		}
		d.RB = append([]float64(nil), p.C...)
	}
	for _, im := range mol.Impropers {
		c1, c2, c3, c4 := classes[im.At1.Index], classes[im.At2.Index], classes[im.At3.Index], classes[im.At4.Index]
		p, ok := F.Params.Improper(c1, c2, c3, c4)
		if !ok {
			return &Error{message: fmt.Sprintf("Missing improper parameters for %s centered on %s", fmt.Sprintf("%s-%s-%s", c2, c3, c4), c1), deco: []string{"Parametrize"}}
		}
		im.K = p.K
		im.Eq = p.Eq
	}
	return nil
}
