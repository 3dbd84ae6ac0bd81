/*
 * forcefield.go, part of goff.
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

/*Package forcefield holds a force field: a registry of atom types with their
structural definitions and override relations, plus the numeric parameter
tables, and applies it to a molecule, from typing to bonded-term generation to
parameter assignment.*/
package forcefield

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emolina/goff"
	"github.com/emolina/goff/atomtype"
)

//Error is the concrete error type of this package. It implements goff.Error.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return fmt.Sprintf("forcefield: %s", err.message) }

//Decorate adds the string given to the decoration slice of the error, and
//returns the resulting slice. If given an empty string, it just returns the
//current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements goff.Error and decorates it with the
//caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(goff.Error)
	err2.Decorate(caller)
	return err2
}

//AtomType is one registered atom type: its class, mass, element, structural
//definition (a SMARTS pattern, possibly empty for types assigned by other
//means), the names of the types it overrides, and a free-text description.
type AtomType struct {
	Name      string
	Class     string
	Mass      float64
	Element   string
	Def       string
	Overrides []string
	Desc      string
}

//ForceField is a registry of atom types plus the parameter tables that give
//the bonded terms their numbers.
type ForceField struct {
	Name      string
	Params    *ParameterSet
	atomTypes map[string]*AtomType
	classes   map[string]map[string]bool //class name to the set of type names in it. "" holds every type.
	rules     []*atomtype.Rule           //compiled from the Defs, lazily.
}

//New returns an empty force field.
func New() *ForceField {
	return &ForceField{
		Params:    NewParameterSet(),
		atomTypes: make(map[string]*AtomType),
		classes:   map[string]map[string]bool{"": {}},
	}
}

//RegisterAtomType adds an atom type to the force field. Registering two types
//with the same name is an error. The type is also filed under its class and
//under the catch-all "" class.
func (F *ForceField) RegisterAtomType(t AtomType) error {
	if t.Name == "" {
		return &Error{message: "Refusing to register an atom type with no name"}
	}
	if _, ok := F.atomTypes[t.Name]; ok {
		return &Error{message: fmt.Sprintf("Found multiple definitions for atom type: %s", t.Name)}
	}
	cp := t
	cp.Overrides = append([]string(nil), t.Overrides...)
	F.atomTypes[t.Name] = &cp
	if F.classes[t.Class] == nil {
		F.classes[t.Class] = make(map[string]bool)
	}
	F.classes[t.Class][t.Name] = true
	F.classes[""][t.Name] = true
	F.rules = nil //the compiled rules are stale now.
	return nil
}

//AtomType returns the registered type of the name given, or nil.
func (F *ForceField) AtomType(name string) *AtomType {
	return F.atomTypes[name]
}

//TypesOfClass returns the names of the types filed under the class given,
//sorted. The empty class name returns every registered type.
func (F *ForceField) TypesOfClass(class string) []string {
	set := F.classes[class]
	ret := make([]string, 0, len(set))
	for k := range set {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Rules compiles the structural definitions of all registered atom types into
//typing rules, in name order, skipping types without a definition. The
//compiled set is cached until the next registration.
func (F *ForceField) Rules() ([]*atomtype.Rule, error) {
	if F.rules != nil {
		return F.rules, nil
	}
	names := F.TypesOfClass("")
	rules := make([]*atomtype.Rule, 0, len(names))
	for _, name := range names {
		t := F.atomTypes[name]
		if t.Def == "" {
			continue
		}
		r, err := atomtype.NewRule(t.Name, t.Def, t.Overrides)
		if err != nil {
			return nil, errDecorate(err, "Rules")
		}
		rules = append(rules, r)
	}
	F.rules = rules
	return rules, nil
}

//Aliases is an immutable lookup table from accepted spellings of a
//force-field name to its canonical name. It is plain data: build one, or take
//OPLSAliases, and pass it to Resolve where needed.
type Aliases map[string]string

//OPLSAliases returns the historically accepted spellings for the force
//fields this library grew up with.
func OPLSAliases() Aliases {
	return Aliases{
		"opls-aa":  "oplsaa",
		"oplsaa":   "oplsaa",
		"opls":     "oplsaa",
		"trappeua": "trappeua",
	}
}

//Resolve returns the canonical name for the spelling given,
//case-insensitively. A spelling that only contains an accepted alias (say,
//"oplsaa.ff") still resolves; longer aliases are tried first. An unknown name
//comes back unchanged.
func (A Aliases) Resolve(name string) string {
	low := strings.ToLower(name)
	if canon, ok := A[low]; ok {
		return canon
	}
	keys := make([]string, 0, len(A))
	for k := range A {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		if strings.Contains(low, k) {
			return A[k]
		}
	}
	return name
}
