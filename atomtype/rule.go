/*
 * rule.go, part of goff.
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

/*Package atomtype assigns force-field atom types to the atoms of a molecule
by matching named structural pattern rules against each atom's bonding
environment, with rule overriding, until no rule produces a new decision.*/
package atomtype

import (
	"fmt"
	"sort"

	"github.com/emolina/goff"
	"github.com/emolina/goff/smarts"
)

//Rule is a named atom-type classifier: a structural pattern plus the set of
//names of other rules whose claim on an atom this rule revokes when it
//matches. A Rule is immutable after construction.
type Rule struct {
	Name      string
	SMARTS    string
	AST       *smarts.Chain
	Overrides map[string]bool
}

//NewRule parses the pattern given and returns the rule. overrides may be nil.
func NewRule(name, pattern string, overrides []string) (*Rule, error) {
	ast, err := smarts.Parse(pattern)
	if err != nil {
		return nil, errDecorate(err, "NewRule "+name)
	}
	ov := make(map[string]bool, len(overrides))
	for _, v := range overrides {
		ov[v] = true
	}
	return &Rule{Name: name, SMARTS: pattern, AST: ast, Overrides: ov}, nil
}

func (R *Rule) String() string {
	ov := make([]string, 0, len(R.Overrides))
	for k := range R.Overrides {
		ov = append(ov, k)
	}
	sort.Strings(ov)
	return fmt.Sprintf("Rule(%s,%s,%v)", R.Name, R.SMARTS, ov)
}

//errDecorate asserts that err implements goff.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(goff.Error)
	err2.Decorate(caller)
	return err2
}
