/*
 * typer.go, part of goff.
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

package atomtype

import (
	"github.com/emolina/goff"
)

type decision struct {
	at   *goff.Atom
	rule *Rule
}

/*AssignTypes runs every rule against every atom, repeatedly, until a full
pass produces no new decision, mutating the atoms' Whitelist and Blacklist in
place (both are reset first). Within a pass, a rule is only tried on an atom
for which it is neither whitelisted nor blacklisted; a successful match
whitelists the rule's name on that atom and blacklists every name the rule
overrides. Decisions of a pass are buffered and committed at the pass
boundary, so every match within one pass observes the previous pass's state;
this keeps the run reproducible and leaves room for matching the atoms of one
pass concurrently.

Termination: whitelist and blacklist membership only ever grows and is bounded
by the number of rules, so at worst rules*atoms passes happen.

Two rules may both end up whitelisted on the same atom when neither overrides
the other; that is allowed, and left for the caller to resolve or reject. When
two rules exclude each other only through %label primitives, the outcome
depends on pass order; whichever rule gets its label granted first keeps the
atoms it decided. That is the contract, not a defect to resolve with some
global rule priority.

The only possible error is an UnsupportedError coming from a rule that uses a
primitive the matcher doesn't implement; the run stops at the first one.*/
func AssignTypes(atoms []*goff.Atom, rules []*Rule) error {
	for _, at := range atoms {
		at.Whitelist = make(map[string]bool)
		at.Blacklist = make(map[string]bool)
	}
	for {
		found := make([]decision, 0)
		for _, at := range atoms {
			for _, r := range rules {
				if at.Whitelist[r.Name] || at.Blacklist[r.Name] {
					continue
				}
				ok, err := r.Matches(at)
				if err != nil {
					return errDecorate(err, "AssignTypes")
				}
				if ok {
					found = append(found, decision{at, r})
				}
			}
		}
		if len(found) == 0 {
			return nil //fixed point reached.
		}
		for _, d := range found {
			d.at.Whitelist[d.rule.Name] = true
			for o := range d.rule.Overrides {
				d.at.Blacklist[o] = true
			}
		}
	}
}
