/*
 * doc.go, part of goff.
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

/*Package smarts parses the SMARTS-like structural patterns used by
force-field atom-type definitions into an explicit syntax tree.

A pattern is a chain of bracketed atom expressions, where each atom may carry
parenthesized branches and a continuation chain, all describing the bonding
directions around it:

	[#6;D4]([H])([H])([H])[#6]

Inside the brackets, primitives are combined with ',' (OR, binds loosest) and
';' or '&' (AND):

	*        any atom
	C, Cl    element by symbol
	#6       element by atomic number
	D4       number of bonded neighbors
	%name    the atom already carries the atom-type label "name"
	R5       in a ring of the size given (parsed, not matchable yet)
	$(...)   recursive sub-pattern (parsed, not matchable yet)

Outside brackets, a lone '*' or element symbol is shorthand for an atom
position with that single primitive, so the pattern above is also written

	[#6;D4](H)(H)(H)C

An atom expression may be followed by an integer label, which is parsed and
kept but plays no role in matching.

The package only builds the tree; matching against a molecule lives in package
atomtype.*/
package smarts
