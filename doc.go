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

/*Package goff provides the molecular-topology types used by the rest of the
library to assign force-field atom types and to build bonded interaction terms.



	**goff Capabilities**

    Holds atoms, bonds and per-atom bonded-neighbor lists for a molecule.

    Perceives bonds from Cartesian coordinates with a simple
	covalent-radii distance criterium.

    Parses SMARTS-like structural patterns and matches them against the
	bonding environment of each atom (subpackage smarts).

    Assigns atom types by running a set of pattern rules, with rule
	overriding, to a fixed point over all atoms (subpackage atomtype).

    Generates all angles, proper and Ryckaert-Bellemans torsions,
	impropers and 1-4 pairs implied by the bond graph (subpackage bonded).

    Reads force-field definitions, plain or gzipped, in an OpenMM-style
	XML layout, and applies them to a topology (subpackage forcefield).


The library only deals with connectivity and type assignment. It does not
minimize structures, derive force-field parameters or convert units; numbers
are taken from the parameter tables as they come.*/
package goff
