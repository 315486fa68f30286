/*
 * doc.go, part of mofbuilder.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

/*
Package mof builds model metal-organic framework structures from two fragment
templates: a metal center with its coordinating atoms (MeXn_base.xyz) and an
organic linker (ligand_base.xyz).

The linker is displaced so it sits next to the metal center, both fragments are
merged (MeXn atoms first), the metal and coordinating elements are substituted,
the linker is optionally changed to a half-anthraquinone, anthraquinone or
pyridine type, the result can be stacked in several layers along z, and finally
it is centered in its periodic cell.

Later steps address atoms by their position in the merged structure, so the
templates must keep the atom order this package expects:

	0      metal center
	1-4    coordinating atoms
	15     ring carbon that becomes N in the pyridine linker
	21, 22 terminal hydrogens that become O in the (half-)anthraquinone linkers
	23     hydrogen removed in the pyridine linker
*/
package mof
