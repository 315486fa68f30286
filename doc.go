/*
 * doc.go, part of mofbuilder.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
Package chem provides the atom and molecule structures used by mofbuilder,
facilities for reading and writing structure files and a few geometric manipulations
of periodic structures.

	Reads XYZ and extended XYZ files (cell and periodicity from the comment line).

	Writes extended XYZ, PDB (with a CRYST1 record) and JSON files.

	Reads and writes gzip (.gz) and zstd (.zst) compressed files transparently.

	Translates whole molecules or selected atoms, concatenates molecules and
	centers a molecule in its periodic cell.

Coordinates are kept in a v3.Matrix, one row per atom, in the same order as the
atoms of the Topology. Many functions here panic instead of returning errors when
they are given out-of-range indexes or inconsistent objects, since that means the
calling program is wrong.
*/
package chem
