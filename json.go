/*
 * json.go, part of mofbuilder.
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

package chem

import (
	"encoding/json"
	"io"

	v3 "github.com/rmera/mofbuilder/v3"
)

// JSONAtom is a ready-to-serialize container for an atom.
type JSONAtom struct {
	Symbol string
	Coords [3]float64
}

// JSONMolecule is a ready-to-serialize container for a whole molecule.
type JSONMolecule struct {
	Formula string
	Cell    Cell
	PBC     [3]bool
	Atoms   []JSONAtom
}

// JSONWrite encodes mol as JSON and writes it to out.
func JSONWrite(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "JSONWrite")
	}
	J := JSONMolecule{Formula: Formula(mol), Cell: mol.Cell, PBC: mol.PBC, Atoms: make([]JSONAtom, mol.Len())}
	for i := range J.Atoms {
		J.Atoms[i].Symbol = mol.Atom(i).Symbol
		for j := 0; j < 3; j++ {
			J.Atoms[i].Coords[j] = mol.Coords.At(i, j)
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(J); err != nil {
		return Error{message: "Can't encode molecule", deco: []string{"JSONWrite"}, critical: true, err: err}
	}
	return nil
}

// JSONRead decodes a molecule written by JSONWrite.
func JSONRead(in io.Reader) (*Molecule, error) {
	var J JSONMolecule
	if err := json.NewDecoder(in).Decode(&J); err != nil {
		return nil, Error{message: "Can't decode molecule", deco: []string{"JSONRead"}, critical: true, err: err}
	}
	if len(J.Atoms) == 0 {
		return nil, Error{message: "Molecule without atoms", deco: []string{"JSONRead"}, critical: true}
	}
	atoms := make([]*Atom, len(J.Atoms))
	coords := make([]float64, 0, 3*len(J.Atoms))
	for i, a := range J.Atoms {
		atoms[i] = &Atom{Symbol: a.Symbol, Name: a.Symbol, ID: i + 1, Mass: Mass(a.Symbol)}
		coords = append(coords, a.Coords[:]...)
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "JSONRead")
	}
	mol, err := NewMolecule(NewTopology(atoms), c)
	if err != nil {
		return nil, errDecorate(err, "JSONRead")
	}
	mol.Cell = J.Cell
	mol.PBC = J.PBC
	return mol, nil
}
