/*
 * chem.go, part of mofbuilder.
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
	"fmt"

	v3 "github.com/rmera/mofbuilder/v3"
	"gonum.org/v1/gonum/mat"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

// Atom contains the information of an atom except for the coordinates, which will be in a matrix.
type Atom struct {
	Name    string
	ID      int
	MolName string
	MolID   int
	Mass    float64
	Symbol  string
}

// Copy returns a copy of the Atom object.
func (N *Atom) Copy() *Atom {
	if N == nil {
		panic("Attempted to copy a nil atom")
	}
	r := *N
	return &r
}

// SetSymbol changes the element of the atom, updating its mass.
// The name is changed only if it was just the old symbol.
func (N *Atom) SetSymbol(symbol string) {
	if N.Name == "" || N.Name == N.Symbol {
		N.Name = symbol
	}
	N.Symbol = symbol
	N.Mass = Mass(symbol)
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time
// (i.e. everything except for coordinates).
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a topology with the given atoms.
// The slice is used, not copied.
func NewTopology(ats []*Atom) *Topology {
	if ats == nil {
		ats = make([]*Atom, 0)
	}
	return &Topology{Atoms: ats}
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic(fmt.Sprintf("Topology: Requested Atom %d out of bounds (%d atoms)", i, T.Len()))
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// CopyAtoms returns a topology with copies of all the atoms of T.
func (T *Topology) CopyAtoms() *Topology {
	r := &Topology{Atoms: make([]*Atom, T.Len())}
	for key, val := range T.Atoms {
		r.Atoms[key] = val.Copy()
	}
	return r
}

// ResetIDs sets the current order of atoms as ID for all atoms, starting from 1.
func (T *Topology) ResetIDs() {
	for key := range T.Atoms {
		T.Atoms[key].ID = key + 1
	}
}

/**Type Molecule**/

// Cell holds the lengths of an orthogonal periodic box, in A.
type Cell [3]float64

// Molecule is a set of atoms with one set of coordinates, plus the
// periodic box that encloses them.
type Molecule struct {
	*Topology
	Coords *v3.Matrix
	Cell   Cell
	PBC    [3]bool
}

// NewMolecule makes a molecule with the atoms in top and the coordinates
// coords. It returns an error if either is nil or if they don't have the same length.
func NewMolecule(top *Topology, coords *v3.Matrix) (*Molecule, error) {
	if top == nil {
		return nil, Error{message: "Supplied a nil Topology", deco: []string{"NewMolecule"}, critical: true}
	}
	if coords == nil {
		return nil, Error{message: "Supplied nil coordinates", deco: []string{"NewMolecule"}, critical: true}
	}
	mol := &Molecule{Topology: top, Coords: coords}
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

// Corrupted checks whether the molecule is corrupted, i.e. the
// coordinates don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	if M.Topology == nil || M.Coords == nil {
		return Error{message: "Molecule without atoms or coordinates", deco: []string{"Corrupted"}, critical: true}
	}
	if M.Len() != M.Coords.NVecs() {
		return Error{message: fmt.Sprintf("Inconsistent coordinates/atoms: Atoms %d, coords: %d", M.Len(), M.Coords.NVecs()), deco: []string{"Corrupted"}, critical: true}
	}
	return nil
}

// Copy returns a deep copy of the molecule, including coordinates, cell and PBC.
func (M *Molecule) Copy() *Molecule {
	if err := M.Corrupted(); err != nil {
		panic(err.Error()) //copying a corrupted molecule means that the program is wrong.
	}
	c := v3.Dense2Matrix(mat.DenseCopyOf(M.Coords))
	return &Molecule{Topology: M.CopyAtoms(), Coords: c, Cell: M.Cell, PBC: M.PBC}
}

// Coord returns a view of the coordinates of the atom i.
// Changes in the view are reflected in the molecule.
func (M *Molecule) Coord(i int) *v3.Matrix {
	if i >= M.Len() || i < 0 {
		panic(fmt.Sprintf("Requested coordinate (%d) out of bounds (%d)", i, M.Len()))
	}
	return M.Coords.VecView(i)
}

// Del deletes atom i and its coordinates from the molecule. The indexes of all atoms
// after i decrease by one.
func (M *Molecule) Del(i int) error {
	if i >= M.Len() || i < 0 {
		return Error{message: fmt.Sprintf("Tried to delete atom %d out of bounds (%d atoms)", i, M.Len()), deco: []string{"Del"}, critical: true}
	}
	if M.Len() == 1 {
		return Error{message: "Can't delete the only atom of a molecule", deco: []string{"Del"}, critical: true}
	}
	c := v3.Zeros(M.Len() - 1)
	c.DelVec(M.Coords, i)
	M.Atoms = append(M.Atoms[:i], M.Atoms[i+1:]...)
	M.Coords = c
	return nil
}

// Append adds the atoms and coordinates of B (copied) at the end of M.
// The cell and PBC of M are not changed.
func (M *Molecule) Append(B *Molecule) {
	c := v3.Zeros(M.Len() + B.Len())
	c.Stack(M.Coords, B.Coords)
	for _, at := range B.Atoms {
		M.Atoms = append(M.Atoms, at.Copy())
	}
	M.Coords = c
}

// Concat returns a new molecule with copies of the atoms and coordinates of A followed
// by those of B. The cell and PBC are taken from A.
func Concat(A, B *Molecule) *Molecule {
	r := A.Copy()
	r.Append(B)
	return r
}
