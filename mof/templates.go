/*
 * templates.go, part of mofbuilder.
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

package mof

import (
	"fmt"
	"path/filepath"

	chem "github.com/rmera/mofbuilder"
)

// Template file names, looked for in Options.TemplateDir.
const (
	MeXnFile   = "MeXn_base.xyz"
	LigandFile = "ligand_base.xyz"
)

// Geometry of the fragments, in A.
const (
	MeXXDirLen     = 1.4 //metal to coordinating atom, along x
	XLinkerXDirLen = 1.2 //coordinating atom to linker, along x

	ligandYShift = -2.5
	cellXBase    = 10 + MeXXDirLen + XLinkerXDirLen
	cellYBase    = 5.0
)

// Indexes in the merged structure.
const (
	metalIndex      = 0
	ringSiteIndex   = 15
	terminalAIndex  = 21
	terminalBIndex  = 22
	pyridineHIndex  = 23
	minMergedLength = pyridineHIndex + 1
)

var coordinatingIndexes = []int{1, 2, 3, 4}

// Templates holds the two fragments a structure is built from.
type Templates struct {
	MeXn   *chem.Molecule
	Ligand *chem.Molecule
}

// LoadTemplates reads MeXn_base.xyz and ligand_base.xyz from dir.
// Errors from the reader are returned as they are.
func LoadTemplates(dir string) (*Templates, error) {
	mexn, err := chem.XYZFileRead(filepath.Join(dir, MeXnFile))
	if err != nil {
		return nil, err
	}
	ligand, err := chem.XYZFileRead(filepath.Join(dir, LigandFile))
	if err != nil {
		return nil, err
	}
	if mexn.Len() < len(coordinatingIndexes)+1 {
		return nil, fmt.Errorf("%w: %s has %d atoms, at least %d needed", ErrTemplateLayout, MeXnFile, mexn.Len(), len(coordinatingIndexes)+1)
	}
	if n := mexn.Len() + ligand.Len(); n < minMergedLength {
		return nil, fmt.Errorf("%w: the templates have %d atoms together, at least %d needed", ErrTemplateLayout, n, minMergedLength)
	}
	return &Templates{MeXn: mexn, Ligand: ligand}, nil
}

// Merge returns a new structure with the MeXn atoms followed by the Ligand atoms,
// the latter displaced so they sit next to the metal center. The structure is
// periodic in all directions. The templates are not modified.
func Merge(t *Templates) *chem.Molecule {
	ligand := t.Ligand.Copy()
	ligand.Translate(MeXXDirLen+XLinkerXDirLen, ligandYShift, 0)
	mol := chem.Concat(t.MeXn, ligand)
	mol.PBC = [3]bool{true, true, true}
	mol.Topology.ResetIDs()
	return mol
}

// CellFor returns the periodic cell for the options given.
func CellFor(o Options) chem.Cell {
	return chem.Cell{cellXBase + o.XStretch, cellYBase + o.VacY, o.VacZ * float64(o.NLayer)}
}
