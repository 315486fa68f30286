/*
 * geometric.go, part of mofbuilder.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BoundingBox returns the smallest and largest value of each cartesian
// coordinate in coords.
func BoundingBox(coords *v3.Matrix) (lo, hi [3]float64) {
	col := make([]float64, coords.NVecs())
	for j := 0; j < 3; j++ {
		mat.Col(col, j, coords)
		lo[j] = floats.Min(col)
		hi[j] = floats.Max(col)
	}
	return lo, hi
}

// Translate displaces all the atoms in the molecule by (x, y, z).
func (M *Molecule) Translate(x, y, z float64) {
	vec, _ := v3.NewMatrix([]float64{x, y, z})
	M.Coords.AddVec(M.Coords, vec)
}

// TranslateSome displaces the atoms with indexes in list by (x, y, z).
func (M *Molecule) TranslateSome(list []int, x, y, z float64) error {
	d := [3]float64{x, y, z}
	for _, i := range list {
		if i >= M.Len() || i < 0 {
			return Error{message: fmt.Sprintf("Atom %d out of range (%d atoms)", i, M.Len()), deco: []string{"TranslateSome"}, critical: true}
		}
		c := M.Coord(i)
		for j := 0; j < 3; j++ {
			c.Set(0, j, c.At(0, j)+d[j])
		}
	}
	return nil
}

// Center translates all the atoms so the center of their bounding box matches
// the center of the cell. Axes where the cell has zero length are not touched.
// It returns the translation applied.
func (M *Molecule) Center() [3]float64 {
	var shift [3]float64
	if M.Len() == 0 {
		return shift
	}
	lo, hi := BoundingBox(M.Coords)
	for i := 0; i < 3; i++ {
		if M.Cell[i] == 0 {
			continue
		}
		shift[i] = 0.5*M.Cell[i] - 0.5*(lo[i]+hi[i])
	}
	M.Translate(shift[0], shift[1], shift[2])
	return shift
}
