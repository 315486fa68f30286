/*
 * v3_test.go, part of mofbuilder.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func sameRow(F *Matrix, i int, want [3]float64) bool {
	const eps = 1e-12
	for j := 0; j < 3; j++ {
		d := F.At(i, j) - want[j]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
}

func TestAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	off, _ := NewMatrix([]float64{2.6, -2.5, 0})
	A.AddVec(A, off)
	if !sameRow(A, 0, [3]float64{3.6, -0.5, 3}) || !sameRow(A, 1, [3]float64{6.6, 2.5, 6}) {
		Te.Errorf("AddVec gave %v", mat.Formatted(A))
	}
	neg, _ := NewMatrix([]float64{-2.6, 2.5, 0})
	A.AddVec(A, neg)
	if !sameRow(A, 1, [3]float64{4, 5, 6}) {
		Te.Errorf("AddVec gave %v", mat.Formatted(A))
	}
	//the vector can be a view of the matrix itself.
	A.AddVec(A, A.VecView(0))
	if !sameRow(A, 0, [3]float64{2, 4, 6}) || !sameRow(A, 1, [3]float64{5, 7, 9}) {
		Te.Errorf("AddVec with a self-view gave %v", mat.Formatted(A))
	}
}

func TestVecView(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	v := A.VecView(1)
	v.Set(0, 1, 100)
	if A.At(1, 1) != 100 {
		Te.Errorf("Changes in the view should be reflected in the matrix: %v", mat.Formatted(A))
	}
}

func TestDelVec(Te *testing.T) {
	for _, i := range []int{0, 1, 2} {
		A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
		B := Zeros(2)
		B.DelVec(A, i)
		k := 0
		for j := 0; j < 3; j++ {
			if j == i {
				continue
			}
			f := float64(j + 1)
			if !sameRow(B, k, [3]float64{f, f, f}) {
				Te.Errorf("Deleting %d: row %d is wrong: %v", i, k, mat.Formatted(B))
			}
			k++
		}
	}
}

func TestStack(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3})
	B, _ := NewMatrix([]float64{4, 5, 6, 7, 8, 9})
	C := Zeros(3)
	C.Stack(A, B)
	if !sameRow(C, 0, [3]float64{1, 2, 3}) || !sameRow(C, 2, [3]float64{7, 8, 9}) {
		Te.Errorf("Stack gave %v", mat.Formatted(C))
	}
}

func TestDense2Matrix(Te *testing.T) {
	A := Dense2Matrix(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	defer func() {
		if r := recover(); r != ErrNotXx3Matrix {
			Te.Errorf("Expected a %q panic, got %v", ErrNotXx3Matrix, r)
		}
	}()
	Dense2Matrix(mat.NewDense(3, 2, nil))
}
