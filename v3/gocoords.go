/*
 * gocoords.go, part of mofbuilder.
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

package v3

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// AddVec adds the vector vec to each vector of A, putting the result
// on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	//vec could be a view of A or F, so we copy it first.
	v := [3]float64{vec.At(0, 0), vec.At(0, 1), vec.At(0, 2)}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+v[j])
		}
	}
}

// DelVec puts in F a copy of A without the vector i.
// F must have exactly one vector less than A.
func (F *Matrix) DelVec(A *Matrix, i int) {
	ar := A.NVecs()
	fr := F.NVecs()
	if i >= ar || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	if fr != ar-1 {
		panic(ErrShape)
	}
	if i > 0 {
		F.View(0, i).Copy(A.View(0, i).Dense)
	}
	if i < ar-1 {
		F.View(i, ar-i-1).Copy(A.View(i+1, ar-i-1).Dense)
	}
}
