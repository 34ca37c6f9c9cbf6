/*
 * matrix.go, part of tmdstack.
 *
 * Copyright 2026 The tmdstack Authors
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. Within the package a "vector" is a
// row, i.e. the Cartesian coordinates of a point or a lattice vector.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors. Panics if vecs < 1.
func Zeros(vecs int) *Matrix {
	if vecs < 1 {
		panic(ErrShape)
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NewMatrix returns a Matrix with 3 columns built from data. The slice
// is used as the backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 {
		return nil, &Error{"Empty input slice", []string{"NewMatrix"}, true}
	}
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector. Changes in the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.SetRow(i, v[:])
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

// Equal returns true if F and A have the same shape and bit-identical elements.
func (F *Matrix) Equal(A *Matrix) bool {
	if F == nil || A == nil {
		return F == A
	}
	return mat.Equal(F.Dense, A.Dense)
}

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		sep := " "
		if i == 0 {
			sep = ""
		}
		v = append(v, fmt.Sprintf("%s%9.4f %9.4f %9.4f", sep, row[0], row[1], row[2]))
		if i < r-1 {
			v = append(v, "\n")
		}
	}
	v = append(v, " ]")
	return strings.Join(v, "")
}
