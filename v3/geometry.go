/*
 * geometry.go, part of tmdstack.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// Norm returns the Euclidean norm of the ith vector of F.
func (F *Matrix) Norm(i int) float64 {
	return mat.Norm(F.VecView(i), 2)
}

// Det returns the determinant of F, which must have exactly 3 vectors.
// For a lattice this is the signed cell volume.
func (F *Matrix) Det() float64 {
	if F.NVecs() != 3 {
		panic(ErrShape)
	}
	return mat.Det(F.Dense)
}

// Inverse returns the inverse of F, which must have exactly 3 vectors.
func (F *Matrix) Inverse() (*Matrix, error) {
	if F.NVecs() != 3 {
		return nil, &Error{fmt.Sprintf("Can only invert 3x3 matrices, got %d vectors", F.NVecs()), []string{"Inverse"}, true}
	}
	if math.Abs(F.Det()) <= appzero {
		return nil, &Error{string(ErrSingular), []string{"Inverse"}, true}
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(F.Dense); err != nil {
		return nil, &Error{fmt.Sprintf("Can't invert matrix: %s", err), []string{"Inverse"}, true}
	}
	return &Matrix{inv}, nil
}

// ToFractional puts in F the coordinates of the vectors in cart expressed in
// the basis given by the rows of lattice, i.e. F*lattice = cart.
func (F *Matrix) ToFractional(cart, lattice *Matrix) error {
	if F.NVecs() != cart.NVecs() {
		return &Error{string(ErrShape), []string{"ToFractional"}, true}
	}
	inv, err := lattice.Inverse()
	if err != nil {
		err.(*Error).Decorate("ToFractional")
		return err
	}
	F.Mul(cart.Dense, inv.Dense)
	return nil
}

const appzero float64 = 1e-12 //Everything equal or less than this is considered zero.
