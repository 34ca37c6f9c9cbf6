/*
 * monolayer.go, part of tmdstack.
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

package tmd

import (
	"fmt"
	"math"

	v3 "github.com/rmera/tmdstack/v3"
)

// Atom indexes in a monolayer.
const (
	BottomChalcogen = 0
	Metal           = 1
	TopChalcogen    = 2
)

// Monolayer is a single MX2 reference layer. Its three atoms are always
// ordered bottom chalcogen, metal, top chalcogen, by strictly increasing z.
// A Monolayer can only be obtained from NewMonolayer, and is not modified
// afterwards.
type Monolayer struct {
	lattice *v3.Matrix
	coords  *v3.Matrix
	symbols [3]string
}

// NewMonolayer validates and copies the given lattice vectors (one per row),
// Cartesian coordinates and chemical symbols into a new Monolayer.
// It returns an AssumptionViolationError if there are not exactly 3 atoms, or if
// they are not ordered by increasing z.
func NewMonolayer(lattice, coords *v3.Matrix, symbols []string) (*Monolayer, error) {
	if lattice == nil || coords == nil {
		return nil, &AssumptionViolationError{Reason: "nil lattice or coordinates", deco: []string{"NewMonolayer"}}
	}
	if lattice.NVecs() != 3 {
		return nil, &AssumptionViolationError{Reason: fmt.Sprintf("expected 3 lattice vectors, got %d", lattice.NVecs()), deco: []string{"NewMonolayer"}}
	}
	if coords.NVecs() != 3 || len(symbols) != 3 {
		return nil, &AssumptionViolationError{Reason: fmt.Sprintf("expected 3 atoms, got %d coordinates and %d symbols", coords.NVecs(), len(symbols)), deco: []string{"NewMonolayer"}}
	}
	for i := 0; i < 3; i++ {
		v := coords.Vec(i)
		for _, c := range v {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, &AssumptionViolationError{Reason: fmt.Sprintf("non-finite coordinate for atom %d", i), deco: []string{"NewMonolayer"}}
			}
		}
		if symbols[i] == "" {
			return nil, &AssumptionViolationError{Reason: fmt.Sprintf("empty symbol for atom %d", i), deco: []string{"NewMonolayer"}}
		}
	}
	z0, z1, z2 := coords.At(0, 2), coords.At(1, 2), coords.At(2, 2)
	if !(z0 < z1 && z1 < z2) {
		return nil, &AssumptionViolationError{
			Reason: fmt.Sprintf("atoms not ordered by increasing z: %s %.4f, %s %.4f, %s %.4f", symbols[0], z0, symbols[1], z1, symbols[2], z2),
			deco:   []string{"NewMonolayer"},
		}
	}
	M := &Monolayer{lattice: lattice.Clone(), coords: coords.Clone()}
	copy(M.symbols[:], symbols)
	return M, nil
}

// Lattice returns a copy of the lattice vectors of the monolayer.
func (M *Monolayer) Lattice() *v3.Matrix {
	return M.lattice.Clone()
}

// Coords returns a copy of the Cartesian coordinates of the monolayer.
func (M *Monolayer) Coords() *v3.Matrix {
	return M.coords.Clone()
}

// Symbols returns the chemical symbols, bottom chalcogen first.
func (M *Monolayer) Symbols() []string {
	return []string{M.symbols[0], M.symbols[1], M.symbols[2]}
}

// Z returns the z coordinate of the ith atom.
func (M *Monolayer) Z(i int) float64 {
	return M.coords.At(i, 2)
}

// LatticeConstant returns the in-plane lattice constant of the monolayer, i.e.
// the magnitude of the first component of the first lattice vector. It assumes
// that the cell of the monolayer has its first vector along x.
func LatticeConstant(M *Monolayer) float64 {
	return math.Abs(M.lattice.At(0, 0))
}

// VerticalSeparation returns the distance along z between the metal and the top chalcogen.
func VerticalSeparation(M *Monolayer) float64 {
	return M.Z(TopChalcogen) - M.Z(Metal)
}

// SpeciesPair returns the symbols of the metal and of the chalcogen. The bottom
// chalcogen is taken as representative of both chalcogen sites.
func SpeciesPair(M *Monolayer) (metal, chalcogen string) {
	return M.symbols[Metal], M.symbols[BottomChalcogen]
}

// LayerSpec contains the parameters of one layer that the cell builder needs.
type LayerSpec struct {
	Formula   string
	A         float64 //in-plane lattice constant
	H         float64 //metal to top chalcogen z distance
	Metal     string
	Chalcogen string
}

// Describe extracts the LayerSpec of the monolayer M, which was retrieved for formula.
func Describe(formula string, M *Monolayer) LayerSpec {
	metal, chalcogen := SpeciesPair(M)
	return LayerSpec{
		Formula:   formula,
		A:         LatticeConstant(M),
		H:         VerticalSeparation(M),
		Metal:     metal,
		Chalcogen: chalcogen,
	}
}
