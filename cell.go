/*
 * cell.go, part of tmdstack.
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

	v3 "github.com/rmera/tmdstack/v3"
)

// LayerInfo records how one layer was placed in a Cell.
type LayerInfo struct {
	Formula  string
	Registry Registry
	Shift    Shift
	A        float64 //the layer's own lattice constant, not necessarily the one of the cell.
	H        float64
	BaseZ    float64 //z of the bottom chalcogen
}

// Cell is a periodic heterostructure. Lattice holds a1, a2 and a3 as rows.
// Symbols and Coords are index-aligned, with 3 atoms per layer in the order
// chalcogen, metal, chalcogen, and layers in stacking order.
type Cell struct {
	Lattice *v3.Matrix
	Symbols []string
	Coords  *v3.Matrix
	Layers  []LayerInfo
}

// Len returns the number of atoms in the cell.
func (C *Cell) Len() int {
	return len(C.Symbols)
}

// Registries returns the registry of each layer, bottom first.
func (C *Cell) Registries() []Registry {
	ret := make([]Registry, len(C.Layers))
	for i, l := range C.Layers {
		ret[i] = l.Registry
	}
	return ret
}

// Species returns the distinct chemical symbols in the cell, in order of first appearance.
func (C *Cell) Species() []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, 4)
	for _, s := range C.Symbols {
		if !seen[s] {
			seen[s] = true
			ret = append(ret, s)
		}
	}
	return ret
}

// Fractional returns the coordinates of all atoms in the basis of the cell lattice vectors.
func (C *Cell) Fractional() (*v3.Matrix, error) {
	frac := v3.Zeros(C.Coords.NVecs())
	if err := frac.ToFractional(C.Coords, C.Lattice); err != nil {
		return nil, errDecorate(err, "Cell.Fractional")
	}
	return frac, nil
}

// Corrupted returns an error if the symbols and coordinates of C are not consistent.
func (C *Cell) Corrupted() error {
	if C.Lattice == nil || C.Coords == nil {
		return fmt.Errorf("Cell: nil lattice or coordinates")
	}
	var nlat, natoms int
	//NVecs panics on matrices that don't have 3 columns.
	if err := v3.Maybe(func() { nlat, natoms = C.Lattice.NVecs(), C.Coords.NVecs() }); err != nil {
		return errDecorate(err, "Cell.Corrupted")
	}
	if nlat != 3 {
		return fmt.Errorf("Cell: %d lattice vectors", nlat)
	}
	if natoms != len(C.Symbols) {
		return fmt.Errorf("Cell: mismatched number of atoms/coordinates: %d, %d", len(C.Symbols), natoms)
	}
	if len(C.Layers) != 0 && 3*len(C.Layers) != len(C.Symbols) {
		return fmt.Errorf("Cell: %d atoms for %d layers", len(C.Symbols), len(C.Layers))
	}
	return nil
}
