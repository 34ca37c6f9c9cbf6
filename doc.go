/*
 * doc.go, part of tmdstack.
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

/*
Package tmd is the main package of the tmdstack library. It builds periodic cells for
layered transition-metal dichalcogenide (MX2) heterostructures by stacking reference
monolayers retrieved from a structure database.

	**tmdstack capabilities**

	Retrieves single-layer reference structures (2H phase, PBE functional) from any
	StructureProvider, and validates that their atoms come in the order bottom
	chalcogen, metal, top chalcogen (increasing z).

	Extracts the in-plane lattice constant, the intralayer metal-chalcogen height and
	the species of each layer.

	Stacks the layers on a hexagonal lattice (Setyawan-Curtarolo basis), either with
	AB registry (alternating between layers) or AA registry (constant), with optional
	per-layer in-plane shifts given in fractional coordinates.

	Builds several independent stacks concurrently.

The lattice constant of the stack is the one of the first layer. Layers whose own lattice
constant differs from it by more than Builder.MismatchTolerance produce a warning, or an
AssumptionViolationError if Builder.Strict is set.

Positions and lattice vectors are stored in v3.Matrix values (package
github.com/rmera/tmdstack/v3), one vector per row. The monodb package provides SQLite and
YAML backed structure providers, cellio writes the resulting cells in XYZ, POSCAR and JSON
formats, and cellplot draws a side view of a stack.
*/
package tmd
