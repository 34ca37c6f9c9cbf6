/*
 * poscar.go, part of tmdstack.
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

package cellio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	tmd "github.com/rmera/tmdstack"
)

// WritePOSCAR writes C to w as a VASP 5 POSCAR file in Cartesian coordinates.
// Atoms are grouped by species, in order of first appearance, keeping their
// relative order within each species. If title is empty, the layer formulas are used.
func WritePOSCAR(w io.Writer, C *tmd.Cell, title string) error {
	if err := C.Corrupted(); err != nil {
		return err
	}
	if title == "" {
		title = cellTitle(C)
	}
	species := C.Species()
	groups := make(map[string][]int, len(species))
	for i, s := range C.Symbols {
		groups[s] = append(groups[s], i)
	}
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "   1.00000000000000")
	for i := 0; i < 3; i++ {
		v := C.Lattice.Vec(i)
		fmt.Fprintf(out, "  %20.14f %20.14f %20.14f\n", v[0], v[1], v[2])
	}
	counts := make([]string, len(species))
	for i, s := range species {
		counts[i] = fmt.Sprintf("%d", len(groups[s]))
	}
	fmt.Fprintf(out, "   %s\n", strings.Join(species, "   "))
	fmt.Fprintf(out, "   %s\n", strings.Join(counts, "   "))
	fmt.Fprintln(out, "Cartesian")
	for _, s := range species {
		for _, i := range groups[s] {
			c := C.Coords.Vec(i)
			fmt.Fprintf(out, "  %20.14f %20.14f %20.14f\n", c[0], c[1], c[2])
		}
	}
	return errors.Wrap(out.Flush(), "writing POSCAR")
}

func cellTitle(C *tmd.Cell) string {
	if len(C.Layers) == 0 {
		return strings.Join(C.Species(), "")
	}
	f := make([]string, len(C.Layers))
	for i, l := range C.Layers {
		f[i] = l.Formula
	}
	return strings.Join(f, "/")
}
