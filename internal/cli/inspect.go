/*
 * inspect.go, part of tmdstack.
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

package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmera/tmdstack/cellio"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect file.xyz",
		Short: "Summarize a cell written in extended XYZ format",
		Args:  cobra.ExactArgs(1),
		// inspect needs neither the configuration nor the database.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			C, err := cellio.ReadXYZFile(args[0])
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			zmin, zmax := math.Inf(1), math.Inf(-1)
			for i, s := range C.Symbols {
				counts[s]++
				z := C.Coords.At(i, 2)
				zmin = math.Min(zmin, z)
				zmax = math.Max(zmax, z)
			}
			species := C.Species()
			parts := make([]string, len(species))
			for i, s := range species {
				parts[i] = fmt.Sprintf("%s%d", s, counts[s])
			}
			fmt.Fprintf(a.stdout, "%s: %d atoms (%s)\n", args[0], C.Len(), strings.Join(parts, " "))
			fmt.Fprintf(a.stdout, "z range: %.4f to %.4f A\n", zmin, zmax)
			if C.Lattice == nil {
				fmt.Fprintln(a.stdout, "no lattice")
				return nil
			}
			fmt.Fprintf(a.stdout, "a: %.4f A  b: %.4f A  c: %.4f A\n", C.Lattice.Norm(0), C.Lattice.Norm(1), C.Lattice.Norm(2))
			fmt.Fprintf(a.stdout, "vacuum: %.4f A\n", C.Lattice.At(2, 2)-zmax)
			return nil
		},
	}
}
