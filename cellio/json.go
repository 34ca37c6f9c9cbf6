/*
 * json.go, part of tmdstack.
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
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	tmd "github.com/rmera/tmdstack"
)

// A ready-to-serialize container for a layer.
type jsonLayer struct {
	Formula  string     `json:"formula"`
	Registry string     `json:"registry"`
	Shift    [2]float64 `json:"shift"`
	A        float64    `json:"a"`
	H        float64    `json:"h"`
	BaseZ    float64    `json:"base_z"`
}

// A ready-to-serialize container for a cell.
type jsonCell struct {
	Lattice   [3][3]float64 `json:"lattice"`
	PBC       [3]bool       `json:"pbc"`
	Symbols   []string      `json:"symbols"`
	Positions [][3]float64  `json:"positions"`
	Layers    []jsonLayer   `json:"layers,omitempty"`
}

// WriteJSON writes C to w as an indented JSON document.
func WriteJSON(w io.Writer, C *tmd.Cell) error {
	if err := C.Corrupted(); err != nil {
		return err
	}
	J := jsonCell{
		PBC:       [3]bool{true, true, true},
		Symbols:   C.Symbols,
		Positions: make([][3]float64, C.Len()),
	}
	for i := 0; i < 3; i++ {
		J.Lattice[i] = C.Lattice.Vec(i)
	}
	for i := range J.Positions {
		J.Positions[i] = C.Coords.Vec(i)
	}
	for _, l := range C.Layers {
		J.Layers = append(J.Layers, jsonLayer{
			Formula:  l.Formula,
			Registry: l.Registry.String(),
			Shift:    [2]float64{l.Shift.DA, l.Shift.DB},
			A:        l.A,
			H:        l.H,
			BaseZ:    l.BaseZ,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(J), "writing JSON")
}
