/*
 * entry.go, part of tmdstack.
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

package monodb

import (
	"fmt"

	tmd "github.com/rmera/tmdstack"
	v3 "github.com/rmera/tmdstack/v3"
)

// Entry is one stored monolayer calculation. Either Symbols or Numbers
// identify the atoms. If both are given, Numbers wins.
type Entry struct {
	ID        int64         `yaml:"-"`
	Formula   string        `yaml:"formula"`
	XC        string        `yaml:"xc"`
	Phase     string        `yaml:"phase"`
	Symbols   []string      `yaml:"symbols,omitempty"`
	Numbers   []int         `yaml:"numbers,omitempty"`
	Positions [][3]float64  `yaml:"positions"`
	Cell      [3][3]float64 `yaml:"cell"`
}

// FromMonolayer returns an Entry holding M, filed under formula, xc and phase.
func FromMonolayer(formula, xc, phase string, M *tmd.Monolayer) Entry {
	e := Entry{Formula: formula, XC: xc, Phase: phase, Symbols: M.Symbols()}
	coords := M.Coords()
	lattice := M.Lattice()
	e.Positions = make([][3]float64, coords.NVecs())
	for i := range e.Positions {
		e.Positions[i] = coords.Vec(i)
	}
	for i := 0; i < 3; i++ {
		e.Cell[i] = lattice.Vec(i)
	}
	return e
}

func (e Entry) symbols() ([]string, error) {
	if len(e.Numbers) == 0 {
		return e.Symbols, nil
	}
	s := make([]string, len(e.Numbers))
	for i, z := range e.Numbers {
		sym, err := tmd.SymbolFromNumber(z)
		if err != nil {
			return nil, err
		}
		s[i] = sym
	}
	return s, nil
}

func (e Entry) numbers() ([]int, error) {
	if len(e.Numbers) != 0 {
		return e.Numbers, nil
	}
	n := make([]int, len(e.Symbols))
	for i, s := range e.Symbols {
		z, err := tmd.AtomicNumber(s)
		if err != nil {
			return nil, err
		}
		n[i] = z
	}
	return n, nil
}

// ToStructure returns the Monolayer stored in e. It returns a tmd.AssumptionViolationError
// if the entry doesn't describe a valid monolayer.
func (e Entry) ToStructure() (*tmd.Monolayer, error) {
	symbols, err := e.symbols()
	if err != nil {
		return nil, &tmd.AssumptionViolationError{Formula: e.Formula, Reason: err.Error()}
	}
	if len(e.Positions) == 0 {
		return nil, &tmd.AssumptionViolationError{Formula: e.Formula, Reason: "no atoms"}
	}
	data := make([]float64, 0, 3*len(e.Positions))
	for _, p := range e.Positions {
		data = append(data, p[:]...)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, err
	}
	cell := make([]float64, 0, 9)
	for _, v := range e.Cell {
		cell = append(cell, v[:]...)
	}
	lattice, err := v3.NewMatrix(cell)
	if err != nil {
		return nil, err
	}
	M, err := tmd.NewMonolayer(lattice, coords, symbols)
	if err != nil {
		if av, ok := err.(*tmd.AssumptionViolationError); ok && av.Formula == "" {
			av.Formula = e.Formula
		}
		return nil, err
	}
	return M, nil
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s, %s, %d atoms)", e.Formula, e.XC, e.Phase, len(e.Positions))
}
