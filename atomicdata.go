/*
 * atomicdata.go, part of tmdstack.
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

import "fmt"

//A map for assigning atomic numbers to elements.
//Only the chalcogens and the metals that form MX2 monolayers
//in the usual 2D materials databases are present.
var symbolNumber = map[string]int{
	"O":  8,
	"S":  16,
	"Sc": 21,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Ge": 32,
	"Se": 34,
	"Y":  39,
	"Zr": 40,
	"Nb": 41,
	"Mo": 42,
	"Pd": 46,
	"Sn": 50,
	"Te": 52,
	"Hf": 72,
	"Ta": 73,
	"W":  74,
	"Re": 75,
	"Pt": 78,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"O":  0.66,
	"S":  1.05,
	"Sc": 1.70,
	"Ti": 1.60,
	"V":  1.53,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.50, //hs
	"Ni": 1.24,
	"Ge": 1.20,
	"Se": 1.20,
	"Y":  1.90,
	"Zr": 1.75,
	"Nb": 1.64,
	"Mo": 1.54,
	"Pd": 1.39,
	"Sn": 1.39,
	"Te": 1.38,
	"Hf": 1.75,
	"Ta": 1.70,
	"W":  1.62,
	"Re": 1.51,
	"Pt": 1.36,
}

var chalcogens = map[string]bool{"O": true, "S": true, "Se": true, "Te": true}

// AtomicNumber returns the atomic number of the element with the given symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolNumber[symbol]
	if !ok {
		return 0, fmt.Errorf("AtomicNumber: unknown element %q", symbol)
	}
	return z, nil
}

// SymbolFromNumber returns the chemical symbol of the element with atomic number z.
func SymbolFromNumber(z int) (string, error) {
	for k, v := range symbolNumber {
		if v == z {
			return k, nil
		}
	}
	return "", fmt.Errorf("SymbolFromNumber: unknown atomic number %d", z)
}

// CovalentRadius returns the covalent radius, in A, of the element, or 1.5 if
// the element is not tabulated.
func CovalentRadius(symbol string) float64 {
	if r, ok := symbolCovrad[symbol]; ok {
		return r
	}
	return 1.5
}

// IsChalcogen returns true for O, S, Se and Te.
func IsChalcogen(symbol string) bool {
	return chalcogens[symbol]
}
