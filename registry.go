/*
 * registry.go, part of tmdstack.
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

import "math"

// Registry is the in-plane alignment of a layer in the stack.
// In registry A the chalcogens sit on the lattice points and the metal on the
// (1/3, 2/3) hollow site; registry B swaps both sites.
type Registry int

const (
	RegistryA Registry = iota
	RegistryB
)

// Toggle returns the other registry.
func (r Registry) Toggle() Registry {
	if r == RegistryA {
		return RegistryB
	}
	return RegistryA
}

func (r Registry) String() string {
	if r == RegistryA {
		return "A"
	}
	return "B"
}

var (
	siteOrigin = [2]float64{0.0, 0.0}
	siteHollow = [2]float64{1.0 / 3.0, 2.0 / 3.0}
)

// sites returns the fractional in-plane positions of the chalcogen and metal
// atoms of a layer with registry r.
func (r Registry) sites() (chalcogen, metal [2]float64) {
	if r == RegistryA {
		return siteOrigin, siteHollow
	}
	return siteHollow, siteOrigin
}

// Shift is an in-plane displacement of a whole layer, in fractional
// coordinates along a1 and a2.
type Shift struct {
	DA float64 `toml:"da" json:"da"`
	DB float64 `toml:"db" json:"db"`
}

// apply returns site displaced by S and wrapped into [0,1).
func (S Shift) apply(site [2]float64) [2]float64 {
	return [2]float64{wrap(site[0] + S.DA), wrap(site[1] + S.DB)}
}

// wrap returns f modulo 1, always in [0,1), also for negative f.
func wrap(f float64) float64 {
	f = math.Mod(f, 1)
	if f < 0 {
		f += 1
	}
	if f == 1 || f == 0 { //the first can happen for tiny negative f, the second turns -0 into 0.
		return 0
	}
	return f
}
