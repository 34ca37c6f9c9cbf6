/*
 * v3_test.go, part of tmdstack.
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
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	if v := A.Vec(1); v != [3]float64{4, 5, 6} {
		Te.Errorf("Wrong second vector %v", v)
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("A slice of 4 elements should not make a Matrix")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("An empty slice should not make a Matrix")
	}
}

func TestVecView(Te *testing.T) {
	A := Zeros(3)
	View := A.VecView(1)
	View.Set(0, 2, 100)
	if A.At(1, 2) != 100 {
		Te.Errorf("Changes in the view were not reflected in the matrix:%v", A)
	}
	C := A.Clone()
	C.SetVec(0, [3]float64{1, 1, 1})
	if A.At(0, 0) != 0 {
		Te.Error("Clone shares storage with the original")
	}
	if A.Equal(C) {
		Te.Error("Different matrices compare equal")
	}
	fmt.Println("View\n", A, "\n", C)
}

func TestOutOfRange(Te *testing.T) {
	A := Zeros(2)
	err := Maybe(func() { A.Vec(2) })
	if err == nil {
		Te.Error("Out of range access did not fail")
	}
	if _, ok := err.(*Error); !ok {
		Te.Errorf("Expected a *v3.Error, got %T", err)
	}
}

func TestSingularLattice(Te *testing.T) {
	frac := Zeros(1)
	err := frac.ToFractional(Zeros(1), Zeros(3))
	if err == nil {
		Te.Fatal("Singular lattice did not fail")
	}
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("Expected a *v3.Error, got %T", err)
	}
	deco := e.Decorate("")
	if len(deco) != 2 || deco[0] != "Inverse" || deco[1] != "ToFractional" {
		Te.Errorf("Wrong decoration %v", deco)
	}
	if !e.Critical() {
		Te.Error("Singular lattice error should be critical")
	}
}

func TestFractional(Te *testing.T) {
	a := 3.19
	lat, err := NewMatrix([]float64{
		a / 2, -a * math.Sqrt(3) / 2, 0,
		a / 2, a * math.Sqrt(3) / 2, 0,
		0, 0, 20,
	})
	if err != nil {
		Te.Fatal(err)
	}
	if vol := lat.Det(); math.Abs(vol-a*a*math.Sqrt(3)/2*20) > 1e-9 {
		Te.Errorf("Wrong cell volume %f", vol)
	}
	if n := lat.Norm(0); math.Abs(n-a) > 1e-12 {
		Te.Errorf("|a1| should be %f, got %f", a, n)
	}
	//the point (1/3, 2/3, 0.5) in fractional coordinates.
	cart := Zeros(1)
	for k := 0; k < 3; k++ {
		cart.Set(0, k, lat.At(0, k)/3+2*lat.At(1, k)/3+0.5*lat.At(2, k))
	}
	frac := Zeros(1)
	if err := frac.ToFractional(cart, lat); err != nil {
		Te.Fatal(err)
	}
	want := [3]float64{1.0 / 3, 2.0 / 3, 0.5}
	got := frac.Vec(0)
	for k := range want {
		if math.Abs(got[k]-want[k]) > 1e-12 {
			Te.Errorf("Fractional component %d: want %f got %f", k, want[k], got[k])
		}
	}
	flat := Zeros(3)
	flat.SetVec(0, [3]float64{1, 0, 0})
	flat.SetVec(1, [3]float64{0, 1, 0})
	if _, err := flat.Inverse(); err == nil {
		Te.Error("A singular lattice was inverted")
	}
}
