/*
 * build.go, part of tmdstack.
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
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/tmdstack/v3"
)

// DefaultMismatchTolerance is the largest relative difference between the lattice
// constant of a layer and the one of the first layer that is accepted silently.
const DefaultMismatchTolerance = 0.05

// StackSpec is a request for a heterostructure.
type StackSpec struct {
	Formulas   []string `toml:"formulas"`
	CSep       float64  `toml:"c_sep"`  //chalcogen-chalcogen gap between layers, A
	Vacuum     float64  `toml:"vacuum"` //space above the topmost atom, A
	ABStacking bool     `toml:"ab_stacking"`
	Shifts     []Shift  `toml:"shift"` //nil means no shifts. Otherwise, one per layer.
}

// Validate returns a ConfigurationError if S can't be built.
func (S StackSpec) Validate() error {
	if len(S.Formulas) == 0 {
		return &ConfigurationError{Reason: "no layers requested", deco: []string{"StackSpec.Validate"}}
	}
	for i, f := range S.Formulas {
		if f == "" {
			return &ConfigurationError{Reason: fmt.Sprintf("empty formula for layer %d", i), deco: []string{"StackSpec.Validate"}}
		}
	}
	if S.Shifts != nil && len(S.Shifts) != len(S.Formulas) {
		return &ConfigurationError{Reason: fmt.Sprintf("%d layer shifts given for %d layers", len(S.Shifts), len(S.Formulas)), deco: []string{"StackSpec.Validate"}}
	}
	if !finite(S.CSep) || S.CSep < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("interlayer separation must be a non-negative number, got %g", S.CSep), deco: []string{"StackSpec.Validate"}}
	}
	if !finite(S.Vacuum) || S.Vacuum < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("vacuum thickness must be a non-negative number, got %g", S.Vacuum), deco: []string{"StackSpec.Validate"}}
	}
	for i, s := range S.Shifts {
		if !finite(s.DA) || !finite(s.DB) {
			return &ConfigurationError{Reason: fmt.Sprintf("non-finite shift for layer %d", i), deco: []string{"StackSpec.Validate"}}
		}
	}
	return nil
}

// shifts returns the shifts of S, or zero shifts if none were given.
func (S StackSpec) shifts() []Shift {
	if S.Shifts != nil {
		return S.Shifts
	}
	return make([]Shift, len(S.Formulas))
}

// Builder assembles heterostructure cells from monolayers obtained from a
// StructureProvider. A Builder keeps no state between calls and can be used
// concurrently.
type Builder struct {
	provider StructureProvider
	log      *zap.SugaredLogger

	//Phase of the reference monolayers. ReferencePhase by default.
	Phase string
	//Relative lattice constant mismatch above which a layer is reported.
	MismatchTolerance float64
	//If true, a mismatch above MismatchTolerance is an error, not a warning.
	Strict bool
}

// NewBuilder returns a Builder that obtains monolayers from provider. If logger
// is nil the builder operates silently.
func NewBuilder(provider StructureProvider, logger *zap.SugaredLogger) *Builder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Builder{
		provider:          provider,
		log:               logger,
		Phase:             ReferencePhase,
		MismatchTolerance: DefaultMismatchTolerance,
	}
}

// Build assembles the cell requested in spec. All errors are returned immediately;
// no partial cell is ever returned.
func (B *Builder) Build(ctx context.Context, spec StackSpec) (*Cell, error) {
	if err := spec.Validate(); err != nil {
		return nil, errDecorate(err, "Build")
	}
	layers, err := B.resolve(ctx, spec.Formulas)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	if err := B.checkMismatch(layers); err != nil {
		return nil, errDecorate(err, "Build")
	}
	C := assemble(layers, spec)
	B.log.Debugw("Built heterostructure",
		"layers", spec.Formulas,
		"atoms", C.Len(),
		"a", layers[0].A,
		"c", C.Lattice.At(2, 2),
		"ab_stacking", spec.ABStacking,
	)
	return C, nil
}

// BuildMany builds all the requests in specs concurrently. The cells are returned in
// the same order as the requests. If any build fails, the first error is returned,
// and no cells.
func (B *Builder) BuildMany(ctx context.Context, specs []StackSpec) ([]*Cell, error) {
	cells := make([]*Cell, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			C, err := B.Build(gctx, spec)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("BuildMany: request %d", i))
			}
			cells[i] = C
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}

// Build is a convenience function that builds a heterostructure with the given
// layers from provider, using a default Builder.
func Build(ctx context.Context, provider StructureProvider, formulas []string, cSep, vacuum float64, abStacking bool, shifts []Shift) (*Cell, error) {
	spec := StackSpec{
		Formulas:   formulas,
		CSep:       cSep,
		Vacuum:     vacuum,
		ABStacking: abStacking,
		Shifts:     shifts,
	}
	return NewBuilder(provider, nil).Build(ctx, spec)
}

// resolve looks up each formula once and returns one LayerSpec per element of formulas.
func (B *Builder) resolve(ctx context.Context, formulas []string) ([]LayerSpec, error) {
	phase := B.Phase
	if phase == "" {
		phase = ReferencePhase
	}
	cache := make(map[string]LayerSpec, len(formulas))
	layers := make([]LayerSpec, len(formulas))
	for i, f := range formulas {
		if l, ok := cache[f]; ok {
			layers[i] = l
			continue
		}
		M, err := Lookup(ctx, B.provider, f, phase)
		if err != nil {
			return nil, err
		}
		l := Describe(f, M)
		B.log.Debugw("Resolved monolayer", "formula", f, "a", l.A, "h", l.H, "metal", l.Metal, "chalcogen", l.Chalcogen)
		cache[f] = l
		layers[i] = l
	}
	return layers, nil
}

// checkMismatch reports the layers whose lattice constant is too different from the
// one of the first layer, which is the only one used to build the cell.
func (B *Builder) checkMismatch(layers []LayerSpec) error {
	a := layers[0].A
	if a <= 0 {
		return &AssumptionViolationError{Formula: layers[0].Formula, Reason: fmt.Sprintf("non-positive lattice constant %g", a), deco: []string{"checkMismatch"}}
	}
	for _, l := range layers[1:] {
		mismatch := math.Abs(l.A-a) / a
		if mismatch <= B.MismatchTolerance {
			continue
		}
		if B.Strict {
			return &AssumptionViolationError{
				Formula: l.Formula,
				Reason:  fmt.Sprintf("lattice constant %.4f differs by %.2f%% from %.4f (%s), tolerance %.2f%%", l.A, 100*mismatch, a, layers[0].Formula, 100*B.MismatchTolerance),
				deco:    []string{"checkMismatch"},
			}
		}
		B.log.Warnw("Lattice mismatch between layers, using the lattice constant of the first layer",
			"formula", l.Formula,
			"a", l.A,
			"reference", layers[0].Formula,
			"reference_a", a,
			"mismatch", mismatch,
		)
	}
	return nil
}

// HexagonalBasis returns the in-plane lattice vectors a1 = a(1/2, -sqrt(3)/2) and
// a2 = a(1/2, sqrt(3)/2) as the rows of a 2x2 matrix (Setyawan and Curtarolo, 2010).
func HexagonalBasis(a float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		a * 0.5, a * -(math.Sqrt(3) / 2),
		a * 0.5, a * (math.Sqrt(3) / 2),
	})
}

// assemble places the layers on top of each other. The layers must be valid and
// the request validated, so it can't fail.
func assemble(layers []LayerSpec, spec StackSpec) *Cell {
	n := len(layers)
	shifts := spec.shifts()
	basis := HexagonalBasis(layers[0].A)
	C := &Cell{
		Lattice: v3.Zeros(3),
		Symbols: make([]string, 0, 3*n),
		Coords:  v3.Zeros(3 * n),
		Layers:  make([]LayerInfo, n),
	}
	frac := mat.NewDense(3, 2, nil) //in-plane fractional coordinates of the X, M, X atoms of a layer
	cart := mat.NewDense(3, 2, nil)
	baseZ := 0.0
	registry := RegistryA
	for i, l := range layers {
		z := [3]float64{baseZ, baseZ + l.H/2, baseZ + l.H}
		X, M := registry.sites()
		X = shifts[i].apply(X)
		M = shifts[i].apply(M)
		frac.SetRow(0, X[:])
		frac.SetRow(1, M[:])
		frac.SetRow(2, X[:])
		cart.Mul(frac, basis)
		for j := 0; j < 3; j++ {
			C.Coords.SetVec(3*i+j, [3]float64{cart.At(j, 0), cart.At(j, 1), z[j]})
		}
		C.Symbols = append(C.Symbols, l.Chalcogen, l.Metal, l.Chalcogen)
		C.Layers[i] = LayerInfo{
			Formula:  l.Formula,
			Registry: registry,
			Shift:    shifts[i],
			A:        l.A,
			H:        l.H,
			BaseZ:    baseZ,
		}
		baseZ += l.H + spec.CSep
		if spec.ABStacking {
			registry = registry.Toggle()
		}
	}
	//atoms were appended with non-decreasing z, so the last one is the topmost.
	top := C.Coords.At(3*n-1, 2)
	C.Lattice.SetVec(0, [3]float64{basis.At(0, 0), basis.At(0, 1), 0})
	C.Lattice.SetVec(1, [3]float64{basis.At(1, 0), basis.At(1, 1), 0})
	C.Lattice.SetVec(2, [3]float64{0, 0, top + spec.Vacuum})
	return C
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
