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

package cli

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	tmd "github.com/rmera/tmdstack"
	"github.com/rmera/tmdstack/cellio"
	"github.com/rmera/tmdstack/cellplot"
	"github.com/rmera/tmdstack/monodb"
)

type buildOptions struct {
	spec      string
	catalog   string
	cSep      float64
	vacuum    float64
	aa        bool
	shifts    []string
	out       string
	format    string
	plot      string
	strict    bool
	tolerance float64
}

func newBuildCommand(a *app) *cobra.Command {
	var o buildOptions
	cmd := &cobra.Command{
		Use:   "build [formula...]",
		Short: "Stack monolayers into a periodic cell",
		Long: `Stack monolayers, bottom first, into a periodic cell and write it.
The layers are given as arguments or in a TOML request file (--spec).
Monolayers are taken from the database, or from a YAML catalog (--catalog).`,
		Example: `  tmdstack build MoS2 WSe2 -o MoS2-WSe2.xyz
  tmdstack build MoS2 WS2 MoS2 --aa --shift 0,0 --shift 0.5,0 --shift 0,0 -o POSCAR
  tmdstack build --spec stack.toml -o stack.json.zst --plot stack.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(cmd, args, &o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.spec, "spec", "", "TOML stack request")
	f.StringVar(&o.catalog, "catalog", "", "YAML catalog of monolayers to use instead of the database")
	f.Float64Var(&o.cSep, "c-sep", 0, "chalcogen-chalcogen gap between layers, A")
	f.Float64Var(&o.vacuum, "vacuum", 0, "vacuum above the topmost atom, A")
	f.BoolVar(&o.aa, "aa", false, "AA stacking, all layers in the same registry")
	f.StringArrayVar(&o.shifts, "shift", nil, "in-plane shift of a layer as da,db in fractional coordinates. Give one per layer")
	f.StringVarP(&o.out, "out", "o", "", "output file. Compressed if it ends in .gz or .zst (default stdout)")
	f.StringVarP(&o.format, "format", "f", "", "output format: xyz, poscar or json (default from the output name, xyz for stdout)")
	f.StringVar(&o.plot, "plot", "", "also save a side view of the cell to this file (png, svg, pdf)")
	f.BoolVar(&o.strict, "strict", false, "fail if the lattice constants of the layers differ more than the tolerance")
	f.Float64Var(&o.tolerance, "tolerance", tmd.DefaultMismatchTolerance, "relative lattice mismatch tolerance")
	return cmd
}

func (a *app) build(cmd *cobra.Command, args []string, o *buildOptions) error {
	ctx := cmd.Context()
	spec, err := a.stackSpec(cmd, args, o)
	if err != nil {
		return err
	}

	var provider tmd.StructureProvider
	if o.catalog != "" {
		c, err := monodb.ReadCatalog(o.catalog)
		if err != nil {
			return err
		}
		provider = c
	} else {
		store, db, err := a.openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		provider = store
	}

	B := tmd.NewBuilder(provider, a.log)
	a.cfg.Configure(B)
	if cmd.Flags().Changed("strict") {
		B.Strict = o.strict
	}
	if cmd.Flags().Changed("tolerance") {
		B.MismatchTolerance = o.tolerance
	}
	C, err := B.Build(ctx, spec)
	if err != nil {
		return err
	}

	if o.out == "" {
		format := cellio.XYZ
		if o.format != "" {
			if format, err = cellio.ParseFormat(o.format); err != nil {
				return err
			}
		}
		if err := cellio.Write(a.stdout, C, format); err != nil {
			return err
		}
	} else {
		var format cellio.Format
		if o.format != "" {
			if format, err = cellio.ParseFormat(o.format); err != nil {
				return err
			}
		}
		if err := cellio.WriteFile(o.out, C, format); err != nil {
			return err
		}
		a.log.Infow("Wrote cell", "file", o.out, "layers", len(C.Layers), "atoms", C.Len())
	}

	if o.plot != "" {
		if err := cellplot.SideView(C, strings.Join(spec.Formulas, "/"), o.plot); err != nil {
			return err
		}
		a.log.Infow("Saved side view", "file", o.plot)
	}
	return nil
}

// stackSpec assembles the request from the configuration, the request file and the flags,
// in increasing precedence.
func (a *app) stackSpec(cmd *cobra.Command, args []string, o *buildOptions) (tmd.StackSpec, error) {
	spec := a.cfg.StackDefaults()
	if o.spec != "" {
		var err error
		if spec, err = tmd.ReadStackSpec(o.spec, spec); err != nil {
			return spec, err
		}
		if len(args) > 0 {
			return spec, errors.New("layers given both as arguments and in --spec")
		}
	} else {
		spec.Formulas = args
	}
	f := cmd.Flags()
	if f.Changed("c-sep") {
		spec.CSep = o.cSep
	}
	if f.Changed("vacuum") {
		spec.Vacuum = o.vacuum
	}
	if f.Changed("aa") {
		spec.ABStacking = !o.aa
	}
	if f.Changed("shift") {
		shifts, err := parseShifts(o.shifts)
		if err != nil {
			return spec, err
		}
		spec.Shifts = shifts
	}
	return spec, nil
}

// parseShifts parses shifts given as "da,db".
func parseShifts(s []string) ([]tmd.Shift, error) {
	ret := make([]tmd.Shift, len(s))
	for i, v := range s {
		parts := strings.Split(v, ",")
		if len(parts) != 2 {
			return nil, errors.Newf("invalid shift %q, expected da,db", v)
		}
		da, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid shift %q", v)
		}
		db, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid shift %q", v)
		}
		ret[i] = tmd.Shift{DA: da, DB: db}
	}
	return ret, nil
}
