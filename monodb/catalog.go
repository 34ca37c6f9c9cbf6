/*
 * catalog.go, part of tmdstack.
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
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	tmd "github.com/rmera/tmdstack"
)

// Catalog is an in-memory StructureProvider. It is read from YAML documents like:
//
//	monolayers:
//	  - formula: MoS2
//	    xc: PBE
//	    phase: H
//	    symbols: [S, Mo, S]
//	    positions:
//	      - [1.592, 0.919, 7.436]
//	      - [0.000, 0.000, 9.000]
//	      - [1.592, 0.919, 10.564]
//	    cell:
//	      - [3.184, 0.0, 0.0]
//	      - [-1.592, 2.757, 0.0]
//	      - [0.0, 0.0, 18.0]
type Catalog struct {
	Monolayers []Entry `yaml:"monolayers"`
}

// NewCatalog returns a Catalog with the given entries.
func NewCatalog(entries ...Entry) *Catalog {
	return &Catalog{Monolayers: entries}
}

// DecodeCatalog reads a YAML catalog from r. Unknown fields are an error.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := new(Catalog)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decoding catalog")
	}
	return c, nil
}

// ReadCatalog reads a YAML catalog from the file name.
func ReadCatalog(name string) (*Catalog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %s", name)
	}
	defer f.Close()
	c, err := DecodeCatalog(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return c, nil
}

// Select returns the entries matching formula, xc and phase.
func (c *Catalog) Select(ctx context.Context, formula, xc, phase string) ([]tmd.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ret []tmd.Record
	for _, e := range c.Monolayers {
		if e.Formula == formula && e.XC == xc && e.Phase == phase {
			ret = append(ret, e)
		}
	}
	return ret, nil
}

// Add appends e to the catalog.
func (c *Catalog) Add(e Entry) {
	c.Monolayers = append(c.Monolayers, e)
}

// Encode writes c to w as YAML.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encoding catalog")
	}
	return errors.Wrap(enc.Close(), "encoding catalog")
}
