/*
 * request.go, part of tmdstack.
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
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// DecodeStackSpec reads a stack request in TOML format from r. A request looks like:
//
//	formulas = ["MoS2", "WSe2"]
//	c_sep = 3.0
//	vacuum = 15.0
//	ab_stacking = true
//
//	[[shift]]
//	da = 0.0
//	db = 0.0
//
//	[[shift]]
//	da = 0.5
//	db = 0.0
//
// Keys absent from the file keep the values they have in defaults. Unknown keys are an error.
// The decoded request is validated.
func DecodeStackSpec(r io.Reader, defaults StackSpec) (StackSpec, error) {
	spec := defaults
	//the decoder writes into existing slices.
	spec.Formulas = slices.Clone(defaults.Formulas)
	spec.Shifts = nil
	md, err := toml.NewDecoder(r).Decode(&spec)
	if err != nil {
		return StackSpec{}, errors.Wrap(err, "decoding stack request")
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return StackSpec{}, &ConfigurationError{Reason: "unknown keys in stack request: " + strings.Join(keys, ", "), deco: []string{"DecodeStackSpec"}}
	}
	if err := spec.Validate(); err != nil {
		return StackSpec{}, errDecorate(err, "DecodeStackSpec")
	}
	return spec, nil
}

// ReadStackSpec reads a TOML stack request from the file name. See DecodeStackSpec.
func ReadStackSpec(name string, defaults StackSpec) (StackSpec, error) {
	f, err := os.Open(name)
	if err != nil {
		return StackSpec{}, errors.Wrapf(err, "opening stack request %s", name)
	}
	defer f.Close()
	return DecodeStackSpec(f, defaults)
}
