/*
 * request_test.go, part of tmdstack.
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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestDefaults = StackSpec{CSep: 3.0, Vacuum: 15.0, ABStacking: true}

func TestDecodeStackSpec(t *testing.T) {
	in := `
formulas = ["MoS2", "WSe2"]
vacuum = 20.0
ab_stacking = false

[[shift]]
da = 0.0
db = 0.0

[[shift]]
da = 0.5
db = -0.25
`
	spec, err := DecodeStackSpec(strings.NewReader(in), requestDefaults)
	require.NoError(t, err)
	assert.Equal(t, []string{"MoS2", "WSe2"}, spec.Formulas)
	assert.Equal(t, 3.0, spec.CSep) //from the defaults
	assert.Equal(t, 20.0, spec.Vacuum)
	assert.False(t, spec.ABStacking)
	assert.Equal(t, []Shift{{0, 0}, {0.5, -0.25}}, spec.Shifts)
}

func TestDecodeStackSpecNoShifts(t *testing.T) {
	defaults := requestDefaults
	defaults.Shifts = []Shift{{0.1, 0.1}}
	spec, err := DecodeStackSpec(strings.NewReader(`formulas = ["MoS2", "WS2", "MoS2"]`), defaults)
	require.NoError(t, err)
	assert.Nil(t, spec.Shifts)
	assert.True(t, spec.ABStacking)
	assert.Len(t, spec.shifts(), 3)
}

func TestDecodeStackSpecKeepsDefaults(t *testing.T) {
	defaults := requestDefaults
	defaults.Formulas = []string{"MoS2", "WS2", "WSe2"}
	spec, err := DecodeStackSpec(strings.NewReader(`formulas = ["MoSe2"]`), defaults)
	require.NoError(t, err)
	assert.Equal(t, []string{"MoSe2"}, spec.Formulas)
	assert.Equal(t, []string{"MoS2", "WS2", "WSe2"}, defaults.Formulas)

	//absent keys still come from defaults, as a copy
	spec, err = DecodeStackSpec(strings.NewReader(`vacuum = 20.0`), defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults.Formulas, spec.Formulas)
	spec.Formulas[0] = "WTe2"
	assert.Equal(t, "MoS2", defaults.Formulas[0])
}

func TestDecodeStackSpecErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "formulas = [\"MoS2\"]\nvaccum = 12.0\n",
		"short shifts":   "formulas = [\"MoS2\", \"WS2\"]\n[[shift]]\nda = 0.5\n",
		"no layers":      "vacuum = 12.0\n",
		"negative c_sep": "formulas = [\"MoS2\"]\nc_sep = -2.0\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeStackSpec(strings.NewReader(in), requestDefaults)
			var ce *ConfigurationError
			assert.ErrorAs(t, err, &ce)
		})
	}

	_, err := DecodeStackSpec(strings.NewReader("formulas = [\"MoS2\""), requestDefaults)
	require.Error(t, err)
	var ce *ConfigurationError
	assert.False(t, errors.As(err, &ce), "a syntax error is not a configuration error")
}

func TestReadStackSpec(t *testing.T) {
	name := filepath.Join(t.TempDir(), "stack.toml")
	require.NoError(t, os.WriteFile(name, []byte("formulas = [\"WS2\"]\nc_sep = 3.2\n"), 0o644))
	spec, err := ReadStackSpec(name, requestDefaults)
	require.NoError(t, err)
	assert.Equal(t, []string{"WS2"}, spec.Formulas)
	assert.Equal(t, 3.2, spec.CSep)

	_, err = ReadStackSpec(filepath.Join(t.TempDir(), "missing.toml"), requestDefaults)
	assert.Error(t, err)
}
