/*
 * catalog_test.go, part of tmdstack.
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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmd "github.com/rmera/tmdstack"
)

const testCatalog = `
monolayers:
  - formula: MoS2
    xc: PBE
    phase: H
    symbols: [S, Mo, S]
    positions:
      - [1.592, 0.919, 7.436]
      - [0.0, 0.0, 9.0]
      - [1.592, 0.919, 10.564]
    cell:
      - [3.184, 0.0, 0.0]
      - [-1.592, 2.757, 0.0]
      - [0.0, 0.0, 18.0]
  - formula: WS2
    xc: PBE
    phase: H
    numbers: [16, 74, 16]
    positions:
      - [1.593, 0.920, 7.429]
      - [0.0, 0.0, 9.0]
      - [1.593, 0.920, 10.571]
    cell:
      - [3.186, 0.0, 0.0]
      - [-1.593, 2.759, 0.0]
      - [0.0, 0.0, 18.0]
  - formula: WS2
    xc: PBE
    phase: T
    symbols: [S, W, S]
    positions:
      - [0.0, 0.0, 7.5]
      - [0.0, 0.0, 9.0]
      - [0.0, 0.0, 10.5]
    cell:
      - [3.2, 0.0, 0.0]
      - [-1.6, 2.771, 0.0]
      - [0.0, 0.0, 18.0]
`

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	c, err := DecodeCatalog(strings.NewReader(testCatalog))
	require.NoError(t, err)
	require.Len(t, c.Monolayers, 3)

	M, err := tmd.Lookup(ctx, c, "WS2", tmd.ReferencePhase)
	require.NoError(t, err)
	assert.Equal(t, 3.186, tmd.LatticeConstant(M))
	assert.Equal(t, []string{"S", "W", "S"}, M.Symbols())

	cell, err := tmd.Build(ctx, c, []string{"MoS2", "WS2"}, 3.0, 15.0, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Mo", "S", "S", "W", "S"}, cell.Symbols)

	_, err = tmd.Lookup(ctx, c, "MoSe2", tmd.ReferencePhase)
	var nf *tmd.NotFoundError
	assert.ErrorAs(t, err, &nf)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.Select(cancelled, "MoS2", tmd.XC, tmd.ReferencePhase)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogEncode(t *testing.T) {
	c := NewCatalog(testEntry("MoS2", "Mo", "S", 3.184, 1.564))
	c.Add(testEntry("WSe2", "W", "Se", 3.319, 1.679))
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	back, err := DecodeCatalog(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestCatalogErrors(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader("monolayers:\n  - formula: MoS2\n    functional: PBE\n"))
	assert.Error(t, err, "unknown fields are rejected")

	c, err := DecodeCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Monolayers)

	bad := strings.Replace(testCatalog, "- [0.0, 0.0, 9.0]\n      - [1.592, 0.919, 10.564]", "- [0.0, 0.0, 9.0]\n      - [1.592, 0.919, 1.0]", 1)
	c, err = DecodeCatalog(strings.NewReader(bad))
	require.NoError(t, err)
	_, err = tmd.Lookup(context.Background(), c, "MoS2", tmd.ReferencePhase)
	var av *tmd.AssumptionViolationError
	require.ErrorAs(t, err, &av)
	assert.Equal(t, "MoS2", av.Formula)
}

func TestReadCatalog(t *testing.T) {
	name := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(name, []byte(testCatalog), 0o644))
	c, err := ReadCatalog(name)
	require.NoError(t, err)
	assert.Len(t, c.Monolayers, 3)

	_, err = ReadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
