/*
 * cli_test.go, part of tmdstack.
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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmd "github.com/rmera/tmdstack"
	"github.com/rmera/tmdstack/cellio"
)

const catalog = `
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
  - formula: WSe2
    xc: PBE
    phase: H
    symbols: [Se, W, Se]
    positions:
      - [1.660, 0.958, 7.321]
      - [0.0, 0.0, 9.0]
      - [1.660, 0.958, 10.679]
    cell:
      - [3.319, 0.0, 0.0]
      - [-1.660, 2.875, 0.0]
      - [0.0, 0.0, 18.0]
`

// run executes tmdstack with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("catalog.yaml", []byte(catalog), 0o644))
	return dir
}

func TestImportListBuild(t *testing.T) {
	dir := setup(t)
	out, err := run(t, "import", "catalog.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 monolayers")

	out, err = run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"MoS2", "PBE", "H", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"WSe2", "PBE", "H", "1"}, strings.Fields(lines[2]))

	name := filepath.Join(dir, "stack.xyz.gz")
	_, err = run(t, "build", "MoS2", "WSe2", "--vacuum", "20", "-o", name)
	require.NoError(t, err)
	C, err := cellio.ReadXYZFile(name)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Mo", "S", "Se", "W", "Se"}, C.Symbols)
	assert.InDelta(t, C.Coords.At(5, 2)+20, C.Lattice.At(2, 2), 1e-6)

	out, err = run(t, "inspect", name)
	require.NoError(t, err)
	assert.Contains(t, out, "6 atoms (S2 Mo1 Se2 W1)")
	assert.Contains(t, out, "vacuum: 20.0000 A")
}

func TestBuildToStdout(t *testing.T) {
	setup(t)
	out, err := run(t, "build", "--catalog", "catalog.yaml", "MoS2", "MoS2", "--aa", "--shift", "0,0", "--shift", "0.5, 0")
	require.NoError(t, err)
	C, err := cellio.ReadXYZ(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 6, C.Len())
	//AA stacking, the second layer is moved by a1/2
	assert.InDelta(t, C.Coords.At(0, 0)+3.184/4, C.Coords.At(3, 0), 1e-6)
	assert.InDelta(t, C.Coords.At(1, 0)+3.184/4, C.Coords.At(4, 0), 1e-6)

	out, err = run(t, "build", "--catalog", "catalog.yaml", "MoS2", "-f", "poscar")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "MoS2\n"))
}

func TestBuildFromRequest(t *testing.T) {
	setup(t)
	request := "formulas = [\"MoS2\", \"WSe2\", \"MoS2\"]\nc_sep = 3.3\n"
	require.NoError(t, os.WriteFile("stack.toml", []byte(request), 0o644))
	_, err := run(t, "build", "--catalog", "catalog.yaml", "--spec", "stack.toml", "-o", "stack.json", "--plot", "stack.png")
	require.NoError(t, err)
	for _, f := range []string{"stack.json", "stack.png"} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	_, err = run(t, "build", "--catalog", "catalog.yaml", "--spec", "stack.toml", "WS2")
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	setup(t)
	_, err := run(t, "build", "--catalog", "catalog.yaml", "MoS2", "NbSe2")
	var nf *tmd.NotFoundError
	assert.ErrorAs(t, err, &nf)

	_, err = run(t, "build", "--catalog", "catalog.yaml", "MoS2", "WSe2", "--shift", "0,0")
	var ce *tmd.ConfigurationError
	assert.ErrorAs(t, err, &ce)

	_, err = run(t, "build", "--catalog", "catalog.yaml", "MoS2", "--shift", "half")
	assert.Error(t, err)

	//MoS2 and WSe2 differ by about 4%
	_, err = run(t, "build", "--catalog", "catalog.yaml", "MoS2", "WSe2", "--strict", "--tolerance", "0.01")
	var av *tmd.AssumptionViolationError
	assert.ErrorAs(t, err, &av)
	_, err = run(t, "build", "--catalog", "catalog.yaml", "MoS2", "WSe2", "--tolerance", "0.01")
	assert.NoError(t, err)

	_, err = run(t, "build", "MoS2")
	assert.ErrorAs(t, err, &nf, "the database is empty")
}

func TestConfigFileFlags(t *testing.T) {
	setup(t)
	require.NoError(t, os.WriteFile("tmdstack.toml", []byte("[database]\npath = \"other.db\"\n[stack]\nvacuum = 25.0\n"), 0o644))
	_, err := run(t, "import", "catalog.yaml")
	require.NoError(t, err)
	_, err = os.Stat("other.db")
	assert.NoError(t, err)

	out, err := run(t, "build", "MoS2")
	require.NoError(t, err)
	C, err := cellio.ReadXYZ(strings.NewReader(out))
	require.NoError(t, err)
	assert.InDelta(t, C.Coords.At(2, 2)+25, C.Lattice.At(2, 2), 1e-6)

	//--db wins over the file
	out, err = run(t, "--db", "third.db", "list")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
