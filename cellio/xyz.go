/*
 * xyz.go, part of tmdstack.
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

// Package cellio writes built heterostructure cells in formats that
// periodic DFT codes and visualizers read: extended XYZ, VASP POSCAR
// and JSON. Files can be compressed with gzip or zstd.
package cellio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	tmd "github.com/rmera/tmdstack"
	v3 "github.com/rmera/tmdstack/v3"
)

// WriteXYZ writes C to w in extended XYZ format, with the lattice vectors
// in the comment line.
func WriteXYZ(w io.Writer, C *tmd.Cell) error {
	if err := C.Corrupted(); err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d\n", C.Len())
	lat := make([]string, 0, 9)
	for i := 0; i < 3; i++ {
		for _, v := range C.Lattice.Vec(i) {
			lat = append(lat, strconv.FormatFloat(v, 'f', 8, 64))
		}
	}
	fmt.Fprintf(out, "Lattice=\"%s\" Properties=species:S:1:pos:R:3 pbc=\"T T T\"\n", strings.Join(lat, " "))
	for i, s := range C.Symbols {
		c := C.Coords.Vec(i)
		fmt.Fprintf(out, "%-2s %16.8f %16.8f %16.8f\n", s, c[0], c[1], c[2])
	}
	return errors.Wrap(out.Flush(), "writing XYZ")
}

// ReadXYZ reads a single-frame extended XYZ file, as written by WriteXYZ.
// The returned Cell has no layer information. If the comment line has no
// lattice, the Lattice of the cell is nil.
func ReadXYZ(r io.Reader) (*tmd.Cell, error) {
	in := bufio.NewScanner(r)
	line := 0
	next := func() (string, error) {
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", errors.Wrap(err, "reading XYZ")
			}
			return "", errors.Newf("XYZ: unexpected end of file at line %d", line+1)
		}
		line++
		return in.Text(), nil
	}
	first, err := next()
	if err != nil {
		return nil, err
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || natoms < 1 {
		return nil, errors.Newf("XYZ: invalid number of atoms %q", first)
	}
	comment, err := next()
	if err != nil {
		return nil, err
	}
	C := new(tmd.Cell)
	if lat, ok := keyValue(comment, "Lattice"); ok {
		vals, err := parseFloats(strings.Fields(lat))
		if err != nil || len(vals) != 9 {
			return nil, errors.Newf("XYZ: invalid lattice %q", lat)
		}
		C.Lattice, _ = v3.NewMatrix(vals)
	}
	//natoms comes from the file, so nothing is allocated from it up front.
	var symbols []string
	var coords []float64
	for i := 0; i < natoms; i++ {
		l, err := next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(l)
		if len(fields) < 4 {
			return nil, errors.Newf("XYZ: line %d: expected a symbol and 3 coordinates", line)
		}
		c, err := parseFloats(fields[1:4])
		if err != nil {
			return nil, errors.Wrapf(err, "XYZ: line %d", line)
		}
		symbols = append(symbols, fields[0])
		coords = append(coords, c...)
	}
	C.Symbols = symbols
	C.Coords, _ = v3.NewMatrix(coords)
	return C, nil
}

// keyValue returns the value of key in an extended XYZ comment line.
// Values may be quoted.
func keyValue(comment, key string) (string, bool) {
	i := strings.Index(comment, key+"=")
	if i < 0 {
		return "", false
	}
	rest := comment[i+len(key)+1:]
	if strings.HasPrefix(rest, "\"") {
		end := strings.Index(rest[1:], "\"")
		if end < 0 {
			return "", false
		}
		return rest[1 : end+1], true
	}
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		return rest[:end], true
	}
	return rest, true
}

func parseFloats(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}
