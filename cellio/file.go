/*
 * file.go, part of tmdstack.
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

package cellio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	tmd "github.com/rmera/tmdstack"
)

// Format is an output format for cells.
type Format string

const (
	XYZ    Format = "xyz"
	POSCAR Format = "poscar"
	JSON   Format = "json"
)

// ParseFormat returns the Format named by s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case XYZ, POSCAR, JSON:
		return f, nil
	case "vasp":
		return POSCAR, nil
	}
	return "", errors.Newf("unknown format %q", s)
}

// compression returns the compression suffix of name (".gz", ".zst" or "")
// and name without it.
func compression(name string) (suffix, base string) {
	for _, s := range []string{".gz", ".zst"} {
		if strings.HasSuffix(strings.ToLower(name), s) {
			return s, name[:len(name)-len(s)]
		}
	}
	return "", name
}

// FormatFromName guesses the format of a file from its name. Compression
// suffixes are ignored. POSCAR and CONTCAR files are recognized by name.
func FormatFromName(name string) (Format, error) {
	_, base := compression(filepath.Base(name))
	upper := strings.ToUpper(base)
	if strings.HasPrefix(upper, "POSCAR") || strings.HasPrefix(upper, "CONTCAR") {
		return POSCAR, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return "", errors.Newf("can't guess the format of %s", name)
	}
	return ParseFormat(ext)
}

// Write writes C to w in the given format.
func Write(w io.Writer, C *tmd.Cell, format Format) error {
	switch format {
	case XYZ:
		return WriteXYZ(w, C)
	case POSCAR:
		return WritePOSCAR(w, C, "")
	case JSON:
		return WriteJSON(w, C)
	}
	return errors.Newf("unknown format %q", format)
}

// WriteFile writes C to the file name, which is created or truncated. If format is
// empty, it is guessed from name. Names ending in .gz are compressed with gzip,
// and names ending in .zst with zstd.
func WriteFile(name string, C *tmd.Cell, format Format) (err error) {
	if format == "" {
		if format, err = FormatFromName(name); err != nil {
			return err
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "creating %s", name)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", name)
		}
	}()
	var w io.WriteCloser
	switch suffix, _ := compression(name); suffix {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		if w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression)); err != nil {
			return errors.Wrap(err, "zstd writer")
		}
	default:
		w = nopCloser{f}
	}
	if err := Write(w, C, format); err != nil {
		w.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	return errors.Wrapf(w.Close(), "finishing %s", name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Open opens the file name for reading, decompressing it if its name
// ends in .gz or .zst.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	switch suffix, _ := compression(name); suffix {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "gzip %s", name)
		}
		return readCloser{r, func() error { r.Close(); return f.Close() }}, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "zstd %s", name)
		}
		return readCloser{r, func() error { r.Close(); return f.Close() }}, nil
	}
	return f, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// ReadXYZFile reads the extended XYZ file name, which may be compressed.
func ReadXYZFile(name string) (*tmd.Cell, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	C, err := ReadXYZ(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return C, nil
}
