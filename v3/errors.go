/*
 * errors.go, part of tmdstack.
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

	"gonum.org/v1/gonum/mat"
)

// Error is the error type of the v3 package. It satisfies tmd.Error,
// which is not imported here to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

// Maybe runs fn and turns a panic carrying a PanicMsg or a gonum mat.Error
// into a returned error. Any other panic is re-panicked.
func Maybe(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = &Error{string(e), []string{"Maybe"}, true}
			case mat.Error:
				err = &Error{fmt.Sprintf("tmdstack/v3: Error in gonum function: %s", e.Error()), []string{"Maybe"}, true}
			default:
				panic(r)
			}
		}
	}()
	fn()
	return nil
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("tmdstack/v3: A v3.Matrix should have 3 columns")
	ErrShape           = PanicMsg("tmdstack/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("tmdstack/v3: index out of range")
	ErrSingular        = PanicMsg("tmdstack/v3: singular matrix")
)
