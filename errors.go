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

package tmd

import "fmt"

// NotFoundError is returned when no monolayer record matches a query.
type NotFoundError struct {
	Formula string
	XC      string
	Phase   string
	deco    []string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("found no matches for %s, %s, %s phase", err.Formula, err.XC, err.Phase)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *NotFoundError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true. Missing data can't be worked around.
func (err *NotFoundError) Critical() bool { return true }

// AmbiguousMatchError is returned when more than one monolayer record matches a query.
type AmbiguousMatchError struct {
	Formula string
	XC      string
	Phase   string
	Matches int
	deco    []string
}

func (err *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("found %d matches for %s, %s, %s phase", err.Matches, err.Formula, err.XC, err.Phase)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *AmbiguousMatchError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true.
func (err *AmbiguousMatchError) Critical() bool { return true }

// AssumptionViolationError is returned when a monolayer doesn't fulfill what the
// builder takes for granted: three atoms ordered by increasing z, and (in strict
// mode) a lattice constant close enough to the one of the first layer.
type AssumptionViolationError struct {
	Formula string //may be empty if the structure was not retrieved by formula.
	Reason  string
	deco    []string
}

func (err *AssumptionViolationError) Error() string {
	if err.Formula == "" {
		return fmt.Sprintf("monolayer assumption violated: %s", err.Reason)
	}
	return fmt.Sprintf("monolayer %s: assumption violated: %s", err.Formula, err.Reason)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *AssumptionViolationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true.
func (err *AssumptionViolationError) Critical() bool { return true }

// ConfigurationError is returned for malformed build requests.
type ConfigurationError struct {
	Reason string
	deco   []string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid stack request: %s", err.Reason)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *ConfigurationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true.
func (err *ConfigurationError) Critical() bool { return true }

// errDecorate decorates err with the caller's name if it implements Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
