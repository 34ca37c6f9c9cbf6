/*
 * interfaces.go, part of tmdstack.
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

import "context"

// StructureProvider is anything that can be queried for reference monolayers.
// Zero, one and several matching records are all valid answers; classifying
// them is the job of Lookup.
type StructureProvider interface {
	//Select returns all the records matching formula, exchange-correlation
	//functional xc and phase. An error is returned only if the query itself failed.
	Select(ctx context.Context, formula, xc, phase string) ([]Record, error)
}

// Record is one entry returned by a StructureProvider.
type Record interface {
	//ToStructure converts the record into a validated Monolayer.
	ToStructure() (*Monolayer, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	Critical() bool
}
