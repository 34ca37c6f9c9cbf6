/*
 * lookup.go, part of tmdstack.
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
	"context"
	"slices"

	"github.com/cockroachdb/errors"
)

const (
	//XC is the exchange-correlation functional of all the reference monolayers.
	XC = "PBE"
	//ReferencePhase is the phase label of the 2H reference monolayers.
	ReferencePhase = "H"
)

// Lookup retrieves from provider the only monolayer matching formula and phase,
// computed with the XC functional. It returns a NotFoundError if there is no match,
// an AmbiguousMatchError if there are several, and an AssumptionViolationError if
// the matching record doesn't have its atoms ordered by increasing z.
// Errors from the provider itself are wrapped and returned.
func Lookup(ctx context.Context, provider StructureProvider, formula, phase string) (*Monolayer, error) {
	if provider == nil {
		return nil, &ConfigurationError{Reason: "nil structure provider", deco: []string{"Lookup"}}
	}
	records, err := provider.Select(ctx, formula, XC, phase)
	if err != nil {
		return nil, errors.Wrapf(err, "querying monolayer %s (%s, %s phase)", formula, XC, phase)
	}
	switch len(records) {
	case 0:
		return nil, &NotFoundError{Formula: formula, XC: XC, Phase: phase, deco: []string{"Lookup"}}
	case 1:
	default:
		return nil, &AmbiguousMatchError{Formula: formula, XC: XC, Phase: phase, Matches: len(records), deco: []string{"Lookup"}}
	}
	M, err := records[0].ToStructure()
	if err != nil {
		var av *AssumptionViolationError
		if errors.As(err, &av) {
			//records may share their errors, so av is not modified.
			ret := &AssumptionViolationError{Formula: av.Formula, Reason: av.Reason, deco: slices.Clone(av.deco)}
			if ret.Formula == "" {
				ret.Formula = formula
			}
			ret.Decorate("Lookup")
			return nil, ret
		}
		return nil, errors.Wrapf(err, "converting record for %s", formula)
	}
	return M, nil
}
