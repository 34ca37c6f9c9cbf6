/*
 * store.go, part of tmdstack.
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
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	tmd "github.com/rmera/tmdstack"
)

const insertSQL = `INSERT INTO systems (formula, xc, phase, numbers, positions, cell, ctime) VALUES (?, ?, ?, ?, ?, ?, ?)`

const selectSQL = `SELECT id, numbers, positions, cell FROM systems WHERE formula = ? AND xc = ? AND phase = ? ORDER BY id`

// Store is a StructureProvider backed by a SQLite database of monolayers.
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewStore returns a Store using db, which must have been migrated. If logger is
// nil, the Store operates silently.
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{db: db, log: logger}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insert(ctx context.Context, ex execer, e Entry) (int64, error) {
	if _, err := e.ToStructure(); err != nil {
		return 0, err
	}
	numbers, err := e.numbers()
	if err != nil {
		return 0, &tmd.AssumptionViolationError{Formula: e.Formula, Reason: err.Error()}
	}
	pos := make([]float64, 0, 3*len(e.Positions))
	for _, p := range e.Positions {
		pos = append(pos, p[:]...)
	}
	cell := make([]float64, 0, 9)
	for _, v := range e.Cell {
		cell = append(cell, v[:]...)
	}
	ctime := float64(time.Now().UnixNano()) / 1e9
	res, err := ex.ExecContext(ctx, insertSQL, e.Formula, e.XC, e.Phase, packInts(numbers), packFloats(pos), packFloats(cell), ctime)
	if err != nil {
		return 0, errors.Wrapf(err, "inserting %s", e.Formula)
	}
	return res.LastInsertId()
}

// Insert stores e and returns its id. Entries that don't describe a valid monolayer
// are rejected.
func (s *Store) Insert(ctx context.Context, e Entry) (int64, error) {
	id, err := insert(ctx, s.db, e)
	if err != nil {
		return 0, err
	}
	s.log.Debugw("Stored monolayer", "id", id, "formula", e.Formula, "xc", e.XC, "phase", e.Phase)
	return id, nil
}

// Import stores all the entries in a single transaction, and returns how many were stored.
// Either all entries are stored, or none.
func (s *Store) Import(ctx context.Context, entries []Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin import")
	}
	for i, e := range entries {
		if _, err := insert(ctx, tx, e); err != nil {
			tx.Rollback()
			return 0, errors.Wrapf(err, "importing entry %d", i)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit import")
	}
	s.log.Infow("Imported monolayers", "count", len(entries))
	return len(entries), nil
}

// Select returns the entries matching formula, xc and phase, in insertion order.
func (s *Store) Select(ctx context.Context, formula, xc, phase string) ([]tmd.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectSQL, formula, xc, phase)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", formula)
	}
	defer rows.Close()
	var ret []tmd.Record
	for rows.Next() {
		e := Entry{Formula: formula, XC: xc, Phase: phase}
		var numbers, positions, cell []byte
		if err := rows.Scan(&e.ID, &numbers, &positions, &cell); err != nil {
			return nil, errors.Wrapf(err, "scanning %s", formula)
		}
		if err := e.unpack(numbers, positions, cell); err != nil {
			return nil, errors.Wrapf(err, "decoding row %d", e.ID)
		}
		ret = append(ret, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "querying %s", formula)
	}
	s.log.Debugw("Selected monolayers", "formula", formula, "xc", xc, "phase", phase, "matches", len(ret))
	return ret, nil
}

func (e *Entry) unpack(numbers, positions, cell []byte) error {
	var err error
	if e.Numbers, err = unpackInts(numbers); err != nil {
		return err
	}
	pos, err := unpackFloats(positions)
	if err != nil {
		return err
	}
	if len(pos) != 3*len(e.Numbers) {
		return errors.Newf("%d position values for %d atoms", len(pos), len(e.Numbers))
	}
	e.Positions = make([][3]float64, len(e.Numbers))
	for i := range e.Positions {
		copy(e.Positions[i][:], pos[3*i:])
	}
	c, err := unpackFloats(cell)
	if err != nil {
		return err
	}
	if len(c) != 9 {
		return errors.Newf("%d cell values", len(c))
	}
	for i := range e.Cell {
		copy(e.Cell[i][:], c[3*i:])
	}
	return nil
}

// Key identifies a group of entries.
type Key struct {
	Formula string
	XC      string
	Phase   string
	Count   int
}

// Index returns how many entries there are for each formula, xc and phase.
func (s *Store) Index(ctx context.Context) ([]Key, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT formula, xc, phase, COUNT(*) FROM systems GROUP BY formula, xc, phase ORDER BY formula, xc, phase`)
	if err != nil {
		return nil, errors.Wrap(err, "listing monolayers")
	}
	defer rows.Close()
	var ret []Key
	for rows.Next() {
		var k Key
		if err := rows.Scan(&k.Formula, &k.XC, &k.Phase, &k.Count); err != nil {
			return nil, errors.Wrap(err, "listing monolayers")
		}
		ret = append(ret, k)
	}
	return ret, errors.Wrap(rows.Err(), "listing monolayers")
}

// Formulas returns the distinct formulas in the store, sorted.
func (s *Store) Formulas(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT formula FROM systems ORDER BY formula`)
	if err != nil {
		return nil, errors.Wrap(err, "listing formulas")
	}
	defer rows.Close()
	var ret []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, errors.Wrap(err, "listing formulas")
		}
		ret = append(ret, f)
	}
	return ret, errors.Wrap(rows.Err(), "listing formulas")
}
