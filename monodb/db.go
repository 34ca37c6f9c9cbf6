/*
 * db.go, part of tmdstack.
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
	_ "embed"
	"fmt"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// BusyTimeoutMS is how long a connection waits on a locked database.
const BusyTimeoutMS = 5000

//go:embed schema.sql
var schema string

// Open opens the SQLite database at path, creating it if needed, with WAL journaling
// and a busy timeout. If logger is nil, it operates silently.
func Open(path string, logger *zap.SugaredLogger) (*sql.DB, error) {
	if logger != nil {
		logger.Debugw("Opening database", "path", path)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", BusyTimeoutMS),
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "%s on %s", p, path)
		}
	}
	return db, nil
}

// Migrate creates the tables the Store needs, if they don't exist.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.SugaredLogger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin schema transaction")
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "applying schema")
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit schema")
	}
	if logger != nil {
		logger.Debugw("Schema ready")
	}
	return nil
}
