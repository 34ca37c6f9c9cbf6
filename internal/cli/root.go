/*
 * root.go, part of tmdstack.
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

// Package cli defines the command-line interface of tmdstack.
package cli

import (
	"context"
	"database/sql"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/tmdstack/internal/config"
	"github.com/rmera/tmdstack/internal/logger"
	"github.com/rmera/tmdstack/monodb"
)

// app holds what the commands share once the configuration is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.SugaredLogger
	stdout     io.Writer
	stderr     io.Writer
}

// Execute builds the root command and runs it with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop().Sugar()}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	a.log.Sync()
	return err
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tmdstack",
		Short:         "Build periodic cells of stacked transition metal dichalcogenide monolayers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (default ./tmdstack.toml)")
	cmd.PersistentFlags().String("db", "", "monolayer database")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-json", false, "log in JSON format")

	cmd.AddCommand(
		newBuildCommand(a),
		newImportCommand(a),
		newListCommand(a),
		newInspectCommand(a),
	)
	return cmd
}

// load reads the configuration, with the global flags taking precedence, and sets up the logger.
func (a *app) load(cmd *cobra.Command) error {
	v, err := config.New(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"database.path": "db",
		"log.level":     "log-level",
		"log.json":      "log-json",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	if a.log, err = logger.New(a.stderr, a.cfg.Log.Level, a.cfg.Log.JSON); err != nil {
		return err
	}
	if f := v.ConfigFileUsed(); f != "" {
		a.log.Debugw("Read configuration", "file", f)
	}
	return nil
}

// openStore opens and migrates the configured database.
func (a *app) openStore(ctx context.Context) (*monodb.Store, *sql.DB, error) {
	db, err := monodb.Open(a.cfg.Database.Path, a.log)
	if err != nil {
		return nil, nil, err
	}
	if err := monodb.Migrate(ctx, db, a.log); err != nil {
		db.Close()
		return nil, nil, err
	}
	return monodb.NewStore(db, a.log), db, nil
}
