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

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rmera/tmdstack/monodb"
)

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import catalog.yaml...",
		Short: "Store the monolayers of YAML catalogs in the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, db, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			var entries []monodb.Entry
			for _, name := range args {
				c, err := monodb.ReadCatalog(name)
				if err != nil {
					return err
				}
				entries = append(entries, c.Monolayers...)
			}
			n, err := store.Import(ctx, entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "imported %d monolayers into %s\n", n, a.cfg.Database.Path)
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the monolayers in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, db, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			index, err := store.Index(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FORMULA\tXC\tPHASE\tENTRIES")
			for _, k := range index {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", k.Formula, k.XC, k.Phase, k.Count)
			}
			return w.Flush()
		},
	}
}
