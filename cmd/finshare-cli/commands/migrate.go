// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package commands

import (
	"log/slog"

	"github.com/l3montree-dev/finshare/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run all pending database migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, db, err := connect()
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}
			slog.Info("database schema is up to date", "version", version, "dirty", dirty)
			return nil
		},
	}
	return &migrate
}
