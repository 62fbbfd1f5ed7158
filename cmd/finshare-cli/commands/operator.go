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

	"github.com/l3montree-dev/finshare/accesscontrol"
	"github.com/spf13/cobra"
)

func NewGrantOperatorCommand() *cobra.Command {
	grant := cobra.Command{
		Use:   "grant-operator <userID>",
		Short: "Grant the operator role to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, db, err := connect()
			if err != nil {
				return err
			}
			defer pool.Close()

			rbac, err := accesscontrol.NewOperatorRBAC(db, cfg)
			if err != nil {
				return err
			}
			if err := rbac.GrantOperator(args[0]); err != nil {
				return err
			}
			slog.Info("operator role granted", "userID", args[0])
			return nil
		},
	}
	return &grant
}
