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

	"github.com/l3montree-dev/finshare/database/repositories"
	"github.com/l3montree-dev/finshare/services"
	"github.com/spf13/cobra"
)

func NewExpireCommand() *cobra.Command {
	var batchSize int

	expire := cobra.Command{
		Use:   "expire",
		Short: "Expire every overdue invitation",
		Long:  `Transitions overdue PENDING, LINKED and CONSENT_GIVEN invitations to EXPIRED. Batches are repeated until a batch expires nothing.`,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, db, err := connect()
			if err != nil {
				return err
			}
			defer pool.Close()

			if batchSize > 0 {
				cfg.ExpireBatchSize = batchSize
			}

			expirationService := services.NewExpirationService(repositories.NewInvitationRepository(db), cfg)
			expired, err := expirationService.ExpireAll(cmd.Context())
			if err != nil {
				return err
			}
			slog.Info("expiration sweep finished", "expired", expired)
			return nil
		},
	}
	expire.Flags().IntVar(&batchSize, "batch-size", 0, "number of invitations expired per transaction (defaults to EXPIRE_BATCH_SIZE)")
	return &expire
}
