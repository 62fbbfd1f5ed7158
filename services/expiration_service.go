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

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
)

type ExpirationService struct {
	invitationRepository shared.InvitationRepository
	batchSize            int
	clock                func() time.Time
}

const defaultExpireBatchSize = 500

func NewExpirationService(invitationRepository shared.InvitationRepository, cfg shared.Config) *ExpirationService {
	batchSize := cfg.ExpireBatchSize
	if batchSize <= 0 {
		batchSize = defaultExpireBatchSize
	}
	return &ExpirationService{
		invitationRepository: invitationRepository,
		batchSize:            batchSize,
		clock:                time.Now,
	}
}

// ExpireBatch expires up to limit overdue invitations and returns how many were changed.
// A non positive limit uses the configured batch size.
func (s *ExpirationService) ExpireBatch(limit int) (int64, error) {
	if limit <= 0 {
		limit = s.batchSize
	}
	n, err := s.invitationRepository.ExpireBatch(nil, s.clock(), limit)
	if err != nil {
		return 0, shared.PersistenceError(err, "could not expire invitations")
	}
	if n > 0 {
		monitoring.InvitationsExpired.WithLabelValues("sweep").Add(float64(n))
	}
	return n, nil
}

func (s *ExpirationService) ExpireAll(ctx context.Context) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := s.ExpireBatch(s.batchSize)
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	if total > 0 {
		slog.Info("invitations expired", "count", total)
	}
	return total, nil
}
