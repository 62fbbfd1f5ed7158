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
	"log/slog"
	"time"

	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
)

// InvitationRateLimiter caps the number of invitations an inviter may create inside
// a trailing window. The count is read from the invitation rows themselves, so recording
// happens implicitly once the invitation is stored.
type InvitationRateLimiter struct {
	invitationRepository shared.InvitationRepository
	window               time.Duration
	max                  int64
	clock                func() time.Time
}

func NewInvitationRateLimiter(invitationRepository shared.InvitationRepository, cfg shared.Config) *InvitationRateLimiter {
	return &InvitationRateLimiter{
		invitationRepository: invitationRepository,
		window:               cfg.InvitationRateWindow,
		max:                  cfg.InvitationRateMax,
		clock:                time.Now,
	}
}

// CheckAndRecord fails open: a store error allows the invitation.
func (r *InvitationRateLimiter) CheckAndRecord(inviterID string) error {
	if r.max <= 0 {
		return nil
	}
	since := r.clock().Add(-r.window)
	count, err := r.invitationRepository.CountCreatedSince(inviterID, since)
	if err != nil {
		slog.Warn("could not check invitation rate limit, allowing request", "inviterID", inviterID, "err", err)
		return nil
	}
	if count >= r.max {
		monitoring.InvitationsRateLimited.Inc()
		return shared.ErrRateLimited
	}
	return nil
}
