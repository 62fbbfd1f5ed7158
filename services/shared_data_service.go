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
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/l3montree-dev/finshare/statemachine"
	pkgerrors "github.com/pkg/errors"
	"github.com/samber/lo"
)

// SharedDataService exposes the snapshots of an invitation to its inviter.
type SharedDataService struct {
	invitationRepository shared.InvitationRepository
	snapshotRepository   shared.SnapshotRepository
	clock                func() time.Time
}

func NewSharedDataService(invitationRepository shared.InvitationRepository, snapshotRepository shared.SnapshotRepository) *SharedDataService {
	return &SharedDataService{
		invitationRepository: invitationRepository,
		snapshotRepository:   snapshotRepository,
		clock:                time.Now,
	}
}

func (s *SharedDataService) readAsInviter(invitationID snowflake.ID, callerID string) (models.Invitation, error) {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return models.Invitation{}, mapReadError(err)
	}
	if !invitation.IsInviter(callerID) {
		return models.Invitation{}, shared.ErrForbidden
	}
	return invitation, nil
}

// CurrentSnapshots returns the latest snapshot per data type which is visible for the
// current status. Balance and identity stay visible. Other data types require consent.
func (s *SharedDataService) CurrentSnapshots(ctx context.Context, invitationID snowflake.ID, callerID string) ([]models.Snapshot, error) {
	invitation, err := s.readAsInviter(invitationID, callerID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	if statemachine.ShouldExpire(invitation, now) {
		changed, err := s.invitationRepository.ExpireIfOverdue(nil, invitation.ID, now)
		if err != nil {
			return nil, shared.PersistenceError(err, "could not expire invitation")
		}
		if changed {
			monitoring.InvitationsExpired.WithLabelValues("lazy").Inc()
			slog.Info("invitation expired", "invitationID", invitation.ID)
		}
		invitation.Status = models.InvitationStatusExpired
	}

	snapshots, err := s.snapshotRepository.LatestPerDataType(nil, invitation.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "could not read snapshots")
	}
	visible := lo.Filter(snapshots, func(snapshot models.Snapshot, _ int) bool {
		return statemachine.VisibleInCurrentView(invitation.Status, snapshot.DataType)
	})
	slices.SortStableFunc(visible, func(a, b models.Snapshot) int {
		return cmp.Or(cmp.Compare(currentViewRank(a.DataType), currentViewRank(b.DataType)), cmp.Compare(a.DataType, b.DataType))
	})
	return visible, nil
}

// currentViewRank lists identity and balance first, the remaining categories follow by name.
func currentViewRank(dataType models.Scope) int {
	switch dataType {
	case models.ScopeIdentity:
		return 0
	case models.ScopeBalance:
		return 1
	}
	return 2
}

// History returns every snapshot of the invitation, newest first. Revoked and expired
// invitations keep their history.
func (s *SharedDataService) History(ctx context.Context, invitationID snowflake.ID, callerID string) ([]models.Snapshot, error) {
	invitation, err := s.readAsInviter(invitationID, callerID)
	if err != nil {
		return nil, err
	}
	snapshots, err := s.snapshotRepository.History(nil, invitation.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "could not read snapshot history")
	}
	return snapshots, nil
}
