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
	"testing"
	"time"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedDataService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*SharedDataService, *inMemoryInvitationRepository, *inMemorySnapshotRepository, models.Invitation) {
		invitations := newInMemoryInvitationRepository()
		snapshots := &inMemorySnapshotRepository{}
		granted := models.ScopeSetOf(models.ScopeBalance, models.ScopeTransactions)
		expiresAt := time.Now().Add(time.Hour)
		invitation := models.Invitation{
			InviterID:       inviter.userID,
			TokenDigest:     "digest",
			RequestedScopes: granted,
			GrantedScopes:   &granted,
			Status:          models.InvitationStatusConsentGiven,
			ExpiresAt:       &expiresAt,
		}
		require.NoError(t, invitations.Create(nil, &invitation))

		base := time.Now().Add(-time.Hour)
		for i, scope := range []models.Scope{models.ScopeBalance, models.ScopeTransactions, models.ScopeBalance} {
			require.NoError(t, snapshots.Create(nil, &models.Snapshot{
				InvitationID: invitation.ID,
				DataType:     scope,
				Payload:      []byte(`{}`),
				FetchedAt:    base.Add(time.Duration(i) * time.Minute),
			}))
		}
		return NewSharedDataService(invitations, snapshots), invitations, snapshots, invitation
	}

	dataTypes := func(snapshots []models.Snapshot) []models.Scope {
		return lo.Map(snapshots, func(s models.Snapshot, _ int) models.Scope { return s.DataType })
	}

	t.Run("should return the latest snapshot per data type while consent is given", func(t *testing.T) {
		service, _, _, invitation := setup(t)

		current, err := service.CurrentSnapshots(ctx, invitation.ID, inviter.userID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.Scope{models.ScopeBalance, models.ScopeTransactions}, dataTypes(current))

		history, err := service.History(ctx, invitation.ID, inviter.userID)
		require.NoError(t, err)
		latestBalance, ok := lo.Find(history, func(s models.Snapshot) bool { return s.DataType == models.ScopeBalance })
		require.True(t, ok)
		balance, ok := lo.Find(current, func(s models.Snapshot) bool { return s.DataType == models.ScopeBalance })
		require.True(t, ok)
		assert.Equal(t, latestBalance.ID, balance.ID)
	})

	t.Run("should list identity and balance before the other categories", func(t *testing.T) {
		service, _, snapshots, invitation := setup(t)
		for _, scope := range []models.Scope{models.ScopeInvestments, models.ScopeIdentity} {
			require.NoError(t, snapshots.Create(nil, &models.Snapshot{
				InvitationID: invitation.ID,
				DataType:     scope,
				Payload:      []byte(`{}`),
			}))
		}

		current, err := service.CurrentSnapshots(ctx, invitation.ID, inviter.userID)
		require.NoError(t, err)
		assert.Equal(t, []models.Scope{
			models.ScopeIdentity,
			models.ScopeBalance,
			models.ScopeInvestments,
			models.ScopeTransactions,
		}, dataTypes(current))
	})

	t.Run("should hide everything but balance and identity after revocation but keep the history", func(t *testing.T) {
		service, invitations, _, invitation := setup(t)
		invitation.Status = models.InvitationStatusRevoked
		invitations.set(invitation)

		current, err := service.CurrentSnapshots(ctx, invitation.ID, inviter.userID)
		require.NoError(t, err)
		assert.Equal(t, []models.Scope{models.ScopeBalance}, dataTypes(current))

		history, err := service.History(ctx, invitation.ID, inviter.userID)
		require.NoError(t, err)
		assert.Len(t, history, 3)
		assert.True(t, history[0].FetchedAt.After(history[1].FetchedAt))
	})

	t.Run("should expire an overdue invitation while reading", func(t *testing.T) {
		service, invitations, _, invitation := setup(t)
		service.clock = func() time.Time { return time.Now().Add(2 * time.Hour) }

		current, err := service.CurrentSnapshots(ctx, invitation.ID, inviter.userID)
		require.NoError(t, err)
		assert.Equal(t, []models.Scope{models.ScopeBalance}, dataTypes(current))

		stored, err := invitations.Read(invitation.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusExpired, stored.Status)
	})

	t.Run("should only expose the snapshots to the inviter", func(t *testing.T) {
		service, _, _, invitation := setup(t)

		_, err := service.CurrentSnapshots(ctx, invitation.ID, "invitee-1")
		assert.ErrorIs(t, err, shared.ErrForbidden)
		_, err = service.History(ctx, invitation.ID, "invitee-1")
		assert.ErrorIs(t, err, shared.ErrForbidden)
		_, err = service.History(ctx, models.NewID(), inviter.userID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestExpirationService(t *testing.T) {
	seed := func(t *testing.T, repository *inMemoryInvitationRepository, n int, expiresIn time.Duration, status models.InvitationStatus) {
		for range n {
			expiresAt := time.Now().Add(expiresIn)
			invitation := models.Invitation{
				InviterID:   inviter.userID,
				TokenDigest: models.NewID().String(),
				Status:      status,
				ExpiresAt:   &expiresAt,
			}
			require.NoError(t, repository.Create(nil, &invitation))
		}
	}

	countStatus := func(repository *inMemoryInvitationRepository, status models.InvitationStatus) int {
		page, _ := repository.ListByInviter(inviter.userID, shared.LimitOffset{Limit: 1000})
		return lo.CountBy(page.Items, func(i models.Invitation) bool { return i.Status == status })
	}

	t.Run("should expire at most one batch", func(t *testing.T) {
		repository := newInMemoryInvitationRepository()
		seed(t, repository, 7, -time.Minute, models.InvitationStatusPending)
		service := NewExpirationService(repository, shared.Config{ExpireBatchSize: 3})

		n, err := service.ExpireBatch(0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, 3, countStatus(repository, models.InvitationStatusExpired))
	})

	t.Run("should repeat batches until nothing is left", func(t *testing.T) {
		repository := newInMemoryInvitationRepository()
		seed(t, repository, 7, -time.Minute, models.InvitationStatusPending)
		seed(t, repository, 2, -time.Minute, models.InvitationStatusConsentGiven)
		seed(t, repository, 2, -time.Minute, models.InvitationStatusRevoked)
		seed(t, repository, 4, time.Hour, models.InvitationStatusPending)
		service := NewExpirationService(repository, shared.Config{ExpireBatchSize: 3})

		total, err := service.ExpireAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(9), total)
		assert.Equal(t, 9, countStatus(repository, models.InvitationStatusExpired))
		assert.Equal(t, 2, countStatus(repository, models.InvitationStatusRevoked))
		assert.Equal(t, 4, countStatus(repository, models.InvitationStatusPending))

		n, err := service.ExpireBatch(0)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("should stop if the context is canceled", func(t *testing.T) {
		repository := newInMemoryInvitationRepository()
		seed(t, repository, 2, -time.Minute, models.InvitationStatusPending)
		service := NewExpirationService(repository, shared.Config{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := service.ExpireAll(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
