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

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/mocks"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProviderLinkService(t *testing.T) {
	ctx := context.Background()

	t.Run("should exchange the public token and link the invitation", func(t *testing.T) {
		invitations := mocks.NewInvitationService(t)
		provider := mocks.NewProviderClient(t)
		credentials := mocks.NewCredentialResolver(t)

		invitations.On("ResolveByToken", ctx, "token").Return(models.Invitation{Status: models.InvitationStatusPending}, nil).Once()
		provider.On("ExchangePublicToken", ctx, "public-sandbox").Return("access-sandbox", "item-1", nil).Once()
		credentials.On("SaveCredential", ctx, "invitee-1", "item-1", "access-sandbox").Return(nil).Once()
		invitations.On("MarkLinked", ctx, "token", "invitee-1", "item-1").Return(models.Invitation{Status: models.InvitationStatusLinked}, nil).Once()

		invitation, err := NewProviderLinkService(invitations, provider, credentials).Link(ctx, "token", "invitee-1", "public-sandbox")
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusLinked, invitation.Status)
	})

	t.Run("should not call the provider for a gone invitation", func(t *testing.T) {
		invitations := mocks.NewInvitationService(t)
		provider := mocks.NewProviderClient(t)
		credentials := mocks.NewCredentialResolver(t)
		invitations.On("ResolveByToken", ctx, "token").Return(models.Invitation{}, shared.ErrGone).Once()

		_, err := NewProviderLinkService(invitations, provider, credentials).Link(ctx, "token", "invitee-1", "public-sandbox")
		assert.ErrorIs(t, err, shared.ErrGone)
	})

	t.Run("should not store anything if the exchange fails", func(t *testing.T) {
		invitations := mocks.NewInvitationService(t)
		provider := mocks.NewProviderClient(t)
		credentials := mocks.NewCredentialResolver(t)
		invitations.On("ResolveByToken", ctx, "token").Return(models.Invitation{}, nil).Once()
		provider.On("ExchangePublicToken", ctx, "public-sandbox").Return("", "", errors.New("INVALID_PUBLIC_TOKEN")).Once()

		_, err := NewProviderLinkService(invitations, provider, credentials).Link(ctx, "token", "invitee-1", "public-sandbox")
		assert.Error(t, err)
		credentials.AssertNotCalled(t, "SaveCredential", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not call the provider for an answered or foreign invitation", func(t *testing.T) {
		other := "invitee-2"
		for _, invitation := range []models.Invitation{
			{Status: models.InvitationStatusRevoked},
			{Status: models.InvitationStatusRejected},
			{Status: models.InvitationStatusPending, InviteeID: &other},
		} {
			invitations := mocks.NewInvitationService(t)
			provider := mocks.NewProviderClient(t)
			credentials := mocks.NewCredentialResolver(t)
			invitations.On("ResolveByToken", ctx, "token").Return(invitation, nil).Once()

			_, err := NewProviderLinkService(invitations, provider, credentials).Link(ctx, "token", "invitee-1", "public-sandbox")
			if invitation.InviteeID != nil {
				assert.ErrorIs(t, err, shared.ErrConflict)
			} else {
				assert.ErrorIs(t, err, shared.ErrInactive)
			}
			provider.AssertNotCalled(t, "ExchangePublicToken", mock.Anything, mock.Anything)
			credentials.AssertNotCalled(t, "SaveCredential", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			invitations.AssertNotCalled(t, "MarkLinked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})
}
