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

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/l3montree-dev/finshare/statemachine"
	"github.com/pkg/errors"
)

// ProviderLinkService connects the data source an invitee linked at the provider to an invitation.
type ProviderLinkService struct {
	invitationService  shared.InvitationService
	providerClient     shared.ProviderClient
	credentialResolver shared.CredentialResolver
}

func NewProviderLinkService(invitationService shared.InvitationService, providerClient shared.ProviderClient, credentialResolver shared.CredentialResolver) *ProviderLinkService {
	return &ProviderLinkService{
		invitationService:  invitationService,
		providerClient:     providerClient,
		credentialResolver: credentialResolver,
	}
}

// Link exchanges the public token, stores the resulting credential for the invitee and moves
// the invitation to LINKED. The invitation is validated before the provider is called.
func (s *ProviderLinkService) Link(ctx context.Context, token string, userID string, publicToken string) (models.Invitation, error) {
	invitation, err := s.invitationService.ResolveByToken(ctx, token)
	if err != nil {
		return models.Invitation{}, err
	}
	// the link is rechecked under lock in MarkLinked, this only avoids a useless exchange
	if err := statemachine.CheckLink(invitation, userID); err != nil {
		return models.Invitation{}, err
	}

	accessToken, itemID, err := s.providerClient.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return models.Invitation{}, errors.Wrap(err, "could not exchange public token")
	}
	if err := s.credentialResolver.SaveCredential(ctx, userID, itemID, accessToken); err != nil {
		return models.Invitation{}, shared.PersistenceError(err, "could not store provider credential")
	}
	slog.Info("provider credential stored", "userID", userID, "itemID", itemID)

	return s.invitationService.MarkLinked(ctx, token, userID, itemID)
}
