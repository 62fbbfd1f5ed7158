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

package plaidint

import (
	"context"
	"errors"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"gorm.io/gorm"
)

// CredentialResolver reads the provider credentials the invitee stored while linking a data source.
type CredentialResolver struct {
	credentialRepository shared.ProviderCredentialRepository
}

func NewCredentialResolver(credentialRepository shared.ProviderCredentialRepository) *CredentialResolver {
	return &CredentialResolver{credentialRepository: credentialRepository}
}

func (r *CredentialResolver) LatestCredential(ctx context.Context, userID string) (*models.ProviderCredential, error) {
	credential, err := r.credentialRepository.Latest(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

func (r *CredentialResolver) SaveCredential(ctx context.Context, userID, itemID, accessToken string) error {
	return r.credentialRepository.Create(nil, &models.ProviderCredential{
		UserID:      userID,
		ItemID:      itemID,
		AccessToken: accessToken,
	})
}
