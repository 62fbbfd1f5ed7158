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

package repositories

import (
	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"gorm.io/gorm"
)

type ProviderCredentialRepository struct {
	db *gorm.DB
	*GormRepository[snowflake.ID, models.ProviderCredential]
}

func NewProviderCredentialRepository(db *gorm.DB) *ProviderCredentialRepository {
	return &ProviderCredentialRepository{
		db:             db,
		GormRepository: newGormRepository[snowflake.ID, models.ProviderCredential](db),
	}
}

func (r *ProviderCredentialRepository) Create(tx shared.DB, credential *models.ProviderCredential) error {
	return r.GormRepository.Create(tx, credential)
}

// Latest returns the most recently stored credential of the user.
func (r *ProviderCredentialRepository) Latest(userID string) (models.ProviderCredential, error) {
	var credential models.ProviderCredential
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").First(&credential).Error
	return credential, err
}
