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

package models

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ProviderCredential references the access token a user obtained while linking a data source at the provider.
// Encryption at rest is handled by the storage layer.
type ProviderCredential struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID      string       `json:"userId" gorm:"type:text;not null;index"`
	ItemID      string       `json:"itemId" gorm:"type:text;not null"`
	AccessToken string       `json:"-" gorm:"type:text;not null"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func (ProviderCredential) TableName() string {
	return "provider_credentials"
}

func (p *ProviderCredential) BeforeCreate(tx *gorm.DB) error {
	if p.ID == 0 {
		p.ID = NewID()
	}
	return nil
}

// User is a read only row of the user directory maintained by the authentication service.
type User struct {
	ID    string `json:"id" gorm:"primaryKey;type:text"`
	Email string `json:"email" gorm:"type:text"`
	Name  string `json:"name" gorm:"type:text"`
}

func (User) TableName() string {
	return "users"
}
