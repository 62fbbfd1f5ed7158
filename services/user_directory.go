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
	"errors"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"gorm.io/gorm"
)

const (
	userDirectoryCacheSize = 1024
	userDirectoryCacheTTL  = 5 * time.Minute
)

// UserDirectory resolves display data of users. Lookups are cached for a few minutes.
type UserDirectory struct {
	userRepository shared.UserRepository
	cache          *expirable.LRU[string, models.User]
}

func NewUserDirectory(userRepository shared.UserRepository) *UserDirectory {
	return &UserDirectory{
		userRepository: userRepository,
		cache:          expirable.NewLRU[string, models.User](userDirectoryCacheSize, nil, userDirectoryCacheTTL),
	}
}

func (d *UserDirectory) Lookup(userID string) (models.User, bool) {
	if user, ok := d.cache.Get(userID); ok {
		return user, true
	}
	user, err := d.userRepository.Read(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("could not look up user", "userID", userID, "err", err)
		}
		return models.User{}, false
	}
	d.cache.Add(userID, user)
	return user, true
}
