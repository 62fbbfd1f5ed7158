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
	"testing"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/mocks"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserDirectory(t *testing.T) {
	t.Run("should cache found users", func(t *testing.T) {
		repository := mocks.NewUserRepository(t)
		repository.On("Read", "user-1").Return(models.User{ID: "user-1", Name: "Jane"}, nil).Once()
		directory := NewUserDirectory(repository)

		for range 3 {
			user, ok := directory.Lookup("user-1")
			assert.True(t, ok)
			assert.Equal(t, "Jane", user.Name)
		}
	})

	t.Run("should not cache misses", func(t *testing.T) {
		repository := mocks.NewUserRepository(t)
		repository.On("Read", "ghost").Return(models.User{}, gorm.ErrRecordNotFound).Twice()
		directory := NewUserDirectory(repository)

		_, ok := directory.Lookup("ghost")
		assert.False(t, ok)
		_, ok = directory.Lookup("ghost")
		assert.False(t, ok)
	})
}
