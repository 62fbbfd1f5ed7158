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
	"time"

	"github.com/l3montree-dev/finshare/mocks"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInvitationRateLimiter(t *testing.T) {
	cfg := shared.Config{InvitationRateWindow: time.Hour, InvitationRateMax: 100}

	t.Run("should count inside the trailing window", func(t *testing.T) {
		repository := mocks.NewInvitationRepository(t)
		now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		repository.On("CountCreatedSince", "inviter-1", now.Add(-time.Hour)).Return(int64(99), nil).Once()

		limiter := NewInvitationRateLimiter(repository, cfg)
		limiter.clock = func() time.Time { return now }
		assert.NoError(t, limiter.CheckAndRecord("inviter-1"))
	})

	t.Run("should reject once the maximum is reached", func(t *testing.T) {
		repository := mocks.NewInvitationRepository(t)
		repository.On("CountCreatedSince", "inviter-1", mock.Anything).Return(int64(100), nil).Once()

		err := NewInvitationRateLimiter(repository, cfg).CheckAndRecord("inviter-1")
		assert.ErrorIs(t, err, shared.ErrRateLimited)
	})

	t.Run("should fail open if the store is unavailable", func(t *testing.T) {
		repository := mocks.NewInvitationRepository(t)
		repository.On("CountCreatedSince", "inviter-1", mock.Anything).Return(int64(0), errors.New("connection refused")).Once()

		assert.NoError(t, NewInvitationRateLimiter(repository, cfg).CheckAndRecord("inviter-1"))
	})
}
