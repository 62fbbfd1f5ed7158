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

	"github.com/golang-jwt/jwt/v5"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService(shared.Config{InvitationTokenSecret: "secret"})
	expiresAt := time.Now().Add(time.Hour)

	issue := func(t *testing.T) (string, models.Invitation) {
		token, digest, err := service.Issue("inviter-1", "Invitee@Example.com", expiresAt)
		require.NoError(t, err)
		return token, models.Invitation{InviterID: "inviter-1", InviteeEmail: "invitee@example.com", TokenDigest: digest}
	}

	t.Run("should verify a token against its own invitation", func(t *testing.T) {
		token, invitation := issue(t)
		assert.NoError(t, service.Verify(token, invitation))
	})

	t.Run("should issue unique tokens for the same invitee", func(t *testing.T) {
		first, _ := issue(t)
		second, _ := issue(t)
		assert.NotEqual(t, first, second)
	})

	t.Run("should bind the token to the invitee email", func(t *testing.T) {
		token, invitation := issue(t)
		invitation.InviteeEmail = "someone@example.com"
		assert.Error(t, service.Verify(token, invitation))
	})

	t.Run("should bind the token to the inviter", func(t *testing.T) {
		token, invitation := issue(t)
		invitation.InviterID = "inviter-2"
		assert.Error(t, service.Verify(token, invitation))
	})

	t.Run("should reject a token which does not match the stored digest", func(t *testing.T) {
		token, invitation := issue(t)
		other, _ := issue(t)
		assert.Error(t, service.Verify(other, invitation))
		assert.Error(t, service.Verify(token+"x", invitation))
	})

	t.Run("should reject a token signed with another algorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "invitee@example.com", Issuer: "inviter-1", Audience: jwt.ClaimStrings{invitationTokenAudience}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		invitation := models.Invitation{InviterID: "inviter-1", InviteeEmail: "invitee@example.com", TokenDigest: service.Digest(token)}
		assert.Error(t, service.Verify(token, invitation))
	})

	t.Run("should not care about the jwt expiry", func(t *testing.T) {
		token, digest, err := service.Issue("inviter-1", "invitee@example.com", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.NoError(t, service.Verify(token, models.Invitation{InviterID: "inviter-1", InviteeEmail: "invitee@example.com", TokenDigest: digest}))
	})

	t.Run("should produce a stable hex digest", func(t *testing.T) {
		assert.Equal(t, service.Digest("abc"), service.Digest("abc"))
		assert.Len(t, service.Digest("abc"), 64)
	})
}
