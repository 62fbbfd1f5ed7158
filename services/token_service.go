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
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
)

const invitationTokenAudience = "finshare-invitation"

var errInvalidToken = errors.New("invalid invitation token")

// TokenService issues the bearer tokens mailed to invitees. A token is a HS256 signed JWT
// whose subject is the invitee email and whose issuer is the inviter id.
type TokenService struct {
	secret []byte
}

func NewTokenService(cfg shared.Config) *TokenService {
	secret := []byte(cfg.InvitationTokenSecret)
	if len(secret) == 0 {
		slog.Warn("INVITATION_TOKEN_SECRET is not set, using a random secret. Issued tokens will not survive a restart")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(err)
		}
	}
	return &TokenService{secret: secret}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *TokenService) Issue(inviterID, inviteeEmail string, expiresAt time.Time) (string, string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   normalizeEmail(inviteeEmail),
		Issuer:    inviterID,
		Audience:  jwt.ClaimStrings{invitationTokenAudience},
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", errors.Wrap(err, "could not sign invitation token")
	}
	return token, s.Digest(token), nil
}

// Digest is the lookup key of a token. Only digests are persisted.
func (s *TokenService) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Verify checks the signature and the binding of the token to the invitation.
// Expiry is not checked here, the invitation row is the source of truth for it.
func (s *TokenService) Verify(token string, invitation models.Invitation) error {
	if subtle.ConstantTimeCompare([]byte(s.Digest(token)), []byte(invitation.TokenDigest)) != 1 {
		return errInvalidToken
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return errors.Wrap(errInvalidToken, err.Error())
	}

	if claims.Subject != normalizeEmail(invitation.InviteeEmail) || claims.Issuer != invitation.InviterID {
		return errInvalidToken
	}
	for _, aud := range claims.Audience {
		if aud == invitationTokenAudience {
			return nil
		}
	}
	return errInvalidToken
}
