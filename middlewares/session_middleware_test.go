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

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/l3montree-dev/finshare/accesscontrol"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionConfig = shared.Config{SessionJWTSecret: "session-secret", SessionJWTIssuer: "https://auth.example.com"}

func signSession(t *testing.T, secret string, claims sessionClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() sessionClaims {
	return sessionClaims{
		Email: "inviter@example.com",
		Name:  "Ines",
		Roles: []string{"operator"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user1",
			Issuer:    "https://auth.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func runSessionMiddleware(t *testing.T, cfg shared.Config, authorization string, handler echo.HandlerFunc) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return SessionMiddleware(cfg)(handler)(c)
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the userID and the claims of a valid bearer token", func(t *testing.T) {
		var called bool
		err := runSessionMiddleware(t, sessionConfig, "Bearer "+signSession(t, "session-secret", validClaims()), func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)
			assert.Equal(t, "user1", sess.GetUserID())
			assert.Equal(t, "inviter@example.com", sess.GetEmail())
			assert.Equal(t, "Ines", sess.GetName())
			assert.ElementsMatch(t, []string{"operator"}, sess.GetRoles())
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should set no session without authorization header", func(t *testing.T) {
		var called bool
		err := runSessionMiddleware(t, sessionConfig, "", func(ctx echo.Context) error {
			called = true
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should not call next handler if the token is signed with another secret", func(t *testing.T) {
		var called bool
		err := runSessionMiddleware(t, sessionConfig, "Bearer "+signSession(t, "other", validClaims()), func(ctx echo.Context) error {
			called = true
			return nil
		})
		assert.False(t, called)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("should reject expired tokens and tokens of another issuer", func(t *testing.T) {
		expired := validClaims()
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		foreign := validClaims()
		foreign.Issuer = "https://evil.example.com"
		noExpiry := validClaims()
		noExpiry.ExpiresAt = nil

		for _, claims := range []sessionClaims{expired, foreign, noExpiry} {
			err := runSessionMiddleware(t, sessionConfig, "Bearer "+signSession(t, "session-secret", claims), func(ctx echo.Context) error {
				t.Fatal("next handler must not be called")
				return nil
			})
			assert.Error(t, err)
		}
	})

	t.Run("should reject every token if no secret is configured", func(t *testing.T) {
		err := runSessionMiddleware(t, shared.Config{}, "Bearer "+signSession(t, "", validClaims()), func(ctx echo.Context) error {
			t.Fatal("next handler must not be called")
			return nil
		})
		assert.Error(t, err)
	})
}

func TestRequireSession(t *testing.T) {
	e := echo.New()

	t.Run("should reject requests without a user", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(c, accesscontrol.NoSession)
		err := RequireSession()(func(ctx echo.Context) error { return nil })(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("should pass authenticated requests", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(c, accesscontrol.NewSession("user1", "", "", nil))
		assert.NoError(t, RequireSession()(func(ctx echo.Context) error { return nil })(c))
	})
}
