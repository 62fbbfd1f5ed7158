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
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/l3montree-dev/finshare/accesscontrol"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
)

// sessionClaims are the claims of the bearer token the auth collaborator issues.
type sessionClaims struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// SessionMiddleware verifies the bearer token of the request. Requests without a token get
// the NoSession session. An invalid token is rejected with 401.
func SessionMiddleware(cfg shared.Config) echo.MiddlewareFunc {
	secret := []byte(cfg.SessionJWTSecret)
	if len(secret) == 0 {
		slog.Warn("SESSION_JWT_SECRET is not set, every authenticated request will be rejected")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.SessionJWTIssuer != "" {
		options = append(options, jwt.WithIssuer(cfg.SessionJWTIssuer))
	}
	parser := jwt.NewParser(options...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}
			if len(secret) == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			var claims sessionClaims
			if _, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
				return secret, nil
			}); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session").WithInternal(err)
			}
			if claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			shared.SetSession(ctx, accesscontrol.NewSession(claims.Subject, claims.Email, claims.Name, claims.Roles))
			return next(ctx)
		}
	}
}

// RequireSession rejects requests without an authenticated user.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session, ok := ctx.Get("session").(shared.AuthSession)
			if !ok || session.GetUserID() == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(ctx)
		}
	}
}
