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

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	"github.com/l3montree-dev/finshare/controllers"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/middlewares"
	"github.com/l3montree-dev/finshare/mocks"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "session-secret"

type routerFixture struct {
	server            *echo.Echo
	invitationService *mocks.InvitationService
	expirationService *mocks.ExpirationService
	rbac              *mocks.AccessControl
}

func newRouterFixture(t *testing.T) routerFixture {
	cfg := shared.Config{
		SessionJWTSecret:         testSessionSecret,
		PublicRateLimitPerMinute: 2,
		CORSAllowedOrigins:       []string{"http://localhost:3000"},
	}
	f := routerFixture{
		server:            middlewares.NewServer(cfg),
		invitationService: mocks.NewInvitationService(t),
		expirationService: mocks.NewExpirationService(t),
		rbac:              mocks.NewAccessControl(t),
	}

	apiV1 := NewAPIV1Router(f.server, cfg, f.rbac, controllers.NewHealthController(nil, nil))
	session := NewSessionRouter(apiV1, controllers.NewHealthController(nil, nil))
	NewInvitationRouter(apiV1, session, cfg, controllers.NewInvitationController(f.invitationService, mocks.NewProviderLinkService(t)))
	NewSharedDataRouter(session, controllers.NewSharedDataController(mocks.NewSharedDataService(t), mocks.NewExtractionService(t)))
	NewAdminRouter(session, controllers.NewAdminController(f.expirationService))
	return f
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func (f routerFixture) do(method, target, authorization, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	t.Run("should require a session to list invitations", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/invitations/mine", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"authentication required"}`, rec.Body.String())
	})

	t.Run("should route to the list of the caller without trailing slash", func(t *testing.T) {
		f := newRouterFixture(t)
		page := shared.LimitOffset{Limit: shared.DefaultPageLimit}
		f.invitationService.On("ListMine", "user-1", page).Return(shared.NewPaged[models.Invitation](page, 0, nil), nil)

		rec := f.do(http.MethodGet, "/api/v1/invitations/mine", bearer(t, "user-1"), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should resolve a token without a session", func(t *testing.T) {
		f := newRouterFixture(t)
		f.invitationService.On("ResolveByToken", mock.Anything, "tok").Return(models.Invitation{Status: models.InvitationStatusPending}, nil)

		rec := f.do(http.MethodGet, "/api/v1/invitations/token/tok/", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should throttle the public token routes per client", func(t *testing.T) {
		f := newRouterFixture(t)
		f.invitationService.On("ResolveByToken", mock.Anything, "tok").Return(models.Invitation{}, shared.ErrNotFound)

		codes := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			codes = append(codes, f.do(http.MethodGet, "/api/v1/invitations/token/tok/", "", "").Code)
		}
		assert.Equal(t, http.StatusNotFound, codes[0])
		assert.Contains(t, codes, http.StatusTooManyRequests)
	})

	t.Run("should require a session to consent", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/invitations/token/tok/consent/", "", `{"accept":true}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a forged session", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/whoami/", "Bearer not-a-jwt", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should route revoke with the parsed invitation id", func(t *testing.T) {
		f := newRouterFixture(t)
		f.invitationService.On("Revoke", mock.Anything, snowflake.ID(99), "user-1", (*string)(nil)).Return(models.Invitation{Status: models.InvitationStatusRevoked}, nil)

		rec := f.do(http.MethodPost, "/api/v1/invitations/99/revoke/", bearer(t, "user-1"), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should prefer the static delete all route over the id route", func(t *testing.T) {
		f := newRouterFixture(t)
		f.invitationService.On("DeleteAllMine", "user-1").Return(int64(0), nil)

		rec := f.do(http.MethodDelete, "/api/v1/invitations/all/", bearer(t, "user-1"), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted":0}`, rec.Body.String())
	})

	t.Run("should forbid the batch expiration for non operators", func(t *testing.T) {
		f := newRouterFixture(t)
		f.rbac.On("IsAllowed", "user-1", shared.ObjectInvitations, shared.ActionExpire).Return(false, nil)

		rec := f.do(http.MethodPost, "/api/v1/admin/expire/", bearer(t, "user-1"), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should run the batch expiration for operators", func(t *testing.T) {
		f := newRouterFixture(t)
		f.rbac.On("IsAllowed", "operator-1", shared.ObjectInvitations, shared.ActionExpire).Return(true, nil)
		f.expirationService.On("ExpireAll", mock.Anything).Return(int64(3), nil)

		rec := f.do(http.MethodPost, "/api/v1/admin/expire/", bearer(t, "operator-1"), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"expired":3}`, rec.Body.String())
	})

	t.Run("should expose prometheus metrics", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/metrics/", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
