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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/finshare/accesscontrol"
	"github.com/l3montree-dev/finshare/mocks"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorAccessControl(t *testing.T) {
	e := echo.New()
	newContext := func(rbac shared.AccessControl) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		shared.SetSession(c, accesscontrol.NewSession("user1", "", "", nil))
		shared.SetRBAC(c, rbac)
		return c
	}

	t.Run("should call the next handler for operators", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "user1", shared.ObjectInvitations, shared.ActionExpire).Return(true, nil).Once()

		var called bool
		err := OperatorAccessControl(shared.ObjectInvitations, shared.ActionExpire)(func(ctx echo.Context) error {
			called = true
			return nil
		})(newContext(rbac))
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should return 403 for everyone else", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "user1", shared.ObjectInvitations, shared.ActionExpire).Return(false, nil).Once()

		err := OperatorAccessControl(shared.ObjectInvitations, shared.ActionExpire)(func(ctx echo.Context) error {
			t.Fatal("next handler must not be called")
			return nil
		})(newContext(rbac))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("should return 500 if the rbac fails", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "user1", shared.ObjectInvitations, shared.ActionExpire).Return(false, errors.New("boom")).Once()

		err := OperatorAccessControl(shared.ObjectInvitations, shared.ActionExpire)(func(ctx echo.Context) error {
			return nil
		})(newContext(rbac))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
	})
}

func TestPublicRateLimit(t *testing.T) {
	e := echo.New()
	request := func(mw echo.MiddlewareFunc, ip string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		return mw(func(ctx echo.Context) error { return nil })(e.NewContext(req, httptest.NewRecorder()))
	}

	t.Run("should reject a client after its burst", func(t *testing.T) {
		mw := PublicRateLimit(3)
		for range 3 {
			assert.NoError(t, request(mw, "10.0.0.1"))
		}
		err := request(mw, "10.0.0.1")
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)

		// other clients are not affected
		assert.NoError(t, request(mw, "10.0.0.2"))
	})

	t.Run("should not limit if disabled", func(t *testing.T) {
		mw := PublicRateLimit(0)
		for range 100 {
			assert.NoError(t, request(mw, "10.0.0.1"))
		}
	})
}

func TestServer(t *testing.T) {
	e := NewServer(shared.Config{CORSAllowedOrigins: []string{"http://localhost:3000"}})
	e.GET("/api/v1/boom/", func(ctx echo.Context) error {
		panic("boom")
	})
	e.GET("/api/v1/gone/", func(ctx echo.Context) error {
		return echo.NewHTTPError(http.StatusGone, "invitation expired").WithInternal(errors.New("expired"))
	})
	e.GET("/api/v1/plain/", func(ctx echo.Context) error {
		return errors.New("something internal")
	})

	do := func(path string) (*httptest.ResponseRecorder, map[string]any) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		var body map[string]any
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		return rec, body
	}

	t.Run("should render http errors as message objects", func(t *testing.T) {
		rec, body := do("/api/v1/gone")
		assert.Equal(t, http.StatusGone, rec.Code)
		assert.Equal(t, "invitation expired", body["message"])
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		rec, body := do("/api/v1/plain/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", body["message"])
	})

	t.Run("should recover panics", func(t *testing.T) {
		rec, _ := do("/api/v1/boom/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
