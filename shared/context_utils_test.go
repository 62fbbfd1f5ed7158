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

package shared_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLimitOffsetClamp(t *testing.T) {
	t.Run("should fall back to the default limit", func(t *testing.T) {
		assert.Equal(t, shared.DefaultPageLimit, shared.LimitOffset{}.Clamp().Limit)
	})

	t.Run("should cap the limit", func(t *testing.T) {
		assert.Equal(t, shared.MaxPageLimit, shared.LimitOffset{Limit: 5000}.Clamp().Limit)
	})

	t.Run("should use the default limit for a negative limit and never return a negative offset", func(t *testing.T) {
		l := shared.LimitOffset{Limit: -3, Offset: -10}.Clamp()
		assert.Equal(t, shared.DefaultPageLimit, l.Limit)
		assert.Equal(t, 0, l.Offset)
		assert.Equal(t, 1, shared.LimitOffset{Limit: 1}.Clamp().Limit)
	})
}

func TestGetLimitOffset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=abc&offset=7", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	page := shared.GetLimitOffset(ctx)
	assert.Equal(t, shared.DefaultPageLimit, page.Limit)
	assert.Equal(t, 7, page.Offset)
}

func TestGetInvitationID(t *testing.T) {
	e := echo.New()
	newCtx := func(id string) shared.Context {
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		ctx.SetParamNames("invitationID")
		ctx.SetParamValues(id)
		return ctx
	}

	t.Run("should parse a snowflake id", func(t *testing.T) {
		id, err := shared.GetInvitationID(newCtx("1234567890"))
		assert.NoError(t, err)
		assert.Equal(t, snowflake.ID(1234567890), id)
	})

	t.Run("should fail on garbage", func(t *testing.T) {
		_, err := shared.GetInvitationID(newCtx("not-an-id"))
		assert.Error(t, err)
	})

	t.Run("should fail on an empty id", func(t *testing.T) {
		_, err := shared.GetInvitationID(newCtx(""))
		assert.Error(t, err)
	})
}

func TestMapPaged(t *testing.T) {
	p := shared.NewPaged[int](shared.LimitOffset{Limit: 2}, 5, []int{1, 2})
	mapped := shared.MapPaged(p, func(i int) string { return string(rune('a' + i - 1)) })
	assert.Equal(t, []string{"a", "b"}, mapped.Items)
	assert.Equal(t, int64(5), mapped.Total)

	empty := shared.NewPaged[int](shared.LimitOffset{}, 0, nil)
	assert.NotNil(t, empty.Items)
}
