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

	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
)

// AccessControlMiddleware makes the rbac available to the handlers.
func AccessControlMiddleware(rbac shared.AccessControl) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			shared.SetRBAC(ctx, rbac)
			return next(ctx)
		}
	}
}

// OperatorAccessControl only lets users pass which may perform act on obj.
func OperatorAccessControl(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rbac := shared.GetRBAC(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "could not determine if the user has access").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied in OperatorAccessControl", "user", user, "object", obj, "action", act)
				return echo.NewHTTPError(http.StatusForbidden, "operator role required")
			}
			return next(ctx)
		}
	}
}
