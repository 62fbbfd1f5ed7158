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

package controllers

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
)

// httpError translates the domain error taxonomy into the client facing status codes.
// Everything unknown, including persistence failures, becomes a 500.
func httpError(err error, msg string) error {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "invitation not found").WithInternal(err)
	case errors.Is(err, shared.ErrGone):
		return echo.NewHTTPError(http.StatusGone, "invitation expired").WithInternal(err)
	case errors.Is(err, shared.ErrInactive):
		return echo.NewHTTPError(http.StatusBadRequest, "invitation is not active").WithInternal(err)
	case errors.Is(err, shared.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "invitation was already answered").WithInternal(err)
	case errors.Is(err, shared.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden").WithInternal(err)
	case errors.Is(err, shared.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many invitations, try again later").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, msg).WithInternal(err)
}

func invitationIDParam(ctx shared.Context) (snowflake.ID, error) {
	id, err := shared.GetInvitationID(ctx)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid invitation id").WithInternal(err)
	}
	return id, nil
}
