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
	"net/http"

	"github.com/l3montree-dev/finshare/dtos"
	"github.com/l3montree-dev/finshare/shared"
)

type AdminController struct {
	expirationService shared.ExpirationService
}

func NewAdminController(expirationService shared.ExpirationService) *AdminController {
	return &AdminController{expirationService: expirationService}
}

// Expire runs the expiration sweep until no overdue invitation is left.
// The route is guarded by the operator access control.
func (c *AdminController) Expire(ctx shared.Context) error {
	expired, err := c.expirationService.ExpireAll(ctx.Request().Context())
	if err != nil {
		return httpError(err, "could not expire invitations")
	}
	return ctx.JSON(http.StatusOK, dtos.ExpiredDTO{Expired: expired})
}
