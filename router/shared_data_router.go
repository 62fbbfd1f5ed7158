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
	"github.com/l3montree-dev/finshare/controllers"
	"github.com/labstack/echo/v4"
)

type SharedDataRouter struct {
	*echo.Group
}

func NewSharedDataRouter(
	sessionRouter SessionRouter,
	sharedDataController *controllers.SharedDataController,
) SharedDataRouter {
	sharedRouter := sessionRouter.Group.Group("/shared/:invitationID")
	sharedRouter.GET("/snapshots/", sharedDataController.Snapshots)
	sharedRouter.GET("/history/", sharedDataController.History)
	sharedRouter.POST("/refresh/", sharedDataController.Refresh)

	return SharedDataRouter{Group: sharedRouter}
}
