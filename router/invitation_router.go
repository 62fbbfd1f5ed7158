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
	"github.com/l3montree-dev/finshare/middlewares"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
)

type InvitationRouter struct {
	*echo.Group
}

func NewInvitationRouter(
	apiV1Router APIV1Router,
	sessionRouter SessionRouter,
	cfg shared.Config,
	invitationController *controllers.InvitationController,
) InvitationRouter {
	/**
	Token routes are reachable by whoever holds the mailed token.
	They are throttled per client ip to make guessing tokens expensive.
	Answering the invitation still needs a logged in invitee.
	*/
	tokenRouter := apiV1Router.Group.Group("/invitations/token/:token", middlewares.PublicRateLimit(cfg.PublicRateLimitPerMinute))
	tokenRouter.GET("/", invitationController.ResolveByToken)
	tokenRouter.POST("/consent/", invitationController.Consent, middlewares.RequireSession())
	tokenRouter.POST("/link/", invitationController.Link, middlewares.RequireSession())

	invitationRouter := sessionRouter.Group.Group("/invitations")
	invitationRouter.POST("/", invitationController.Create)
	invitationRouter.GET("/mine/", invitationController.ListMine)
	invitationRouter.GET("/as-invitee/", invitationController.ListAsInvitee)
	invitationRouter.DELETE("/all/", invitationController.DeleteAllMine)
	invitationRouter.GET("/:invitationID/", invitationController.Read)
	invitationRouter.POST("/:invitationID/revoke/", invitationController.Revoke)
	invitationRouter.DELETE("/:invitationID/", invitationController.Delete)

	return InvitationRouter{Group: invitationRouter}
}
