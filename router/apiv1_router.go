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
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(
	srv *echo.Echo,
	cfg shared.Config,
	rbac shared.AccessControl,
	healthController *controllers.HealthController,
) APIV1Router {
	// the session middleware only parses the bearer token.
	// Routes which need a user are registered on the session router.
	apiV1Router := srv.Group("/api/v1",
		middlewares.SessionMiddleware(cfg),
		middlewares.AccessControlMiddleware(rbac),
	)

	apiV1Router.GET("/health/", healthController.Health)
	apiV1Router.GET("/info/", healthController.Info)
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	return APIV1Router{Group: apiV1Router}
}
