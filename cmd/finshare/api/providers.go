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

package api

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/finshare/accesscontrol"
	"github.com/l3montree-dev/finshare/controllers"
	"github.com/l3montree-dev/finshare/daemons"
	"github.com/l3montree-dev/finshare/database/repositories"
	"github.com/l3montree-dev/finshare/integrations/mailint"
	"github.com/l3montree-dev/finshare/integrations/plaidint"
	"github.com/l3montree-dev/finshare/router"
	"github.com/l3montree-dev/finshare/services"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IntegrationModule provides the external collaborators: the data provider and mail delivery.
var IntegrationModule = fx.Options(
	plaidint.Module,
	mailint.Module,
)

// DatabaseLifecycle closes the pool once the application stops.
func DatabaseLifecycle(lc fx.Lifecycle, pool *pgxpool.Pool) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
}

// Module wires every layer of the service.
var Module = fx.Options(
	fx.Provide(NewServer),
	repositories.Module,
	services.Module,
	accesscontrol.Module,
	IntegrationModule,
	controllers.ControllerModule,
	router.RouterModule,
	daemons.Module,

	fx.Invoke(DatabaseLifecycle),
	// routers register their routes on construction
	fx.Invoke(func(router.InvitationRouter) {}),
	fx.Invoke(func(router.SharedDataRouter) {}),
	fx.Invoke(func(router.AdminRouter) {}),
	fx.Invoke(func(*echo.Echo) {}),
)
