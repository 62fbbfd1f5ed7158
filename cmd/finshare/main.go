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

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/finshare/cmd/finshare/api"
	"github.com/l3montree-dev/finshare/database"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
	"go.uber.org/fx"
)

//	@title			finshare API
//	@version		v1
//	@description	consent based sharing of financial data

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	cfg, err := shared.LoadConfig()
	shared.InitLogger()
	if err != nil {
		slog.Error("could not parse configuration", "err", err)
		os.Exit(1)
	}

	if err := monitoring.InitErrorTracking(cfg.ErrorTrackingDSN, cfg.Environment); err != nil {
		slog.Error("could not initialize error tracking", "err", err)
	}
	defer monitoring.FlushErrorTracking()
	defer func() {
		if err := recover(); err != nil {
			sentry.CurrentHub().Recover(err)
			monitoring.FlushErrorTracking()
			panic(err)
		}
	}()

	shutdownTracing, err := monitoring.SetupTracing(context.Background(), "finshare", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("could not setup tracing", "err", err)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	if err := models.SetNode(cfg.SnowflakeNode); err != nil {
		slog.Error("invalid snowflake node", "node", cfg.SnowflakeNode, "err", err)
		os.Exit(1)
	}

	pool, db, err := database.DatabaseFactory()
	if err != nil {
		slog.Error("failed to setup database connection", "err", err)
		os.Exit(1)
	}

	if !cfg.DisableAutomigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			os.Exit(1)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		api.Module,
	).Run()
}
