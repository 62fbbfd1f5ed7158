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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/finshare/middlewares"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

// NewServer creates the echo server and binds its lifetime to the fx application.
func NewServer(lc fx.Lifecycle, cfg shared.Config) *echo.Echo {
	e := middlewares.NewServer(cfg)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				slog.Info("starting server", "addr", addr)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped unexpectedly", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return e.Shutdown(ctx)
		},
	})
	return e
}
