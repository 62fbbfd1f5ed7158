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
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const serviceName = "finshare"

func registerMiddlewares(e *echo.Echo, cfg shared.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(otelecho.Middleware(serviceName, otelecho.WithSkipper(func(ctx echo.Context) bool {
		return ctx.Path() == "/api/v1/health/" || ctx.Path() == "/api/v1/metrics/"
	})))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, echo.HeaderAuthorization),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "requestID", ctx.Response().Header().Get(echo.HeaderXRequestID))

		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var message any = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				message = echo.Map{"message": m}
			case json.Marshaler:
				// do nothing - this type knows how to format itself to JSON
				message = m
			case error:
				message = echo.Map{"message": m.Error()}
			default:
				message = m
			}
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}
		if err := ctx.JSON(code, message); err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

// NewServer creates the echo instance with every global middleware and the central error handler.
func NewServer(cfg shared.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	if cfg.EnableProfiling {
		AddProfileEndpoints(e)
	}
	return e
}
