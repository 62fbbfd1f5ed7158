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
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	publicLimiterCacheSize = 10_000
	publicLimiterTTL       = 10 * time.Minute
)

// PublicRateLimit throttles unauthenticated endpoints per client ip.
// A non positive perMinute disables the limit.
func PublicRateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	limiters := expirable.NewLRU[string, *rate.Limiter](publicLimiterCacheSize, nil, publicLimiterTTL)
	every := time.Minute / time.Duration(perMinute)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ip := ctx.RealIP()
			limiter, ok := limiters.Get(ip)
			if !ok {
				limiter = rate.NewLimiter(rate.Every(every), perMinute)
				limiters.Add(ip, limiter)
			}
			if !limiter.Allow() {
				ctx.Response().Header().Set("Retry-After", "60")
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(ctx)
		}
	}
}
