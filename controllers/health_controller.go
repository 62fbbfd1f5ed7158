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
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/finshare/database"
	"github.com/l3montree-dev/finshare/dtos"
	"github.com/l3montree-dev/finshare/shared"
)

// filled at build time
var (
	Version string
	Commit  string
)

var startedAt = time.Now()

type HealthController struct {
	db   shared.DB
	pool *pgxpool.Pool
}

func NewHealthController(db shared.DB, pool *pgxpool.Pool) *HealthController {
	return &HealthController{db: db, pool: pool}
}

func (c *HealthController) Health(ctx shared.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "failed to get database instance",
		})
	}

	if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database ping failed",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Info reports build, runtime and database diagnostics.
func (c *HealthController) Info(ctx shared.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := dtos.InfoResponse{
		Build: dtos.BuildInfo{Version: Version, Commit: Commit},
		Runtime: dtos.RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			HeapAlloc:     mem.HeapAlloc,
			Sys:           mem.Sys,
		},
		Process: dtos.ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(startedAt).Seconds()),
		},
	}
	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	dbInfo := dtos.DatabaseInfo{Status: "unknown"}
	sqlDB, err := c.db.DB()
	switch {
	case err != nil:
		msg := "failed to get database instance"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &msg
	case sqlDB.PingContext(ctx.Request().Context()) != nil:
		msg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &msg
	default:
		dbInfo.Status = "healthy"
		if c.pool != nil {
			stats := c.pool.Stat()
			cfg := c.pool.Config()
			dbInfo.Pool = &dtos.PoolInfo{
				DBName:        cfg.ConnConfig.Database,
				MaxOpenConns:  cfg.MaxConns,
				TotalConns:    int(stats.TotalConns()),
				IdleConns:     int(stats.IdleConns()),
				AcquiredConns: int(stats.AcquiredConns()),
			}
		} else {
			dbInfo.DBStats = sqlDB.Stats()
		}

		if ver, dirty, err := database.GetMigrationVersionWithDB(c.db); err == nil {
			dbInfo.MigrationVersion = &ver
			dbInfo.MigrationDirty = &dirty
		} else {
			msg := err.Error()
			dbInfo.MigrationError = &msg
		}
	}
	resp.Database = dbInfo

	return ctx.JSON(http.StatusOK, resp)
}

// @Summary Get current user info
// @Security BearerAuth
// @Success 200 {object} object{userID=string,email=string,name=string,roles=[]string}
// @Router /whoami [get]
func (c *HealthController) WhoAmI(ctx shared.Context) error {
	session := shared.GetSession(ctx)
	return ctx.JSON(http.StatusOK, map[string]any{
		"userID": session.GetUserID(),
		"email":  session.GetEmail(),
		"name":   session.GetName(),
		"roles":  session.GetRoles(),
	})
}
