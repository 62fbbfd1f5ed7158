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

package dtos

import "database/sql"

type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version string `json:"version,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion,omitempty"`
	NumGoroutines int    `json:"numGoroutines,omitempty"`
	HeapAlloc     uint64 `json:"heapAlloc"`
	Sys           uint64 `json:"sys"`
}

// PoolInfo never contains credentials.
type PoolInfo struct {
	DBName        string `json:"dbName,omitempty"`
	MaxOpenConns  int32  `json:"maxOpenConns,omitempty"`
	TotalConns    int    `json:"totalConns,omitempty"`
	IdleConns     int    `json:"idleConns,omitempty"`
	AcquiredConns int    `json:"acquiredConns,omitempty"`
}

type DatabaseInfo struct {
	sql.DBStats
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}
