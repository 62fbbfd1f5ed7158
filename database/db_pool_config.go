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

package database

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// PoolConfig holds the connection settings shared by the pgx pool and gorm.
type PoolConfig struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBName   string `env:"POSTGRES_DB"`

	MaxOpenConns    int32         `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MinConns        int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"4h"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"15m"`
}

// GetPoolConfigFromEnv reads the pool configuration from the environment.
// Invalid values are reported instead of silently replaced by defaults.
func GetPoolConfigFromEnv() (PoolConfig, error) {
	cfg, err := env.ParseAs[PoolConfig]()
	if err != nil {
		return cfg, err
	}
	if cfg.MaxOpenConns < 1 {
		cfg.MaxOpenConns = 1
	}
	if cfg.MinConns < 0 || cfg.MinConns > cfg.MaxOpenConns {
		cfg.MinConns = 0
	}
	return cfg, nil
}
