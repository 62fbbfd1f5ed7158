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

package commands

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/finshare/database"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// connect loads the configuration and opens the database the same way the service does.
func connect() (shared.Config, *pgxpool.Pool, *gorm.DB, error) {
	cfg, err := shared.LoadConfig()
	if err != nil {
		return cfg, nil, nil, errors.Wrap(err, "could not parse configuration")
	}
	pool, db, err := database.DatabaseFactory()
	if err != nil {
		return cfg, nil, nil, errors.Wrap(err, "could not connect to database")
	}
	return cfg, pool, db, nil
}
