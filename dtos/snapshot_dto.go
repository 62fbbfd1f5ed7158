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

import (
	"encoding/json"
	"time"

	"github.com/l3montree-dev/finshare/database/models"
)

type SnapshotDTO struct {
	DataType  models.Scope    `json:"dataType"`
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

type RefreshDTO struct {
	Refreshed bool                    `json:"refreshed"`
	Status    models.InvitationStatus `json:"status"`
}

type ExpiredDTO struct {
	Expired int64 `json:"expired"`
}
