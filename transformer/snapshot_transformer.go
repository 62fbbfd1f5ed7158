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

package transformer

import (
	"encoding/json"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/dtos"
	"github.com/l3montree-dev/finshare/shared"
)

func SnapshotModelToDTO(snapshot models.Snapshot) dtos.SnapshotDTO {
	payload := json.RawMessage(snapshot.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return dtos.SnapshotDTO{
		DataType:  snapshot.DataType,
		Payload:   payload,
		FetchedAt: snapshot.FetchedAt,
	}
}

func SnapshotModelsToDTOs(snapshots []models.Snapshot) []dtos.SnapshotDTO {
	res := make([]dtos.SnapshotDTO, len(snapshots))
	for i, s := range snapshots {
		res[i] = SnapshotModelToDTO(s)
	}
	return res
}

func RefreshResultToDTO(result shared.RefreshResult) dtos.RefreshDTO {
	return dtos.RefreshDTO{
		Refreshed: result.Refreshed,
		Status:    result.Status,
	}
}
