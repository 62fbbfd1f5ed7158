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

package repositories

import (
	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"gorm.io/gorm"
)

// SnapshotRepository only appends. There is no update or delete on purpose,
// snapshots disappear only through the cascade of their invitation.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) getDB(tx shared.DB) shared.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *SnapshotRepository) Create(tx shared.DB, snapshot *models.Snapshot) error {
	return r.getDB(tx).Create(snapshot).Error
}

func (r *SnapshotRepository) LatestPerDataType(tx shared.DB, invitationID snowflake.ID) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot
	err := r.getDB(tx).Raw(`SELECT DISTINCT ON (data_type) id, invitation_id, data_type, payload, fetched_at
		FROM snapshots
		WHERE invitation_id = ?
		ORDER BY data_type, fetched_at DESC, id DESC`, invitationID).Scan(&snapshots).Error
	return snapshots, err
}

func (r *SnapshotRepository) History(tx shared.DB, invitationID snowflake.ID) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot
	err := r.getDB(tx).Where("invitation_id = ?", invitationID).
		Order("fetched_at DESC, id DESC").
		Find(&snapshots).Error
	return snapshots, err
}
