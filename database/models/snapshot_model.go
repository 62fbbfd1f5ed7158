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

package models

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Snapshot is one immutable capture of provider data for a single scope.
// Rows are only ever inserted. The database rejects updates with a trigger.
type Snapshot struct {
	ID           snowflake.ID   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	InvitationID snowflake.ID   `json:"invitationId" gorm:"not null;index:idx_snapshots_invitation_type_fetched,priority:1"`
	DataType     Scope          `json:"dataType" gorm:"type:text;not null;index:idx_snapshots_invitation_type_fetched,priority:2"`
	Payload      datatypes.JSON `json:"payload" gorm:"type:jsonb;not null"`
	FetchedAt    time.Time      `json:"fetchedAt" gorm:"not null;index:idx_snapshots_invitation_type_fetched,priority:3,sort:desc"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

func (s *Snapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == 0 {
		s.ID = NewID()
	}
	if s.FetchedAt.IsZero() {
		s.FetchedAt = time.Now().UTC()
	}
	return nil
}
