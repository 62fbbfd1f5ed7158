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
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	nodeMu sync.Mutex
	node   *snowflake.Node
)

// SetNode configures the snowflake node used for id generation.
// Every replica of the service needs a distinct node number.
func SetNode(n int64) error {
	created, err := snowflake.NewNode(n)
	if err != nil {
		return err
	}
	nodeMu.Lock()
	defer nodeMu.Unlock()
	node = created
	return nil
}

// NewID returns a time ordered id. Sorting by id descending yields the newest rows first.
func NewID() snowflake.ID {
	nodeMu.Lock()
	defer nodeMu.Unlock()
	if node == nil {
		// node 0 is fine for single instance deployments and tests
		node, _ = snowflake.NewNode(0)
	}
	return node.Generate()
}

type Model struct {
	ID        snowflake.ID `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (m Model) GetID() snowflake.ID {
	return m.ID
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == 0 {
		m.ID = NewID()
	}
	return nil
}
