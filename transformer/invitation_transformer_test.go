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
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/stretchr/testify/assert"
)

func TestInvitationModelToPublicDTO(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	inviteeID := "invitee-1"
	invitation := models.Invitation{
		Model:           models.Model{ID: snowflake.ID(42)},
		InviterID:       "inviter-1",
		InviterName:     "Ana",
		InviterEmail:    "ana@example.com",
		InviteeEmail:    "bob@example.com",
		InviteeID:       &inviteeID,
		TokenDigest:     "digest",
		RequestedScopes: models.ScopeSetOf(models.ScopeBalance),
		Status:          models.InvitationStatusPending,
		ExpiresAt:       &expiresAt,
	}

	t.Run("should not leak invitee data or the token digest", func(t *testing.T) {
		b, err := json.Marshal(InvitationModelToPublicDTO(invitation))
		assert.NoError(t, err)
		assert.NotContains(t, string(b), "bob@example.com")
		assert.NotContains(t, string(b), "invitee-1")
		assert.NotContains(t, string(b), "digest")
		assert.Contains(t, string(b), "ana@example.com")
	})

	t.Run("should render the id as string in the created response", func(t *testing.T) {
		dto := InvitationModelToCreatedDTO(invitation, "the-token")
		assert.Equal(t, "42", dto.ID)
		assert.Equal(t, "the-token", dto.Token)
		assert.Equal(t, &expiresAt, dto.ExpiresAt)
	})
}

func TestExtractionResultToSummaryDTO(t *testing.T) {
	tests := []struct {
		name      string
		result    shared.ExtractionResult
		succeeded []models.Scope
		failed    int
	}{
		{
			name: "partial failure",
			result: shared.ExtractionResult{
				Eligible: true,
				Outcomes: []shared.ScopeOutcome{
					{Scope: models.ScopeBalance, Success: true},
					{Scope: models.ScopeIdentity, Success: false, Error: "timeout"},
				},
				SnapshotsWritten: 1,
			},
			succeeded: []models.Scope{models.ScopeBalance},
			failed:    1,
		},
		{
			name:      "not eligible",
			result:    shared.ExtractionResult{Eligible: false, Reason: "no credential"},
			succeeded: []models.Scope{},
			failed:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := ExtractionResultToSummaryDTO(tt.result)
			assert.Equal(t, tt.succeeded, dto.Succeeded)
			assert.Len(t, dto.Failed, tt.failed)
			assert.Equal(t, tt.result.SnapshotsWritten, dto.SnapshotsWritten)
		})
	}
}

func TestSnapshotModelToDTO(t *testing.T) {
	t.Run("should embed the payload as raw json", func(t *testing.T) {
		dto := SnapshotModelToDTO(models.Snapshot{DataType: models.ScopeBalance, Payload: []byte(`{"accounts":[]}`)})
		b, err := json.Marshal(dto)
		assert.NoError(t, err)
		assert.Contains(t, string(b), `"payload":{"accounts":[]}`)
	})

	t.Run("should render an empty payload as null", func(t *testing.T) {
		dto := SnapshotModelToDTO(models.Snapshot{DataType: models.ScopeBalance})
		assert.Equal(t, json.RawMessage("null"), dto.Payload)
	})
}
