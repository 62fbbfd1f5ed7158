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

package shared

import (
	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
)

type CreateInvitationInput struct {
	InviteeEmail    string
	RequestedScopes models.ScopeSet
	Language        string
}

type ScopeOutcome struct {
	Scope      models.Scope  `json:"scope"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	SnapshotID *snowflake.ID `json:"snapshotId,omitempty"`
}

// ExtractionResult summarizes a single extraction run. Failures are reported per scope
// and never returned as an error.
type ExtractionResult struct {
	Eligible         bool           `json:"eligible"`
	Reason           string         `json:"reason,omitempty"`
	Outcomes         []ScopeOutcome `json:"outcomes"`
	SnapshotsWritten int            `json:"snapshotsWritten"`
	// Identity holds the sanitized identity payload if an identity snapshot was written.
	Identity map[string]any `json:"-"`
}

func (e ExtractionResult) Failed() []ScopeOutcome {
	var failed []ScopeOutcome
	for _, o := range e.Outcomes {
		if !o.Success {
			failed = append(failed, o)
		}
	}
	return failed
}

type ConsentResult struct {
	Invitation models.Invitation
	// Extraction is nil if the invitation was rejected.
	Extraction *ExtractionResult
}

type RefreshResult struct {
	Refreshed bool
	Status    models.InvitationStatus
	Result    *ExtractionResult
}

type NotificationKind string

const (
	NotificationInvitation     NotificationKind = "invitation"
	NotificationConsentGranted NotificationKind = "consent_granted"
	NotificationIdentityShared NotificationKind = "identity_shared"
	NotificationRevoked        NotificationKind = "revoked"
)

type Notification struct {
	Kind      NotificationKind
	Recipient string
	Language  string
	Data      map[string]any
}

type Object string
type Action string

const (
	ObjectInvitations Object = "invitations"

	ActionExpire Action = "expire"
	ActionDelete Action = "delete"
)
