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
)

type InvitationStatus string

const (
	InvitationStatusPending      InvitationStatus = "PENDING"
	InvitationStatusLinked       InvitationStatus = "LINKED"
	InvitationStatusConsentGiven InvitationStatus = "CONSENT_GIVEN"
	InvitationStatusRevoked      InvitationStatus = "REVOKED"
	InvitationStatusExpired      InvitationStatus = "EXPIRED"
	InvitationStatusRejected     InvitationStatus = "REJECTED"
)

// IsTerminal reports whether no further transition may leave the status.
func (s InvitationStatus) IsTerminal() bool {
	switch s {
	case InvitationStatusRevoked, InvitationStatusExpired, InvitationStatusRejected:
		return true
	}
	return false
}

// ActiveInvitationStatuses are the statuses the expiration sweep is allowed to touch.
var ActiveInvitationStatuses = []InvitationStatus{
	InvitationStatusPending,
	InvitationStatusLinked,
	InvitationStatusConsentGiven,
}

type Invitation struct {
	Model

	InviterID    string `json:"inviterId" gorm:"type:text;not null;index"`
	InviterEmail string `json:"inviterEmail" gorm:"type:text"`
	InviterName  string `json:"inviterName" gorm:"type:text"`

	InviteeEmail string  `json:"inviteeEmail" gorm:"type:text;not null"`
	InviteeID    *string `json:"inviteeId" gorm:"type:text;index"`

	// TokenDigest is the hex encoded sha256 of the bearer token. The token itself is never stored.
	TokenDigest string `json:"-" gorm:"type:text;not null;uniqueIndex"`

	RequestedScopes ScopeSet  `json:"requestedScopes" gorm:"type:smallint;not null"`
	GrantedScopes   *ScopeSet `json:"grantedScopes" gorm:"type:smallint"`

	Status   InvitationStatus `json:"status" gorm:"type:text;not null;default:'PENDING'"`
	Language string           `json:"language" gorm:"type:text;not null;default:'en'"`

	ProviderItemID *string `json:"providerItemId" gorm:"type:text"`

	ConsentedAt      *time.Time `json:"consentedAt"`
	RevokedAt        *time.Time `json:"revokedAt"`
	RevocationReason *string    `json:"revocationReason" gorm:"type:text"`
	ExpiresAt        *time.Time `json:"expiresAt"`

	// Completed only signals that at least one snapshot exists.
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	CompletedAt *time.Time `json:"completedAt"`

	Snapshots []Snapshot `json:"-" gorm:"foreignKey:InvitationID;constraint:OnDelete:CASCADE"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// IsInviter reports whether userID created the invitation.
func (i Invitation) IsInviter(userID string) bool {
	return userID != "" && i.InviterID == userID
}

func (i Invitation) IsInvitee(userID string) bool {
	return userID != "" && i.InviteeID != nil && *i.InviteeID == userID
}

// EffectiveGrantedScopes returns the granted scopes or the empty set before consent.
func (i Invitation) EffectiveGrantedScopes() ScopeSet {
	if i.GrantedScopes == nil {
		return ScopeSet{}
	}
	return *i.GrantedScopes
}
