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
	"time"

	"github.com/l3montree-dev/finshare/database/models"
)

type InvitationCreateRequest struct {
	InviteeEmail    string          `json:"inviteeEmail" validate:"required,email"`
	RequestedScopes models.ScopeSet `json:"requestedScopes"`
}

// InvitationConsentRequest answers an invitation. A missing scopes object grants everything that was requested.
type InvitationConsentRequest struct {
	Accept bool             `json:"accept"`
	Scopes *models.ScopeSet `json:"scopes"`
}

type InvitationRevokeRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type InvitationLinkRequest struct {
	PublicToken string `json:"publicToken" validate:"required"`
}

// InvitationCreatedDTO is the only response which ever contains the bearer token.
type InvitationCreatedDTO struct {
	ID        string                  `json:"id"`
	Token     string                  `json:"token"`
	Status    models.InvitationStatus `json:"status"`
	ExpiresAt *time.Time              `json:"expiresAt"`
}

type InvitationPublicDTO struct {
	InviterName     string                  `json:"inviterName"`
	InviterEmail    string                  `json:"inviterEmail"`
	RequestedScopes models.ScopeSet         `json:"requestedScopes"`
	Status          models.InvitationStatus `json:"status"`
	ExpiresAt       *time.Time              `json:"expiresAt"`
}

type InvitationDTO struct {
	ID               string                  `json:"id"`
	InviterID        string                  `json:"inviterId"`
	InviterName      string                  `json:"inviterName"`
	InviterEmail     string                  `json:"inviterEmail"`
	InviteeEmail     string                  `json:"inviteeEmail"`
	InviteeID        *string                 `json:"inviteeId"`
	RequestedScopes  models.ScopeSet         `json:"requestedScopes"`
	GrantedScopes    *models.ScopeSet        `json:"grantedScopes"`
	Status           models.InvitationStatus `json:"status"`
	Completed        bool                    `json:"completed"`
	ProviderItemID   *string                 `json:"providerItemId"`
	CreatedAt        time.Time               `json:"createdAt"`
	ConsentedAt      *time.Time              `json:"consentedAt"`
	RevokedAt        *time.Time              `json:"revokedAt"`
	RevocationReason *string                 `json:"revocationReason"`
	ExpiresAt        *time.Time              `json:"expiresAt"`
}

type InvitationListItemDTO struct {
	ID           string                  `json:"id"`
	InviteeEmail string                  `json:"inviteeEmail"`
	Status       models.InvitationStatus `json:"status"`
	Completed    bool                    `json:"completed"`
	CreatedAt    time.Time               `json:"createdAt"`
	ConsentedAt  *time.Time              `json:"consentedAt"`
}

// ConsentResponseDTO carries the extraction summary next to the invitation for observability.
type ConsentResponseDTO struct {
	InvitationDTO
	Extraction *ExtractionSummaryDTO `json:"extraction,omitempty"`
}

type ExtractionSummaryDTO struct {
	SnapshotsWritten int               `json:"snapshotsWritten"`
	Failed           []ScopeFailureDTO `json:"failed"`
	Succeeded        []models.Scope    `json:"succeeded"`
}

type ScopeFailureDTO struct {
	Scope models.Scope `json:"scope"`
	Error string       `json:"error"`
}

type DeletedDTO struct {
	Deleted bool `json:"deleted"`
}

type DeletedCountDTO struct {
	Deleted int64 `json:"deleted"`
}
