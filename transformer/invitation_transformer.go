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
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/dtos"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/samber/lo"
)

func InvitationModelToCreatedDTO(invitation models.Invitation, token string) dtos.InvitationCreatedDTO {
	return dtos.InvitationCreatedDTO{
		ID:        invitation.ID.String(),
		Token:     token,
		Status:    invitation.Status,
		ExpiresAt: invitation.ExpiresAt,
	}
}

// InvitationModelToPublicDTO projects the invitation for the unauthenticated token view.
// It neither contains the token nor any invitee data.
func InvitationModelToPublicDTO(invitation models.Invitation) dtos.InvitationPublicDTO {
	return dtos.InvitationPublicDTO{
		InviterName:     invitation.InviterName,
		InviterEmail:    invitation.InviterEmail,
		RequestedScopes: invitation.RequestedScopes,
		Status:          invitation.Status,
		ExpiresAt:       invitation.ExpiresAt,
	}
}

func InvitationModelToDTO(invitation models.Invitation) dtos.InvitationDTO {
	return dtos.InvitationDTO{
		ID:               invitation.ID.String(),
		InviterID:        invitation.InviterID,
		InviterName:      invitation.InviterName,
		InviterEmail:     invitation.InviterEmail,
		InviteeEmail:     invitation.InviteeEmail,
		InviteeID:        invitation.InviteeID,
		RequestedScopes:  invitation.RequestedScopes,
		GrantedScopes:    invitation.GrantedScopes,
		Status:           invitation.Status,
		Completed:        invitation.Completed,
		ProviderItemID:   invitation.ProviderItemID,
		CreatedAt:        invitation.CreatedAt,
		ConsentedAt:      invitation.ConsentedAt,
		RevokedAt:        invitation.RevokedAt,
		RevocationReason: invitation.RevocationReason,
		ExpiresAt:        invitation.ExpiresAt,
	}
}

func InvitationModelToListItemDTO(invitation models.Invitation) dtos.InvitationListItemDTO {
	return dtos.InvitationListItemDTO{
		ID:           invitation.ID.String(),
		InviteeEmail: invitation.InviteeEmail,
		Status:       invitation.Status,
		Completed:    invitation.Completed,
		CreatedAt:    invitation.CreatedAt,
		ConsentedAt:  invitation.ConsentedAt,
	}
}

func PagedInvitationsToListItemDTOs(paged shared.Paged[models.Invitation]) shared.Paged[dtos.InvitationListItemDTO] {
	return shared.MapPaged(paged, InvitationModelToListItemDTO)
}

func ExtractionResultToSummaryDTO(result shared.ExtractionResult) dtos.ExtractionSummaryDTO {
	failed := lo.Map(result.Failed(), func(o shared.ScopeOutcome, _ int) dtos.ScopeFailureDTO {
		return dtos.ScopeFailureDTO{Scope: o.Scope, Error: o.Error}
	})
	succeeded := lo.FilterMap(result.Outcomes, func(o shared.ScopeOutcome, _ int) (models.Scope, bool) {
		return o.Scope, o.Success
	})
	return dtos.ExtractionSummaryDTO{
		SnapshotsWritten: result.SnapshotsWritten,
		Failed:           failed,
		Succeeded:        succeeded,
	}
}

func ConsentResultToDTO(result shared.ConsentResult) dtos.ConsentResponseDTO {
	res := dtos.ConsentResponseDTO{
		InvitationDTO: InvitationModelToDTO(result.Invitation),
	}
	if result.Extraction != nil {
		summary := ExtractionResultToSummaryDTO(*result.Extraction)
		res.Extraction = &summary
	}
	return res
}
