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

package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/finshare/dtos"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/l3montree-dev/finshare/transformer"
	"github.com/labstack/echo/v4"
)

type InvitationController struct {
	invitationService   shared.InvitationService
	providerLinkService shared.ProviderLinkService
}

func NewInvitationController(invitationService shared.InvitationService, providerLinkService shared.ProviderLinkService) *InvitationController {
	return &InvitationController{
		invitationService:   invitationService,
		providerLinkService: providerLinkService,
	}
}

// @Summary Create invitation
// @Tags Invitations
// @Security BearerAuth
// @Param body body dtos.InvitationCreateRequest true "Request body"
// @Success 200 {object} dtos.InvitationCreatedDTO
// @Failure 429 {object} object{message=string}
// @Router /invitations [post]
func (c *InvitationController) Create(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	var req dtos.InvitationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if req.RequestedScopes.IsEmpty() {
		return echo.NewHTTPError(400, "at least one scope must be requested")
	}

	invitation, token, err := c.invitationService.Create(ctx.Request().Context(), session, shared.CreateInvitationInput{
		InviteeEmail:    req.InviteeEmail,
		RequestedScopes: req.RequestedScopes,
		Language:        shared.MatchLanguage(ctx.Request().Header.Get("Accept-Language")),
	})
	if err != nil {
		return httpError(err, "could not create invitation")
	}

	return ctx.JSON(http.StatusOK, transformer.InvitationModelToCreatedDTO(invitation, token))
}

// @Summary Resolve the public view of an invitation
// @Tags Invitations
// @Param token path string true "Invitation token"
// @Success 200 {object} dtos.InvitationPublicDTO
// @Failure 404 {object} object{message=string}
// @Failure 410 {object} object{message=string}
// @Router /invitations/token/{token} [get]
func (c *InvitationController) ResolveByToken(ctx shared.Context) error {
	invitation, err := c.invitationService.ResolveByToken(ctx.Request().Context(), shared.GetInvitationToken(ctx))
	if err != nil {
		return httpError(err, "could not resolve invitation")
	}
	return ctx.JSON(http.StatusOK, transformer.InvitationModelToPublicDTO(invitation))
}

// @Summary Accept or reject an invitation
// @Tags Invitations
// @Security BearerAuth
// @Param token path string true "Invitation token"
// @Param body body dtos.InvitationConsentRequest true "Request body"
// @Success 200 {object} dtos.ConsentResponseDTO
// @Router /invitations/token/{token}/consent [post]
func (c *InvitationController) Consent(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()

	var req dtos.InvitationConsentRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	result, err := c.invitationService.Consent(ctx.Request().Context(), shared.GetInvitationToken(ctx), userID, req.Accept, req.Scopes)
	if err != nil {
		return httpError(err, "could not answer invitation")
	}

	if result.Extraction != nil {
		if failed := result.Extraction.Failed(); len(failed) > 0 {
			slog.Warn("consent given with partial extraction", "invitationID", result.Invitation.ID, "failedScopes", len(failed))
		}
	}

	return ctx.JSON(http.StatusOK, transformer.ConsentResultToDTO(result))
}

// Link exchanges the public token the invitee received from the provider link flow
// and binds the resulting data source to the invitation.
func (c *InvitationController) Link(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()

	var req dtos.InvitationLinkRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	invitation, err := c.providerLinkService.Link(ctx.Request().Context(), shared.GetInvitationToken(ctx), userID, req.PublicToken)
	if err != nil {
		return httpError(err, "could not link data source")
	}
	return ctx.JSON(http.StatusOK, transformer.InvitationModelToDTO(invitation))
}

func (c *InvitationController) ListMine(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()

	paged, err := c.invitationService.ListMine(userID, shared.GetLimitOffset(ctx))
	if err != nil {
		return httpError(err, "could not list invitations")
	}
	return ctx.JSON(http.StatusOK, transformer.PagedInvitationsToListItemDTOs(paged))
}

func (c *InvitationController) ListAsInvitee(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()

	paged, err := c.invitationService.ListAsInvitee(userID, shared.GetLimitOffset(ctx))
	if err != nil {
		return httpError(err, "could not list invitations")
	}
	return ctx.JSON(http.StatusOK, transformer.PagedInvitationsToListItemDTOs(paged))
}

func (c *InvitationController) Read(ctx shared.Context) error {
	id, err := invitationIDParam(ctx)
	if err != nil {
		return err
	}

	invitation, err := c.invitationService.Read(id, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return httpError(err, "could not read invitation")
	}
	return ctx.JSON(http.StatusOK, transformer.InvitationModelToListItemDTO(invitation))
}

// @Summary Revoke invitation
// @Tags Invitations
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID"
// @Param body body dtos.InvitationRevokeRequest false "Request body"
// @Success 200 {object} dtos.InvitationDTO
// @Router /invitations/{invitationID}/revoke [post]
func (c *InvitationController) Revoke(ctx shared.Context) error {
	id, err := invitationIDParam(ctx)
	if err != nil {
		return err
	}

	var req dtos.InvitationRevokeRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	invitation, err := c.invitationService.Revoke(ctx.Request().Context(), id, shared.GetSession(ctx).GetUserID(), req.Reason)
	if err != nil {
		return httpError(err, "could not revoke invitation")
	}
	return ctx.JSON(http.StatusOK, transformer.InvitationModelToDTO(invitation))
}

func (c *InvitationController) Delete(ctx shared.Context) error {
	id, err := invitationIDParam(ctx)
	if err != nil {
		return err
	}

	userID := shared.GetSession(ctx).GetUserID()
	privileged, err := shared.GetRBAC(ctx).IsAllowed(userID, shared.ObjectInvitations, shared.ActionDelete)
	if err != nil {
		// fall back to the inviter check
		slog.Error("could not determine operator access", "err", err)
		privileged = false
	}

	if err := c.invitationService.Delete(id, userID, privileged); err != nil {
		return httpError(err, "could not delete invitation")
	}
	return ctx.JSON(http.StatusOK, dtos.DeletedDTO{Deleted: true})
}

func (c *InvitationController) DeleteAllMine(ctx shared.Context) error {
	deleted, err := c.invitationService.DeleteAllMine(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return httpError(err, "could not delete invitations")
	}
	return ctx.JSON(http.StatusOK, dtos.DeletedCountDTO{Deleted: deleted})
}
