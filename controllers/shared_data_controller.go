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
	"net/http"

	"github.com/l3montree-dev/finshare/shared"
	"github.com/l3montree-dev/finshare/transformer"
)

type SharedDataController struct {
	sharedDataService shared.SharedDataService
	extractionService shared.ExtractionService
}

func NewSharedDataController(sharedDataService shared.SharedDataService, extractionService shared.ExtractionService) *SharedDataController {
	return &SharedDataController{
		sharedDataService: sharedDataService,
		extractionService: extractionService,
	}
}

// @Summary Current snapshots of a shared invitation
// @Tags Shared data
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID"
// @Success 200 {array} dtos.SnapshotDTO
// @Router /shared/{invitationID}/snapshots [get]
func (c *SharedDataController) Snapshots(ctx shared.Context) error {
	id, err := invitationIDParam(ctx)
	if err != nil {
		return err
	}

	snapshots, err := c.sharedDataService.CurrentSnapshots(ctx.Request().Context(), id, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return httpError(err, "could not read snapshots")
	}
	return ctx.JSON(http.StatusOK, transformer.SnapshotModelsToDTOs(snapshots))
}

// @Summary Full snapshot history of a shared invitation
// @Tags Shared data
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID"
// @Success 200 {array} dtos.SnapshotDTO
// @Router /shared/{invitationID}/history [get]
func (c *SharedDataController) History(ctx shared.Context) error {
	id, err := invitationIDParam(ctx)
	if err != nil {
		return err
	}

	snapshots, err := c.sharedDataService.History(ctx.Request().Context(), id, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return httpError(err, "could not read snapshot history")
	}
	return ctx.JSON(http.StatusOK, transformer.SnapshotModelsToDTOs(snapshots))
}

// @Summary Pull a fresh snapshot set from the provider
// @Tags Shared data
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID"
// @Success 200 {object} dtos.RefreshDTO
// @Router /shared/{invitationID}/refresh [post]
func (c *SharedDataController) Refresh(ctx shared.Context) error {
	id, err := invitationIDParam(ctx)
	if err != nil {
		return err
	}

	result, err := c.extractionService.Refresh(ctx.Request().Context(), id, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return httpError(err, "could not refresh shared data")
	}
	return ctx.JSON(http.StatusOK, transformer.RefreshResultToDTO(result))
}
