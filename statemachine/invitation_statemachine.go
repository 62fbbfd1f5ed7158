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

package statemachine

import (
	"time"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
)

var transitions = map[models.InvitationStatus][]models.InvitationStatus{
	models.InvitationStatusPending: {
		models.InvitationStatusLinked,
		models.InvitationStatusConsentGiven,
		models.InvitationStatusRevoked,
		models.InvitationStatusExpired,
		models.InvitationStatusRejected,
	},
	models.InvitationStatusLinked: {
		models.InvitationStatusConsentGiven,
		models.InvitationStatusRevoked,
		models.InvitationStatusExpired,
	},
	models.InvitationStatusConsentGiven: {
		models.InvitationStatusRevoked,
		models.InvitationStatusExpired,
	},
}

// CanTransition reports whether the edge from -> to exists in the invitation lifecycle graph.
func CanTransition(from, to models.InvitationStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Negotiate computes the granted scopes. A flag is only granted if it was requested and proposed.
// A nil proposal grants everything that was requested.
func Negotiate(requested models.ScopeSet, proposed *models.ScopeSet) models.ScopeSet {
	if proposed == nil {
		return requested
	}
	return requested.Intersect(*proposed)
}

// IsExpired reports whether expiresAt lies strictly before now.
func IsExpired(inv models.Invitation, now time.Time) bool {
	return inv.ExpiresAt != nil && inv.ExpiresAt.Before(now)
}

// ShouldExpire is true if the invitation is overdue and not yet terminal.
func ShouldExpire(inv models.Invitation, now time.Time) bool {
	return IsExpired(inv, now) && !inv.Status.IsTerminal()
}

func Expire(inv models.Invitation) (models.Invitation, error) {
	if !CanTransition(inv.Status, models.InvitationStatusExpired) {
		return inv, shared.ErrInactive
	}
	inv.Status = models.InvitationStatusExpired
	return inv, nil
}

// bindInvitee sets the invitee once. A different user than the bound one is a conflict.
func bindInvitee(inv models.Invitation, userID string) (models.Invitation, error) {
	if inv.InviteeID != nil {
		if *inv.InviteeID != userID {
			return inv, shared.ErrConflict
		}
		return inv, nil
	}
	id := userID
	inv.InviteeID = &id
	return inv, nil
}

// Link records that the invitee connected a data source at the provider.
// Linking an already linked or consented invitation only refreshes the item id.
func Link(inv models.Invitation, userID string, itemID string) (models.Invitation, error) {
	if inv.Status.IsTerminal() {
		return inv, shared.ErrInactive
	}
	inv, err := bindInvitee(inv, userID)
	if err != nil {
		return inv, err
	}
	if itemID != "" {
		item := itemID
		inv.ProviderItemID = &item
	}
	if inv.Status == models.InvitationStatusPending {
		inv.Status = models.InvitationStatusLinked
	}
	return inv, nil
}

// Consent grants the negotiated scopes. Scopes are never escalated beyond the requested ones.
// CheckLink reports whether Link would accept userID without changing the invitation.
func CheckLink(inv models.Invitation, userID string) error {
	_, err := Link(inv, userID, "")
	return err
}

func Consent(inv models.Invitation, userID string, proposed *models.ScopeSet, now time.Time) (models.Invitation, error) {
	if inv.Status.IsTerminal() {
		return inv, shared.ErrInactive
	}
	inv, err := bindInvitee(inv, userID)
	if err != nil {
		return inv, err
	}
	if !CanTransition(inv.Status, models.InvitationStatusConsentGiven) {
		// consent was already given
		return inv, shared.ErrConflict
	}

	granted := Negotiate(inv.RequestedScopes, proposed)
	consentedAt := now
	inv.GrantedScopes = &granted
	inv.ConsentedAt = &consentedAt
	inv.Status = models.InvitationStatusConsentGiven
	return inv, nil
}

// Reject declines the invitation. Only a pending invitation can be rejected.
func Reject(inv models.Invitation, userID string) (models.Invitation, error) {
	if inv.Status.IsTerminal() {
		return inv, shared.ErrInactive
	}
	inv, err := bindInvitee(inv, userID)
	if err != nil {
		return inv, err
	}
	if !CanTransition(inv.Status, models.InvitationStatusRejected) {
		return inv, shared.ErrInactive
	}
	inv.Status = models.InvitationStatusRejected
	return inv, nil
}

// Revoke ends the sharing. The second return value is false if the invitation was already terminal
// and nothing changed.
func Revoke(inv models.Invitation, reason *string, now time.Time) (models.Invitation, bool) {
	if inv.Status.IsTerminal() {
		return inv, false
	}
	revokedAt := now
	inv.Status = models.InvitationStatusRevoked
	inv.RevokedAt = &revokedAt
	inv.RevocationReason = reason
	return inv, true
}

// MarkCompleted sets the informational completed flag. It never touches the status.
func MarkCompleted(inv models.Invitation, now time.Time) (models.Invitation, bool) {
	if inv.Completed || inv.Status.IsTerminal() {
		return inv, false
	}
	completedAt := now
	inv.Completed = true
	inv.CompletedAt = &completedAt
	return inv, true
}

// VisibleInCurrentView implements the snapshot visibility rule of the current data view.
// Balance and identity are always shown. Everything else only while consent is given.
func VisibleInCurrentView(status models.InvitationStatus, dataType models.Scope) bool {
	switch dataType {
	case models.ScopeBalance, models.ScopeIdentity:
		return true
	}
	return status == models.InvitationStatusConsentGiven
}
