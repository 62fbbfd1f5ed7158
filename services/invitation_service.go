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

package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/l3montree-dev/finshare/statemachine"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type InvitationService struct {
	invitationRepository shared.InvitationRepository
	rateLimiter          shared.RateLimiter
	tokenService         shared.TokenService
	extractionService    shared.ExtractionService
	notifier             shared.Notifier
	userDirectory        shared.UserDirectory

	ttl         time.Duration
	frontendURL string
	clock       func() time.Time
}

func NewInvitationService(
	invitationRepository shared.InvitationRepository,
	rateLimiter shared.RateLimiter,
	tokenService shared.TokenService,
	extractionService shared.ExtractionService,
	notifier shared.Notifier,
	userDirectory shared.UserDirectory,
	cfg shared.Config,
) *InvitationService {
	return &InvitationService{
		invitationRepository: invitationRepository,
		rateLimiter:          rateLimiter,
		tokenService:         tokenService,
		extractionService:    extractionService,
		notifier:             notifier,
		userDirectory:        userDirectory,
		ttl:                  cfg.InvitationTTL,
		frontendURL:          strings.TrimSuffix(cfg.FrontendURL, "/"),
		clock:                time.Now,
	}
}

func mapReadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return pkgerrors.Wrap(err, "could not read invitation")
}

func (s *InvitationService) invitationLink(token string) string {
	return s.frontendURL + "/bank/verification?token=" + url.QueryEscape(token)
}

func (s *InvitationService) Create(ctx context.Context, inviter shared.AuthSession, input shared.CreateInvitationInput) (models.Invitation, string, error) {
	inviterID := inviter.GetUserID()
	if err := s.rateLimiter.CheckAndRecord(inviterID); err != nil {
		return models.Invitation{}, "", err
	}

	now := s.clock()
	expiresAt := now.Add(s.ttl)
	inviteeEmail := normalizeEmail(input.InviteeEmail)

	token, digest, err := s.tokenService.Issue(inviterID, inviteeEmail, expiresAt)
	if err != nil {
		return models.Invitation{}, "", err
	}

	inviterEmail, inviterName := inviter.GetEmail(), inviter.GetName()
	if user, ok := s.userDirectory.Lookup(inviterID); ok {
		if user.Email != "" {
			inviterEmail = user.Email
		}
		if user.Name != "" {
			inviterName = user.Name
		}
	}

	language := input.Language
	if language == "" {
		language = "en"
	}

	invitation := models.Invitation{
		InviterID:       inviterID,
		InviterEmail:    inviterEmail,
		InviterName:     inviterName,
		InviteeEmail:    inviteeEmail,
		TokenDigest:     digest,
		RequestedScopes: input.RequestedScopes,
		Status:          models.InvitationStatusPending,
		Language:        language,
		ExpiresAt:       &expiresAt,
	}
	if err := s.invitationRepository.Create(nil, &invitation); err != nil {
		return models.Invitation{}, "", shared.PersistenceError(err, "could not create invitation")
	}

	monitoring.InvitationsCreated.Inc()
	slog.Info("invitation created", "invitationID", invitation.ID, "inviterID", inviterID)

	s.notifier.Notify(shared.Notification{
		Kind:      shared.NotificationInvitation,
		Recipient: inviteeEmail,
		Language:  language,
		Data: map[string]any{
			"inviterName":  inviterName,
			"inviterEmail": inviterEmail,
			"link":         s.invitationLink(token),
			"expiresAt":    expiresAt,
			"scopes":       input.RequestedScopes.Scopes(),
		},
	})

	return invitation, token, nil
}

// lookupByToken resolves the invitation of a token. A token which does not verify
// is reported exactly like an unknown token.
func (s *InvitationService) lookupByToken(tx shared.DB, token string, forUpdate bool) (models.Invitation, error) {
	digest := s.tokenService.Digest(token)
	var (
		invitation models.Invitation
		err        error
	)
	if forUpdate {
		invitation, err = s.invitationRepository.FindByTokenDigestForUpdate(tx, digest)
	} else {
		invitation, err = s.invitationRepository.FindByTokenDigest(digest)
	}
	if err != nil {
		return invitation, mapReadError(err)
	}
	if err := s.tokenService.Verify(token, invitation); err != nil {
		slog.Warn("invitation token did not verify", "invitationID", invitation.ID, "err", err)
		return models.Invitation{}, shared.ErrNotFound
	}
	return invitation, nil
}

// expireIfOverdue reports whether the invitation is past its expiry. Overdue invitations
// which are not yet terminal are flipped to EXPIRED.
func (s *InvitationService) expireIfOverdue(tx shared.DB, invitation models.Invitation, now time.Time) (bool, error) {
	if !statemachine.IsExpired(invitation, now) {
		return false, nil
	}
	if !statemachine.ShouldExpire(invitation, now) {
		return true, nil
	}
	changed, err := s.invitationRepository.ExpireIfOverdue(tx, invitation.ID, now)
	if err != nil {
		return true, shared.PersistenceError(err, "could not expire invitation")
	}
	if changed {
		monitoring.InvitationsExpired.WithLabelValues("lazy").Inc()
		slog.Info("invitation expired", "invitationID", invitation.ID)
	}
	return true, nil
}

func (s *InvitationService) ResolveByToken(ctx context.Context, token string) (models.Invitation, error) {
	invitation, err := s.lookupByToken(nil, token, false)
	if err != nil {
		return models.Invitation{}, err
	}
	expired, err := s.expireIfOverdue(nil, invitation, s.clock())
	if err != nil {
		return models.Invitation{}, err
	}
	if expired {
		return models.Invitation{}, shared.ErrGone
	}
	return invitation, nil
}

// answer runs fn against the locked invitation of the token. Overdue invitations are expired
// and committed before the call fails with ErrGone.
func (s *InvitationService) answer(token string, fn func(current models.Invitation, now time.Time) (models.Invitation, error)) (models.Invitation, error) {
	var (
		result models.Invitation
		gone   bool
	)
	err := s.invitationRepository.Transaction(func(tx shared.DB) error {
		current, err := s.lookupByToken(tx, token, true)
		if err != nil {
			return err
		}
		now := s.clock()
		expired, err := s.expireIfOverdue(tx, current, now)
		if err != nil {
			return err
		}
		if expired {
			gone = true
			return nil
		}

		next, err := fn(current, now)
		if err != nil {
			return err
		}
		if err := s.invitationRepository.Save(tx, &next); err != nil {
			return shared.PersistenceError(err, "could not save invitation")
		}
		result = next
		return nil
	})
	if err != nil {
		return models.Invitation{}, err
	}
	if gone {
		return models.Invitation{}, shared.ErrGone
	}
	return result, nil
}

func (s *InvitationService) Consent(ctx context.Context, token string, userID string, accept bool, proposed *models.ScopeSet) (shared.ConsentResult, error) {
	invitation, err := s.answer(token, func(current models.Invitation, now time.Time) (models.Invitation, error) {
		if !accept {
			return statemachine.Reject(current, userID)
		}
		return statemachine.Consent(current, userID, proposed, now)
	})
	if err != nil {
		return shared.ConsentResult{}, err
	}

	if !accept {
		monitoring.Consents.WithLabelValues("rejected").Inc()
		slog.Info("invitation rejected", "invitationID", invitation.ID, "userID", userID)
		return shared.ConsentResult{Invitation: invitation}, nil
	}

	monitoring.Consents.WithLabelValues("accepted").Inc()
	slog.Info("consent given", "invitationID", invitation.ID, "userID", userID, "grantedScopes", invitation.EffectiveGrantedScopes().Scopes())

	// consent is committed at this point, extraction is best effort
	result := s.extractionService.Extract(ctx, invitation.ID)
	if refreshed, err := s.invitationRepository.Read(invitation.ID); err == nil {
		invitation = refreshed
	}

	s.notifier.Notify(shared.Notification{
		Kind:      shared.NotificationConsentGranted,
		Recipient: invitation.InviterEmail,
		Language:  invitation.Language,
		Data: map[string]any{
			"inviteeEmail":  invitation.InviteeEmail,
			"grantedScopes": invitation.EffectiveGrantedScopes().Scopes(),
		},
	})

	if result.Identity != nil {
		if owners := IdentityOwnersSummary(result.Identity); len(owners) > 0 {
			s.notifier.Notify(shared.Notification{
				Kind:      shared.NotificationIdentityShared,
				Recipient: invitation.InviterEmail,
				Language:  invitation.Language,
				Data: map[string]any{
					"inviteeEmail": invitation.InviteeEmail,
					"owners":       owners,
				},
			})
		}
	}

	return shared.ConsentResult{Invitation: invitation, Extraction: &result}, nil
}

func (s *InvitationService) MarkLinked(ctx context.Context, token string, userID string, itemID string) (models.Invitation, error) {
	invitation, err := s.answer(token, func(current models.Invitation, now time.Time) (models.Invitation, error) {
		return statemachine.Link(current, userID, itemID)
	})
	if err != nil {
		return models.Invitation{}, err
	}
	slog.Info("invitation linked", "invitationID", invitation.ID, "userID", userID)
	return invitation, nil
}

func (s *InvitationService) Revoke(ctx context.Context, invitationID snowflake.ID, callerID string, reason *string) (models.Invitation, error) {
	var (
		invitation models.Invitation
		changed    bool
	)
	err := s.invitationRepository.Transaction(func(tx shared.DB) error {
		current, err := s.invitationRepository.ReadForUpdate(tx, invitationID)
		if err != nil {
			return mapReadError(err)
		}
		if !current.IsInviter(callerID) {
			return shared.ErrForbidden
		}
		invitation, changed = statemachine.Revoke(current, reason, s.clock())
		if !changed {
			return nil
		}
		if err := s.invitationRepository.Save(tx, &invitation); err != nil {
			return shared.PersistenceError(err, "could not revoke invitation")
		}
		return nil
	})
	if err != nil {
		return models.Invitation{}, err
	}
	if !changed {
		return invitation, nil
	}

	slog.Info("invitation revoked", "invitationID", invitation.ID, "inviterID", callerID)
	data := map[string]any{
		"inviterName":  invitation.InviterName,
		"inviterEmail": invitation.InviterEmail,
	}
	if reason != nil {
		data["reason"] = *reason
	}
	s.notifier.Notify(shared.Notification{
		Kind:      shared.NotificationRevoked,
		Recipient: invitation.InviteeEmail,
		Language:  invitation.Language,
		Data:      data,
	})
	return invitation, nil
}

func (s *InvitationService) ListMine(inviterID string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	return s.invitationRepository.ListByInviter(inviterID, page.Clamp())
}

func (s *InvitationService) ListAsInvitee(inviteeID string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	return s.invitationRepository.ListByInvitee(inviteeID, page.Clamp())
}

// Read returns the invitation to its inviter or to the bound invitee.
func (s *InvitationService) Read(invitationID snowflake.ID, callerID string) (models.Invitation, error) {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return models.Invitation{}, mapReadError(err)
	}
	if !invitation.IsInviter(callerID) && !invitation.IsInvitee(callerID) {
		return models.Invitation{}, shared.ErrForbidden
	}
	return invitation, nil
}

func (s *InvitationService) Delete(invitationID snowflake.ID, callerID string, privileged bool) error {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return mapReadError(err)
	}
	if !privileged && !invitation.IsInviter(callerID) {
		return shared.ErrForbidden
	}
	if err := s.invitationRepository.Delete(nil, invitationID); err != nil {
		return shared.PersistenceError(err, "could not delete invitation")
	}
	slog.Info("invitation deleted", "invitationID", invitationID, "userID", callerID, "privileged", privileged)
	return nil
}

func (s *InvitationService) DeleteAllMine(inviterID string) (int64, error) {
	n, err := s.invitationRepository.DeleteByInviter(nil, inviterID)
	if err != nil {
		return 0, shared.PersistenceError(err, "could not delete invitations")
	}
	slog.Info("invitations deleted", "inviterID", inviterID, "count", n)
	return n, nil
}
