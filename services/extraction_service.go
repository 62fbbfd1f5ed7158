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
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/l3montree-dev/finshare/statemachine"
	"golang.org/x/sync/errgroup"
)

const (
	extractionConcurrency = 4
	transactionsWindow    = 30 * 24 * time.Hour
	transactionsCount     = 50
	productTransactions   = "transactions"
)

// ExtractionService pulls the granted scopes of a consented invitation from the provider
// and appends one snapshot per scope. A failing scope never aborts the others.
type ExtractionService struct {
	invitationRepository shared.InvitationRepository
	snapshotRepository   shared.SnapshotRepository
	credentialResolver   shared.CredentialResolver
	providerClient       shared.ProviderClient

	timeout time.Duration
	clock   func() time.Time
}

func NewExtractionService(
	invitationRepository shared.InvitationRepository,
	snapshotRepository shared.SnapshotRepository,
	credentialResolver shared.CredentialResolver,
	providerClient shared.ProviderClient,
	cfg shared.Config,
) *ExtractionService {
	return &ExtractionService{
		invitationRepository: invitationRepository,
		snapshotRepository:   snapshotRepository,
		credentialResolver:   credentialResolver,
		providerClient:       providerClient,
		timeout:              cfg.ProviderTimeout,
		clock:                time.Now,
	}
}

func notEligible(reason string) shared.ExtractionResult {
	return shared.ExtractionResult{Eligible: false, Reason: reason, Outcomes: []shared.ScopeOutcome{}}
}

func (s *ExtractionService) Extract(ctx context.Context, invitationID snowflake.ID) shared.ExtractionResult {
	start := time.Now()
	defer func() {
		monitoring.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		slog.Warn("could not load invitation for extraction", "invitationID", invitationID, "err", err)
		return notEligible("invitation not found")
	}
	if invitation.Status != models.InvitationStatusConsentGiven || invitation.InviteeID == nil {
		return notEligible("invitation is not consented")
	}

	credential, err := s.credentialResolver.LatestCredential(ctx, *invitation.InviteeID)
	if err != nil {
		slog.Warn("could not resolve provider credential", "invitationID", invitationID, "err", err)
		return notEligible("could not resolve provider credential")
	}
	if credential == nil {
		slog.Info("invitee did not link a data source yet", "invitationID", invitationID)
		return notEligible("no provider credential")
	}

	scopes := invitation.EffectiveGrantedScopes().Scopes()
	outcomes := make([]shared.ScopeOutcome, len(scopes))
	payloads := make([]map[string]any, len(scopes))

	g := new(errgroup.Group)
	g.SetLimit(extractionConcurrency)
	for i, scope := range scopes {
		g.Go(func() error {
			outcomes[i], payloads[i] = s.extractScope(ctx, invitation.ID, credential.AccessToken, scope)
			return nil
		})
	}
	// the workers never return an error
	_ = g.Wait()

	result := shared.ExtractionResult{Eligible: true, Outcomes: outcomes}
	for i, outcome := range outcomes {
		if !outcome.Success {
			continue
		}
		result.SnapshotsWritten++
		if outcome.Scope == models.ScopeIdentity {
			result.Identity = payloads[i]
		}
	}

	if result.SnapshotsWritten > 0 {
		s.markCompleted(invitation, credential.ItemID)
	}

	slog.Info("extraction finished", "invitationID", invitationID, "snapshots", result.SnapshotsWritten, "failed", len(result.Failed()), "duration", time.Since(start))
	return result
}

func (s *ExtractionService) markCompleted(invitation models.Invitation, itemID string) {
	if invitation.ProviderItemID == nil && itemID != "" {
		if err := s.invitationRepository.SetProviderItemID(nil, invitation.ID, itemID); err != nil {
			slog.Warn("could not store provider item id", "invitationID", invitation.ID, "err", err)
		}
	}
	if _, ok := statemachine.MarkCompleted(invitation, s.clock()); !ok {
		return
	}
	if _, err := s.invitationRepository.MarkCompleted(nil, invitation.ID, s.clock()); err != nil {
		slog.Warn("could not mark invitation as completed", "invitationID", invitation.ID, "err", err)
	}
}

func (s *ExtractionService) fetch(ctx context.Context, accessToken string, scope models.Scope) (map[string]any, error) {
	switch scope {
	case models.ScopeBalance:
		return s.providerClient.GetBalances(ctx, accessToken)
	case models.ScopeIdentity:
		return s.providerClient.GetIdentity(ctx, accessToken)
	case models.ScopeTransactions:
		if !s.providerClient.SupportsProduct(productTransactions) {
			return nil, fmt.Errorf("provider product %q is not enabled", productTransactions)
		}
		end := s.clock()
		return s.providerClient.GetTransactions(ctx, accessToken, end.Add(-transactionsWindow), end, transactionsCount)
	case models.ScopeInvestments:
		return s.providerClient.GetInvestments(ctx, accessToken)
	}
	return nil, fmt.Errorf("unknown scope %q", scope)
}

func (s *ExtractionService) extractScope(ctx context.Context, invitationID snowflake.ID, accessToken string, scope models.Scope) (outcome shared.ScopeOutcome, payload map[string]any) {
	outcome.Scope = scope
	defer func() {
		if r := recover(); r != nil {
			outcome = shared.ScopeOutcome{Scope: scope, Error: fmt.Sprintf("panic: %v", r)}
			payload = nil
		}
		label := "success"
		if !outcome.Success {
			label = "failure"
			slog.Warn("could not extract scope", "invitationID", invitationID, "scope", scope, "err", outcome.Error)
		}
		monitoring.ExtractionScopes.WithLabelValues(string(scope), label).Inc()
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.fetch(ctx, accessToken, scope)
	if err != nil {
		outcome.Error = err.Error()
		return outcome, nil
	}
	sanitized, err := Sanitize(scope, raw)
	if err != nil {
		outcome.Error = err.Error()
		return outcome, nil
	}
	encoded, err := json.Marshal(sanitized)
	if err != nil {
		outcome.Error = err.Error()
		return outcome, nil
	}

	snapshot := models.Snapshot{
		InvitationID: invitationID,
		DataType:     scope,
		Payload:      encoded,
		FetchedAt:    s.clock().UTC(),
	}
	if err := s.snapshotRepository.Create(nil, &snapshot); err != nil {
		outcome.Error = err.Error()
		return outcome, nil
	}

	slog.Info("snapshot stored", "invitationID", invitationID, "scope", scope, "snapshotID", snapshot.ID)
	outcome.Success = true
	outcome.SnapshotID = &snapshot.ID
	return outcome, sanitized
}

func (s *ExtractionService) Refresh(ctx context.Context, invitationID snowflake.ID, callerID string) (shared.RefreshResult, error) {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return shared.RefreshResult{}, mapReadError(err)
	}
	if !invitation.IsInviter(callerID) {
		return shared.RefreshResult{}, shared.ErrForbidden
	}

	now := s.clock()
	if statemachine.ShouldExpire(invitation, now) {
		changed, err := s.invitationRepository.ExpireIfOverdue(nil, invitation.ID, now)
		if err != nil {
			return shared.RefreshResult{}, shared.PersistenceError(err, "could not expire invitation")
		}
		if changed {
			monitoring.InvitationsExpired.WithLabelValues("lazy").Inc()
			slog.Info("invitation expired", "invitationID", invitation.ID)
		}
		return shared.RefreshResult{Refreshed: false, Status: models.InvitationStatusExpired}, nil
	}
	if invitation.Status != models.InvitationStatusConsentGiven {
		return shared.RefreshResult{Refreshed: false, Status: invitation.Status}, nil
	}

	result := s.Extract(ctx, invitation.ID)
	return shared.RefreshResult{Refreshed: true, Status: invitation.Status, Result: &result}, nil
}
