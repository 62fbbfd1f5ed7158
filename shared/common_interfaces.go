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
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
)

type InvitationRepository interface {
	Transaction(fn func(tx DB) error) error
	Create(tx DB, invitation *models.Invitation) error
	Save(tx DB, invitation *models.Invitation) error
	Read(id snowflake.ID) (models.Invitation, error)
	ReadForUpdate(tx DB, id snowflake.ID) (models.Invitation, error)
	FindByTokenDigest(digest string) (models.Invitation, error)
	FindByTokenDigestForUpdate(tx DB, digest string) (models.Invitation, error)
	ListByInviter(inviterID string, page LimitOffset) (Paged[models.Invitation], error)
	ListByInvitee(inviteeID string, page LimitOffset) (Paged[models.Invitation], error)
	CountCreatedSince(inviterID string, since time.Time) (int64, error)
	// ExpireIfOverdue flips a single overdue, non terminal invitation to EXPIRED.
	// It reports whether a row was changed.
	ExpireIfOverdue(tx DB, id snowflake.ID, now time.Time) (bool, error)
	ExpireBatch(tx DB, now time.Time, limit int) (int64, error)
	MarkCompleted(tx DB, id snowflake.ID, now time.Time) (bool, error)
	SetProviderItemID(tx DB, id snowflake.ID, itemID string) error
	Delete(tx DB, id snowflake.ID) error
	DeleteByInviter(tx DB, inviterID string) (int64, error)
}

type SnapshotRepository interface {
	Create(tx DB, snapshot *models.Snapshot) error
	// LatestPerDataType returns the snapshot with the greatest fetchedAt for every data type.
	LatestPerDataType(tx DB, invitationID snowflake.ID) ([]models.Snapshot, error)
	History(tx DB, invitationID snowflake.ID) ([]models.Snapshot, error)
}

type ProviderCredentialRepository interface {
	Create(tx DB, credential *models.ProviderCredential) error
	Latest(userID string) (models.ProviderCredential, error)
}

type UserRepository interface {
	Read(id string) (models.User, error)
}

type InvitationService interface {
	Create(ctx context.Context, inviter AuthSession, input CreateInvitationInput) (models.Invitation, string, error)
	ResolveByToken(ctx context.Context, token string) (models.Invitation, error)
	Consent(ctx context.Context, token string, userID string, accept bool, proposed *models.ScopeSet) (ConsentResult, error)
	MarkLinked(ctx context.Context, token string, userID string, itemID string) (models.Invitation, error)
	Revoke(ctx context.Context, invitationID snowflake.ID, callerID string, reason *string) (models.Invitation, error)
	ListMine(inviterID string, page LimitOffset) (Paged[models.Invitation], error)
	ListAsInvitee(inviteeID string, page LimitOffset) (Paged[models.Invitation], error)
	Read(invitationID snowflake.ID, callerID string) (models.Invitation, error)
	Delete(invitationID snowflake.ID, callerID string, privileged bool) error
	DeleteAllMine(inviterID string) (int64, error)
}

type ProviderLinkService interface {
	Link(ctx context.Context, token string, userID string, publicToken string) (models.Invitation, error)
}

type ExtractionService interface {
	Extract(ctx context.Context, invitationID snowflake.ID) ExtractionResult
	Refresh(ctx context.Context, invitationID snowflake.ID, callerID string) (RefreshResult, error)
}

type SharedDataService interface {
	CurrentSnapshots(ctx context.Context, invitationID snowflake.ID, callerID string) ([]models.Snapshot, error)
	History(ctx context.Context, invitationID snowflake.ID, callerID string) ([]models.Snapshot, error)
}

type ExpirationService interface {
	ExpireBatch(limit int) (int64, error)
	// ExpireAll repeats ExpireBatch until a batch returns zero.
	ExpireAll(ctx context.Context) (int64, error)
}

type RateLimiter interface {
	CheckAndRecord(inviterID string) error
}

type TokenService interface {
	// Issue creates a signed bearer token bound to the invitee email and the inviter.
	Issue(inviterID, inviteeEmail string, expiresAt time.Time) (token string, digest string, err error)
	Digest(token string) string
	// Verify checks the signature and that the claims match the invitation.
	Verify(token string, invitation models.Invitation) error
}

// ProviderClient fetches data from the external financial data provider.
// Every fetch returns the provider shaped response object.
type ProviderClient interface {
	GetBalances(ctx context.Context, accessToken string) (map[string]any, error)
	GetIdentity(ctx context.Context, accessToken string) (map[string]any, error)
	GetTransactions(ctx context.Context, accessToken string, start, end time.Time, count int) (map[string]any, error)
	GetInvestments(ctx context.Context, accessToken string) (map[string]any, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (accessToken string, itemID string, err error)
	SupportsProduct(product string) bool
}

type CredentialResolver interface {
	// LatestCredential returns nil if the user never linked a data source.
	LatestCredential(ctx context.Context, userID string) (*models.ProviderCredential, error)
	SaveCredential(ctx context.Context, userID, itemID, accessToken string) error
}

// Notifier schedules a notification. It never blocks and never fails the caller.
type Notifier interface {
	Notify(notification Notification)
}

// Mailer delivers a rendered notification.
type Mailer interface {
	Send(ctx context.Context, notification Notification) error
}

type UserDirectory interface {
	Lookup(userID string) (models.User, bool)
}

type AccessControl interface {
	IsAllowed(userID string, object Object, action Action) (bool, error)
	GrantOperator(userID string) error
}
