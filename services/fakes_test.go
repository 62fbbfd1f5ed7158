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
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inMemoryInvitationRepository mimics the postgres repository closely enough to test the
// services. Transactions are serialized and rolled back if fn fails.
type inMemoryInvitationRepository struct {
	txMu sync.Mutex
	mu   sync.Mutex
	rows map[snowflake.ID]models.Invitation
}

func newInMemoryInvitationRepository() *inMemoryInvitationRepository {
	return &inMemoryInvitationRepository{rows: make(map[snowflake.ID]models.Invitation)}
}

var _ shared.InvitationRepository = (*inMemoryInvitationRepository)(nil)

func isActive(status models.InvitationStatus) bool {
	return slices.Contains(models.ActiveInvitationStatuses, status)
}

func (r *inMemoryInvitationRepository) Transaction(fn func(tx shared.DB) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.Lock()
	backup := make(map[snowflake.ID]models.Invitation, len(r.rows))
	for id, row := range r.rows {
		backup[id] = row
	}
	r.mu.Unlock()

	if err := fn(nil); err != nil {
		r.mu.Lock()
		r.rows = backup
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *inMemoryInvitationRepository) Create(tx shared.DB, invitation *models.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.TokenDigest == invitation.TokenDigest {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	if invitation.GrantedScopes != nil && !invitation.GrantedScopes.IsSubsetOf(invitation.RequestedScopes) {
		return errors.New("violates check constraint")
	}
	if invitation.ID == 0 {
		invitation.ID = models.NewID()
	}
	now := time.Now()
	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = now
	}
	invitation.UpdatedAt = now
	r.rows[invitation.ID] = *invitation
	return nil
}

func (r *inMemoryInvitationRepository) Save(tx shared.DB, invitation *models.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if invitation.GrantedScopes != nil && !invitation.GrantedScopes.IsSubsetOf(invitation.RequestedScopes) {
		return errors.New("violates check constraint")
	}
	invitation.UpdatedAt = time.Now()
	r.rows[invitation.ID] = *invitation
	return nil
}

func (r *inMemoryInvitationRepository) Read(id snowflake.ID) (models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return models.Invitation{}, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (r *inMemoryInvitationRepository) ReadForUpdate(tx shared.DB, id snowflake.ID) (models.Invitation, error) {
	return r.Read(id)
}

func (r *inMemoryInvitationRepository) FindByTokenDigest(digest string) (models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.TokenDigest == digest {
			return row, nil
		}
	}
	return models.Invitation{}, gorm.ErrRecordNotFound
}

func (r *inMemoryInvitationRepository) FindByTokenDigestForUpdate(tx shared.DB, digest string) (models.Invitation, error) {
	return r.FindByTokenDigest(digest)
}

func (r *inMemoryInvitationRepository) list(page shared.LimitOffset, keep func(models.Invitation) bool) shared.Paged[models.Invitation] {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matching []models.Invitation
	for _, row := range r.rows {
		if keep(row) {
			matching = append(matching, row)
		}
	}
	slices.SortFunc(matching, func(a, b models.Invitation) int {
		// newest first
		return cmp.Compare(b.ID, a.ID)
	})
	total := int64(len(matching))
	start := min(page.Offset, len(matching))
	end := min(start+page.Limit, len(matching))
	return shared.NewPaged(page, total, matching[start:end])
}

func (r *inMemoryInvitationRepository) ListByInviter(inviterID string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	return r.list(page, func(i models.Invitation) bool { return i.InviterID == inviterID }), nil
}

func (r *inMemoryInvitationRepository) ListByInvitee(inviteeID string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	return r.list(page, func(i models.Invitation) bool { return i.IsInvitee(inviteeID) }), nil
}

func (r *inMemoryInvitationRepository) CountCreatedSince(inviterID string, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, row := range r.rows {
		if row.InviterID == inviterID && !row.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryInvitationRepository) ExpireIfOverdue(tx shared.DB, id snowflake.ID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || !isActive(row.Status) || row.ExpiresAt == nil || !row.ExpiresAt.Before(now) {
		return false, nil
	}
	row.Status = models.InvitationStatusExpired
	r.rows[id] = row
	return true, nil
}

func (r *inMemoryInvitationRepository) ExpireBatch(tx shared.DB, now time.Time, limit int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var overdue []snowflake.ID
	for id, row := range r.rows {
		if isActive(row.Status) && row.ExpiresAt != nil && row.ExpiresAt.Before(now) {
			overdue = append(overdue, id)
		}
	}
	slices.Sort(overdue)
	if len(overdue) > limit {
		overdue = overdue[:limit]
	}
	for _, id := range overdue {
		row := r.rows[id]
		row.Status = models.InvitationStatusExpired
		r.rows[id] = row
	}
	return int64(len(overdue)), nil
}

func (r *inMemoryInvitationRepository) MarkCompleted(tx shared.DB, id snowflake.ID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.Completed || !isActive(row.Status) {
		return false, nil
	}
	row.Completed = true
	row.CompletedAt = &now
	r.rows[id] = row
	return true, nil
}

func (r *inMemoryInvitationRepository) SetProviderItemID(tx shared.DB, id snowflake.ID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.ProviderItemID != nil {
		return nil
	}
	row.ProviderItemID = &itemID
	r.rows[id] = row
	return nil
}

func (r *inMemoryInvitationRepository) Delete(tx shared.DB, id snowflake.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *inMemoryInvitationRepository) DeleteByInviter(tx shared.DB, inviterID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, row := range r.rows {
		if row.InviterID == inviterID {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

// set overwrites a row without any checks.
func (r *inMemoryInvitationRepository) set(invitation models.Invitation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[invitation.ID] = invitation
}

type inMemorySnapshotRepository struct {
	mu   sync.Mutex
	rows []models.Snapshot
}

var _ shared.SnapshotRepository = (*inMemorySnapshotRepository)(nil)

func (r *inMemorySnapshotRepository) Create(tx shared.DB, snapshot *models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if snapshot.ID == 0 {
		snapshot.ID = models.NewID()
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now()
	}
	r.rows = append(r.rows, *snapshot)
	return nil
}

func (r *inMemorySnapshotRepository) History(tx shared.DB, invitationID snowflake.ID) ([]models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var history []models.Snapshot
	for _, row := range r.rows {
		if row.InvitationID == invitationID {
			history = append(history, row)
		}
	}
	slices.SortFunc(history, func(a, b models.Snapshot) int {
		if c := b.FetchedAt.Compare(a.FetchedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return history, nil
}

func (r *inMemorySnapshotRepository) LatestPerDataType(tx shared.DB, invitationID snowflake.ID) ([]models.Snapshot, error) {
	history, _ := r.History(tx, invitationID)
	seen := make(map[models.Scope]bool)
	var latest []models.Snapshot
	for _, row := range history {
		if seen[row.DataType] {
			continue
		}
		seen[row.DataType] = true
		latest = append(latest, row)
	}
	return latest, nil
}

type testSession struct {
	userID string
	email  string
	name   string
}

func (s testSession) GetUserID() string  { return s.userID }
func (s testSession) GetEmail() string   { return s.email }
func (s testSession) GetName() string    { return s.name }
func (s testSession) GetRoles() []string { return nil }
