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

package repositories

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	db *gorm.DB
	*GormRepository[snowflake.ID, models.Invitation]
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		db:             db,
		GormRepository: newGormRepository[snowflake.ID, models.Invitation](db),
	}
}

func (g *InvitationRepository) Save(tx shared.DB, invitation *models.Invitation) error {
	return g.GetDB(tx).Omit(clause.Associations).Save(invitation).Error
}

func (g *InvitationRepository) Create(tx shared.DB, invitation *models.Invitation) error {
	return g.GetDB(tx).Omit(clause.Associations).Create(invitation).Error
}

// ReadForUpdate locks the invitation row until the transaction ends.
func (g *InvitationRepository) ReadForUpdate(tx shared.DB, id snowflake.ID) (models.Invitation, error) {
	var t models.Invitation
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, "id = ?", id).Error
	return t, err
}

func (g *InvitationRepository) FindByTokenDigest(digest string) (models.Invitation, error) {
	var t models.Invitation
	err := g.db.Where("token_digest = ?", digest).First(&t).Error
	return t, err
}

func (g *InvitationRepository) FindByTokenDigestForUpdate(tx shared.DB, digest string) (models.Invitation, error) {
	var t models.Invitation
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("token_digest = ?", digest).First(&t).Error
	return t, err
}

func (g *InvitationRepository) listBy(column string, value string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	var total int64
	query := g.db.Model(&models.Invitation{}).Where(column+" = ?", value)
	if err := query.Count(&total).Error; err != nil {
		return shared.Paged[models.Invitation]{}, err
	}

	var invitations []models.Invitation
	err := page.ApplyOnDB(g.db.Where(column+" = ?", value).Order("id DESC")).Find(&invitations).Error
	if err != nil {
		return shared.Paged[models.Invitation]{}, err
	}
	return shared.NewPaged(page, total, invitations), nil
}

func (g *InvitationRepository) ListByInviter(inviterID string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	return g.listBy("inviter_id", inviterID, page)
}

func (g *InvitationRepository) ListByInvitee(inviteeID string, page shared.LimitOffset) (shared.Paged[models.Invitation], error) {
	return g.listBy("invitee_id", inviteeID, page)
}

func (g *InvitationRepository) CountCreatedSince(inviterID string, since time.Time) (int64, error) {
	var count int64
	err := g.db.Model(&models.Invitation{}).
		Where("inviter_id = ? AND created_at >= ?", inviterID, since).
		Count(&count).Error
	return count, err
}

func (g *InvitationRepository) ExpireIfOverdue(tx shared.DB, id snowflake.ID, now time.Time) (bool, error) {
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND status IN ? AND expires_at IS NOT NULL AND expires_at < ?", id, models.ActiveInvitationStatuses, now).
		Updates(map[string]any{"status": models.InvitationStatusExpired, "updated_at": now})
	return res.RowsAffected > 0, res.Error
}

// ExpireBatch expires at most limit overdue invitations. Rows locked by concurrent
// transactions are skipped and picked up by the next batch.
func (g *InvitationRepository) ExpireBatch(tx shared.DB, now time.Time, limit int) (int64, error) {
	res := g.GetDB(tx).Exec(`UPDATE invitations SET status = ?, updated_at = ?
		WHERE id IN (
			SELECT id FROM invitations
			WHERE status IN ? AND expires_at IS NOT NULL AND expires_at < ?
			ORDER BY id
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		)`, models.InvitationStatusExpired, now, models.ActiveInvitationStatuses, now, limit)
	return res.RowsAffected, res.Error
}

func (g *InvitationRepository) MarkCompleted(tx shared.DB, id snowflake.ID, now time.Time) (bool, error) {
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND completed = false AND status IN ?", id, models.ActiveInvitationStatuses).
		Updates(map[string]any{"completed": true, "completed_at": now, "updated_at": now})
	return res.RowsAffected > 0, res.Error
}

func (g *InvitationRepository) SetProviderItemID(tx shared.DB, id snowflake.ID, itemID string) error {
	return g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND provider_item_id IS NULL", id).
		Update("provider_item_id", itemID).Error
}

func (g *InvitationRepository) DeleteByInviter(tx shared.DB, inviterID string) (int64, error) {
	res := g.GetDB(tx).Where("inviter_id = ?", inviterID).Delete(&models.Invitation{})
	return res.RowsAffected, res.Error
}
