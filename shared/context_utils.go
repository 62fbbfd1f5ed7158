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
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type AuthSession interface {
	GetUserID() string
	GetEmail() string
	GetName() string
	GetRoles() []string
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

// GetInvitationID parses the snowflake id from the "invitationID" path parameter.
func GetInvitationID(ctx Context) (snowflake.ID, error) {
	raw := SanitizeParam(ctx.Param("invitationID"))
	if raw == "" {
		return 0, errors.New("missing invitation id")
	}
	id, err := snowflake.ParseString(raw)
	if err != nil {
		return 0, errors.Wrap(err, "invalid invitation id")
	}
	return id, nil
}

func GetInvitationToken(ctx Context) string {
	return SanitizeParam(ctx.Param("token"))
}

// LimitOffset is the pagination of the list endpoints.
type LimitOffset struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Clamp keeps the limit inside [1,MaxPageLimit] and the offset non negative.
// A missing or non positive limit falls back to DefaultPageLimit.
func (l LimitOffset) Clamp() LimitOffset {
	if l.Limit <= 0 {
		l.Limit = DefaultPageLimit
	}
	if l.Limit > MaxPageLimit {
		l.Limit = MaxPageLimit
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
	return l
}

func (l LimitOffset) ApplyOnDB(db DB) DB {
	return db.Offset(l.Offset).Limit(l.Limit)
}

type Paged[T any] struct {
	LimitOffset
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func NewPaged[T any](page LimitOffset, total int64, items []T) Paged[T] {
	if items == nil {
		items = []T{}
	}
	return Paged[T]{
		LimitOffset: page,
		Total:       total,
		Items:       items,
	}
}

func MapPaged[T any, R any](p Paged[T], f func(T) R) Paged[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = f(item)
	}
	return Paged[R]{
		LimitOffset: p.LimitOffset,
		Total:       p.Total,
		Items:       items,
	}
}

// GetLimitOffset reads the limit and offset query parameters. Unparsable values fall back to the defaults.
func GetLimitOffset(ctx Context) LimitOffset {
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil {
		limit = DefaultPageLimit
	}
	offset, _ := strconv.Atoi(ctx.QueryParam("offset"))
	return LimitOffset{Limit: limit, Offset: offset}.Clamp()
}
