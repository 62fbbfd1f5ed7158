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

package accesscontrol

import (
	"slices"

	"github.com/l3montree-dev/finshare/shared"
)

const RoleOperator = "operator"

type session struct {
	userID string
	email  string
	name   string
	roles  []string
}

var _ shared.AuthSession = (*session)(nil)

// NoSession is set on requests without valid credentials.
var NoSession = &session{}

func NewSession(userID, email, name string, roles []string) shared.AuthSession {
	return &session{
		userID: userID,
		email:  email,
		name:   name,
		roles:  roles,
	}
}

func (s *session) GetUserID() string {
	return s.userID
}

func (s *session) GetEmail() string {
	return s.email
}

func (s *session) GetName() string {
	return s.name
}

func (s *session) GetRoles() []string {
	return s.roles
}

func HasRole(s shared.AuthSession, role string) bool {
	return slices.Contains(s.GetRoles(), role)
}
