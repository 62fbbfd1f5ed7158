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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeSet(t *testing.T) {
	t.Run("should store the set as a bit mask", func(t *testing.T) {
		s := ScopeSet{Balance: true, Investments: true}
		v, err := s.Value()
		assert.NoError(t, err)
		assert.Equal(t, int64(9), v)

		var scanned ScopeSet
		assert.NoError(t, scanned.Scan(int64(9)))
		assert.Equal(t, s, scanned)
	})

	t.Run("should reject unknown column types", func(t *testing.T) {
		var scanned ScopeSet
		assert.Error(t, scanned.Scan("balance"))
	})

	t.Run("subset", func(t *testing.T) {
		assert.True(t, ScopeSet{Balance: true}.IsSubsetOf(ScopeSet{Balance: true, Identity: true}))
		assert.False(t, ScopeSet{Identity: true}.IsSubsetOf(ScopeSet{Balance: true}))
		assert.True(t, ScopeSet{}.IsSubsetOf(ScopeSet{}))
	})

	t.Run("intersect", func(t *testing.T) {
		a := ScopeSetOf(ScopeBalance, ScopeIdentity, ScopeTransactions)
		b := ScopeSetOf(ScopeIdentity, ScopeInvestments)
		assert.Equal(t, ScopeSetOf(ScopeIdentity), a.Intersect(b))
	})

	t.Run("should list the scopes in a stable order", func(t *testing.T) {
		s := ScopeSetOf(ScopeInvestments, ScopeBalance)
		assert.Equal(t, []Scope{ScopeBalance, ScopeInvestments}, s.Scopes())
		assert.Equal(t, map[string]bool{"balance": true, "identity": false, "transactions": false, "investments": true}, s.Map())
	})
}

func TestInvitationStatus(t *testing.T) {
	assert.False(t, InvitationStatusPending.IsTerminal())
	assert.False(t, InvitationStatusConsentGiven.IsTerminal())
	assert.True(t, InvitationStatusRejected.IsTerminal())
	assert.True(t, InvitationStatusExpired.IsTerminal())
	assert.True(t, InvitationStatusRevoked.IsTerminal())
}

func TestNewID(t *testing.T) {
	first := NewID()
	second := NewID()
	assert.Greater(t, second.Int64(), first.Int64())
}
