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
	"database/sql/driver"
	"fmt"
)

// Scope is a category of financial data which can be requested and granted independently.
type Scope string

const (
	ScopeBalance      Scope = "balance"
	ScopeIdentity     Scope = "identity"
	ScopeTransactions Scope = "transactions"
	ScopeInvestments  Scope = "investments"
)

// AllScopes lists every known scope in a stable order.
var AllScopes = []Scope{ScopeBalance, ScopeIdentity, ScopeTransactions, ScopeInvestments}

func (s Scope) IsValid() bool {
	switch s {
	case ScopeBalance, ScopeIdentity, ScopeTransactions, ScopeInvestments:
		return true
	}
	return false
}

func (s Scope) bit() int16 {
	switch s {
	case ScopeBalance:
		return 1 << 0
	case ScopeIdentity:
		return 1 << 1
	case ScopeTransactions:
		return 1 << 2
	case ScopeInvestments:
		return 1 << 3
	}
	return 0
}

// ScopeSet is a fixed shape set of boolean scope flags.
// It is stored as a small bit mask inside the database.
type ScopeSet struct {
	Balance      bool `json:"balance"`
	Identity     bool `json:"identity"`
	Transactions bool `json:"transactions"`
	Investments  bool `json:"investments"`
}

func ScopeSetOf(scopes ...Scope) ScopeSet {
	var s ScopeSet
	for _, scope := range scopes {
		s = s.With(scope, true)
	}
	return s
}

func (s ScopeSet) Has(scope Scope) bool {
	switch scope {
	case ScopeBalance:
		return s.Balance
	case ScopeIdentity:
		return s.Identity
	case ScopeTransactions:
		return s.Transactions
	case ScopeInvestments:
		return s.Investments
	}
	return false
}

// With returns a copy of the set with the given flag set to value.
func (s ScopeSet) With(scope Scope, value bool) ScopeSet {
	switch scope {
	case ScopeBalance:
		s.Balance = value
	case ScopeIdentity:
		s.Identity = value
	case ScopeTransactions:
		s.Transactions = value
	case ScopeInvestments:
		s.Investments = value
	}
	return s
}

// Scopes returns the enabled flags in the order of AllScopes.
func (s ScopeSet) Scopes() []Scope {
	res := make([]Scope, 0, len(AllScopes))
	for _, scope := range AllScopes {
		if s.Has(scope) {
			res = append(res, scope)
		}
	}
	return res
}

func (s ScopeSet) IsEmpty() bool {
	return s.Mask() == 0
}

// IsSubsetOf reports whether every flag enabled in s is enabled in other as well.
func (s ScopeSet) IsSubsetOf(other ScopeSet) bool {
	return s.Mask()&^other.Mask() == 0
}

// Intersect returns the flags enabled in both sets.
func (s ScopeSet) Intersect(other ScopeSet) ScopeSet {
	return ScopeSetFromMask(s.Mask() & other.Mask())
}

func (s ScopeSet) Mask() int16 {
	var mask int16
	for _, scope := range AllScopes {
		if s.Has(scope) {
			mask |= scope.bit()
		}
	}
	return mask
}

func ScopeSetFromMask(mask int16) ScopeSet {
	var s ScopeSet
	for _, scope := range AllScopes {
		if mask&scope.bit() != 0 {
			s = s.With(scope, true)
		}
	}
	return s
}

func (s ScopeSet) Map() map[string]bool {
	m := make(map[string]bool, len(AllScopes))
	for _, scope := range AllScopes {
		m[string(scope)] = s.Has(scope)
	}
	return m
}

func (s ScopeSet) Value() (driver.Value, error) {
	return int64(s.Mask()), nil
}

func (s *ScopeSet) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		*s = ScopeSetFromMask(int16(v))
	case int32:
		*s = ScopeSetFromMask(int16(v))
	case int16:
		*s = ScopeSetFromMask(v)
	case nil:
		*s = ScopeSet{}
	default:
		return fmt.Errorf("cannot scan %T into ScopeSet", value)
	}
	return nil
}
