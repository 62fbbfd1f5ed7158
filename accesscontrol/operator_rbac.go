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
	"log/slog"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const operatorModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var _ shared.AccessControl = (*OperatorRBAC)(nil)

// OperatorRBAC guards the operator actions. Users get the operator role through GrantOperator.
type OperatorRBAC struct {
	enforcer *casbin.SyncedEnforcer
}

// NewOperatorRBAC persists the grants in the casbin_rule table and grants the operator role
// to every configured OPERATOR_USER_IDS entry.
func NewOperatorRBAC(db *gorm.DB, cfg shared.Config) (*OperatorRBAC, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, errors.Wrap(err, "could not create casbin adapter")
	}
	rbac, err := newOperatorRBAC(adapter)
	if err != nil {
		return nil, err
	}
	for _, userID := range cfg.OperatorUserIDs {
		if userID == "" {
			continue
		}
		if err := rbac.GrantOperator(userID); err != nil {
			return nil, err
		}
	}
	return rbac, nil
}

// newOperatorRBAC builds the enforcer. A nil adapter keeps the policy in memory.
func newOperatorRBAC(adapter persist.Adapter) (*OperatorRBAC, error) {
	m, err := model.NewModelFromString(operatorModel)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse rbac model")
	}

	var enforcer *casbin.SyncedEnforcer
	if adapter != nil {
		enforcer, err = casbin.NewSyncedEnforcer(m, adapter)
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not create enforcer")
	}
	enforcer.EnableLog(false)

	if adapter != nil {
		if err := enforcer.LoadPolicy(); err != nil {
			slog.Error("could not load rbac policy", "err", err)
		}
	}

	rbac := &OperatorRBAC{enforcer: enforcer}
	if err := rbac.allowRole(RoleOperator, shared.ObjectInvitations, []shared.Action{shared.ActionExpire, shared.ActionDelete}); err != nil {
		return nil, err
	}
	return rbac, nil
}

func (c *OperatorRBAC) allowRole(role string, object shared.Object, actions []shared.Action) error {
	for _, action := range actions {
		if _, err := c.enforcer.AddPolicy("role::"+role, "obj::"+string(object), "act::"+string(action)); err != nil {
			return errors.Wrap(err, "could not add policy")
		}
	}
	return nil
}

func (c *OperatorRBAC) GrantOperator(userID string) error {
	_, err := c.enforcer.AddRoleForUser("user::"+userID, "role::"+RoleOperator)
	return err
}

func (c *OperatorRBAC) IsAllowed(userID string, object shared.Object, action shared.Action) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return c.enforcer.Enforce("user::"+userID, "obj::"+string(object), "act::"+string(action))
}
