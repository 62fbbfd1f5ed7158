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
	"fmt"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/samber/lo"
)

var (
	balanceAccountFields  = []string{"account_id", "balances", "name", "official_name", "type", "subtype", "mask"}
	itemFields            = []string{"item_id", "institution_id"}
	identityAccountFields = []string{"account_id", "name", "mask", "type", "subtype"}
	identityOwnerFields   = []string{"names", "emails", "phone_numbers", "addresses"}
	transactionFields     = []string{"transaction_id", "name", "amount", "date", "pending", "account_id", "category", "payment_channel", "iso_currency_code"}
	holdingFields         = []string{"account_id", "security_id", "quantity", "institution_price", "institution_value", "cost_basis", "iso_currency_code"}
	securityFields        = []string{"security_id", "name", "ticker_symbol", "type", "close_price", "iso_currency_code"}
)

const maxSummarizedOwners = 5

// Sanitize strips a provider response down to the allow listed fields of the scope.
// Unknown scopes are rejected so that nothing is ever forwarded verbatim.
func Sanitize(scope models.Scope, raw map[string]any) (map[string]any, error) {
	switch scope {
	case models.ScopeBalance:
		return sanitizeBalance(raw), nil
	case models.ScopeIdentity:
		return sanitizeIdentity(raw), nil
	case models.ScopeTransactions:
		return sanitizeTransactions(raw), nil
	case models.ScopeInvestments:
		return sanitizeInvestments(raw), nil
	}
	return nil, fmt.Errorf("no sanitizer for scope %q", scope)
}

func objects(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	return lo.FilterMap(list, func(item any, _ int) (map[string]any, bool) {
		m, ok := item.(map[string]any)
		return m, ok
	})
}

func pickAll(items []map[string]any, fields []string) []map[string]any {
	return lo.Map(items, func(item map[string]any, _ int) map[string]any {
		return lo.PickByKeys(item, fields)
	})
}

func sanitizeItem(raw map[string]any) map[string]any {
	item, ok := raw["item"].(map[string]any)
	if !ok {
		return nil
	}
	return lo.PickByKeys(item, itemFields)
}

func sanitizeBalance(raw map[string]any) map[string]any {
	return map[string]any{
		"accounts": pickAll(objects(raw["accounts"]), balanceAccountFields),
		"item":     sanitizeItem(raw),
	}
}

func sanitizeIdentity(raw map[string]any) map[string]any {
	accounts := lo.Map(objects(raw["accounts"]), func(account map[string]any, _ int) map[string]any {
		sanitized := lo.PickByKeys(account, identityAccountFields)
		sanitized["owners"] = pickAll(objects(account["owners"]), identityOwnerFields)
		return sanitized
	})
	return map[string]any{
		"accounts": accounts,
		"item":     sanitizeItem(raw),
	}
}

func sanitizeTransactions(raw map[string]any) map[string]any {
	transactions := pickAll(objects(raw["transactions"]), transactionFields)
	return map[string]any{
		"transactions": transactions,
		"total":        len(transactions),
	}
}

func sanitizeInvestments(raw map[string]any) map[string]any {
	return map[string]any{
		"accounts":   pickAll(objects(raw["accounts"]), balanceAccountFields),
		"holdings":   pickAll(objects(raw["holdings"]), holdingFields),
		"securities": pickAll(objects(raw["securities"]), securityFields),
	}
}

// IdentityOwnersSummary collects the named owners of a sanitized identity payload for the
// identity notification. At most five owners are returned.
func IdentityOwnersSummary(identity map[string]any) []map[string]any {
	var owners []map[string]any
	for _, account := range objects(toAnySlice(identity["accounts"])) {
		for _, owner := range objects(toAnySlice(account["owners"])) {
			if !hasName(owner) {
				continue
			}
			owners = append(owners, map[string]any{
				"names":     owner["names"],
				"emails":    owner["emails"],
				"addresses": owner["addresses"],
			})
		}
	}
	if len(owners) > maxSummarizedOwners {
		owners = owners[:maxSummarizedOwners]
	}
	return owners
}

// toAnySlice accepts both the decoded json form and the typed form produced by the sanitizers.
func toAnySlice(v any) any {
	if typed, ok := v.([]map[string]any); ok {
		return lo.Map(typed, func(item map[string]any, _ int) any { return item })
	}
	return v
}

func hasName(owner map[string]any) bool {
	switch names := owner["names"].(type) {
	case []any:
		return lo.SomeBy(names, func(n any) bool {
			name, ok := n.(string)
			return ok && name != ""
		})
	case []string:
		return lo.SomeBy(names, func(n string) bool { return n != "" })
	}
	return false
}
