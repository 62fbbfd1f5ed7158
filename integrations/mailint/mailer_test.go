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

package mailint

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	invitation := shared.Notification{
		Kind:      shared.NotificationInvitation,
		Recipient: "invitee@example.com",
		Data: map[string]any{
			"inviterName":  "Ines <Inviter>",
			"inviterEmail": "inviter@example.com",
			"link":         "https://app.example.com/bank/verification?token=abc",
			"expiresAt":    time.Date(2026, 10, 8, 12, 0, 0, 0, time.UTC),
			"scopes":       []models.Scope{models.ScopeBalance, models.ScopeIdentity},
		},
	}

	t.Run("should render the invitation in english by default", func(t *testing.T) {
		subject, body, err := Render(invitation)
		require.NoError(t, err)
		assert.Equal(t, "You have been invited to share financial information", subject)
		assert.Contains(t, body, `href="https://app.example.com/bank/verification?token=abc"`)
		assert.Contains(t, body, "Account balances")
		assert.Contains(t, body, "2026-10-08 12:00 UTC")
		// html escaping
		assert.Contains(t, body, "Ines &lt;Inviter&gt;")
	})

	t.Run("should render the invitation in spanish", func(t *testing.T) {
		es := invitation
		es.Language = "es"
		subject, body, err := Render(es)
		require.NoError(t, err)
		assert.Equal(t, "Te invitaron a compartir información financiera", subject)
		assert.Contains(t, body, "Saldos de cuentas")
		assert.Contains(t, body, `lang="es"`)
	})

	t.Run("should render the identity owners", func(t *testing.T) {
		_, body, err := Render(shared.Notification{
			Kind: shared.NotificationIdentityShared,
			Data: map[string]any{
				"inviteeEmail": "invitee@example.com",
				"owners": []map[string]any{{
					"names":  []any{"Alberta Bobbeth Charleson"},
					"emails": []any{map[string]any{"data": "accountholder0@example.com"}},
					"addresses": []any{map[string]any{"data": map[string]any{
						"street": "2992 Cameron Road", "city": "Malakoff", "postal_code": "14236", "country": "US",
					}}},
				}},
			},
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Alberta Bobbeth Charleson")
		assert.Contains(t, body, "accountholder0@example.com")
		assert.Contains(t, body, "Malakoff")
	})

	t.Run("should mention the revocation reason only if given", func(t *testing.T) {
		revoked := shared.Notification{Kind: shared.NotificationRevoked, Data: map[string]any{"inviterName": "Ines"}}
		_, body, err := Render(revoked)
		require.NoError(t, err)
		assert.NotContains(t, body, "Reason:")

		revoked.Data["reason"] = "loan approved"
		_, body, err = Render(revoked)
		require.NoError(t, err)
		assert.Contains(t, body, "Reason: loan approved")
	})

	t.Run("should render the granted scopes", func(t *testing.T) {
		_, body, err := Render(shared.Notification{
			Kind: shared.NotificationConsentGranted,
			Data: map[string]any{"inviteeEmail": "invitee@example.com", "grantedScopes": []models.Scope{models.ScopeTransactions}},
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Transactions of the last 30 days")
	})

	t.Run("should fail for unknown kinds", func(t *testing.T) {
		_, _, err := Render(shared.Notification{Kind: "unknown"})
		assert.Error(t, err)
	})
}

func TestNewMailer(t *testing.T) {
	t.Run("should only log without smtp host", func(t *testing.T) {
		mailer, err := NewMailer(shared.Config{})
		require.NoError(t, err)
		assert.IsType(t, LogMailer{}, mailer)
		assert.NoError(t, mailer.Send(context.Background(), shared.Notification{Kind: shared.NotificationRevoked}))
	})

	t.Run("should create an smtp mailer", func(t *testing.T) {
		mailer, err := NewMailer(shared.Config{SMTPHost: "localhost", SMTPPort: 2525, SMTPFrom: "no-reply@example.com"})
		require.NoError(t, err)
		assert.IsType(t, &SMTPMailer{}, mailer)
	})
}
