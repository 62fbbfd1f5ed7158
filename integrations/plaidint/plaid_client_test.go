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

package plaidint
import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/l3montree-dev/finshare/shared"
	plaid "github.com/plaid/plaid-go/v29/plaid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemJSON = `{"item_id":"item-1","institution_id":"ins_1","webhook":null,"error":null,"available_products":[],"billed_products":["transactions"],"products":["transactions"],"consented_products":[],"consent_expiration_time":null,"update_type":"background"}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newClient(plaid.Environment(server.URL), shared.Config{
		PlaidClientID:   "client-id",
		PlaidSecret:     "secret",
		PlaidProducts:   []string{"auth", " Transactions "},
		ProviderTimeout: 5 * time.Second,
	})
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("should send the credentials and the access token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/accounts/balance/get", r.URL.Path)
			assert.Equal(t, "client-id", r.Header.Get("PLAID-CLIENT-ID"))
			assert.Equal(t, "secret", r.Header.Get("PLAID-SECRET"))
			assert.Equal(t, "access-sandbox", decodeBody(t, r)["access_token"])
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"accounts":[],"item":` + itemJSON + `,"request_id":"req-1"}`)) // nolint:errcheck
		})

		response, err := client.GetBalances(ctx, "access-sandbox")
		require.NoError(t, err)
		assert.Equal(t, "req-1", response["request_id"])
	})

	t.Run("should send the transactions window and count", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transactions/get", r.URL.Path)
			body := decodeBody(t, r)
			assert.Equal(t, "2026-09-01", body["start_date"])
			assert.Equal(t, "2026-10-01", body["end_date"])
			options := body["options"].(map[string]any)
			assert.Equal(t, float64(50), options["count"])
			assert.Equal(t, float64(0), options["offset"])
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"accounts":[],"transactions":[],"total_transactions":0,"item":` + itemJSON + `,"request_id":"req-2"}`)) // nolint:errcheck
		})

		end := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
		_, err := client.GetTransactions(ctx, "access-sandbox", end.AddDate(0, 0, -30), end, 50)
		require.NoError(t, err)
	})

	t.Run("should keep the plaid error code in the error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error_type":"ITEM_ERROR","error_code":"PRODUCT_NOT_READY","error_message":"not ready","display_message":null,"request_id":"req-3"}`)) // nolint:errcheck
		})

		_, err := client.GetIdentity(ctx, "access-sandbox")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ITEM_ERROR/PRODUCT_NOT_READY")
	})

	t.Run("should fail on a response without error object", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetInvestments(ctx, "access-sandbox")
		assert.Error(t, err)
	})

	t.Run("should exchange a public token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/item/public_token/exchange", r.URL.Path)
			assert.Equal(t, "public-sandbox", decodeBody(t, r)["public_token"])
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"access-sandbox","item_id":"item-1","request_id":"req-4"}`)) // nolint:errcheck
		})

		accessToken, itemID, err := client.ExchangePublicToken(ctx, "public-sandbox")
		require.NoError(t, err)
		assert.Equal(t, "access-sandbox", accessToken)
		assert.Equal(t, "item-1", itemID)
	})

	t.Run("should know the configured products", func(t *testing.T) {
		client := newClient(plaid.Sandbox, shared.Config{PlaidProducts: []string{"auth", " Transactions "}})
		assert.True(t, client.SupportsProduct("transactions"))
		assert.False(t, client.SupportsProduct("investments"))
	})

	t.Run("should reject unknown environments", func(t *testing.T) {
		_, err := NewClient(shared.Config{PlaidEnv: "staging"})
		assert.Error(t, err)

		client, err := NewClient(shared.Config{PlaidEnv: "Sandbox"})
		require.NoError(t, err)
		assert.Equal(t, string(plaid.Sandbox), client.GetConfig().Servers[0].URL)
	})
}
