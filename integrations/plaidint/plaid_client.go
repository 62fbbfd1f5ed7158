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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	plaid "github.com/plaid/plaid-go/v29/plaid"
	"github.com/samber/lo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

var environments = map[string]plaid.Environment{
	"sandbox":    plaid.Sandbox,
	"production": plaid.Production,
}

const plaidDateFormat = "2006-01-02"

type Client struct {
	*plaid.APIClient
	rateLimiter *rate.Limiter
	products    []string
}

func NewClient(cfg shared.Config) (*Client, error) {
	environment, ok := environments[strings.ToLower(cfg.PlaidEnv)]
	if !ok {
		return nil, fmt.Errorf("unknown plaid environment %q", cfg.PlaidEnv)
	}
	return newClient(environment, cfg), nil
}

func newClient(environment plaid.Environment, cfg shared.Config) *Client {
	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.PlaidClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.PlaidSecret)
	configuration.UseEnvironment(environment)
	configuration.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.ProviderTimeout,
	}

	return &Client{
		APIClient:   plaid.NewAPIClient(configuration),
		rateLimiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 10),
		products:    lo.Map(cfg.PlaidProducts, func(p string, _ int) string { return strings.ToLower(strings.TrimSpace(p)) }),
	}
}

func (c *Client) SupportsProduct(product string) bool {
	return lo.Contains(c.products, strings.ToLower(product))
}

// plaidError keeps the plaid error code in the message. The sdk error only carries the http status.
func plaidError(err error, operation string) error {
	plaidErr, convErr := plaid.ToPlaidError(err)
	if convErr != nil {
		return errors.Wrapf(err, "could not call plaid %s", operation)
	}
	return errors.Errorf("plaid %s failed with %s/%s: %s", operation, plaidErr.ErrorType, plaidErr.ErrorCode, plaidErr.ErrorMessage)
}

// toMap turns a typed sdk response back into the provider shaped object the sanitizer works on.
func toMap(response any) (map[string]any, error) {
	raw, err := json.Marshal(response)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode plaid response")
	}
	var res map[string]any
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, errors.Wrap(err, "could not decode plaid response")
	}
	return res, nil
}

func (c *Client) GetBalances(ctx context.Context, accessToken string) (map[string]any, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	request := plaid.NewAccountsBalanceGetRequest(accessToken)
	response, _, err := c.PlaidApi.AccountsBalanceGet(ctx).AccountsBalanceGetRequest(*request).Execute()
	if err != nil {
		return nil, plaidError(err, "accounts balance get")
	}
	return toMap(response)
}

func (c *Client) GetIdentity(ctx context.Context, accessToken string) (map[string]any, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	request := plaid.NewIdentityGetRequest(accessToken)
	response, _, err := c.PlaidApi.IdentityGet(ctx).IdentityGetRequest(*request).Execute()
	if err != nil {
		return nil, plaidError(err, "identity get")
	}
	return toMap(response)
}

func (c *Client) GetTransactions(ctx context.Context, accessToken string, start, end time.Time, count int) (map[string]any, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	request := plaid.NewTransactionsGetRequest(accessToken, start.UTC().Format(plaidDateFormat), end.UTC().Format(plaidDateFormat))
	request.SetOptions(plaid.TransactionsGetRequestOptions{
		Count:  plaid.PtrInt32(int32(count)),
		Offset: plaid.PtrInt32(0),
	})
	response, _, err := c.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
	if err != nil {
		return nil, plaidError(err, "transactions get")
	}
	return toMap(response)
}

func (c *Client) GetInvestments(ctx context.Context, accessToken string) (map[string]any, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	request := plaid.NewInvestmentsHoldingsGetRequest(accessToken)
	response, _, err := c.PlaidApi.InvestmentsHoldingsGet(ctx).InvestmentsHoldingsGetRequest(*request).Execute()
	if err != nil {
		return nil, plaidError(err, "investments holdings get")
	}
	return toMap(response)
}

// ExchangePublicToken trades the short lived public token of the link flow for a permanent access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", "", err
	}
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	response, _, err := c.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return "", "", plaidError(err, "public token exchange")
	}
	if response.GetAccessToken() == "" {
		return "", "", errors.New("plaid returned an empty access token")
	}
	return response.GetAccessToken(), response.GetItemId(), nil
}
