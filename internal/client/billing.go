package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// BillingClient implements rtr.BillingClient.
type BillingClient struct {
	httpClient *http.Client
}

// NewBillingClient creates a new billing client.
func NewBillingClient(httpClient *http.Client) *BillingClient {
	return &BillingClient{
		httpClient: httpClient,
	}
}

// GetTransaction implements rtr.BillingClient.GetTransaction.
func (c *BillingClient) GetTransaction(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.Transaction, error) {
	path := "/billing/financialtransactions/" + strconv.Itoa(id)

	return getResource[rtr.Transaction](ctx, c.httpClient, path, opts, "transaction")
}

// ListTransactions implements rtr.BillingClient.ListTransactions.
func (c *BillingClient) ListTransactions(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Transaction], error) {
	return listResources[rtr.Transaction](ctx, c.httpClient, "/billing/financialtransactions/", query, "transactions")
}

// ListExchangeRates implements rtr.BillingClient.ListExchangeRates.
func (c *BillingClient) ListExchangeRates(ctx context.Context) ([]rtr.ExchangeRate, error) {
	resp, err := c.httpClient.Get(ctx, "/exchangerates/", nil)
	if err != nil {
		return nil, fmt.Errorf("listing exchange rates: %w", err)
	}

	var rates []rtr.ExchangeRate

	err = json.Unmarshal(resp.Body, &rates)
	if err != nil {
		return nil, fmt.Errorf("parsing exchange rates response: %w", err)
	}

	return rates, nil
}
