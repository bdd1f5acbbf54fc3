package client

import (
	"context"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// CustomersClient implements rtr.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
	customer   string
}

// NewCustomersClient creates a new customers client for customer.
func NewCustomersClient(httpClient *http.Client, customer string) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

// Credit implements rtr.CustomersClient.Credit.
func (c *CustomersClient) Credit(ctx context.Context) (*rtr.Credit, error) {
	path, err := customerPath(c.customer, "credit")
	if err != nil {
		return nil, err
	}

	return getResource[rtr.Credit](ctx, c.httpClient, path, nil, "credit")
}

// PriceList implements rtr.CustomersClient.PriceList.
func (c *CustomersClient) PriceList(ctx context.Context) (*rtr.PriceList, error) {
	path, err := customerPath(c.customer, "pricelist")
	if err != nil {
		return nil, err
	}

	return getResource[rtr.PriceList](ctx, c.httpClient, path, nil, "price list")
}

// PriceChanges implements rtr.CustomersClient.PriceChanges.
func (c *CustomersClient) PriceChanges(ctx context.Context) ([]rtr.PriceChange, error) {
	priceList, err := c.PriceList(ctx)
	if err != nil {
		return nil, err
	}

	return priceList.PriceChanges, nil
}

// Promos implements rtr.CustomersClient.Promos.
func (c *CustomersClient) Promos(ctx context.Context) ([]rtr.Promo, error) {
	priceList, err := c.PriceList(ctx)
	if err != nil {
		return nil, err
	}

	return priceList.Promos, nil
}
