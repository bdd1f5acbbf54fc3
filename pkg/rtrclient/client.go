// Package rtrclient provides the main entry point for creating yoursrs API clients
package rtrclient

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rtr/internal/client"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// New creates a new yoursrs API client.
func New(ctx context.Context, config *rtr.Config) (rtr.Client, error) {
	if config == nil {
		return nil, rtr.ErrConfigRequired
	}

	if config.APIKey == "" && config.Authorization == "" {
		return nil, rtr.ErrAPIKeyRequired
	}

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithAPIKey creates a production client for customer.
func NewWithAPIKey(ctx context.Context, apiKey, customer string) (rtr.Client, error) {
	return New(ctx, &rtr.Config{
		APIKey:   apiKey,
		Customer: customer,
	})
}

// NewOTE creates a client for the operational test environment.
func NewOTE(ctx context.Context, apiKey, customer string) (rtr.Client, error) {
	return New(ctx, &rtr.Config{
		APIKey:   apiKey,
		Customer: customer,
		OTE:      true,
	})
}

// NewWithAuthorization creates a production client that sends authorization
// verbatim as the Authorization header.
func NewWithAuthorization(ctx context.Context, authorization, customer string) (rtr.Client, error) {
	return New(ctx, &rtr.Config{
		Authorization: authorization,
		Customer:      customer,
	})
}
