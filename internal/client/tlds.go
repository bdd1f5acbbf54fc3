package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// TLDsClient implements rtr.TLDsClient.
type TLDsClient struct {
	httpClient *http.Client
}

// NewTLDsClient creates a new TLD metadata client.
func NewTLDsClient(httpClient *http.Client) *TLDsClient {
	return &TLDsClient{
		httpClient: httpClient,
	}
}

// Info implements rtr.TLDsClient.Info. A leading dot is ignored.
func (c *TLDsClient) Info(ctx context.Context, tld string) (*rtr.TLDInfo, error) {
	path := "/tlds/" + segment(strings.TrimPrefix(tld, ".")) + "/info"

	return getResource[rtr.TLDInfo](ctx, c.httpClient, path, nil, "TLD info")
}

// ValidationClient implements rtr.ValidationClient.
type ValidationClient struct {
	httpClient *http.Client
}

// NewValidationClient creates a new validation category client.
func NewValidationClient(httpClient *http.Client) *ValidationClient {
	return &ValidationClient{
		httpClient: httpClient,
	}
}

// GetCategory implements rtr.ValidationClient.GetCategory.
func (c *ValidationClient) GetCategory(ctx context.Context, name string, opts *rtr.GetOptions) (*rtr.ValidationCategory, error) {
	return getResource[rtr.ValidationCategory](ctx, c.httpClient, "/validation/categories/"+segment(name), opts, "validation category")
}

// ListCategories implements rtr.ValidationClient.ListCategories.
func (c *ValidationClient) ListCategories(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.ValidationCategory], error) {
	return listResources[rtr.ValidationCategory](ctx, c.httpClient, "/validation/categories/", query, "validation categories")
}

// ProvidersClient implements rtr.ProvidersClient.
type ProvidersClient struct {
	httpClient *http.Client
}

// NewProvidersClient creates a new providers client.
func NewProvidersClient(httpClient *http.Client) *ProvidersClient {
	return &ProvidersClient{
		httpClient: httpClient,
	}
}

// List implements rtr.ProvidersClient.List.
func (c *ProvidersClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Provider], error) {
	return listResources[rtr.Provider](ctx, c.httpClient, "/providers/", query, "providers")
}

// ListDowntimeWindows implements rtr.ProvidersClient.ListDowntimeWindows.
func (c *ProvidersClient) ListDowntimeWindows(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.DowntimeWindow], error) {
	return listResources[rtr.DowntimeWindow](ctx, c.httpClient, "/providers/downtime", query, "downtime windows")
}
