package client

import (
	"context"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// DNSTemplatesClient implements rtr.DNSTemplatesClient.
type DNSTemplatesClient struct {
	httpClient *http.Client
	customer   string
}

// NewDNSTemplatesClient creates a new DNS templates client for customer.
func NewDNSTemplatesClient(httpClient *http.Client, customer string) *DNSTemplatesClient {
	return &DNSTemplatesClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

func (c *DNSTemplatesClient) path(elements ...string) (string, error) {
	return customerPath(c.customer, append([]string{"dnstemplates"}, elements...)...)
}

// Get implements rtr.DNSTemplatesClient.Get.
func (c *DNSTemplatesClient) Get(ctx context.Context, name string, opts *rtr.GetOptions) (*rtr.DNSTemplate, error) {
	path, err := c.path(segment(name))
	if err != nil {
		return nil, err
	}

	return getResource[rtr.DNSTemplate](ctx, c.httpClient, path, opts, "DNS template")
}

// List implements rtr.DNSTemplatesClient.List.
func (c *DNSTemplatesClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.DNSTemplate], error) {
	path, err := c.path("")
	if err != nil {
		return nil, err
	}

	return listResources[rtr.DNSTemplate](ctx, c.httpClient, path, query, "DNS templates")
}

// Create implements rtr.DNSTemplatesClient.Create.
func (c *DNSTemplatesClient) Create(ctx context.Context, name string, request *rtr.DNSTemplateRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(name))
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "creating DNS template")
}

// Update implements rtr.DNSTemplatesClient.Update.
func (c *DNSTemplatesClient) Update(ctx context.Context, name string, request *rtr.DNSTemplateRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(name), "update")
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "updating DNS template")
}

// Delete implements rtr.DNSTemplatesClient.Delete.
func (c *DNSTemplatesClient) Delete(ctx context.Context, name string) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(name))
	if err != nil {
		return nil, err
	}

	return deleteProcess(ctx, c.httpClient, path, "deleting DNS template")
}
