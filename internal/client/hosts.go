package client

import (
	"context"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// HostsClient implements rtr.HostsClient.
type HostsClient struct {
	httpClient *http.Client
}

// NewHostsClient creates a new hosts client.
func NewHostsClient(httpClient *http.Client) *HostsClient {
	return &HostsClient{
		httpClient: httpClient,
	}
}

// Get implements rtr.HostsClient.Get.
func (c *HostsClient) Get(ctx context.Context, hostName string, opts *rtr.GetOptions) (*rtr.Host, error) {
	return getResource[rtr.Host](ctx, c.httpClient, "/hosts/"+segment(hostName), opts, "host")
}

// List implements rtr.HostsClient.List.
func (c *HostsClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Host], error) {
	return listResources[rtr.Host](ctx, c.httpClient, "/hosts/", query, "hosts")
}

// Create implements rtr.HostsClient.Create.
func (c *HostsClient) Create(ctx context.Context, hostName string, request *rtr.HostRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, "/hosts/"+segment(hostName), request, "creating host")
}

// Update implements rtr.HostsClient.Update.
func (c *HostsClient) Update(ctx context.Context, hostName string, request *rtr.HostRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, "/hosts/"+segment(hostName)+"/update", request, "updating host")
}

// Delete implements rtr.HostsClient.Delete.
func (c *HostsClient) Delete(ctx context.Context, hostName string) (*rtr.ProcessResponse, error) {
	return deleteProcess(ctx, c.httpClient, "/hosts/"+segment(hostName), "deleting host")
}
