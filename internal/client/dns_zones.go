package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// DNSZonesClient implements rtr.DNSZonesClient.
type DNSZonesClient struct {
	httpClient *http.Client
}

// NewDNSZonesClient creates a new DNS zones client.
func NewDNSZonesClient(httpClient *http.Client) *DNSZonesClient {
	return &DNSZonesClient{
		httpClient: httpClient,
	}
}

func zonePath(id int, elements ...string) string {
	path := "/dns/zones/" + strconv.Itoa(id)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

// Get implements rtr.DNSZonesClient.Get.
func (c *DNSZonesClient) Get(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.DNSZone, error) {
	return getResource[rtr.DNSZone](ctx, c.httpClient, zonePath(id), opts, "DNS zone")
}

// Stats implements rtr.DNSZonesClient.Stats.
func (c *DNSZonesClient) Stats(ctx context.Context, id int) (*rtr.DNSZoneStats, error) {
	return getResource[rtr.DNSZoneStats](ctx, c.httpClient, zonePath(id, "stats"), nil, "DNS zone stats")
}

// List implements rtr.DNSZonesClient.List.
func (c *DNSZonesClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.DNSZone], error) {
	return listResources[rtr.DNSZone](ctx, c.httpClient, "/dns/zones/", query, "DNS zones")
}

// Create implements rtr.DNSZonesClient.Create.
func (c *DNSZonesClient) Create(ctx context.Context, request *rtr.DNSZoneCreateRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, "/dns/zones/", request, "creating DNS zone")
}

// Update implements rtr.DNSZonesClient.Update.
func (c *DNSZonesClient) Update(ctx context.Context, id int, request *rtr.DNSZoneUpdateRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, zonePath(id, "update"), request, "updating DNS zone")
}

// Delete implements rtr.DNSZonesClient.Delete.
func (c *DNSZonesClient) Delete(ctx context.Context, id int) (*rtr.ProcessResponse, error) {
	return deleteProcess(ctx, c.httpClient, zonePath(id), "deleting DNS zone")
}

// Retrieve implements rtr.DNSZonesClient.Retrieve.
func (c *DNSZonesClient) Retrieve(ctx context.Context, id int) (*rtr.DNSZoneRetrieveResult, error) {
	resp, err := c.httpClient.Post(ctx, zonePath(id, "retrieve"), nil)
	if err != nil {
		return nil, fmt.Errorf("retrieving DNS zone: %w", err)
	}

	return &rtr.DNSZoneRetrieveResult{Status: resp.StatusCode}, nil
}

// AckDSUpdate implements rtr.DNSZonesClient.AckDSUpdate.
func (c *DNSZonesClient) AckDSUpdate(ctx context.Context, processID int) error {
	return postNoContent(ctx, c.httpClient, processPath(processID, "ack-ds-update"), nil, "acknowledging DS update")
}
