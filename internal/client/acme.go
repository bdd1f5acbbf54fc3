package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// AcmeClient implements rtr.AcmeClient.
type AcmeClient struct {
	httpClient *http.Client
}

// NewAcmeClient creates a new ACME subscriptions client.
func NewAcmeClient(httpClient *http.Client) *AcmeClient {
	return &AcmeClient{
		httpClient: httpClient,
	}
}

func acmePath(id int, elements ...string) string {
	path := "/ssl/acme/" + strconv.Itoa(id)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

// Get implements rtr.AcmeClient.Get.
func (c *AcmeClient) Get(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.AcmeSubscription, error) {
	return getResource[rtr.AcmeSubscription](ctx, c.httpClient, acmePath(id), opts, "ACME subscription")
}

// List implements rtr.AcmeClient.List.
func (c *AcmeClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.AcmeSubscription], error) {
	return listResources[rtr.AcmeSubscription](ctx, c.httpClient, "/ssl/acme", query, "ACME subscriptions")
}

// Create implements rtr.AcmeClient.Create.
func (c *AcmeClient) Create(ctx context.Context, request *rtr.AcmeSubscriptionRequest) (*rtr.AcmeProcessResponse, error) {
	process, err := postProcess(ctx, c.httpClient, "/ssl/acme", request, "creating ACME subscription")
	if err != nil {
		return nil, err
	}

	result := &rtr.AcmeProcessResponse{ProcessResponse: *process}

	err = decodeResult(process, &result.Result, "parsing ACME subscription")
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CreateQuote implements rtr.AcmeClient.CreateQuote.
func (c *AcmeClient) CreateQuote(ctx context.Context, request *rtr.AcmeSubscriptionRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, "/ssl/acme", request, "quoting ACME subscription")
}

// Update implements rtr.AcmeClient.Update.
func (c *AcmeClient) Update(ctx context.Context, id int, request *rtr.AcmeSubscriptionUpdateRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, acmePath(id, "update"), request, "updating ACME subscription")
}

// UpdateQuote implements rtr.AcmeClient.UpdateQuote.
func (c *AcmeClient) UpdateQuote(ctx context.Context, id int, request *rtr.AcmeSubscriptionUpdateRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, acmePath(id, "update"), request, "quoting ACME subscription update")
}

// Renew implements rtr.AcmeClient.Renew.
func (c *AcmeClient) Renew(ctx context.Context, id int, request *rtr.AcmeRenewRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, acmePath(id, "renew"), request, "renewing ACME subscription")
}

// RenewQuote implements rtr.AcmeClient.RenewQuote.
func (c *AcmeClient) RenewQuote(ctx context.Context, id int, request *rtr.AcmeRenewRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, acmePath(id, "renew"), request, "quoting ACME subscription renewal")
}

// Delete implements rtr.AcmeClient.Delete.
func (c *AcmeClient) Delete(ctx context.Context, id int) (*rtr.ProcessResponse, error) {
	return deleteProcess(ctx, c.httpClient, acmePath(id), "deleting ACME subscription")
}

// Credentials implements rtr.AcmeClient.Credentials. Depending on the
// certificate authority the previous credentials are invalidated.
func (c *AcmeClient) Credentials(ctx context.Context, id int) (*rtr.AcmeCredentials, error) {
	resp, err := c.httpClient.Post(ctx, acmePath(id, "credentials"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting ACME credentials: %w", err)
	}

	var credentials rtr.AcmeCredentials

	err = json.Unmarshal(resp.Body, &credentials)
	if err != nil {
		return nil, fmt.Errorf("parsing ACME credentials response: %w", err)
	}

	return &credentials, nil
}
