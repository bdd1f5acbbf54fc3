package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// DomainsClient implements rtr.DomainsClient.
type DomainsClient struct {
	httpClient *http.Client
	customer   string
}

// NewDomainsClient creates a new domains client. Registrations and
// transfers are booked on customer unless the request names one.
func NewDomainsClient(httpClient *http.Client, customer string) *DomainsClient {
	return &DomainsClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

func domainPath(domainName string, elements ...string) string {
	path := "/domains/" + segment(domainName)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

// Get implements rtr.DomainsClient.Get.
func (c *DomainsClient) Get(ctx context.Context, domainName string, opts *rtr.GetOptions) (*rtr.Domain, error) {
	return getResource[rtr.Domain](ctx, c.httpClient, domainPath(domainName), opts, "domain")
}

// List implements rtr.DomainsClient.List.
func (c *DomainsClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Domain], error) {
	return listResources[rtr.Domain](ctx, c.httpClient, "/domains/", query, "domains")
}

// Check implements rtr.DomainsClient.Check.
func (c *DomainsClient) Check(ctx context.Context, domainName string) (*rtr.DomainAvailability, error) {
	resp, err := c.httpClient.Get(ctx, domainPath(domainName, "check"), nil)
	if err != nil {
		return nil, fmt.Errorf("checking domain: %w", err)
	}

	var availability rtr.DomainAvailability

	err = json.Unmarshal(resp.Body, &availability)
	if err != nil {
		return nil, fmt.Errorf("parsing domain check response: %w", err)
	}

	return &availability, nil
}

func (c *DomainsClient) withCustomer(customer string) string {
	if customer != "" {
		return customer
	}

	return c.customer
}

func (c *DomainsClient) registerBody(request *rtr.DomainRegisterRequest) *rtr.DomainRegisterRequest {
	body := *request
	body.Customer = c.withCustomer(request.Customer)

	return &body
}

func (c *DomainsClient) transferBody(request *rtr.DomainTransferRequest) *rtr.DomainTransferRequest {
	body := *request
	body.Customer = c.withCustomer(request.Customer)

	return &body
}

func (c *DomainsClient) domainProcess(ctx context.Context, path string, body any, action string) (*rtr.DomainProcessResponse, error) {
	process, err := postProcess(ctx, c.httpClient, path, body, action)
	if err != nil {
		return nil, err
	}

	result := &rtr.DomainProcessResponse{ProcessResponse: *process}

	err = decodeResult(process, &result.Result, action)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Register implements rtr.DomainsClient.Register.
func (c *DomainsClient) Register(ctx context.Context, domainName string, request *rtr.DomainRegisterRequest) (*rtr.DomainProcessResponse, error) {
	return c.domainProcess(ctx, domainPath(domainName), c.registerBody(request), "registering domain")
}

// RegisterQuote implements rtr.DomainsClient.RegisterQuote.
func (c *DomainsClient) RegisterQuote(ctx context.Context, domainName string, request *rtr.DomainRegisterRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, domainPath(domainName), c.registerBody(request), "quoting domain registration")
}

// Transfer implements rtr.DomainsClient.Transfer.
func (c *DomainsClient) Transfer(ctx context.Context, domainName string, request *rtr.DomainTransferRequest) (*rtr.DomainProcessResponse, error) {
	return c.domainProcess(ctx, domainPath(domainName, "transfer"), c.transferBody(request), "transferring domain")
}

// TransferQuote implements rtr.DomainsClient.TransferQuote.
func (c *DomainsClient) TransferQuote(ctx context.Context, domainName string, request *rtr.DomainTransferRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, domainPath(domainName, "transfer"), c.transferBody(request), "quoting domain transfer")
}

// Update implements rtr.DomainsClient.Update.
func (c *DomainsClient) Update(ctx context.Context, domainName string, request *rtr.DomainUpdateRequest) (*rtr.DomainProcessResponse, error) {
	return c.domainProcess(ctx, domainPath(domainName, "update"), request, "updating domain")
}

// UpdateQuote implements rtr.DomainsClient.UpdateQuote.
func (c *DomainsClient) UpdateQuote(ctx context.Context, domainName string, request *rtr.DomainUpdateRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, domainPath(domainName, "update"), request, "quoting domain update")
}

// PushTransfer implements rtr.DomainsClient.PushTransfer.
func (c *DomainsClient) PushTransfer(ctx context.Context, domainName string, request *rtr.DomainPushTransferRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, domainPath(domainName, "transfer", "push"), request, "pushing domain transfer")
}

// Renew implements rtr.DomainsClient.Renew.
func (c *DomainsClient) Renew(ctx context.Context, domainName string, request *rtr.DomainRenewRequest) (*rtr.DomainProcessResponse, error) {
	return c.domainProcess(ctx, domainPath(domainName, "renew"), request, "renewing domain")
}

// RenewQuote implements rtr.DomainsClient.RenewQuote.
func (c *DomainsClient) RenewQuote(ctx context.Context, domainName string, request *rtr.DomainRenewRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, domainPath(domainName, "renew"), request, "quoting domain renewal")
}

// Restore implements rtr.DomainsClient.Restore.
func (c *DomainsClient) Restore(ctx context.Context, domainName string, request *rtr.DomainRestoreRequest) (*rtr.DomainProcessResponse, error) {
	return c.domainProcess(ctx, domainPath(domainName, "restore"), request, "restoring domain")
}

// RestoreQuote implements rtr.DomainsClient.RestoreQuote.
func (c *DomainsClient) RestoreQuote(ctx context.Context, domainName string, request *rtr.DomainRestoreRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, domainPath(domainName, "restore"), request, "quoting domain restore")
}

// Delete implements rtr.DomainsClient.Delete.
func (c *DomainsClient) Delete(ctx context.Context, domainName string) (*rtr.ProcessResponse, error) {
	return deleteProcess(ctx, c.httpClient, domainPath(domainName), "deleting domain")
}

// ZoneInfo implements rtr.DomainsClient.ZoneInfo.
func (c *DomainsClient) ZoneInfo(ctx context.Context, domainName string, opts *rtr.GetOptions) (*rtr.DNSTemplate, error) {
	return getResource[rtr.DNSTemplate](ctx, c.httpClient, domainPath(domainName, "zone"), opts, "domain zone")
}

// ZoneUpdate implements rtr.DomainsClient.ZoneUpdate.
func (c *DomainsClient) ZoneUpdate(ctx context.Context, domainName string, request *rtr.DNSTemplateRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, domainPath(domainName, "zone", "update"), request, "updating domain zone")
}

// TransferInfo implements rtr.DomainsClient.TransferInfo.
func (c *DomainsClient) TransferInfo(ctx context.Context, domainName string, processID int, opts *rtr.GetOptions) (*rtr.TransferInfo, error) {
	path := domainPath(domainName, "transfer", strconv.Itoa(processID))

	return getResource[rtr.TransferInfo](ctx, c.httpClient, path, opts, "transfer info")
}
