package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// SiteLockClient implements rtr.SiteLockClient.
type SiteLockClient struct {
	httpClient *http.Client
	customer   string
}

// NewSiteLockClient creates a new SiteLock client. Accounts are created for
// customer unless the request names one.
func NewSiteLockClient(httpClient *http.Client, customer string) *SiteLockClient {
	return &SiteLockClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

func accountPath(username string, elements ...string) string {
	path := "/sitelock/accounts/" + segment(username)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

func sitePath(domainName string, elements ...string) string {
	path := "/sitelock/sites/" + segment(domainName)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

func (c *SiteLockClient) accountBody(request *rtr.SiteLockAccountRequest) *rtr.SiteLockAccountRequest {
	body := *request
	if body.Customer == "" {
		body.Customer = c.customer
	}

	return &body
}

// GetAccount implements rtr.SiteLockClient.GetAccount.
func (c *SiteLockClient) GetAccount(ctx context.Context, username string, opts *rtr.GetOptions) (*rtr.SiteLockAccount, error) {
	return getResource[rtr.SiteLockAccount](ctx, c.httpClient, accountPath(username), opts, "SiteLock account")
}

// ListAccounts implements rtr.SiteLockClient.ListAccounts.
func (c *SiteLockClient) ListAccounts(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.SiteLockAccount], error) {
	return listResources[rtr.SiteLockAccount](ctx, c.httpClient, "/sitelock/accounts/", query, "SiteLock accounts")
}

// CreateAccount implements rtr.SiteLockClient.CreateAccount.
func (c *SiteLockClient) CreateAccount(ctx context.Context, username string, request *rtr.SiteLockAccountRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, accountPath(username), c.accountBody(request), "creating SiteLock account")
}

// CreateAccountQuote implements rtr.SiteLockClient.CreateAccountQuote.
func (c *SiteLockClient) CreateAccountQuote(ctx context.Context, username string, request *rtr.SiteLockAccountRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, accountPath(username), c.accountBody(request), "quoting SiteLock account")
}

// DeleteAccount implements rtr.SiteLockClient.DeleteAccount.
func (c *SiteLockClient) DeleteAccount(ctx context.Context, username string) (*rtr.ProcessResponse, error) {
	return deleteProcess(ctx, c.httpClient, accountPath(username), "deleting SiteLock account")
}

// ResetPassword implements rtr.SiteLockClient.ResetPassword.
func (c *SiteLockClient) ResetPassword(ctx context.Context, username string, request *rtr.SiteLockPasswordRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, accountPath(username, "resetpassword"), request, "resetting SiteLock password")
}

// SSO implements rtr.SiteLockClient.SSO.
func (c *SiteLockClient) SSO(ctx context.Context, username string, request *rtr.SiteLockSSORequest) (*rtr.SiteLockSSO, error) {
	if request == nil {
		request = &rtr.SiteLockSSORequest{}
	}

	resp, err := c.httpClient.Post(ctx, accountPath(username, "sso"), request)
	if err != nil {
		return nil, fmt.Errorf("requesting SiteLock SSO link: %w", err)
	}

	var sso rtr.SiteLockSSO

	err = json.Unmarshal(resp.Body, &sso)
	if err != nil {
		return nil, fmt.Errorf("parsing SiteLock SSO response: %w", err)
	}

	return &sso, nil
}

// GetSite implements rtr.SiteLockClient.GetSite.
func (c *SiteLockClient) GetSite(ctx context.Context, domainName string, opts *rtr.GetOptions) (*rtr.SiteLockSite, error) {
	return getResource[rtr.SiteLockSite](ctx, c.httpClient, sitePath(domainName), opts, "SiteLock site")
}

// ListSites implements rtr.SiteLockClient.ListSites.
func (c *SiteLockClient) ListSites(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.SiteLockSite], error) {
	return listResources[rtr.SiteLockSite](ctx, c.httpClient, "/sitelock/sites/", query, "SiteLock sites")
}

// CreateSite implements rtr.SiteLockClient.CreateSite.
func (c *SiteLockClient) CreateSite(ctx context.Context, domainName string, request *rtr.SiteLockSiteRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, sitePath(domainName), request, "creating SiteLock site")
}

// CreateSiteQuote implements rtr.SiteLockClient.CreateSiteQuote.
func (c *SiteLockClient) CreateSiteQuote(ctx context.Context, domainName string, request *rtr.SiteLockSiteRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, sitePath(domainName), request, "quoting SiteLock site")
}

// UpdateSite implements rtr.SiteLockClient.UpdateSite.
func (c *SiteLockClient) UpdateSite(ctx context.Context, domainName string, request *rtr.SiteLockSiteRequest) (*rtr.ProcessResponse, error) {
	return postProcess(ctx, c.httpClient, sitePath(domainName, "update"), request, "updating SiteLock site")
}

// UpdateSiteQuote implements rtr.SiteLockClient.UpdateSiteQuote.
func (c *SiteLockClient) UpdateSiteQuote(ctx context.Context, domainName string, request *rtr.SiteLockSiteRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, sitePath(domainName, "update"), request, "quoting SiteLock site update")
}

// DeleteSite implements rtr.SiteLockClient.DeleteSite.
func (c *SiteLockClient) DeleteSite(ctx context.Context, domainName string) (*rtr.ProcessResponse, error) {
	return deleteProcess(ctx, c.httpClient, sitePath(domainName), "deleting SiteLock site")
}
