package client

import (
	"context"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// ContactsClient implements rtr.ContactsClient.
type ContactsClient struct {
	httpClient *http.Client
	customer   string
}

// NewContactsClient creates a new contacts client for customer.
func NewContactsClient(httpClient *http.Client, customer string) *ContactsClient {
	return &ContactsClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

func (c *ContactsClient) path(elements ...string) (string, error) {
	return customerPath(c.customer, append([]string{"contacts"}, elements...)...)
}

// Get implements rtr.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, handle string, opts *rtr.GetOptions) (*rtr.Contact, error) {
	path, err := c.path(segment(handle))
	if err != nil {
		return nil, err
	}

	return getResource[rtr.Contact](ctx, c.httpClient, path, opts, "contact")
}

// List implements rtr.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Contact], error) {
	path, err := c.path("")
	if err != nil {
		return nil, err
	}

	return listResources[rtr.Contact](ctx, c.httpClient, path, query, "contacts")
}

// Create implements rtr.ContactsClient.Create.
func (c *ContactsClient) Create(ctx context.Context, handle string, request *rtr.ContactCreateRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle))
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "creating contact")
}

// Update implements rtr.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, handle string, request *rtr.ContactUpdateRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), "update")
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "updating contact")
}

// Delete implements rtr.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, handle string) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle))
	if err != nil {
		return nil, err
	}

	return deleteProcess(ctx, c.httpClient, path, "deleting contact")
}

// Split implements rtr.ContactsClient.Split.
func (c *ContactsClient) Split(ctx context.Context, handle string, request *rtr.ContactSplitRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), "split")
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "splitting contact")
}

// Validate implements rtr.ContactsClient.Validate.
func (c *ContactsClient) Validate(ctx context.Context, handle string, categories ...string) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), "validate")
	if err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []string{}
	}

	return postProcess(ctx, c.httpClient, path, &rtr.ContactValidateRequest{Categories: categories}, "validating contact")
}

// AddProperties implements rtr.ContactsClient.AddProperties.
func (c *ContactsClient) AddProperties(ctx context.Context, handle, registry string, request *rtr.ContactPropertiesRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), segment(registry))
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "adding contact properties")
}

// UpdateProperties implements rtr.ContactsClient.UpdateProperties.
func (c *ContactsClient) UpdateProperties(ctx context.Context, handle, registry string, request *rtr.ContactPropertiesRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), segment(registry), "update")
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "updating contact properties")
}
