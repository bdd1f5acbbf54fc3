package client

import (
	"context"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// NotificationsClient implements rtr.NotificationsClient.
type NotificationsClient struct {
	httpClient *http.Client
	customer   string
}

// NewNotificationsClient creates a new notifications client for customer.
func NewNotificationsClient(httpClient *http.Client, customer string) *NotificationsClient {
	return &NotificationsClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

func (c *NotificationsClient) path(elements ...string) (string, error) {
	return customerPath(c.customer, append([]string{"notifications"}, elements...)...)
}

// Get implements rtr.NotificationsClient.Get.
func (c *NotificationsClient) Get(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.Notification, error) {
	path, err := c.path(strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	return getResource[rtr.Notification](ctx, c.httpClient, path, opts, "notification")
}

// List implements rtr.NotificationsClient.List.
func (c *NotificationsClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Notification], error) {
	path, err := c.path("")
	if err != nil {
		return nil, err
	}

	return listResources[rtr.Notification](ctx, c.httpClient, path, query, "notifications")
}

// Ack implements rtr.NotificationsClient.Ack.
func (c *NotificationsClient) Ack(ctx context.Context, id int) error {
	path, err := c.path(strconv.Itoa(id), "ack", "")
	if err != nil {
		return err
	}

	return postNoContent(ctx, c.httpClient, path, struct{}{}, "acknowledging notification")
}
