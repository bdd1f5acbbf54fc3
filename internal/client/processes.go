package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// ProcessesClient implements rtr.ProcessesClient.
type ProcessesClient struct {
	httpClient *http.Client
}

// NewProcessesClient creates a new processes client.
func NewProcessesClient(httpClient *http.Client) *ProcessesClient {
	return &ProcessesClient{
		httpClient: httpClient,
	}
}

func processPath(id int, elements ...string) string {
	path := "/processes/" + strconv.Itoa(id)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

// Get implements rtr.ProcessesClient.Get.
func (c *ProcessesClient) Get(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.Process, error) {
	return getResource[rtr.Process](ctx, c.httpClient, processPath(id), opts, "process")
}

// Info implements rtr.ProcessesClient.Info. Only certificate processes
// carry an info document.
func (c *ProcessesClient) Info(ctx context.Context, id int) (*rtr.CertificateProcessResponse, error) {
	resp, err := c.httpClient.Get(ctx, processPath(id, "info"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting process info: %w", err)
	}

	process, err := processResponse(resp)
	if err != nil {
		return nil, err
	}

	if process.ID == 0 {
		process.ID = id
	}

	result := &rtr.CertificateProcessResponse{ProcessResponse: *process}

	err = decodeResult(process, &result.Result, "parsing process info")
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Cancel implements rtr.ProcessesClient.Cancel.
func (c *ProcessesClient) Cancel(ctx context.Context, id int) error {
	_, err := c.httpClient.Delete(ctx, processPath(id))
	if err != nil {
		return fmt.Errorf("canceling process: %w", err)
	}

	return nil
}

// Resend implements rtr.ProcessesClient.Resend.
func (c *ProcessesClient) Resend(ctx context.Context, id int) error {
	return postNoContent(ctx, c.httpClient, processPath(id, "resend"), struct{}{}, "resending process")
}

// List implements rtr.ProcessesClient.List.
func (c *ProcessesClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Process], error) {
	return listResources[rtr.Process](ctx, c.httpClient, "/processes/", query, "processes")
}
