package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// BrandsClient implements rtr.BrandsClient.
type BrandsClient struct {
	httpClient *http.Client
	customer   string
}

// NewBrandsClient creates a new brands client for customer.
func NewBrandsClient(httpClient *http.Client, customer string) *BrandsClient {
	return &BrandsClient{
		httpClient: httpClient,
		customer:   customer,
	}
}

func (c *BrandsClient) path(elements ...string) (string, error) {
	return customerPath(c.customer, append([]string{"brands"}, elements...)...)
}

// Get implements rtr.BrandsClient.Get.
func (c *BrandsClient) Get(ctx context.Context, handle string, opts *rtr.GetOptions) (*rtr.Brand, error) {
	path, err := c.path(segment(handle))
	if err != nil {
		return nil, err
	}

	return getResource[rtr.Brand](ctx, c.httpClient, path, opts, "brand")
}

// List implements rtr.BrandsClient.List.
func (c *BrandsClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Brand], error) {
	path, err := c.path("")
	if err != nil {
		return nil, err
	}

	return listResources[rtr.Brand](ctx, c.httpClient, path, query, "brands")
}

// Create implements rtr.BrandsClient.Create.
func (c *BrandsClient) Create(ctx context.Context, handle string, request *rtr.BrandRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle))
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "creating brand")
}

// Update implements rtr.BrandsClient.Update.
func (c *BrandsClient) Update(ctx context.Context, handle string, request *rtr.BrandRequest) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), "update")
	if err != nil {
		return nil, err
	}

	return postProcess(ctx, c.httpClient, path, request, "updating brand")
}

// Delete implements rtr.BrandsClient.Delete.
func (c *BrandsClient) Delete(ctx context.Context, handle string) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle))
	if err != nil {
		return nil, err
	}

	return deleteProcess(ctx, c.httpClient, path, "deleting brand")
}

// GetTemplate implements rtr.BrandsClient.GetTemplate.
func (c *BrandsClient) GetTemplate(ctx context.Context, handle, name string, opts *rtr.GetOptions) (*rtr.BrandTemplate, error) {
	path, err := c.path(segment(handle), "templates", segment(name))
	if err != nil {
		return nil, err
	}

	return getResource[rtr.BrandTemplate](ctx, c.httpClient, path, opts, "brand template")
}

// ListTemplates implements rtr.BrandsClient.ListTemplates.
func (c *BrandsClient) ListTemplates(ctx context.Context, handle string, query *rtr.ListQuery) (*rtr.Page[rtr.BrandTemplate], error) {
	path, err := c.path(segment(handle), "templates", "")
	if err != nil {
		return nil, err
	}

	return listResources[rtr.BrandTemplate](ctx, c.httpClient, path, query, "brand templates")
}

// UpdateTemplate implements rtr.BrandsClient.UpdateTemplate. Without images
// the template is posted as JSON; otherwise as a multipart form with the
// template in a "command" part and one part per image.
func (c *BrandsClient) UpdateTemplate(ctx context.Context, handle, name string, request *rtr.BrandTemplateRequest, images ...rtr.TemplateImage) (*rtr.ProcessResponse, error) {
	path, err := c.path(segment(handle), "templates", segment(name), "update")
	if err != nil {
		return nil, err
	}

	if len(images) == 0 {
		return postProcess(ctx, c.httpClient, path, request, "updating brand template")
	}

	files := make([]http.FilePart, 0, len(images))

	for _, image := range images {
		if len(image.Data) == 0 {
			return nil, fmt.Errorf("%w: %q", rtr.ErrNoImageData, image.Name)
		}

		fileName := rtr.SanitizeFileName(image.Name)
		files = append(files, http.FilePart{
			FieldName:   fileName,
			FileName:    fileName,
			ContentType: image.ContentType,
			Data:        image.Data,
		})
	}

	resp, err := c.httpClient.PostMultipart(ctx, path, request, files...)
	if err != nil {
		return nil, fmt.Errorf("updating brand template: %w", err)
	}

	return processResponse(resp)
}

// PreviewTemplate implements rtr.BrandsClient.PreviewTemplate.
func (c *BrandsClient) PreviewTemplate(ctx context.Context, handle, name string, opts *rtr.PreviewOptions) (*rtr.BrandTemplate, error) {
	path, err := c.path(segment(handle), "templates", segment(name), "preview")
	if err != nil {
		return nil, err
	}

	preview := rtr.PreviewOptions{Context: rtr.DefaultPreviewContext}
	if opts != nil && opts.Context != "" {
		preview.Context = opts.Context
	}

	return getResource[rtr.BrandTemplate](ctx, c.httpClient, path, &preview, "brand template preview")
}
