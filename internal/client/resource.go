package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

var quoteValues = url.Values{"quote": []string{"true"}}

// segment escapes a single path element.
func segment(value string) string {
	return url.PathEscape(value)
}

// customerPath joins elements below /customers/{customer}.
func customerPath(customer string, elements ...string) (string, error) {
	if customer == "" {
		return "", rtr.ErrCustomerRequired
	}

	return "/customers/" + segment(customer) + "/" + strings.Join(elements, "/"), nil
}

// processResponse reads the process id header and keeps a JSON body.
func processResponse(resp *http.Response) (*rtr.ProcessResponse, error) {
	result := &rtr.ProcessResponse{Status: resp.StatusCode}

	if value := strings.TrimSpace(resp.Headers.Get(constants.ProcessIDHeader)); value != "" {
		id, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", rtr.ErrInvalidProcessID, value)
		}

		result.ID = id
	}

	if len(resp.Body) > 0 && json.Valid(resp.Body) {
		result.Data = json.RawMessage(resp.Body)
	}

	return result, nil
}

func getResource[T any](ctx context.Context, client *http.Client, path string, opts any, what string) (*T, error) {
	query, err := rtr.OptionValues(opts)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	resp, err := client.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	var resource T

	err = json.Unmarshal(resp.Body, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &resource, nil
}

func listResources[T any](ctx context.Context, client *http.Client, path string, query *rtr.ListQuery, what string) (*rtr.Page[T], error) {
	resp, err := client.GetWithParams(ctx, path, rtr.Encode(query))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	var page rtr.Page[T]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", what, err)
	}

	return &page, nil
}

func postProcess(ctx context.Context, client *http.Client, path string, body any, action string) (*rtr.ProcessResponse, error) {
	resp, err := client.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return processResponse(resp)
}

func deleteProcess(ctx context.Context, client *http.Client, path string, action string) (*rtr.ProcessResponse, error) {
	resp, err := client.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return processResponse(resp)
}

// postQuote posts body with quote=true and extracts the quote.
func postQuote(ctx context.Context, client *http.Client, path string, body any, action string) (*rtr.Quote, error) {
	resp, err := client.PostWithQuery(ctx, path, quoteValues, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	quote, err := rtr.DecodeQuote(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return quote, nil
}

// postNoContent posts body and discards the response.
func postNoContent(ctx context.Context, client *http.Client, path string, body any, action string) error {
	_, err := client.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}

// decodeResult decodes the body of a process response into result.
func decodeResult(process *rtr.ProcessResponse, result any, action string) error {
	err := process.Decode(result)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}
