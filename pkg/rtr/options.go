package rtr

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// GetOptions restricts the fields returned by a single object lookup.
type GetOptions struct {
	Fields []string `url:"fields,omitempty"`
}

// QuoteOptions asks an operation for its price instead of executing it.
type QuoteOptions struct {
	Quote bool `url:"quote,omitempty"`
}

// DCVEmailAddressOptions selects the product to list approver addresses for.
type DCVEmailAddressOptions struct {
	Product string `url:"product,omitempty"`
}

// PreviewOptions selects the rendering context of a template preview.
type PreviewOptions struct {
	Context string `url:"context"`
}

// DownloadOptions selects the encoding of a downloaded certificate.
type DownloadOptions struct {
	Format DownloadFormat `url:"format,omitempty"`
}

// DefaultPreviewContext is used when PreviewOptions carries no context.
const DefaultPreviewContext = "base"

// OptionValues encodes an options struct into query values. A nil options
// value yields nil.
func OptionValues(opts any) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}

	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}

	if len(values) == 0 {
		return nil, nil
	}

	return values, nil
}
