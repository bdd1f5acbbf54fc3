package rtr

import (
	"encoding/json"
	"fmt"
	"time"
)

// Pagination describes the position of a page within a collection.
type Pagination struct {
	Limit  *int `json:"limit,omitempty"  yaml:"limit,omitempty"`
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	Total  *int `json:"total,omitempty"  yaml:"total,omitempty"`
}

// Page is a single page of a list response.
type Page[T any] struct {
	Entities   []T        `json:"entities"   yaml:"entities"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// UnmarshalJSON decodes a page, defaulting missing entities to an empty slice.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Entities   []T        `json:"entities"`
		Pagination Pagination `json:"pagination"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding page: %w", err)
	}

	p.Entities = raw.Entities
	if p.Entities == nil {
		p.Entities = []T{}
	}

	p.Pagination = raw.Pagination

	return nil
}

// ProcessResponse is returned by operations that start an asynchronous
// process on the registry side.
type ProcessResponse struct {
	// ID is taken from the x-process-id response header; zero if absent.
	ID     int             `json:"id"             yaml:"id"`
	Status int             `json:"status"         yaml:"status"`
	Data   json.RawMessage `json:"data,omitempty" yaml:"-"`
}

// Decode unmarshals the response body into v.
func (r *ProcessResponse) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}

	err := json.Unmarshal(r.Data, v)
	if err != nil {
		return fmt.Errorf("decoding process response: %w", err)
	}

	return nil
}

// BillableAction is the kind of action a billable charges for.
type BillableAction string

// Billable actions.
const (
	BillableActionCreate               BillableAction = "CREATE"
	BillableActionTransfer             BillableAction = "TRANSFER"
	BillableActionRenew                BillableAction = "RENEW"
	BillableActionRestore              BillableAction = "RESTORE"
	BillableActionRequest              BillableAction = "REQUEST"
	BillableActionTransferRestore      BillableAction = "TRANSFER_RESTORE"
	BillableActionUpdate               BillableAction = "UPDATE"
	BillableActionUpdateAdministration BillableAction = "UPDATE_ADMINISTRATION"
	BillableActionRegistrantChange     BillableAction = "REGISTRANT_CHANGE"
	BillableActionLocalContact         BillableAction = "LOCAL_CONTACT"
	BillableActionNegativeMarkup       BillableAction = "NEGATIVE_MARKUP"
	BillableActionPrivacyProtect       BillableAction = "PRIVACY_PROTECT"
	BillableActionExtraWildcard        BillableAction = "EXTRA_WILDCARD"
	BillableActionExtraDomain          BillableAction = "EXTRA_DOMAIN"
	BillableActionRegistryLock         BillableAction = "REGISTRY_LOCK"
)

// Billable is a single charge. Amounts are in cents.
type Billable struct {
	Product      string         `json:"product"      yaml:"product"`
	Action       BillableAction `json:"action"       yaml:"action"`
	ProviderName string         `json:"providerName" yaml:"providerName"`
	Quantity     int            `json:"quantity"     yaml:"quantity"`
	Amount       int            `json:"amount"       yaml:"amount"`
	Refundable   bool           `json:"refundable"   yaml:"refundable"`
	Total        int            `json:"total"        yaml:"total"`
}

// BillableAcknowledgement acknowledges a charge when submitting a request.
type BillableAcknowledgement struct {
	Product  string         `json:"product"            yaml:"product"`
	Action   BillableAction `json:"action"             yaml:"action"`
	Quantity int            `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// Quote is the price of an operation requested with quote=true.
type Quote struct {
	Currency  string     `json:"currency,omitempty"  yaml:"currency,omitempty"`
	Total     int        `json:"total"               yaml:"total"`
	Billables []Billable `json:"billables,omitempty" yaml:"billables,omitempty"`
}

// quoteEnvelope wraps the quote in quote=true responses.
type quoteEnvelope struct {
	Quote *Quote `json:"quote"`
}

// DecodeQuote extracts the quote from a quote=true response body.
func DecodeQuote(body []byte) (*Quote, error) {
	var envelope quoteEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing quote: %w", err)
	}

	if envelope.Quote == nil {
		return nil, ErrQuoteMissing
	}

	return envelope.Quote, nil
}

// parseTime parses an API timestamp, returning nil for empty or invalid input.
func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return &t
		}
	}

	return nil
}
