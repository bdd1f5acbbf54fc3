package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/fivetwenty-io/rtr/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no API key or authorization configured")
)

// Authorizer supplies the value of the Authorization header.
type Authorizer interface {
	Authorization(ctx context.Context) (string, error)
}

// Invalidator is implemented by authorizers that cache credentials and
// should reload them after the API rejected a request.
type Invalidator interface {
	Invalidate()
}

// APIKeyAuthorizer sends "ApiKey <key>".
type APIKeyAuthorizer struct {
	key string
}

// NewAPIKeyAuthorizer creates an authorizer for an API key.
func NewAPIKeyAuthorizer(key string) *APIKeyAuthorizer {
	return &APIKeyAuthorizer{key: strings.TrimSpace(key)}
}

// Authorization implements Authorizer.
func (a *APIKeyAuthorizer) Authorization(ctx context.Context) (string, error) {
	if a.key == "" {
		return "", constants.ErrEmptyAPIKey
	}

	return constants.APIKeyScheme + " " + a.key, nil
}

// StaticAuthorizer sends a preformatted header value.
type StaticAuthorizer struct {
	value string
}

// NewStaticAuthorizer creates an authorizer that always returns value.
func NewStaticAuthorizer(value string) *StaticAuthorizer {
	return &StaticAuthorizer{value: value}
}

// Authorization implements Authorizer.
func (a *StaticAuthorizer) Authorization(ctx context.Context) (string, error) {
	return a.value, nil
}

// New picks an authorizer: a full authorization value wins over an API key.
func New(apiKey, authorization string) (Authorizer, error) {
	if authorization != "" {
		return NewStaticAuthorizer(authorization), nil
	}

	if strings.TrimSpace(apiKey) != "" {
		return NewAPIKeyAuthorizer(apiKey), nil
	}

	return nil, ErrNoCredentials
}
