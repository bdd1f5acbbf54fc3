package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/rtr/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoKeySource = errors.New("no API key source configured")
)

// KeySource loads the API key stored at path, e.g. the CLI config file.
type KeySource interface {
	LoadAPIKey(path string) (string, error)
}

// ConfigAuthorizer reads the API key from a KeySource on first use and keeps
// it until invalidated, so a key rotated with "rtr login" is picked up after
// the API rejects the old one.
type ConfigAuthorizer struct {
	source KeySource
	path   string

	mutex  sync.RWMutex
	cached string
}

// NewConfigAuthorizer creates an authorizer backed by source.
func NewConfigAuthorizer(source KeySource, path string) *ConfigAuthorizer {
	return &ConfigAuthorizer{
		source: source,
		path:   path,
	}
}

// Authorization implements Authorizer.
func (a *ConfigAuthorizer) Authorization(ctx context.Context) (string, error) {
	a.mutex.RLock()
	cached := a.cached
	a.mutex.RUnlock()

	if cached != "" {
		return constants.APIKeyScheme + " " + cached, nil
	}

	if a.source == nil {
		return "", ErrNoKeySource
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.cached == "" {
		key, err := a.source.LoadAPIKey(a.path)
		if err != nil {
			return "", fmt.Errorf("loading API key from %s: %w", a.path, err)
		}

		if key == "" {
			return "", constants.ErrNoAPIKey
		}

		a.cached = key
	}

	return constants.APIKeyScheme + " " + a.cached, nil
}

// SetKey replaces the cached key.
func (a *ConfigAuthorizer) SetKey(key string) {
	a.mutex.Lock()
	a.cached = key
	a.mutex.Unlock()
}

// Invalidate implements Invalidator.
func (a *ConfigAuthorizer) Invalidate() {
	a.SetKey("")
}
