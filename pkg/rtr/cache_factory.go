package rtr

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/rtr/internal/constants"
)

// CacheType selects the cache backend.
type CacheType string

const (
	// CacheTypeMemory keeps entries in the current process.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS shares entries through a NATS JetStream KV bucket.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeTiered reads through a memory cache in front of NATS.
	CacheTypeTiered CacheType = "tiered"

	// CacheTypeNone disables caching.
	CacheTypeNone CacheType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrInvalidCacheURL      = errors.New("invalid cache URL")
)

// CacheConfig configures the response cache of a client.
type CacheConfig struct {
	// Type is the cache backend type
	Type CacheType

	// Memory cache configuration, also the first tier of a tiered cache.
	Memory *MemoryCacheConfig

	// NATS KV cache configuration, also the second tier of a tiered cache.
	NATS *NATSKVConfig

	// Common options applied to any backend. If nil, DefaultCacheOptions() is used.
	Options *CacheOptions

	// Policy selects the cached paths. If nil, DefaultCachingPolicy() is used.
	Policy *CachingPolicy
}

// MemoryCacheConfig configures memory cache.
type MemoryCacheConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// DefaultCacheConfig returns a memory cache for reference data.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type: CacheTypeMemory,
		Memory: &MemoryCacheConfig{
			MaxSize:         constants.DefaultCacheSize,
			CleanupInterval: constants.DefaultCleanupInterval,
		},
		Options: DefaultCacheOptions(),
	}
}

// ParseCacheURL turns a compact cache setting into a configuration:
//
//	memory                                   default memory cache
//	memory://?size=500&ttl=1h                memory cache with limits
//	none                                     caching disabled
//	nats://127.0.0.1:4222/rtr-cache?ttl=1h   NATS KV bucket
//	tiered+nats://127.0.0.1:4222/rtr-cache   memory in front of NATS
//
// The optional ttl applies to stored entries and, for NATS, to the bucket.
func ParseCacheURL(raw string) (*CacheConfig, error) {
	raw = strings.TrimSpace(raw)

	switch strings.ToLower(raw) {
	case "", string(CacheTypeMemory):
		return DefaultCacheConfig(), nil
	case string(CacheTypeNone), "off":
		return &CacheConfig{Type: CacheTypeNone}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCacheURL, err)
	}

	config := DefaultCacheConfig()

	ttl, err := parseCacheDuration(u.Query().Get("ttl"))
	if err != nil {
		return nil, err
	}

	if ttl > 0 {
		config.Options.TTL = ttl
	}

	switch strings.ToLower(u.Scheme) {
	case string(CacheTypeMemory):
		if size := u.Query().Get("size"); size != "" {
			config.Memory.MaxSize, err = strconv.Atoi(size)
			if err != nil || config.Memory.MaxSize <= 0 {
				return nil, fmt.Errorf("%w: size %q", ErrInvalidCacheURL, size)
			}
		}

		return config, nil
	case "nats":
		config.Type = CacheTypeNATS
	case "tiered+nats":
		config.Type = CacheTypeTiered
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, u.Scheme)
	}

	config.NATS = &NATSKVConfig{
		URL:    "nats://" + u.Host,
		Bucket: strings.Trim(u.Path, "/"),
		TTL:    ttl,
	}

	return config, nil
}

func parseCacheDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: ttl %q", ErrInvalidCacheURL, value)
	}

	return d, nil
}

// NewCacheFromConfig creates a cache backend from configuration.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory, "":
		return NewMemoryCacheFromConfig(config.Memory), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		shared, err := NewNATSKVCache(config.NATS)
		if err != nil {
			return nil, err
		}

		return shared, nil

	case CacheTypeTiered:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		shared, err := NewNATSKVCache(config.NATS)
		if err != nil {
			return nil, err
		}

		return NewTieredCache(NewMemoryCacheFromConfig(config.Memory), shared), nil

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

// NewCacheManagerFromConfig builds the backend, manager and policy
// described by config.
func NewCacheManagerFromConfig(config *CacheConfig) (*CacheManager, *CachingPolicy, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	cache, err := NewCacheFromConfig(config)
	if err != nil {
		return nil, nil, err
	}

	policy := config.Policy
	if policy == nil {
		policy = DefaultCachingPolicy()
	}

	return NewCacheManager(cache, config.Options), policy, nil
}

// NewMemoryCacheFromConfig creates a memory cache. Zero values select the
// defaults.
func NewMemoryCacheFromConfig(config *MemoryCacheConfig) *MemoryCache {
	if config == nil {
		config = &MemoryCacheConfig{}
	}

	cache := NewMemoryCache(config.MaxSize)
	if config.CleanupInterval > 0 {
		cache.cleanupInterval = config.CleanupInterval
	}

	return cache
}

// NoOpCache never stores anything.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always fails with ErrCacheDisabled.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}

// TieredCache reads through its tiers fastest first. A hit in a slower
// tier is copied into the faster ones; writes go to every tier.
type TieredCache struct {
	tiers []Cache
}

// NewTieredCache creates a tiered cache, fastest tier first.
func NewTieredCache(tiers ...Cache) *TieredCache {
	return &TieredCache{tiers: tiers}
}

// Get returns the entry from the first tier holding a live one. An expired
// entry kept for revalidation is returned only when no tier has a live one.
func (c *TieredCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	var stale *CacheEntry

	for i, tier := range c.tiers {
		entry, err := tier.Get(ctx, key)
		if err != nil {
			continue
		}

		if entry.Expired() {
			if stale == nil {
				stale = entry
			}

			continue
		}

		for _, faster := range c.tiers[:i] {
			_ = faster.Set(ctx, key, entry)
		}

		return entry, nil
	}

	if stale != nil {
		return stale, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
}

// Set stores entry in every tier.
func (c *TieredCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	var errs []error

	for _, tier := range c.tiers {
		errs = append(errs, tier.Set(ctx, key, entry))
	}

	return errors.Join(errs...)
}

// Delete removes key from every tier.
func (c *TieredCache) Delete(ctx context.Context, key string) error {
	var errs []error

	for _, tier := range c.tiers {
		errs = append(errs, tier.Delete(ctx, key))
	}

	return errors.Join(errs...)
}

// Clear empties every tier.
func (c *TieredCache) Clear(ctx context.Context) error {
	var errs []error

	for _, tier := range c.tiers {
		errs = append(errs, tier.Clear(ctx))
	}

	return errors.Join(errs...)
}

// Has reports whether any tier holds key.
func (c *TieredCache) Has(ctx context.Context, key string) bool {
	for _, tier := range c.tiers {
		if tier.Has(ctx, key) {
			return true
		}
	}

	return false
}
