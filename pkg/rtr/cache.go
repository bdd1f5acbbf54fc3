package rtr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/rtr/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrCacheKeyNotFound = errors.New("key not found")
	ErrCacheExpired     = errors.New("entry expired")
	ErrNoCacheBackend   = errors.New("no cache backend configured")
)

// MetadataCachedResponse is the request metadata key under which the cache
// interceptor stores a response that can be served without a round trip.
const MetadataCachedResponse = "cached_response"

const metadataRevalidateEntry = "cache_revalidate_entry"

// Cache is a key/value store for response bodies.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a cached response body. An expired entry carrying an
// entity tag is retained until StaleUntil so it can be revalidated.
type CacheEntry struct {
	Data       []byte    `json:"data"`
	ExpiresAt  time.Time `json:"expires_at"`
	ETag       string    `json:"etag,omitempty"`
	StaleUntil time.Time `json:"stale_until,omitempty"`
}

// Expired reports whether the entry is past its expiry time.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Discardable reports whether a backend may drop the entry.
func (e *CacheEntry) Discardable() bool {
	if e.StaleUntil.IsZero() {
		return e.Expired()
	}

	return time.Now().After(e.StaleUntil)
}

// CacheOptions are applied by the CacheManager to every backend.
type CacheOptions struct {
	TTL         time.Duration
	MaxSize     int
	EnableETags bool
	// RevalidateFor keeps expired entries with an entity tag around for
	// conditional requests.
	RevalidateFor time.Duration
}

// DefaultCacheOptions returns default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:           constants.DefaultCacheTTL,
		MaxSize:       constants.DefaultCacheSize,
		EnableETags:   true,
		RevalidateFor: constants.DefaultRevalidateWindow,
	}
}

// MemoryCache is an in-process Cache bounded by entry count.
type MemoryCache struct {
	mu              sync.RWMutex
	entries         map[string]*CacheEntry
	maxSize         int
	cleanupInterval time.Duration
	lastCleanup     time.Time
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries:         make(map[string]*CacheEntry),
		maxSize:         maxSize,
		cleanupInterval: constants.DefaultCleanupInterval,
		lastCleanup:     time.Now(),
	}
}

// Get returns the entry for key. Expired entries kept for revalidation are
// returned as is.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Discardable() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheExpired, key)
	}

	return entry, nil
}

// Set stores entry under key, evicting the entry closest to expiry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.lastCleanup) > c.cleanupInterval {
		c.cleanupLocked()
	}

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = entry

	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]*CacheEntry)
	c.mu.Unlock()

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// Cleanup drops entries that are expired and not kept for revalidation.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	c.cleanupLocked()
	c.mu.Unlock()
}

func (c *MemoryCache) cleanupLocked() {
	for key, entry := range c.entries {
		if entry.Discardable() {
			delete(c.entries, key)
		}
	}

	c.lastCleanup = time.Now()
}

func (c *MemoryCache) evictLocked() {
	var (
		victim string
		oldest time.Time
	)

	for key, entry := range c.entries {
		if victim == "" || entry.ExpiresAt.Before(oldest) {
			victim = key
			oldest = entry.ExpiresAt
		}
	}

	delete(c.entries, victim)
}

// NATSKVConfig configures a NATS JetStream key/value cache.
type NATSKVConfig struct {
	// URL of the NATS server, e.g. "nats://127.0.0.1:4222".
	URL string
	// Bucket name, created on first use when missing.
	Bucket string
	// TTL applied by the bucket to every value.
	TTL time.Duration
	// Conn reuses an existing connection instead of dialing URL.
	Conn *nats.Conn
}

// NATSKVCache stores entries in a JetStream key/value bucket so several
// processes can share cached reference data.
type NATSKVCache struct {
	conn   *nats.Conn
	owned  bool
	kv     nats.KeyValue
	bucket string
}

// NewNATSKVCache connects to NATS and opens (or creates) the bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = constants.DefaultNATSBucket
	}

	conn := config.Conn
	owned := false

	if conn == nil {
		natsURL := config.URL
		if natsURL == "" {
			natsURL = nats.DefaultURL
		}

		var err error

		conn, err = nats.Connect(natsURL, nats.Name("rtr-cache"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		owned = true
	}

	js, err := conn.JetStream()
	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("opening JetStream context: %w", err)
	}

	kv, err := js.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("opening KV bucket %s: %w", bucket, err)
	}

	return &NATSKVCache{conn: conn, owned: owned, kv: kv, bucket: bucket}, nil
}

func closeOwned(conn *nats.Conn, owned bool) {
	if owned {
		conn.Close()
	}
}

// natsKey maps an arbitrary cache key onto the KV key alphabet.
func natsKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// Get returns the entry for key. Expired entries kept for revalidation are
// returned as is.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kve, err := c.kv.Get(natsKey(key))
	if errors.Is(err, nats.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s from bucket %s: %w", key, c.bucket, err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kve.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Discardable() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrCacheExpired, key)
	}

	return &entry, nil
}

// Set stores entry under key.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(natsKey(key), data)
	if err != nil {
		return fmt.Errorf("writing %s to bucket %s: %w", key, c.bucket, err)
	}

	return nil
}

// Delete removes key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(natsKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting %s from bucket %s: %w", key, c.bucket, err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys(nats.Context(ctx))
	if errors.Is(err, nats.ErrNoKeysFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("listing bucket %s: %w", c.bucket, err)
	}

	for _, key := range keys {
		err = c.kv.Purge(key)
		if err != nil {
			return fmt.Errorf("purging bucket %s: %w", c.bucket, err)
		}
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && !entry.Expired()
}

// Close releases the connection if the cache dialed it.
func (c *NATSKVCache) Close() {
	closeOwned(c.conn, c.owned)
}

// CacheStats counts cache activity.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Sets    int64
	Deletes int64
	Errors  int64
}

// GetHitRate returns hits divided by lookups.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// CacheManager builds cache keys and tracks statistics on top of a Cache.
type CacheManager struct {
	cache   Cache
	options *CacheOptions

	hits     atomic.Int64
	misses   atomic.Int64
	sets     atomic.Int64
	deletes  atomic.Int64
	failures atomic.Int64
}

// NewCacheManager wraps cache. Nil options select DefaultCacheOptions.
func NewCacheManager(cache Cache, options *CacheOptions) *CacheManager {
	if options == nil {
		options = DefaultCacheOptions()
	}

	return &CacheManager{cache: cache, options: options}
}

// Options returns the options of the manager.
func (m *CacheManager) Options() *CacheOptions {
	return m.options
}

// GetCacheKey returns "METHOD:path", followed by ":" and the sorted query
// parameters when there are any.
func (m *CacheManager) GetCacheKey(method, path string, params map[string]string) string {
	key := method + ":" + path
	if len(params) == 0 {
		return key
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+params[name])
	}

	return key + ":" + strings.Join(parts, "&")
}

// RequestCacheKey returns the cache key of an intercepted request. The query
// is encoded as sent, so repeated parameters and comma lists stay distinct.
func (m *CacheManager) RequestCacheKey(req *Request) string {
	key := req.Method + ":" + req.Path
	if len(req.Query) == 0 {
		return key
	}

	return key + ":" + req.Query.Encode()
}

// Get returns the cached data for key.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := m.GetEntry(ctx, key)
	if err != nil {
		return nil, err
	}

	return entry.Data, nil
}

// GetEntry returns the live cached entry for key. An entry kept only for
// revalidation counts as a miss and yields ErrCacheExpired.
func (m *CacheManager) GetEntry(ctx context.Context, key string) (*CacheEntry, error) {
	entry, err := m.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	if entry.Expired() {
		return nil, fmt.Errorf("cache lookup: %w: %s", ErrCacheExpired, key)
	}

	return entry, nil
}

// Lookup returns the entry for key, including an expired one still kept
// for revalidation. Each call counts exactly one hit or miss.
func (m *CacheManager) Lookup(ctx context.Context, key string) (*CacheEntry, error) {
	if m.cache == nil {
		m.misses.Add(1)

		return nil, ErrNoCacheBackend
	}

	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		m.misses.Add(1)

		return nil, fmt.Errorf("cache lookup: %w", err)
	}

	if entry.Expired() {
		m.misses.Add(1)
	} else {
		m.hits.Add(1)
	}

	return entry, nil
}

// Set stores data under key for ttl. A zero ttl uses the manager default.
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data and its entity tag under key.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if m.cache == nil {
		return ErrNoCacheBackend
	}

	if ttl <= 0 {
		ttl = m.options.TTL
	}

	if !m.options.EnableETags {
		etag = ""
	}

	entry := &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      etag,
	}

	if etag != "" && m.options.RevalidateFor > 0 {
		entry.StaleUntil = entry.ExpiresAt.Add(m.options.RevalidateFor)
	}

	err := m.cache.Set(ctx, key, entry)
	if err != nil {
		m.failures.Add(1)

		return fmt.Errorf("cache store: %w", err)
	}

	m.sets.Add(1)

	return nil
}

// Delete removes key.
func (m *CacheManager) Delete(ctx context.Context, key string) error {
	if m.cache == nil {
		return nil
	}

	err := m.cache.Delete(ctx, key)
	if err != nil {
		m.failures.Add(1)

		return fmt.Errorf("cache delete: %w", err)
	}

	m.deletes.Add(1)

	return nil
}

// Has reports whether key is cached.
func (m *CacheManager) Has(ctx context.Context, key string) bool {
	return m.cache != nil && m.cache.Has(ctx, key)
}

// Clear empties the backend.
func (m *CacheManager) Clear(ctx context.Context) error {
	if m.cache == nil {
		return nil
	}

	err := m.cache.Clear(ctx)
	if err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}

	return nil
}

// GetStats returns a snapshot of the counters.
func (m *CacheManager) GetStats() *CacheStats {
	return &CacheStats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Sets:    m.sets.Load(),
		Deletes: m.deletes.Load(),
		Errors:  m.failures.Load(),
	}
}

// CachingPolicy decides which responses are stored. Paths match when they
// contain one of the listed fragments.
type CachingPolicy struct {
	CacheGET     bool
	CachePOST    bool
	CacheErrors  bool
	IncludePaths []string
	ExcludePaths []string
	TTL          time.Duration
}

// DefaultCachingPolicy caches successful GETs of slowly changing reference
// data: TLD metadata, exchange rates and price lists.
func DefaultCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET:     true,
		IncludePaths: []string{"/tlds/", "/exchangerates/", "/pricelist"},
		ExcludePaths: []string{"/processes/", "/notifications/"},
		TTL:          constants.DefaultCacheTTL,
	}
}

// ShouldCache reports whether a response to method and path with the given
// status may be stored.
func (p *CachingPolicy) ShouldCache(method, path string, statusCode int) bool {
	switch method {
	case http.MethodGet:
		if !p.CacheGET {
			return false
		}
	case http.MethodPost:
		if !p.CachePOST {
			return false
		}
	default:
		return false
	}

	if !p.CacheErrors && (statusCode < 200 || statusCode >= 300) {
		return false
	}

	for _, fragment := range p.ExcludePaths {
		if strings.Contains(path, fragment) {
			return false
		}
	}

	if len(p.IncludePaths) == 0 {
		return true
	}

	for _, fragment := range p.IncludePaths {
		if strings.Contains(path, fragment) {
			return true
		}
	}

	return false
}

// CacheInterceptor returns a pair of interceptors. The request side places
// a live cached response in the request metadata, or turns the request into
// a conditional one when the cached entry has expired but carries an entity
// tag. The response side stores cacheable responses and answers a 304 with
// the revalidated body.
func CacheInterceptor(manager *CacheManager, policy *CachingPolicy) (RequestInterceptor, ResponseInterceptor) {
	if policy == nil {
		policy = DefaultCachingPolicy()
	}

	request := func(ctx context.Context, req *Request) error {
		if !policy.ShouldCache(req.Method, req.Path, http.StatusOK) {
			return nil
		}

		entry, err := manager.Lookup(ctx, manager.RequestCacheKey(req))
		if err != nil {
			return nil //nolint:nilerr // a miss is not a failure
		}

		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		if entry.Expired() {
			if entry.ETag == "" || !manager.Options().EnableETags {
				return nil
			}

			if req.Headers == nil {
				req.Headers = make(http.Header)
			}

			req.Headers.Set("If-None-Match", entry.ETag)
			req.Metadata[metadataRevalidateEntry] = entry

			return nil
		}

		headers := make(http.Header)
		headers.Set("X-Cache", "HIT")

		req.Metadata[MetadataCachedResponse] = &Response{
			StatusCode: http.StatusOK,
			Headers:    headers,
			Body:       entry.Data,
		}

		return nil
	}

	response := func(ctx context.Context, req *Request, resp *Response) error {
		if _, served := req.Metadata[MetadataCachedResponse]; served {
			return nil
		}

		key := manager.RequestCacheKey(req)

		if resp.StatusCode == http.StatusNotModified {
			entry, ok := req.Metadata[metadataRevalidateEntry].(*CacheEntry)
			if !ok {
				return nil
			}

			resp.StatusCode = http.StatusOK
			resp.Body = entry.Data

			etag := entry.ETag
			if resp.Headers != nil && resp.Headers.Get("ETag") != "" {
				etag = resp.Headers.Get("ETag")
			}

			_ = manager.SetWithETag(ctx, key, entry.Data, etag, policy.TTL)

			return nil
		}

		if resp.Error != nil || !policy.ShouldCache(req.Method, req.Path, resp.StatusCode) {
			return nil
		}

		etag := ""
		if resp.Headers != nil {
			etag = resp.Headers.Get("ETag")
		}

		_ = manager.SetWithETag(ctx, key, resp.Body, etag, policy.TTL)

		return nil
	}

	return request, response
}

// CacheInvalidationInterceptor drops the cached GETs of an object and of its
// collection after a successful mutation. Mutations are posted to
// "<object>/update" or sent to the object path itself.
func CacheInvalidationInterceptor(manager *CacheManager) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		if req.Method == http.MethodGet || resp.Error != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil
		}

		object := strings.TrimSuffix(strings.TrimSuffix(req.Path, "/"), "/update")
		collection := object[:strings.LastIndex(object, "/")+1]

		for _, path := range []string{object, collection} {
			if path == "" {
				continue
			}

			_ = manager.Delete(ctx, manager.GetCacheKey(http.MethodGet, path, nil))
		}

		return nil
	}
}

// ConfigureCache installs response caching, revalidation and invalidation
// on chain.
func ConfigureCache(chain *InterceptorChain, manager *CacheManager, policy *CachingPolicy) {
	request, response := CacheInterceptor(manager, policy)
	chain.AddRequestInterceptor(request)
	chain.AddResponseInterceptor(response)
	chain.AddResponseInterceptor(CacheInvalidationInterceptor(manager))
}

// CacheWarmer preloads cacheable reference data through a client whose
// HTTP layer has caching enabled.
type CacheWarmer struct {
	client  Client
	manager *CacheManager
}

// NewCacheWarmer creates a cache warmer.
func NewCacheWarmer(client Client, manager *CacheManager) *CacheWarmer {
	return &CacheWarmer{client: client, manager: manager}
}

// Warm fetches exchange rates, the price list when a customer is
// configured, and the metadata of every given TLD.
func (w *CacheWarmer) Warm(ctx context.Context, tlds ...string) error {
	if w.client == nil {
		return ErrConfigRequired
	}

	_, err := w.client.Billing().ListExchangeRates(ctx)
	if err != nil {
		return fmt.Errorf("warming exchange rates: %w", err)
	}

	if w.client.Customer() != "" {
		_, err = w.client.Customers().PriceList(ctx)
		if err != nil {
			return fmt.Errorf("warming price list: %w", err)
		}
	}

	for _, tld := range tlds {
		_, err = w.client.TLDs().Info(ctx, tld)
		if err != nil {
			return fmt.Errorf("warming tld %s: %w", tld, err)
		}
	}

	return nil
}
