package rtr_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

func liveEntry(data string) *rtr.CacheEntry {
	return &rtr.CacheEntry{Data: []byte(data), ExpiresAt: time.Now().Add(time.Hour)}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := rtr.NewMemoryCache(10)
	ctx := context.Background()

	entry := &rtr.CacheEntry{
		Data:      []byte(`{"hash":"abc"}`),
		ExpiresAt: time.Now().Add(time.Hour),
		ETag:      `"v1"`,
	}

	require.NoError(t, cache.Set(ctx, "GET:/tlds/nl/info", entry))

	retrieved, err := cache.Get(ctx, "GET:/tlds/nl/info")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)

	_, err = cache.Get(ctx, "GET:/tlds/com/info")
	require.ErrorIs(t, err, rtr.ErrCacheKeyNotFound)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	cache := rtr.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "stale", &rtr.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, cache.Set(ctx, "fresh", liveEntry("fresh")))

	assert.False(t, cache.Has(ctx, "stale"))

	_, err := cache.Get(ctx, "stale")
	require.ErrorIs(t, err, rtr.ErrCacheExpired)

	cache.Cleanup()
	assert.True(t, cache.Has(ctx, "fresh"))
}

func TestMemoryCache_KeepsEntriesForRevalidation(t *testing.T) {
	t.Parallel()

	cache := rtr.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "tagged", &rtr.CacheEntry{
		Data:       []byte("tagged"),
		ExpiresAt:  time.Now().Add(-time.Minute),
		ETag:       `"v1"`,
		StaleUntil: time.Now().Add(time.Hour),
	}))
	require.NoError(t, cache.Set(ctx, "gone", &rtr.CacheEntry{
		Data:       []byte("gone"),
		ExpiresAt:  time.Now().Add(-time.Hour),
		ETag:       `"v1"`,
		StaleUntil: time.Now().Add(-time.Minute),
	}))

	cache.Cleanup()

	// kept, but not live
	assert.False(t, cache.Has(ctx, "tagged"))

	entry, err := cache.Get(ctx, "tagged")
	require.NoError(t, err)
	assert.True(t, entry.Expired())
	assert.Equal(t, `"v1"`, entry.ETag)

	_, err = cache.Get(ctx, "gone")
	require.ErrorIs(t, err, rtr.ErrCacheKeyNotFound)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := rtr.NewMemoryCache(10)
	ctx := context.Background()

	for _, key := range []string{"nl", "com", "eu"} {
		require.NoError(t, cache.Set(ctx, key, liveEntry(key)))
	}

	require.NoError(t, cache.Delete(ctx, "nl"))
	assert.False(t, cache.Has(ctx, "nl"))
	assert.True(t, cache.Has(ctx, "com"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "com"))
	assert.False(t, cache.Has(ctx, "eu"))
}

func TestMemoryCache_EvictsEntryClosestToExpiry(t *testing.T) {
	t.Parallel()

	cache := rtr.NewMemoryCache(2)
	ctx := context.Background()

	for i, key := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Set(ctx, key, &rtr.CacheEntry{
			Data:      []byte(key),
			ExpiresAt: time.Now().Add(time.Duration(i+1) * time.Hour),
		}))
	}

	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))
	assert.True(t, cache.Has(ctx, "c"))
}

func TestCacheManager_GetCacheKey(t *testing.T) {
	t.Parallel()

	manager := rtr.NewCacheManager(nil, nil)

	assert.Equal(t, "GET:/exchangerates/EUR", manager.GetCacheKey(http.MethodGet, "/exchangerates/EUR", nil))
	assert.Equal(t, "GET:/tlds/nl/info:fields=hash&limit=1",
		manager.GetCacheKey(http.MethodGet, "/tlds/nl/info", map[string]string{"limit": "1", "fields": "hash"}))

	req := &rtr.Request{Method: http.MethodGet, Path: "/tlds/nl/info", Query: url.Values{"fields": {"hash", "provider"}}}
	assert.Equal(t, "GET:/tlds/nl/info:fields=hash&fields=provider", manager.RequestCacheKey(req))
	assert.Equal(t, "GET:/tlds/nl/info", manager.RequestCacheKey(&rtr.Request{Method: http.MethodGet, Path: "/tlds/nl/info"}))
}

func TestCacheManager_RequestCacheKey_RepeatedValues(t *testing.T) {
	t.Parallel()

	manager := rtr.NewCacheManager(nil, nil)

	repeated := &rtr.Request{Method: http.MethodGet, Path: "/exchangerates/", Query: url.Values{"currency": {"EUR", "USD"}}}
	joined := &rtr.Request{Method: http.MethodGet, Path: "/exchangerates/", Query: url.Values{"currency": {"EUR,USD"}}}

	assert.NotEqual(t, manager.RequestCacheKey(repeated), manager.RequestCacheKey(joined))
	assert.Equal(t, "GET:/exchangerates/:currency=EUR&currency=USD", manager.RequestCacheKey(repeated))
	assert.Equal(t, "GET:/exchangerates/:currency=EUR%2CUSD", manager.RequestCacheKey(joined))
}

func TestCacheManager_Stats(t *testing.T) {
	t.Parallel()

	manager := rtr.NewCacheManager(rtr.NewMemoryCache(10), nil)
	ctx := context.Background()

	require.NoError(t, manager.SetWithETag(ctx, "key", []byte("data"), `"etag"`, time.Hour))

	data, err := manager.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	_, err = manager.Get(ctx, "missing")
	require.ErrorIs(t, err, rtr.ErrCacheKeyNotFound)

	require.NoError(t, manager.Delete(ctx, "key"))

	stats := manager.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, int64(1), stats.Deletes)
	assert.InDelta(t, 0.5, stats.GetHitRate(), 0.0001)
}

func TestCacheManager_ExpiredWithETag(t *testing.T) {
	t.Parallel()

	manager := rtr.NewCacheManager(rtr.NewMemoryCache(10), nil)
	ctx := context.Background()

	require.NoError(t, manager.SetWithETag(ctx, "key", []byte("data"), `"v1"`, time.Millisecond))
	require.NoError(t, manager.Set(ctx, "plain", []byte("data"), time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	_, err := manager.GetEntry(ctx, "key")
	require.ErrorIs(t, err, rtr.ErrCacheExpired)

	entry, err := manager.Lookup(ctx, "key")
	require.NoError(t, err)
	assert.True(t, entry.Expired())
	assert.Equal(t, `"v1"`, entry.ETag)

	_, err = manager.Lookup(ctx, "plain")
	require.ErrorIs(t, err, rtr.ErrCacheExpired)

	stats := manager.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(3), stats.Misses)
}

func TestCacheManager_ETagsDisabled(t *testing.T) {
	t.Parallel()

	options := rtr.DefaultCacheOptions()
	options.EnableETags = false

	manager := rtr.NewCacheManager(rtr.NewMemoryCache(10), options)
	ctx := context.Background()

	require.NoError(t, manager.SetWithETag(ctx, "key", []byte("data"), `"etag"`, 0))

	entry, err := manager.GetEntry(ctx, "key")
	require.NoError(t, err)
	assert.Empty(t, entry.ETag)
	assert.True(t, entry.ExpiresAt.After(time.Now()))
}

func TestCacheManager_NoBackend(t *testing.T) {
	t.Parallel()

	manager := rtr.NewCacheManager(nil, nil)
	ctx := context.Background()

	_, err := manager.Get(ctx, "key")
	require.ErrorIs(t, err, rtr.ErrNoCacheBackend)
	require.ErrorIs(t, manager.Set(ctx, "key", nil, time.Minute), rtr.ErrNoCacheBackend)
	require.NoError(t, manager.Delete(ctx, "key"))
	assert.False(t, manager.Has(ctx, "key"))
}

func TestCacheStats_GetHitRate(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.75, (&rtr.CacheStats{Hits: 75, Misses: 25}).GetHitRate(), 0.0001)
	assert.InDelta(t, 0.0, (&rtr.CacheStats{}).GetHitRate(), 0.0001)
}

func TestCachingPolicy_ShouldCache(t *testing.T) {
	t.Parallel()

	policy := rtr.DefaultCachingPolicy()

	tests := []struct {
		method string
		path   string
		status int
		want   bool
	}{
		{http.MethodGet, "/tlds/nl/info", 200, true},
		{http.MethodGet, "/exchangerates/EUR", 200, true},
		{http.MethodGet, "/customers/acme/pricelist", 200, true},
		{http.MethodGet, "/domains/example.nl", 200, false},
		{http.MethodGet, "/processes/12", 200, false},
		{http.MethodGet, "/tlds/nl/info", 404, false},
		{http.MethodPost, "/tlds/nl/info", 200, false},
		{http.MethodDelete, "/tlds/nl/info", 200, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.ShouldCache(tt.method, tt.path, tt.status), "%s %s %d", tt.method, tt.path, tt.status)
	}

	custom := &rtr.CachingPolicy{CacheGET: true, CachePOST: true, CacheErrors: true}
	assert.True(t, custom.ShouldCache(http.MethodPost, "/domains/example.nl/check", 200))
	assert.True(t, custom.ShouldCache(http.MethodGet, "/domains/example.nl", 404))
}

func TestCacheInterceptor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := rtr.NewCacheManager(rtr.NewMemoryCache(10), nil)
	onRequest, onResponse := rtr.CacheInterceptor(manager, nil)

	// first request misses and stores the response
	first := &rtr.Request{Method: http.MethodGet, Path: "/tlds/nl/info", Metadata: map[string]interface{}{}}
	require.NoError(t, onRequest(ctx, first))
	assert.NotContains(t, first.Metadata, rtr.MetadataCachedResponse)

	headers := http.Header{}
	headers.Set("ETag", `"v1"`)
	require.NoError(t, onResponse(ctx, first, &rtr.Response{StatusCode: 200, Headers: headers, Body: []byte(`{"hash":"abc"}`)}))

	// second request is served from the cache
	second := &rtr.Request{Method: http.MethodGet, Path: "/tlds/nl/info", Metadata: map[string]interface{}{}}
	require.NoError(t, onRequest(ctx, second))

	cached, ok := second.Metadata[rtr.MetadataCachedResponse].(*rtr.Response)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"hash":"abc"}`), cached.Body)
	assert.Equal(t, "HIT", cached.Headers.Get("X-Cache"))

	// a 304 that was not asked for is left alone
	unsolicited := &rtr.Request{Method: http.MethodGet, Path: "/tlds/nl/info", Metadata: map[string]interface{}{}}
	notModified := &rtr.Response{StatusCode: http.StatusNotModified}
	require.NoError(t, onResponse(ctx, unsolicited, notModified))
	assert.Equal(t, http.StatusNotModified, notModified.StatusCode)
	assert.Empty(t, notModified.Body)
}

func TestCacheInterceptor_Revalidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := rtr.NewCacheManager(rtr.NewMemoryCache(10), nil)
	onRequest, onResponse := rtr.CacheInterceptor(manager, nil)

	require.NoError(t, manager.SetWithETag(ctx, "GET:/tlds/nl/info", []byte(`{"hash":"abc"}`), `"v1"`, time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	req := &rtr.Request{Method: http.MethodGet, Path: "/tlds/nl/info", Metadata: map[string]interface{}{}}
	require.NoError(t, onRequest(ctx, req))
	assert.NotContains(t, req.Metadata, rtr.MetadataCachedResponse)
	assert.Equal(t, `"v1"`, req.Headers.Get("If-None-Match"))

	notModified := &rtr.Response{StatusCode: http.StatusNotModified}
	require.NoError(t, onResponse(ctx, req, notModified))
	assert.Equal(t, http.StatusOK, notModified.StatusCode)
	assert.Equal(t, []byte(`{"hash":"abc"}`), notModified.Body)

	// the entry is live again
	entry, err := manager.GetEntry(ctx, "GET:/tlds/nl/info")
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, entry.ETag)

	// requests without a cached entity tag stay unconditional
	other := &rtr.Request{Method: http.MethodGet, Path: "/tlds/com/info", Metadata: map[string]interface{}{}}
	require.NoError(t, onRequest(ctx, other))
	assert.Empty(t, other.Headers.Get("If-None-Match"))
}

func TestCacheInvalidationInterceptor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := rtr.NewCacheManager(rtr.NewMemoryCache(10), nil)
	interceptor := rtr.CacheInvalidationInterceptor(manager)

	objectKey := manager.GetCacheKey(http.MethodGet, "/dns/templates/acme/web", nil)
	collectionKey := manager.GetCacheKey(http.MethodGet, "/dns/templates/acme/", nil)

	require.NoError(t, manager.Set(ctx, objectKey, []byte("template"), time.Hour))
	require.NoError(t, manager.Set(ctx, collectionKey, []byte("list"), time.Hour))

	// failed mutations leave the cache alone
	failed := &rtr.Response{StatusCode: 400, Error: errors.New("bad request")}
	require.NoError(t, interceptor(ctx, &rtr.Request{Method: http.MethodPost, Path: "/dns/templates/acme/web/update"}, failed))
	assert.True(t, manager.Has(ctx, objectKey))

	require.NoError(t, interceptor(ctx, &rtr.Request{Method: http.MethodPost, Path: "/dns/templates/acme/web/update"}, &rtr.Response{StatusCode: 200}))
	assert.False(t, manager.Has(ctx, objectKey))
	assert.False(t, manager.Has(ctx, collectionKey))
}

type MockBillingClient struct {
	rtr.BillingClient
	mock.Mock
}

func (m *MockBillingClient) ListExchangeRates(ctx context.Context) ([]rtr.ExchangeRate, error) {
	args := m.Called(ctx)

	rates, _ := args.Get(0).([]rtr.ExchangeRate)

	return rates, args.Error(1)
}

type MockCustomersClient struct {
	rtr.CustomersClient
	mock.Mock
}

func (m *MockCustomersClient) PriceList(ctx context.Context) (*rtr.PriceList, error) {
	args := m.Called(ctx)

	prices, _ := args.Get(0).(*rtr.PriceList)

	return prices, args.Error(1)
}

type MockTLDsClient struct {
	rtr.TLDsClient
	mock.Mock
}

func (m *MockTLDsClient) Info(ctx context.Context, tld string) (*rtr.TLDInfo, error) {
	args := m.Called(ctx, tld)

	info, _ := args.Get(0).(*rtr.TLDInfo)

	return info, args.Error(1)
}

type warmerClient struct {
	rtr.Client

	customer  string
	billing   *MockBillingClient
	customers *MockCustomersClient
	tlds      *MockTLDsClient
}

func (c *warmerClient) Customer() string               { return c.customer }
func (c *warmerClient) Billing() rtr.BillingClient     { return c.billing }
func (c *warmerClient) Customers() rtr.CustomersClient { return c.customers }
func (c *warmerClient) TLDs() rtr.TLDsClient           { return c.tlds }

func TestCacheWarmer_Warm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client := &warmerClient{
		customer:  "acme",
		billing:   &MockBillingClient{},
		customers: &MockCustomersClient{},
		tlds:      &MockTLDsClient{},
	}

	client.billing.On("ListExchangeRates", ctx).Return([]rtr.ExchangeRate{}, nil)
	client.customers.On("PriceList", ctx).Return(&rtr.PriceList{}, nil)
	client.tlds.On("Info", ctx, "nl").Return(&rtr.TLDInfo{Hash: "a"}, nil)
	client.tlds.On("Info", ctx, "com").Return(nil, rtr.ErrUnsupportedTLD)

	warmer := rtr.NewCacheWarmer(client, rtr.NewCacheManager(rtr.NewMemoryCache(10), nil))

	err := warmer.Warm(ctx, "nl", "com")
	require.ErrorIs(t, err, rtr.ErrUnsupportedTLD)
	assert.Contains(t, err.Error(), "warming tld com")

	client.billing.AssertExpectations(t)
	client.customers.AssertExpectations(t)
	client.tlds.AssertExpectations(t)
}

func TestCacheWarmer_WithoutCustomer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client := &warmerClient{
		billing:   &MockBillingClient{},
		customers: &MockCustomersClient{},
		tlds:      &MockTLDsClient{},
	}

	client.billing.On("ListExchangeRates", ctx).Return([]rtr.ExchangeRate{}, nil)

	require.NoError(t, rtr.NewCacheWarmer(client, nil).Warm(ctx))

	client.customers.AssertNotCalled(t, "PriceList", mock.Anything)
	require.ErrorIs(t, rtr.NewCacheWarmer(nil, nil).Warm(ctx), rtr.ErrConfigRequired)
}
